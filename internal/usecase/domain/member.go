package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"
)

// Members returns a project's memberships with joined user and role data.
func (u *Usecase) Members(ctx context.Context, projectID int64) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListMembers(ctx, projectID)
}

// Member returns a membership by id.
func (u *Usecase) Member(ctx context.Context, id int64) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetMember(ctx, id)
}

// AssignMember adds a user to a project under a role. The repository enforces
// the one-membership-per-user and singleton-fixed-role invariants.
func (u *Usecase) AssignMember(ctx context.Context, callerID, projectID, userID, roleID int64) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	switch {
	case projectID == 0:
		return nil, fmt.Errorf("%w: el campo proyecto_id es requerido", entities.ErrInvalidArgument)
	case userID == 0:
		return nil, fmt.Errorf("%w: el campo usuario_id es requerido", entities.ErrInvalidArgument)
	case roleID == 0:
		return nil, fmt.Errorf("%w: el campo rol_id es requerido", entities.ErrInvalidArgument)
	}

	return u.repo.AssignMember(ctx, entities.Member{
		ProjectID:  projectID,
		UserID:     userID,
		RoleID:     roleID,
		AssignedBy: callerID,
	})
}

// UpdateMember reassigns the membership's role; a nil role id leaves the
// record untouched and returns it as stored.
func (u *Usecase) UpdateMember(ctx context.Context, id int64, roleID *int64) (*entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if roleID == nil {
		return u.repo.GetMember(ctx, id)
	}

	return u.repo.UpdateMemberRole(ctx, id, *roleID)
}

// RemoveMember deletes a membership unconditionally.
func (u *Usecase) RemoveMember(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.RemoveMember(ctx, id)
}
