package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"
)

// Roles returns the role catalog visible to a project: all fixed roles, plus
// the project's custom roles when a project id is given.
func (u *Usecase) Roles(ctx context.Context, projectID *int64) ([]entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListRoles(ctx, projectID)
}

// Role returns a role by id.
func (u *Usecase) Role(ctx context.Context, id int64) (*entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetRole(ctx, id)
}

// CreateRole creates a custom project-scoped role. Fixed roles are never
// created through this path.
func (u *Usecase) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if role.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", entities.ErrInvalidArgument)
	}
	if role.ProjectID == nil {
		return nil, fmt.Errorf("%w: el proyecto_id es requerido", entities.ErrInvalidArgument)
	}
	role.Fixed = false

	return u.repo.CreateRole(ctx, role)
}

// UpdateRole patches a custom role; fixed roles are immutable.
func (u *Usecase) UpdateRole(ctx context.Context, id int64, patch entities.RoleUpdate) (*entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	role, err := u.repo.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if role.Fixed {
		u.log.Errorw("update of fixed role rejected", "role_id", id)
		return nil, entities.ErrFixedRole
	}

	return u.repo.UpdateRole(ctx, id, patch)
}

// DeleteRole removes a custom role; fixed roles are undeletable.
func (u *Usecase) DeleteRole(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	role, err := u.repo.GetRole(ctx, id)
	if err != nil {
		return err
	}
	if role.Fixed {
		u.log.Errorw("delete of fixed role rejected", "role_id", id)
		return entities.ErrFixedRole
	}

	return u.repo.DeleteRole(ctx, id)
}
