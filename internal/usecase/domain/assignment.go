package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"
)

// Assignments returns a subprocess's technique links.
func (u *Usecase) Assignments(ctx context.Context, subprocessID int64) ([]entities.TechniqueAssignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListAssignments(ctx, subprocessID)
}

// AssignTechnique links a technique to a subprocess; the pair is unique.
func (u *Usecase) AssignTechnique(ctx context.Context, assignment entities.TechniqueAssignment) (*entities.TechniqueAssignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if assignment.SubprocessID == 0 {
		return nil, fmt.Errorf("%w: el subproceso_id es requerido", entities.ErrInvalidArgument)
	}
	if assignment.TechniqueID == 0 {
		return nil, fmt.Errorf("%w: el tecnica_id es requerido", entities.ErrInvalidArgument)
	}

	return u.repo.CreateAssignment(ctx, assignment)
}

// UpdateAssignment replaces the notes on a technique link.
func (u *Usecase) UpdateAssignment(ctx context.Context, id int64, notes *string) (*entities.TechniqueAssignment, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.UpdateAssignmentNotes(ctx, id, notes)
}

// RemoveAssignment deletes a technique link.
func (u *Usecase) RemoveAssignment(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteAssignment(ctx, id)
}
