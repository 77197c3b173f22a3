package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"
)

// CreateProject inserts a project owned by the caller; the repository
// provisions the Product Owner membership in the same transaction.
func (u *Usecase) CreateProject(ctx context.Context, callerID int64, project entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if project.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", entities.ErrInvalidArgument)
	}
	if project.Priority == "" {
		return nil, fmt.Errorf("%w: la prioridad es requerida", entities.ErrInvalidArgument)
	}

	project.CreatedBy = callerID
	if project.Status == "" {
		project.Status = entities.DefaultProjectStatus
	}

	return u.repo.CreateProject(ctx, project)
}

// Projects returns the caller's visible projects: created by them or where
// they hold a membership.
func (u *Usecase) Projects(ctx context.Context, callerID int64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListProjects(ctx, callerID)
}

// Project returns a project by id.
func (u *Usecase) Project(ctx context.Context, id int64) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetProject(ctx, id)
}

// UpdateProject patches the supplied fields.
func (u *Usecase) UpdateProject(ctx context.Context, id int64, patch entities.ProjectUpdate) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.UpdateProject(ctx, id, patch)
}

// DeleteProject removes a project; only its creator may do so.
func (u *Usecase) DeleteProject(ctx context.Context, callerID, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	project, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if project.CreatedBy != callerID {
		u.log.Errorw("delete project denied", "project_id", id, "caller_id", callerID)
		return fmt.Errorf("%w: no tienes permiso para eliminar este proyecto", entities.ErrForbidden)
	}

	return u.repo.DeleteProject(ctx, id)
}
