package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"
)

// Stakeholders returns a project's stakeholders.
func (u *Usecase) Stakeholders(ctx context.Context, projectID int64) ([]entities.Stakeholder, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListStakeholders(ctx, projectID)
}

// Stakeholder returns a stakeholder by id.
func (u *Usecase) Stakeholder(ctx context.Context, id int64) (*entities.Stakeholder, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetStakeholder(ctx, id)
}

// CreateStakeholder inserts a project-scoped contact.
func (u *Usecase) CreateStakeholder(ctx context.Context, stakeholder entities.Stakeholder) (*entities.Stakeholder, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	switch {
	case stakeholder.ProjectID == 0:
		return nil, fmt.Errorf("%w: el campo proyecto_id es requerido", entities.ErrInvalidArgument)
	case stakeholder.FullName == "":
		return nil, fmt.Errorf("%w: el campo nombre_completo es requerido", entities.ErrInvalidArgument)
	case stakeholder.Type == "":
		return nil, fmt.Errorf("%w: el campo tipo es requerido", entities.ErrInvalidArgument)
	case stakeholder.InfluenceInterest == "":
		return nil, fmt.Errorf("%w: el campo nivel_influencia_interes es requerido", entities.ErrInvalidArgument)
	}

	return u.repo.CreateStakeholder(ctx, stakeholder)
}

// UpdateStakeholder patches the supplied fields.
func (u *Usecase) UpdateStakeholder(ctx context.Context, id int64, patch entities.StakeholderUpdate) (*entities.Stakeholder, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.UpdateStakeholder(ctx, id, patch)
}

// DeleteStakeholder removes a stakeholder.
func (u *Usecase) DeleteStakeholder(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteStakeholder(ctx, id)
}
