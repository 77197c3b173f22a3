package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"
)

// Techniques returns the technique catalog: active entries (optionally
// filtered by category) or everything when includeInactive is set.
func (u *Usecase) Techniques(ctx context.Context, category *string, includeInactive bool) ([]entities.Technique, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTechniques(ctx, category, includeInactive)
}

// Technique returns a technique by id.
func (u *Usecase) Technique(ctx context.Context, id int64) (*entities.Technique, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetTechnique(ctx, id)
}

// CreateTechnique inserts a technique into the catalog.
func (u *Usecase) CreateTechnique(ctx context.Context, technique entities.Technique) (*entities.Technique, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if technique.Name == "" {
		return nil, fmt.Errorf("%w: el nombre es requerido", entities.ErrInvalidArgument)
	}
	if technique.Category == "" {
		return nil, fmt.Errorf("%w: la categoria es requerida", entities.ErrInvalidArgument)
	}
	technique.Active = true

	return u.repo.CreateTechnique(ctx, technique)
}

// UpdateTechnique patches the supplied fields.
func (u *Usecase) UpdateTechnique(ctx context.Context, id int64, patch entities.TechniqueUpdate) (*entities.Technique, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.UpdateTechnique(ctx, id, patch)
}

// DeactivateTechnique soft-deletes a technique.
func (u *Usecase) DeactivateTechnique(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeactivateTechnique(ctx, id)
}
