package domain

import (
	"context"
	"fmt"

	"gestproy/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// Users returns all active accounts.
func (u *Usecase) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListActiveUsers(ctx)
}

// User returns an account by id.
func (u *Usecase) User(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetUser(ctx, id)
}

// UpdateUser patches the caller's own account; other accounts are off limits.
func (u *Usecase) UpdateUser(ctx context.Context, callerID, id int64, patch entities.UserProfileUpdate) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if callerID != id {
		return nil, fmt.Errorf("%w: no tienes permiso para actualizar este usuario", entities.ErrForbidden)
	}

	stored := entities.UserUpdate{
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
		Email:     patch.Email,
	}
	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		stored.PasswordHash = &hashed
	}

	return u.repo.UpdateUser(ctx, id, stored)
}

// DeactivateUser soft-deletes the caller's own account.
func (u *Usecase) DeactivateUser(ctx context.Context, callerID, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if callerID != id {
		return fmt.Errorf("%w: no tienes permiso para desactivar este usuario", entities.ErrForbidden)
	}

	return u.repo.DeactivateUser(ctx, id)
}
