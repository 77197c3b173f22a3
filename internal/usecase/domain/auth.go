// Package domain contains application usecases orchestrating business logic.
package domain

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

// Register creates an account with a bcrypt-hashed credential.
func (u *Usecase) Register(ctx context.Context, in entities.RegisterInput) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	switch {
	case in.FirstName == "":
		return nil, fmt.Errorf("%w: el campo nombre es requerido", entities.ErrInvalidArgument)
	case in.LastName == "":
		return nil, fmt.Errorf("%w: el campo apellido es requerido", entities.ErrInvalidArgument)
	case in.Email == "":
		return nil, fmt.Errorf("%w: el campo correo es requerido", entities.ErrInvalidArgument)
	case in.Password == "":
		return nil, fmt.Errorf("%w: el campo contrasena es requerido", entities.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := u.repo.CreateUser(ctx, entities.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	u.log.Infow("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the credential pair and returns the account.
func (u *Usecase) Login(ctx context.Context, email, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: correo y contrasena son requeridos", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, entities.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, entities.ErrUserDisabled
	}

	u.log.Infow("user logged in", "user_id", user.ID)
	return user, nil
}

// CurrentUser returns the caller's account record.
func (u *Usecase) CurrentUser(ctx context.Context, userID int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetUser(ctx, userID)
}
