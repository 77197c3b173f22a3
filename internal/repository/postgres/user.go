package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	userColumns = "id, nombre, apellido, correo, contrasena, activo, fecha_creacion, fecha_actualizacion"

	insertUserQuery = `
INSERT INTO usuarios (nombre, apellido, correo, contrasena)
VALUES ($1, $2, $3, $4)
RETURNING ` + userColumns

	selectUserQuery        = "SELECT " + userColumns + " FROM usuarios WHERE id=$1"
	selectUserByEmailQuery = "SELECT " + userColumns + " FROM usuarios WHERE correo=$1"
	listActiveUsersQuery   = "SELECT " + userColumns + " FROM usuarios WHERE activo=TRUE ORDER BY id"
	deactivateUserQuery    = "UPDATE usuarios SET activo=FALSE WHERE id=$1"
)

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a new account and returns the stored row.
func (p *Postgres) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	row := p.db.QueryRow(ctx, insertUserQuery, user.FirstName, user.LastName, user.Email, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user created", "user_id", created.ID)
	return created, nil
}

// GetUser fetches an account by id.
func (p *Postgres) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetUserByEmail fetches an account by email, including the credential hash.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, selectUserByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// ListActiveUsers returns all non-deactivated accounts.
func (p *Postgres) ListActiveUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listActiveUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// UpdateUser patches the supplied fields and returns the updated row.
func (p *Postgres) UpdateUser(ctx context.Context, id int64, patch entities.UserUpdate) (*entities.User, error) {
	if patch.IsEmpty() {
		return p.GetUser(ctx, id)
	}

	var b patchBuilder
	if patch.FirstName != nil {
		b.set("nombre", *patch.FirstName)
	}
	if patch.LastName != nil {
		b.set("apellido", *patch.LastName)
	}
	if patch.Email != nil {
		b.set("correo", *patch.Email)
	}
	if patch.PasswordHash != nil {
		b.set("contrasena", *patch.PasswordHash)
	}

	query, args := b.updateQuery("usuarios", id)
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrUserNotFound
	}

	return p.GetUser(ctx, id)
}

// DeactivateUser soft-deletes the account.
func (p *Postgres) DeactivateUser(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deactivateUserQuery, id)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}

	p.log.Infow("user deactivated", "user_id", id)
	return nil
}
