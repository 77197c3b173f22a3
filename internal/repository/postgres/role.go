package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	roleColumns = "id, proyecto_id, nombre, descripcion, es_fijo, fecha_creacion"

	listFixedRolesQuery   = "SELECT " + roleColumns + " FROM roles WHERE es_fijo=TRUE ORDER BY id"
	listProjectRolesQuery = "SELECT " + roleColumns + " FROM roles WHERE es_fijo=TRUE OR proyecto_id=$1 ORDER BY id"
	selectRoleQuery       = "SELECT " + roleColumns + " FROM roles WHERE id=$1"

	insertRoleQuery = `
INSERT INTO roles (proyecto_id, nombre, descripcion, es_fijo)
VALUES ($1, $2, $3, FALSE)
RETURNING ` + roleColumns

	deleteRoleQuery = "DELETE FROM roles WHERE id=$1"
)

func scanRole(row pgx.Row) (*entities.Role, error) {
	var r entities.Role
	err := row.Scan(&r.ID, &r.ProjectID, &r.Name, &r.Description, &r.Fixed, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRoles returns all fixed roles, plus the project's custom roles when a
// project id is given.
func (p *Postgres) ListRoles(ctx context.Context, projectID *int64) ([]entities.Role, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if projectID != nil {
		rows, err = p.db.Query(ctx, listProjectRolesQuery, *projectID)
	} else {
		rows, err = p.db.Query(ctx, listFixedRolesQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return roles, nil
}

// GetRole fetches a role by id.
func (p *Postgres) GetRole(ctx context.Context, id int64) (*entities.Role, error) {
	r, err := scanRole(p.db.QueryRow(ctx, selectRoleQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return r, nil
}

// CreateRole inserts a custom project-scoped role.
func (p *Postgres) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	row := p.db.QueryRow(ctx, insertRoleQuery, role.ProjectID, role.Name, role.Description)
	created, err := scanRole(row)
	if err != nil {
		return nil, fmt.Errorf("insert role: %w", err)
	}

	p.log.Infow("role created", "role_id", created.ID, "project_id", role.ProjectID)
	return created, nil
}

// UpdateRole patches the supplied fields and returns the updated row. The
// fixed-role guard runs in the usecase layer before this call.
func (p *Postgres) UpdateRole(ctx context.Context, id int64, patch entities.RoleUpdate) (*entities.Role, error) {
	if patch.IsEmpty() {
		return p.GetRole(ctx, id)
	}

	var b patchBuilder
	if patch.Name != nil {
		b.set("nombre", *patch.Name)
	}
	if patch.Description != nil {
		b.set("descripcion", *patch.Description)
	}

	query, args := b.updateQuery("roles", id)
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrRoleNotFound
	}

	return p.GetRole(ctx, id)
}

// DeleteRole removes a custom role.
func (p *Postgres) DeleteRole(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteRoleQuery, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrRoleNotFound
	}

	p.log.Infow("role deleted", "role_id", id)
	return nil
}
