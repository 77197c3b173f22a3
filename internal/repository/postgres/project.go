package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	projectColumns = "id, nombre, descripcion, estado, prioridad, fecha_inicio, fecha_fin, creado_por, fecha_creacion, fecha_actualizacion"

	insertProjectQuery = `
INSERT INTO proyectos (nombre, descripcion, estado, prioridad, fecha_inicio, fecha_fin, creado_por)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + projectColumns

	selectProjectQuery = "SELECT " + projectColumns + " FROM proyectos WHERE id=$1"

	listProjectsQuery = `
SELECT DISTINCT p.id, p.nombre, p.descripcion, p.estado, p.prioridad, p.fecha_inicio, p.fecha_fin,
       p.creado_por, p.fecha_creacion, p.fecha_actualizacion
FROM proyectos p
LEFT JOIN miembros_proyecto mp ON p.id = mp.proyecto_id
WHERE p.creado_por = $1 OR mp.usuario_id = $1
ORDER BY p.id`

	selectOwnerRoleQuery = "SELECT id FROM roles WHERE nombre=$1 AND es_fijo=TRUE"

	insertOwnerMemberQuery = `
INSERT INTO miembros_proyecto (proyecto_id, usuario_id, rol_id, asignado_por)
VALUES ($1, $2, $3, $4)`

	deleteProjectQuery = "DELETE FROM proyectos WHERE id=$1"
)

func scanProject(row pgx.Row) (*entities.Project, error) {
	var pr entities.Project
	err := row.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.Status, &pr.Priority,
		&pr.StartDate, &pr.EndDate, &pr.CreatedBy, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

// CreateProject inserts the project and the creator's Product Owner
// membership in one transaction. When the fixed role is absent from the
// catalog the project is still created without that membership.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, insertProjectQuery,
		project.Name, project.Description, project.Status, project.Priority,
		project.StartDate, project.EndDate, project.CreatedBy)
	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	var ownerRoleID int64
	err = tx.QueryRow(ctx, selectOwnerRoleQuery, entities.RoleProductOwner).Scan(&ownerRoleID)
	switch {
	case err == nil:
		if _, err := tx.Exec(ctx, insertOwnerMemberQuery,
			created.ID, project.CreatedBy, ownerRoleID, project.CreatedBy); err != nil {
			return nil, fmt.Errorf("insert owner membership: %w", err)
		}
	case errors.Is(err, pgx.ErrNoRows):
		p.log.Warnw("fixed role missing, project created without owner membership",
			"project_id", created.ID, "role", entities.RoleProductOwner)
	default:
		return nil, fmt.Errorf("lookup owner role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("project created", "project_id", created.ID, "created_by", project.CreatedBy)
	return created, nil
}

// ListProjects returns the distinct set of projects created by the user or
// where the user holds a membership.
func (p *Postgres) ListProjects(ctx context.Context, userID int64) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// GetProject fetches a project by id.
func (p *Postgres) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, selectProjectQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return pr, nil
}

// UpdateProject patches the supplied fields and returns the updated row.
func (p *Postgres) UpdateProject(ctx context.Context, id int64, patch entities.ProjectUpdate) (*entities.Project, error) {
	if patch.IsEmpty() {
		return p.GetProject(ctx, id)
	}

	var b patchBuilder
	if patch.Name != nil {
		b.set("nombre", *patch.Name)
	}
	if patch.Description != nil {
		b.set("descripcion", *patch.Description)
	}
	if patch.Status != nil {
		b.set("estado", *patch.Status)
	}
	if patch.Priority != nil {
		b.set("prioridad", *patch.Priority)
	}
	switch {
	case patch.ClearStartDate:
		b.set("fecha_inicio", nil)
	case patch.StartDate != nil:
		b.set("fecha_inicio", *patch.StartDate)
	}
	switch {
	case patch.ClearEndDate:
		b.set("fecha_fin", nil)
	case patch.EndDate != nil:
		b.set("fecha_fin", *patch.EndDate)
	}

	query, args := b.updateQuery("proyectos", id)
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrProjectNotFound
	}

	return p.GetProject(ctx, id)
}

// DeleteProject removes the project; memberships and work items cascade.
func (p *Postgres) DeleteProject(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteProjectQuery, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}

	p.log.Infow("project deleted", "project_id", id)
	return nil
}
