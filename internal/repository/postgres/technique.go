package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	techniqueColumns = "id, nombre, descripcion, categoria, activo, fecha_creacion"

	listTechniquesQuery           = "SELECT " + techniqueColumns + " FROM tecnicas WHERE activo=TRUE ORDER BY id"
	listTechniquesByCategoryQuery = "SELECT " + techniqueColumns + " FROM tecnicas WHERE activo=TRUE AND categoria=$1 ORDER BY id"
	listAllTechniquesQuery        = "SELECT " + techniqueColumns + " FROM tecnicas ORDER BY id"
	selectTechniqueQuery          = "SELECT " + techniqueColumns + " FROM tecnicas WHERE id=$1"

	insertTechniqueQuery = `
INSERT INTO tecnicas (nombre, descripcion, categoria, activo)
VALUES ($1, $2, $3, $4)
RETURNING ` + techniqueColumns

	deactivateTechniqueQuery = "UPDATE tecnicas SET activo=FALSE WHERE id=$1"
)

func scanTechnique(row pgx.Row) (*entities.Technique, error) {
	var t entities.Technique
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.Active, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTechniques returns techniques: active ones (optionally by category), or
// the whole catalog when includeInactive is set.
func (p *Postgres) ListTechniques(ctx context.Context, category *string, includeInactive bool) ([]entities.Technique, error) {
	var (
		rows pgx.Rows
		err  error
	)
	switch {
	case includeInactive:
		rows, err = p.db.Query(ctx, listAllTechniquesQuery)
	case category != nil:
		rows, err = p.db.Query(ctx, listTechniquesByCategoryQuery, *category)
	default:
		rows, err = p.db.Query(ctx, listTechniquesQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("list techniques: %w", err)
	}
	defer rows.Close()

	techniques := make([]entities.Technique, 0)
	for rows.Next() {
		t, err := scanTechnique(rows)
		if err != nil {
			return nil, fmt.Errorf("scan technique: %w", err)
		}
		techniques = append(techniques, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate techniques: %w", err)
	}
	return techniques, nil
}

// GetTechnique fetches a technique by id.
func (p *Postgres) GetTechnique(ctx context.Context, id int64) (*entities.Technique, error) {
	t, err := scanTechnique(p.db.QueryRow(ctx, selectTechniqueQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTechniqueNotFound
		}
		return nil, fmt.Errorf("get technique: %w", err)
	}
	return t, nil
}

// CreateTechnique inserts a technique and returns the stored row.
func (p *Postgres) CreateTechnique(ctx context.Context, technique entities.Technique) (*entities.Technique, error) {
	row := p.db.QueryRow(ctx, insertTechniqueQuery,
		technique.Name, technique.Description, technique.Category, technique.Active)
	created, err := scanTechnique(row)
	if err != nil {
		return nil, fmt.Errorf("insert technique: %w", err)
	}

	p.log.Infow("technique created", "technique_id", created.ID)
	return created, nil
}

// UpdateTechnique patches the supplied fields and returns the updated row.
func (p *Postgres) UpdateTechnique(ctx context.Context, id int64, patch entities.TechniqueUpdate) (*entities.Technique, error) {
	if patch.IsEmpty() {
		return p.GetTechnique(ctx, id)
	}

	var b patchBuilder
	if patch.Name != nil {
		b.set("nombre", *patch.Name)
	}
	if patch.Description != nil {
		b.set("descripcion", *patch.Description)
	}
	if patch.Category != nil {
		b.set("categoria", *patch.Category)
	}
	if patch.Active != nil {
		b.set("activo", *patch.Active)
	}

	query, args := b.updateQuery("tecnicas", id)
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update technique: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrTechniqueNotFound
	}

	return p.GetTechnique(ctx, id)
}

// DeactivateTechnique soft-deletes the technique.
func (p *Postgres) DeactivateTechnique(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deactivateTechniqueQuery, id)
	if err != nil {
		return fmt.Errorf("deactivate technique: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTechniqueNotFound
	}

	p.log.Infow("technique deactivated", "technique_id", id)
	return nil
}
