package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	stakeholderColumns = "id, proyecto_id, nombre_completo, correo, telefono, organizacion, cargo, tipo, nivel_influencia_interes, notas, fecha_creacion"

	listStakeholdersQuery  = "SELECT " + stakeholderColumns + " FROM stakeholders WHERE proyecto_id=$1 ORDER BY id"
	selectStakeholderQuery = "SELECT " + stakeholderColumns + " FROM stakeholders WHERE id=$1"

	insertStakeholderQuery = `
INSERT INTO stakeholders (proyecto_id, nombre_completo, correo, telefono, organizacion, cargo, tipo, nivel_influencia_interes, notas)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + stakeholderColumns

	deleteStakeholderQuery = "DELETE FROM stakeholders WHERE id=$1"
)

func scanStakeholder(row pgx.Row) (*entities.Stakeholder, error) {
	var s entities.Stakeholder
	err := row.Scan(&s.ID, &s.ProjectID, &s.FullName, &s.Email, &s.Phone, &s.Organization,
		&s.Position, &s.Type, &s.InfluenceInterest, &s.Notes, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListStakeholders returns a project's stakeholders.
func (p *Postgres) ListStakeholders(ctx context.Context, projectID int64) ([]entities.Stakeholder, error) {
	rows, err := p.db.Query(ctx, listStakeholdersQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list stakeholders: %w", err)
	}
	defer rows.Close()

	stakeholders := make([]entities.Stakeholder, 0)
	for rows.Next() {
		s, err := scanStakeholder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stakeholder: %w", err)
		}
		stakeholders = append(stakeholders, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stakeholders: %w", err)
	}
	return stakeholders, nil
}

// GetStakeholder fetches a stakeholder by id.
func (p *Postgres) GetStakeholder(ctx context.Context, id int64) (*entities.Stakeholder, error) {
	s, err := scanStakeholder(p.db.QueryRow(ctx, selectStakeholderQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrStakeholderNotFound
		}
		return nil, fmt.Errorf("get stakeholder: %w", err)
	}
	return s, nil
}

// CreateStakeholder inserts a stakeholder and returns the stored row.
func (p *Postgres) CreateStakeholder(ctx context.Context, stakeholder entities.Stakeholder) (*entities.Stakeholder, error) {
	row := p.db.QueryRow(ctx, insertStakeholderQuery,
		stakeholder.ProjectID, stakeholder.FullName, stakeholder.Email, stakeholder.Phone,
		stakeholder.Organization, stakeholder.Position, stakeholder.Type,
		stakeholder.InfluenceInterest, stakeholder.Notes)
	created, err := scanStakeholder(row)
	if err != nil {
		return nil, fmt.Errorf("insert stakeholder: %w", err)
	}

	p.log.Infow("stakeholder created", "stakeholder_id", created.ID, "project_id", stakeholder.ProjectID)
	return created, nil
}

// UpdateStakeholder patches the supplied fields and returns the updated row.
func (p *Postgres) UpdateStakeholder(ctx context.Context, id int64, patch entities.StakeholderUpdate) (*entities.Stakeholder, error) {
	if patch.IsEmpty() {
		return p.GetStakeholder(ctx, id)
	}

	var b patchBuilder
	if patch.FullName != nil {
		b.set("nombre_completo", *patch.FullName)
	}
	if patch.Email != nil {
		b.set("correo", *patch.Email)
	}
	if patch.Phone != nil {
		b.set("telefono", *patch.Phone)
	}
	if patch.Organization != nil {
		b.set("organizacion", *patch.Organization)
	}
	if patch.Position != nil {
		b.set("cargo", *patch.Position)
	}
	if patch.Type != nil {
		b.set("tipo", *patch.Type)
	}
	if patch.InfluenceInterest != nil {
		b.set("nivel_influencia_interes", *patch.InfluenceInterest)
	}
	if patch.Notes != nil {
		b.set("notas", *patch.Notes)
	}

	query, args := b.updateQuery("stakeholders", id)
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update stakeholder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrStakeholderNotFound
	}

	return p.GetStakeholder(ctx, id)
}

// DeleteStakeholder removes the stakeholder.
func (p *Postgres) DeleteStakeholder(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteStakeholderQuery, id)
	if err != nil {
		return fmt.Errorf("delete stakeholder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrStakeholderNotFound
	}

	p.log.Infow("stakeholder deleted", "stakeholder_id", id)
	return nil
}
