package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	subprocessJoined = `
SELECT s.id, s.proceso_id, s.nombre, s.descripcion, s.responsable_id, s.estado, s.horas_estimadas,
       s.fecha_creacion, s.fecha_actualizacion,
       u.nombre, u.apellido
FROM subprocesos s
LEFT JOIN usuarios u ON s.responsable_id = u.id`

	listSubprocessesQuery = subprocessJoined + " WHERE s.proceso_id=$1 ORDER BY s.id"
	selectSubprocessQuery = subprocessJoined + " WHERE s.id=$1"
	insertSubprocessQuery = `
INSERT INTO subprocesos (proceso_id, nombre, descripcion, responsable_id, estado, horas_estimadas)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	deleteSubprocessQuery = "DELETE FROM subprocesos WHERE id=$1"
)

func scanSubprocess(row pgx.Row) (*entities.Subprocess, error) {
	var (
		s                   entities.Subprocess
		respFirst, respLast *string
	)
	err := row.Scan(&s.ID, &s.ProcessID, &s.Name, &s.Description, &s.ResponsibleID,
		&s.Status, &s.EstimatedHours, &s.CreatedAt, &s.UpdatedAt, &respFirst, &respLast)
	if err != nil {
		return nil, err
	}
	if s.ResponsibleID != nil && respFirst != nil && respLast != nil {
		s.Responsible = &entities.Responsible{ID: *s.ResponsibleID, FirstName: *respFirst, LastName: *respLast}
	}
	return &s, nil
}

// ListSubprocesses returns a process's subprocesses with joined responsible data.
func (p *Postgres) ListSubprocesses(ctx context.Context, processID int64) ([]entities.Subprocess, error) {
	rows, err := p.db.Query(ctx, listSubprocessesQuery, processID)
	if err != nil {
		return nil, fmt.Errorf("list subprocesses: %w", err)
	}
	defer rows.Close()

	subprocesses := make([]entities.Subprocess, 0)
	for rows.Next() {
		s, err := scanSubprocess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subprocess: %w", err)
		}
		subprocesses = append(subprocesses, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subprocesses: %w", err)
	}
	return subprocesses, nil
}

// GetSubprocess fetches a subprocess by id.
func (p *Postgres) GetSubprocess(ctx context.Context, id int64) (*entities.Subprocess, error) {
	s, err := scanSubprocess(p.db.QueryRow(ctx, selectSubprocessQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrSubprocessNotFound
		}
		return nil, fmt.Errorf("get subprocess: %w", err)
	}
	return s, nil
}

// CreateSubprocess inserts a subprocess and returns it with joined data.
func (p *Postgres) CreateSubprocess(ctx context.Context, subprocess entities.Subprocess) (*entities.Subprocess, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertSubprocessQuery,
		subprocess.ProcessID, subprocess.Name, subprocess.Description,
		subprocess.ResponsibleID, subprocess.Status, subprocess.EstimatedHours).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert subprocess: %w", err)
	}

	p.log.Infow("subprocess created", "subprocess_id", id, "process_id", subprocess.ProcessID)
	return p.GetSubprocess(ctx, id)
}

// UpdateSubprocess patches the supplied fields and returns the updated row.
func (p *Postgres) UpdateSubprocess(ctx context.Context, id int64, patch entities.SubprocessUpdate) (*entities.Subprocess, error) {
	if patch.IsEmpty() {
		return p.GetSubprocess(ctx, id)
	}

	var b patchBuilder
	if patch.Name != nil {
		b.set("nombre", *patch.Name)
	}
	if patch.Description != nil {
		b.set("descripcion", *patch.Description)
	}
	if patch.ResponsibleID != nil {
		b.set("responsable_id", *patch.ResponsibleID)
	}
	if patch.Status != nil {
		b.set("estado", *patch.Status)
	}
	if patch.EstimatedHours != nil {
		b.set("horas_estimadas", *patch.EstimatedHours)
	}

	query, args := b.updateQuery("subprocesos", id)
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update subprocess: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrSubprocessNotFound
	}

	return p.GetSubprocess(ctx, id)
}

// DeleteSubprocess removes a subprocess; its technique links cascade.
func (p *Postgres) DeleteSubprocess(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteSubprocessQuery, id)
	if err != nil {
		return fmt.Errorf("delete subprocess: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrSubprocessNotFound
	}

	p.log.Infow("subprocess deleted", "subprocess_id", id)
	return nil
}
