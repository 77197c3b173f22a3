package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	processJoined = `
SELECT p.id, p.proyecto_id, p.nombre, p.descripcion, p.objetivo, p.responsable_id, p.estado,
       p.fecha_creacion, p.fecha_actualizacion,
       u.nombre, u.apellido
FROM procesos p
LEFT JOIN usuarios u ON p.responsable_id = u.id`

	listProcessesQuery = processJoined + " WHERE p.proyecto_id=$1 ORDER BY p.id"
	selectProcessQuery = processJoined + " WHERE p.id=$1"
	insertProcessQuery = `
INSERT INTO procesos (proyecto_id, nombre, descripcion, objetivo, responsable_id, estado)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`
	deleteProcessQuery = "DELETE FROM procesos WHERE id=$1"
)

func scanProcess(row pgx.Row) (*entities.Process, error) {
	var (
		pr                  entities.Process
		respFirst, respLast *string
	)
	err := row.Scan(&pr.ID, &pr.ProjectID, &pr.Name, &pr.Description, &pr.Objective,
		&pr.ResponsibleID, &pr.Status, &pr.CreatedAt, &pr.UpdatedAt, &respFirst, &respLast)
	if err != nil {
		return nil, err
	}
	if pr.ResponsibleID != nil && respFirst != nil && respLast != nil {
		pr.Responsible = &entities.Responsible{ID: *pr.ResponsibleID, FirstName: *respFirst, LastName: *respLast}
	}
	return &pr, nil
}

// ListProcesses returns a project's processes with joined responsible data.
func (p *Postgres) ListProcesses(ctx context.Context, projectID int64) ([]entities.Process, error) {
	rows, err := p.db.Query(ctx, listProcessesQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	defer rows.Close()

	processes := make([]entities.Process, 0)
	for rows.Next() {
		pr, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan process: %w", err)
		}
		processes = append(processes, *pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate processes: %w", err)
	}
	return processes, nil
}

// GetProcess fetches a process by id.
func (p *Postgres) GetProcess(ctx context.Context, id int64) (*entities.Process, error) {
	pr, err := scanProcess(p.db.QueryRow(ctx, selectProcessQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProcessNotFound
		}
		return nil, fmt.Errorf("get process: %w", err)
	}
	return pr, nil
}

// CreateProcess inserts a process and returns it with joined data.
func (p *Postgres) CreateProcess(ctx context.Context, process entities.Process) (*entities.Process, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertProcessQuery,
		process.ProjectID, process.Name, process.Description, process.Objective,
		process.ResponsibleID, process.Status).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert process: %w", err)
	}

	p.log.Infow("process created", "process_id", id, "project_id", process.ProjectID)
	return p.GetProcess(ctx, id)
}

// UpdateProcess patches the supplied fields and returns the updated row.
func (p *Postgres) UpdateProcess(ctx context.Context, id int64, patch entities.ProcessUpdate) (*entities.Process, error) {
	if patch.IsEmpty() {
		return p.GetProcess(ctx, id)
	}

	var b patchBuilder
	if patch.Name != nil {
		b.set("nombre", *patch.Name)
	}
	if patch.Description != nil {
		b.set("descripcion", *patch.Description)
	}
	if patch.Objective != nil {
		b.set("objetivo", *patch.Objective)
	}
	if patch.ResponsibleID != nil {
		b.set("responsable_id", *patch.ResponsibleID)
	}
	if patch.Status != nil {
		b.set("estado", *patch.Status)
	}

	query, args := b.updateQuery("procesos", id)
	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update process: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrProcessNotFound
	}

	return p.GetProcess(ctx, id)
}

// DeleteProcess removes a process; its subprocesses cascade.
func (p *Postgres) DeleteProcess(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteProcessQuery, id)
	if err != nil {
		return fmt.Errorf("delete process: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProcessNotFound
	}

	p.log.Infow("process deleted", "process_id", id)
	return nil
}
