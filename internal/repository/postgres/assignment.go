package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	assignmentJoined = `
SELECT st.id, st.subproceso_id, st.tecnica_id, st.notas, st.fecha_asignacion,
       t.nombre, t.categoria
FROM subproceso_tecnicas st
JOIN tecnicas t ON st.tecnica_id = t.id`

	listAssignmentsQuery  = assignmentJoined + " WHERE st.subproceso_id=$1 ORDER BY st.id"
	selectAssignmentQuery = assignmentJoined + " WHERE st.id=$1"

	insertAssignmentQuery = `
INSERT INTO subproceso_tecnicas (subproceso_id, tecnica_id, notas)
VALUES ($1, $2, $3)
RETURNING id`

	updateAssignmentNotesQuery = "UPDATE subproceso_tecnicas SET notas=$1 WHERE id=$2"
	deleteAssignmentQuery      = "DELETE FROM subproceso_tecnicas WHERE id=$1"
)

func scanAssignment(row pgx.Row) (*entities.TechniqueAssignment, error) {
	var a entities.TechniqueAssignment
	err := row.Scan(&a.ID, &a.SubprocessID, &a.TechniqueID, &a.Notes, &a.AssignedAt,
		&a.Technique.Name, &a.Technique.Category)
	if err != nil {
		return nil, err
	}
	a.Technique.ID = a.TechniqueID
	return &a, nil
}

// ListAssignments returns a subprocess's technique links with joined technique data.
func (p *Postgres) ListAssignments(ctx context.Context, subprocessID int64) ([]entities.TechniqueAssignment, error) {
	rows, err := p.db.Query(ctx, listAssignmentsQuery, subprocessID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]entities.TechniqueAssignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignments: %w", err)
	}
	return assignments, nil
}

// CreateAssignment links a technique to a subprocess; the pair is unique.
func (p *Postgres) CreateAssignment(ctx context.Context, assignment entities.TechniqueAssignment) (*entities.TechniqueAssignment, error) {
	var id int64
	err := p.db.QueryRow(ctx, insertAssignmentQuery,
		assignment.SubprocessID, assignment.TechniqueID, assignment.Notes).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrTechniqueAssigned
		}
		return nil, fmt.Errorf("insert assignment: %w", err)
	}

	p.log.Infow("technique assigned", "assignment_id", id,
		"subprocess_id", assignment.SubprocessID, "technique_id", assignment.TechniqueID)
	return p.getAssignment(ctx, id)
}

func (p *Postgres) getAssignment(ctx context.Context, id int64) (*entities.TechniqueAssignment, error) {
	a, err := scanAssignment(p.db.QueryRow(ctx, selectAssignmentQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

// UpdateAssignmentNotes replaces the notes field; nil notes leave the row unchanged.
func (p *Postgres) UpdateAssignmentNotes(ctx context.Context, id int64, notes *string) (*entities.TechniqueAssignment, error) {
	if notes == nil {
		return p.getAssignment(ctx, id)
	}

	tag, err := p.db.Exec(ctx, updateAssignmentNotesQuery, *notes, id)
	if err != nil {
		return nil, fmt.Errorf("update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, entities.ErrAssignmentNotFound
	}

	return p.getAssignment(ctx, id)
}

// DeleteAssignment removes the technique link.
func (p *Postgres) DeleteAssignment(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteAssignmentQuery, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrAssignmentNotFound
	}

	p.log.Infow("assignment deleted", "assignment_id", id)
	return nil
}
