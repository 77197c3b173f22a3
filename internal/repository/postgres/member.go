package postgres

import (
	"context"
	"errors"
	"fmt"

	"gestproy/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	memberJoinedColumns = `
SELECT mp.id, mp.proyecto_id, mp.usuario_id, mp.rol_id, mp.asignado_por, mp.fecha_asignacion,
       u.nombre, u.apellido, u.correo,
       r.nombre
FROM miembros_proyecto mp
JOIN usuarios u ON mp.usuario_id = u.id
JOIN roles r ON mp.rol_id = r.id`

	listMembersQuery  = memberJoinedColumns + " WHERE mp.proyecto_id=$1 ORDER BY mp.id"
	selectMemberQuery = memberJoinedColumns + " WHERE mp.id=$1"

	selectDuplicateMemberQuery = "SELECT id FROM miembros_proyecto WHERE proyecto_id=$1 AND usuario_id=$2"
	selectRoleForAssignQuery   = "SELECT nombre, es_fijo FROM roles WHERE id=$1 FOR UPDATE"
	selectSingletonHolderQuery = "SELECT id FROM miembros_proyecto WHERE proyecto_id=$1 AND rol_id=$2 LIMIT 1"
	selectSingletonOtherQuery  = "SELECT id FROM miembros_proyecto WHERE proyecto_id=$1 AND rol_id=$2 AND id<>$3 LIMIT 1"
	selectMemberForUpdateQuery = "SELECT proyecto_id FROM miembros_proyecto WHERE id=$1 FOR UPDATE"

	insertMemberQuery = `
INSERT INTO miembros_proyecto (proyecto_id, usuario_id, rol_id, asignado_por)
VALUES ($1, $2, $3, $4)
RETURNING id`

	updateMemberRoleQuery = "UPDATE miembros_proyecto SET rol_id=$1 WHERE id=$2"
	deleteMemberQuery     = "DELETE FROM miembros_proyecto WHERE id=$1"
)

func scanMember(row pgx.Row) (*entities.Member, error) {
	var m entities.Member
	err := row.Scan(&m.ID, &m.ProjectID, &m.UserID, &m.RoleID, &m.AssignedBy, &m.AssignedAt,
		&m.User.FirstName, &m.User.LastName, &m.User.Email,
		&m.Role.Name)
	if err != nil {
		return nil, err
	}
	m.User.ID = m.UserID
	m.Role.ID = m.RoleID
	return &m, nil
}

// ListMembers returns a project's memberships with joined user and role data.
func (p *Postgres) ListMembers(ctx context.Context, projectID int64) ([]entities.Member, error) {
	rows, err := p.db.Query(ctx, listMembersQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

// GetMember fetches a membership with joined user and role data.
func (p *Postgres) GetMember(ctx context.Context, id int64) (*entities.Member, error) {
	m, err := scanMember(p.db.QueryRow(ctx, selectMemberQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// AssignMember inserts a membership after the duplicate-member and
// singleton-role checks, all inside one transaction. The duplicate check is
// additionally backed by the UNIQUE (proyecto_id, usuario_id) constraint.
func (p *Postgres) AssignMember(ctx context.Context, member entities.Member) (*entities.Member, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existingID int64
	err = tx.QueryRow(ctx, selectDuplicateMemberQuery, member.ProjectID, member.UserID).Scan(&existingID)
	if err == nil {
		return nil, entities.ErrMemberExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("duplicate member check: %w", err)
	}

	if err := p.checkSingletonRole(ctx, tx, member.ProjectID, member.RoleID, 0); err != nil {
		return nil, err
	}

	var memberID int64
	err = tx.QueryRow(ctx, insertMemberQuery,
		member.ProjectID, member.UserID, member.RoleID, member.AssignedBy).Scan(&memberID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, entities.ErrMemberExists
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("member assigned", "member_id", memberID,
		"project_id", member.ProjectID, "user_id", member.UserID, "role_id", member.RoleID)
	return p.GetMember(ctx, memberID)
}

// UpdateMemberRole reassigns the membership's role after re-running the
// singleton check against the other members of the project.
func (p *Postgres) UpdateMemberRole(ctx context.Context, id, roleID int64) (*entities.Member, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var projectID int64
	if err := tx.QueryRow(ctx, selectMemberForUpdateQuery, id).Scan(&projectID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrMemberNotFound
		}
		return nil, fmt.Errorf("member lookup: %w", err)
	}

	if err := p.checkSingletonRole(ctx, tx, projectID, roleID, id); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, updateMemberRoleQuery, roleID, id); err != nil {
		return nil, fmt.Errorf("update member role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("member role updated", "member_id", id, "role_id", roleID)
	return p.GetMember(ctx, id)
}

// checkSingletonRole fails with ErrSingletonRoleTaken when the role is a
// singleton fixed role already held inside the project by a membership other
// than excludeID. An excludeID of 0 excludes nothing. The role row is locked
// FOR UPDATE so concurrent assignments of the same role serialize and the
// second one sees the first one's membership.
func (p *Postgres) checkSingletonRole(ctx context.Context, tx pgx.Tx, projectID, roleID, excludeID int64) error {
	var (
		roleName string
		fixed    bool
	)
	if err := tx.QueryRow(ctx, selectRoleForAssignQuery, roleID).Scan(&roleName, &fixed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ErrRoleNotFound
		}
		return fmt.Errorf("role lookup: %w", err)
	}

	role := entities.Role{Name: roleName, Fixed: fixed}
	if !role.IsSingleton() {
		return nil
	}

	var holderID int64
	var err error
	if excludeID == 0 {
		err = tx.QueryRow(ctx, selectSingletonHolderQuery, projectID, roleID).Scan(&holderID)
	} else {
		err = tx.QueryRow(ctx, selectSingletonOtherQuery, projectID, roleID, excludeID).Scan(&holderID)
	}
	if err == nil {
		return fmt.Errorf("%w: %s", entities.ErrSingletonRoleTaken, roleName)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("singleton role check: %w", err)
	}
	return nil
}

// RemoveMember deletes the membership unconditionally.
func (p *Postgres) RemoveMember(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteMemberQuery, id)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrMemberNotFound
	}

	p.log.Infow("member removed", "member_id", id)
	return nil
}
