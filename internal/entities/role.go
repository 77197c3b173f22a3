package entities

import "time"

// Singleton fixed role names: at most one holder per project.
const (
	RoleProductOwner    = "Product Owner"
	RoleTechnicalLeader = "Technical Leader"
)

// Role is either a global fixed role or a project-scoped custom role.
type Role struct {
	ID          int64
	ProjectID   *int64
	Name        string
	Description *string
	Fixed       bool
	CreatedAt   time.Time
}

// IsSingleton reports whether the role is restricted to one holder per project.
func (r Role) IsSingleton() bool {
	return r.Fixed && (r.Name == RoleProductOwner || r.Name == RoleTechnicalLeader)
}

// RoleUpdate carries the mutable role columns; nil fields stay untouched.
type RoleUpdate struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the patch changes nothing.
func (r RoleUpdate) IsEmpty() bool {
	return r.Name == nil && r.Description == nil
}
