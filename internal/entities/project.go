package entities

import "time"

// DefaultProjectStatus is assigned when a project is created without an explicit status.
const DefaultProjectStatus = "iniciado"

// Project is a domain model of a managed project.
type Project struct {
	ID          int64
	Name        string
	Description *string
	Status      string
	Priority    string
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedBy   int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// ProjectUpdate carries the mutable project columns; nil fields stay
// untouched. The Clear flags write NULL into the date columns and win over
// the corresponding pointer.
type ProjectUpdate struct {
	Name           *string
	Description    *string
	Status         *string
	Priority       *string
	StartDate      *time.Time
	EndDate        *time.Time
	ClearStartDate bool
	ClearEndDate   bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ProjectUpdate) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.StartDate == nil && p.EndDate == nil &&
		!p.ClearStartDate && !p.ClearEndDate
}
