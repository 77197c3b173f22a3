package entities

import "time"

// DefaultWorkStatus is assigned when a process or subprocess is created without a status.
const DefaultWorkStatus = "definido"

// Process is a top-level work item under a project.
type Process struct {
	ID            int64
	ProjectID     int64
	Name          string
	Description   *string
	Objective     *string
	ResponsibleID *int64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	Responsible   *Responsible
}

// Subprocess is a work item nested under a process.
type Subprocess struct {
	ID             int64
	ProcessID      int64
	Name           string
	Description    *string
	ResponsibleID  *int64
	Status         string
	EstimatedHours *float64
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	Responsible    *Responsible
}

// Responsible is the joined display data of the user in charge of a work item.
type Responsible struct {
	ID        int64
	FirstName string
	LastName  string
}

// ProcessUpdate carries the mutable process columns; nil fields stay untouched.
type ProcessUpdate struct {
	Name          *string
	Description   *string
	Objective     *string
	ResponsibleID *int64
	Status        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ProcessUpdate) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Objective == nil &&
		p.ResponsibleID == nil && p.Status == nil
}

// SubprocessUpdate carries the mutable subprocess columns; nil fields stay untouched.
type SubprocessUpdate struct {
	Name           *string
	Description    *string
	ResponsibleID  *int64
	Status         *string
	EstimatedHours *float64
}

// IsEmpty reports whether the patch changes nothing.
func (s SubprocessUpdate) IsEmpty() bool {
	return s.Name == nil && s.Description == nil && s.ResponsibleID == nil &&
		s.Status == nil && s.EstimatedHours == nil
}
