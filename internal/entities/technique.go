package entities

import "time"

// Technique is a reusable named capability attachable to subprocesses.
type Technique struct {
	ID          int64
	Name        string
	Description *string
	Category    string
	Active      bool
	CreatedAt   time.Time
}

// TechniqueUpdate carries the mutable technique columns; nil fields stay untouched.
type TechniqueUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Active      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (t TechniqueUpdate) IsEmpty() bool {
	return t.Name == nil && t.Description == nil && t.Category == nil && t.Active == nil
}

// TechniqueAssignment links a technique to a subprocess.
type TechniqueAssignment struct {
	ID           int64
	SubprocessID int64
	TechniqueID  int64
	Notes        *string
	AssignedAt   time.Time
	Technique    AssignedTechnique
}

// AssignedTechnique is the joined technique display data on an assignment.
type AssignedTechnique struct {
	ID       int64
	Name     string
	Category string
}
