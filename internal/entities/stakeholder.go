package entities

import "time"

// Stakeholder is a project-scoped contact with influence/interest classification.
type Stakeholder struct {
	ID                int64
	ProjectID         int64
	FullName          string
	Email             *string
	Phone             *string
	Organization      *string
	Position          *string
	Type              string
	InfluenceInterest string
	Notes             *string
	CreatedAt         time.Time
}

// StakeholderUpdate carries the mutable stakeholder columns; nil fields stay untouched.
type StakeholderUpdate struct {
	FullName          *string
	Email             *string
	Phone             *string
	Organization      *string
	Position          *string
	Type              *string
	InfluenceInterest *string
	Notes             *string
}

// IsEmpty reports whether the patch changes nothing.
func (s StakeholderUpdate) IsEmpty() bool {
	return s.FullName == nil && s.Email == nil && s.Phone == nil && s.Organization == nil &&
		s.Position == nil && s.Type == nil && s.InfluenceInterest == nil && s.Notes == nil
}
