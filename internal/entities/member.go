package entities

import "time"

// Member assigns one user to one role within one project.
type Member struct {
	ID         int64
	ProjectID  int64
	UserID     int64
	RoleID     int64
	AssignedBy int64
	AssignedAt time.Time
	User       MemberUser
	Role       MemberRole
}

// MemberUser is the joined user display data on a membership.
type MemberUser struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// MemberRole is the joined role display data on a membership.
type MemberRole struct {
	ID   int64
	Name string
}
