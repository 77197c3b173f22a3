// Package entities contains core business entities.
package entities

import "time"

// User is a domain representation of a registered account.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserProfileUpdate is the caller-facing partial update; Password is plain
// text and gets hashed before it reaches the store.
type UserProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// IsEmpty reports whether the patch changes nothing.
func (u UserProfileUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.Password == nil
}

// UserUpdate carries the mutable user columns; nil fields stay untouched.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the patch changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.PasswordHash == nil
}
