package entity

import (
	"time"
)

// Roles assignable to an account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash and must never leave the server.
type User struct {
	ID                   string
	FullName             string
	Username             string
	Email                string
	Password             string
	AvatarURL            string
	Role                 string
	LastUsernameChangeAt *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
