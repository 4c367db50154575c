package models

import (
	"time"
)

// User represents a registered author/viewer in the system. Credentials and
// authentication live upstream; this record only backs display names and
// ownership checks.
type User struct {
	ID        string    `json:"userId" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// UserInput carries the fields for registering a user.
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}
