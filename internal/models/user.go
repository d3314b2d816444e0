package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleMember    = "member"
	RoleLibrarian = "librarian"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	Name         string    `json:"name" db:"name"`             // Display name
	Role         string    `json:"role" db:"role"`             // member or librarian
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
