package models

import "time"

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	FullName     string    `json:"full_name" db:"full_name"`   // Display name
	Email        string    `json:"email" db:"email"`           // Unique email
	Phone        string    `json:"phone" db:"phone"`           // Unique phone
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never serialized
	IsVerified   bool      `json:"is_verified" db:"is_verified"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// RegisteredUser is the public projection returned after registration.
type RegisteredUser struct {
	ID    int64  `json:"id" db:"id"`
	Email string `json:"email" db:"email"`
}
