// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. The password hash is deliberately not part
// of this type; it lives in the persistence layer and never crosses the HTTP
// boundary.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserCredential pairs an account with its stored password hash. It is only
// produced by the repository for credential checks and is never serialized.
type UserCredential struct {
	User         *User
	PasswordHash string
}
