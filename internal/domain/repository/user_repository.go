// Package repository defines the persistence contracts consumed by the use
// case layer. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"mirage/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when no account matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists accounts. Accounts are created once and never
// mutated or deleted in this system.
type UserRepository interface {
	// Create persists a new account together with its password hash.
	// A duplicate email surfaces as a domain conflict error.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// CredentialByEmail retrieves the account and its password hash for a
	// credential check. Returns ErrUserNotFound when the email is unknown.
	CredentialByEmail(ctx context.Context, email string) (*entity.UserCredential, error)
}
