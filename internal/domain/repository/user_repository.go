// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves every user whose ID is in ids. Missing IDs are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindByUsername retrieves a single user by their lower-case username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByHandle retrieves the user whose username or email equals handle.
	FindByHandle(ctx context.Context, handle string) (*entity.User, error)

	// Update modifies the mutable profile fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// SetRefreshTokenHash stores the refresh token hash. An empty hash clears it.
	SetRefreshTokenHash(ctx context.Context, id uuid.UUID, hash string) error
}
