package repository

import (
	"context"

	"github.com/oksasatya/task-management-api/internal/domain/entity"
)

// UserRepository defines user-related database operations.
type UserRepository interface {
	// Create persists a new user, assigning its id and creation timestamp.
	// Returns ErrDuplicateEmail if the email is already registered.
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByID treats a malformed id the same as an unknown one: ErrNotFound.
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
