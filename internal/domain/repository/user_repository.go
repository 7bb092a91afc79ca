package repository

import (
	"context"
	"errors"

	"github.com/croshet/storefront-api/internal/domain/entity"
)

// ErrNotFound is returned by all repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint rejects a write.
// The database index is the uniqueness guarantee; application-level
// pre-checks only exist to produce field-specific messages.
var ErrDuplicate = errors.New("duplicate key")

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
