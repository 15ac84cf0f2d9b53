package persistence

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// UserMutation changes a user loaded under a row lock. Returning an error aborts
// the whole read-modify-write and leaves the stored row untouched.
type UserMutation func(user *entity.User) error

// UserRepository defines the methods the Ledger needs to read and mutate users
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetOrCreate retrieves a user, creating it with empty balances on first reference
	//
	// Possible errors:
	// - ErrInvalidUserID: If the ID is blank or too long
	// - ErrDatabaseConnection: If database connection fails
	GetOrCreate(ctx context.Context, id string) (*entity.User, error)

	// Mutate loads the user row with an exclusive row lock (creating it first when missing),
	// applies the mutation and saves the result in the same database transaction.
	// This is the only way balances and daily counters are written.
	//
	// Possible errors:
	// - any error returned by the mutation, unchanged
	// - ErrUserLocked: If the row lock could not be obtained (deadlock, serialization failure)
	// - ErrDatabaseConnection: If database connection fails
	Mutate(ctx context.Context, id string, mutation UserMutation) (*entity.User, error)
}
