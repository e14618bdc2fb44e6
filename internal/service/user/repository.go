package user

import (
	"context"

	"github.com/ignite/listserv/internal/domain"
)

// Repository defines the data access contract for users.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Create inserts the user and sets its ID. Returns ErrConflict when the
	// username or email is taken.
	Create(ctx context.Context, u *domain.User) error

	// Get returns a single user. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername returns ErrNotFound when no user has that username.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByEmail returns ErrNotFound when no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns every user ordered by id.
	List(ctx context.Context) ([]domain.User, error)

	// Update applies the non-nil fields and returns the stored user.
	Update(ctx context.Context, id int64, u UpdateFields) (*domain.User, error)

	// Delete removes the user. Owned lists, templates and mailings go with
	// it through the schema's cascades.
	Delete(ctx context.Context, id int64) error
}

// UpdateFields holds the mutable fields for a user update.
// Nil fields are not applied.
type UpdateFields struct {
	Username       *string
	HashedPassword *string
	Email          *string
	IsAdmin        *bool
}

// Empty reports whether the update would change nothing.
func (u UpdateFields) Empty() bool {
	return u.Username == nil && u.HashedPassword == nil && u.Email == nil && u.IsAdmin == nil
}
