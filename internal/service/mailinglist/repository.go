package mailinglist

import (
	"context"

	"github.com/ignite/listserv/internal/domain"
)

// Repository defines the data access contract for mailing lists.
type Repository interface {
	// Create inserts the list and sets its ID.
	Create(ctx context.Context, l *domain.MailingList) error

	// Get returns a single list. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id int64) (*domain.MailingList, error)

	// ListByUser returns the lists owned by userID, ordered by id.
	ListByUser(ctx context.Context, userID int64) ([]domain.MailingList, error)

	// Rename sets a new name. Returns ErrNotFound if the list is gone.
	Rename(ctx context.Context, id int64, name string) (*domain.MailingList, error)

	// Delete removes the list with its subscribers and mailings.
	Delete(ctx context.Context, id int64) error
}
