package subscriber

import (
	"context"

	"github.com/ignite/listserv/internal/domain"
)

// Repository defines the data access contract for subscribers.
type Repository interface {
	// Create inserts the subscriber and sets its ID. Returns ErrConflict when
	// the email is already subscribed to any list.
	Create(ctx context.Context, s *domain.Subscriber) error

	// Get returns a single subscriber. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id int64) (*domain.Subscriber, error)

	// ListByMailingList returns the subscribers of one list, ordered by id.
	ListByMailingList(ctx context.Context, listID int64) ([]domain.Subscriber, error)

	// ChangeEmail replaces the subscriber's address.
	ChangeEmail(ctx context.Context, id int64, email string) (*domain.Subscriber, error)

	// Delete removes one subscriber.
	Delete(ctx context.Context, id int64) error
}

// ListAuthorizer resolves a mailing list on behalf of a user, failing with
// the list's not-found error when the user does not own it.
type ListAuthorizer interface {
	Get(ctx context.Context, actor *domain.User, id int64) (*domain.MailingList, error)
}
