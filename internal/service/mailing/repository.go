package mailing

import (
	"context"
	"time"

	"github.com/ignite/listserv/internal/domain"
)

// Repository defines the data access contract for mailings.
type Repository interface {
	// Create inserts the mailing and sets its ID.
	Create(ctx context.Context, m *domain.Mailing) error

	// Get returns a single mailing. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id int64) (*domain.Mailing, error)

	// ListByUser returns the mailings owned by userID, ordered by id.
	ListByUser(ctx context.Context, userID int64) ([]domain.Mailing, error)

	// ListAll returns every mailing, ordered by id.
	ListAll(ctx context.Context) ([]domain.Mailing, error)

	// MarkSent stamps sent_at. Returns ErrAlreadySent if it is already set.
	MarkSent(ctx context.Context, id int64, at time.Time) (*domain.Mailing, error)

	// Delete removes one mailing.
	Delete(ctx context.Context, id int64) error
}

// ListAuthorizer resolves a mailing list on behalf of a user.
type ListAuthorizer interface {
	Get(ctx context.Context, actor *domain.User, id int64) (*domain.MailingList, error)
}

// TemplateAuthorizer resolves a template on behalf of a user.
type TemplateAuthorizer interface {
	Get(ctx context.Context, actor *domain.User, id int64) (*domain.Template, error)
}
