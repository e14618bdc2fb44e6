package template

import (
	"context"

	"github.com/ignite/listserv/internal/domain"
)

// Repository defines the data access contract for templates.
type Repository interface {
	// Create inserts the template and sets its ID.
	Create(ctx context.Context, t *domain.Template) error

	// Get returns a single template. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id int64) (*domain.Template, error)

	// ListByUser returns the templates owned by userID, ordered by id.
	ListByUser(ctx context.Context, userID int64) ([]domain.Template, error)

	// Update applies the non-nil fields and returns the stored template.
	Update(ctx context.Context, id int64, u UpdateFields) (*domain.Template, error)

	// Delete removes the template and the mailings that use it.
	Delete(ctx context.Context, id int64) error
}

// UpdateFields holds the mutable fields for a template update.
// Nil fields are not applied.
type UpdateFields struct {
	Name    *string
	Content *string
}

// Renderer renders template content against a set of variables.
type Renderer interface {
	Render(content string, vars map[string]any) (string, error)
}
