package template

import (
	"context"
	"strings"

	"github.com/ignite/listserv/internal/domain"
)

// Service implements template business logic.
type Service struct {
	repo     Repository
	renderer Renderer
}

// NewService creates a template service. renderer may be nil, in which case
// Preview is unavailable.
func NewService(repo Repository, renderer Renderer) *Service {
	return &Service{repo: repo, renderer: renderer}
}

// CreateInput holds the fields for a new template.
type CreateInput struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// UpdateInput holds a partial template update. Name and content are applied
// independently; nil or empty leaves the stored value.
type UpdateInput struct {
	Name    *string `json:"name"`
	Content *string `json:"content"`
}

// Create stores a template owned by actor.
func (s *Service) Create(ctx context.Context, actor *domain.User, in CreateInput) (*domain.Template, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	t := &domain.Template{Name: name, Content: in.Content, UserID: actor.ID}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns the template when actor owns it and ErrNotFound otherwise.
func (s *Service) Get(ctx context.Context, actor *domain.User, id int64) (*domain.Template, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(actor, t) {
		return nil, ErrNotFound
	}
	return t, nil
}

// List returns actor's templates.
func (s *Service) List(ctx context.Context, actor *domain.User) ([]domain.Template, error) {
	return s.repo.ListByUser(ctx, actor.ID)
}

// Update changes the name and/or content of one of actor's templates.
func (s *Service) Update(ctx context.Context, actor *domain.User, id int64, in UpdateInput) (*domain.Template, error) {
	t, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var fields UpdateFields
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		name := strings.TrimSpace(*in.Name)
		fields.Name = &name
	}
	if in.Content != nil && *in.Content != "" {
		fields.Content = in.Content
	}
	if fields.Name == nil && fields.Content == nil {
		return t, nil
	}
	return s.repo.Update(ctx, id, fields)
}

// Delete removes a template and its mailings. Unlike the other owned
// entities, an existing template owned by someone else yields ErrForbidden
// rather than ErrNotFound.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanAccess(actor, t) {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// Preview renders one of actor's templates with the given variables.
func (s *Service) Preview(ctx context.Context, actor *domain.User, id int64, vars map[string]any) (string, error) {
	t, err := s.Get(ctx, actor, id)
	if err != nil {
		return "", err
	}
	if s.renderer == nil {
		return t.Content, nil
	}
	out, err := s.renderer.Render(t.Content, vars)
	if err != nil {
		return "", domain.Invalid("template does not render: " + err.Error())
	}
	return out, nil
}
