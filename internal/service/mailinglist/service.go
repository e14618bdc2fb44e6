package mailinglist

import (
	"context"
	"strings"

	"github.com/ignite/listserv/internal/domain"
)

// Service implements mailing list business logic on behalf of an
// authenticated user.
type Service struct {
	repo Repository
}

// NewService creates a mailing list service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput holds the fields for creating a list.
type CreateInput struct {
	Name string `json:"name"`
}

// UpdateInput holds the fields for renaming a list. A nil or empty name
// leaves the list as it is.
type UpdateInput struct {
	Name *string `json:"name"`
}

// Create stores a new list owned by actor.
func (s *Service) Create(ctx context.Context, actor *domain.User, in CreateInput) (*domain.MailingList, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("name is required")
	}
	l := &domain.MailingList{Name: name, UserID: actor.ID}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get returns the list when actor owns it and ErrNotFound otherwise.
func (s *Service) Get(ctx context.Context, actor *domain.User, id int64) (*domain.MailingList, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(actor, l) {
		return nil, ErrNotFound
	}
	return l, nil
}

// List returns actor's lists.
func (s *Service) List(ctx context.Context, actor *domain.User) ([]domain.MailingList, error) {
	return s.repo.ListByUser(ctx, actor.ID)
}

// Update renames one of actor's lists.
func (s *Service) Update(ctx context.Context, actor *domain.User, id int64, in UpdateInput) (*domain.MailingList, error) {
	l, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return l, nil
	}
	return s.repo.Rename(ctx, id, strings.TrimSpace(*in.Name))
}

// Delete removes one of actor's lists along with its subscribers and mailings.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
