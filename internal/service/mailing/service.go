package mailing

import (
	"context"
	"time"

	"github.com/ignite/listserv/internal/domain"
)

// Service implements mailing business logic. Lists and templates are
// resolved through their own services so ownership is checked in one place.
type Service struct {
	repo      Repository
	lists     ListAuthorizer
	templates TemplateAuthorizer
	now       func() time.Time
}

// NewService creates a mailing service.
func NewService(repo Repository, lists ListAuthorizer, templates TemplateAuthorizer) *Service {
	return &Service{repo: repo, lists: lists, templates: templates, now: time.Now}
}

// CreateInput holds the fields for scheduling a mailing.
type CreateInput struct {
	MailingListID int64      `json:"mailing_list_id"`
	TemplateID    int64      `json:"template_id"`
	ScheduledAt   *time.Time `json:"scheduled_at"`
}

// Create schedules one of actor's templates against one of actor's lists.
func (s *Service) Create(ctx context.Context, actor *domain.User, in CreateInput) (*domain.Mailing, error) {
	if in.ScheduledAt == nil {
		return nil, domain.Invalid("scheduled_at is required")
	}
	if _, err := s.lists.Get(ctx, actor, in.MailingListID); err != nil {
		return nil, err
	}
	if _, err := s.templates.Get(ctx, actor, in.TemplateID); err != nil {
		return nil, err
	}

	at := in.ScheduledAt.UTC()
	m := &domain.Mailing{
		MailingListID: in.MailingListID,
		TemplateID:    in.TemplateID,
		ScheduledAt:   &at,
		UserID:        actor.ID,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns the mailing when actor owns it and ErrNotFound otherwise.
func (s *Service) Get(ctx context.Context, actor *domain.User, id int64) (*domain.Mailing, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccess(actor, m) {
		return nil, ErrNotFound
	}
	return m, nil
}

// List returns actor's mailings.
func (s *Service) List(ctx context.Context, actor *domain.User) ([]domain.Mailing, error) {
	return s.repo.ListByUser(ctx, actor.ID)
}

// ListAll returns every mailing in the system. Callers gate it on admin.
func (s *Service) ListAll(ctx context.Context) ([]domain.Mailing, error) {
	return s.repo.ListAll(ctx)
}

// Send marks one of actor's mailings as sent. There is no transport; the
// stamp is the whole effect.
func (s *Service) Send(ctx context.Context, actor *domain.User, id int64) (*domain.Mailing, error) {
	m, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if m.IsSent() {
		return nil, ErrAlreadySent
	}
	return s.repo.MarkSent(ctx, id, s.now().UTC())
}

// Delete removes one of actor's mailings.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
