package subscriber

import (
	"context"
	"strings"

	"github.com/ignite/listserv/internal/domain"
)

// Service implements subscriber business logic.
type Service struct {
	repo  Repository
	lists ListAuthorizer
}

// NewService creates a subscriber service. lists is normally the
// mailinglist.Service.
func NewService(repo Repository, lists ListAuthorizer) *Service {
	return &Service{repo: repo, lists: lists}
}

// CreateInput holds the fields for subscribing an address.
type CreateInput struct {
	Email         string `json:"email"`
	MailingListID int64  `json:"mailing_list_id"`
}

// UpdateInput holds the fields for changing a subscriber.
type UpdateInput struct {
	Email *string `json:"email"`
}

// Create subscribes an email to one of actor's lists.
func (s *Service) Create(ctx context.Context, actor *domain.User, in CreateInput) (*domain.Subscriber, error) {
	email := NormalizeEmail(in.Email)
	if !ValidEmail(email) {
		return nil, domain.Invalid("a valid email is required")
	}
	if _, err := s.lists.Get(ctx, actor, in.MailingListID); err != nil {
		return nil, err
	}

	sub := &domain.Subscriber{Email: email, MailingListID: in.MailingListID}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns the subscribers of one of actor's lists.
func (s *Service) List(ctx context.Context, actor *domain.User, listID int64) ([]domain.Subscriber, error) {
	if _, err := s.lists.Get(ctx, actor, listID); err != nil {
		return nil, err
	}
	return s.repo.ListByMailingList(ctx, listID)
}

// Get returns a subscriber whose list actor owns. A missing subscriber is
// ErrNotFound; a subscriber on someone else's list is the list's not-found
// error.
func (s *Service) Get(ctx context.Context, actor *domain.User, id int64) (*domain.Subscriber, error) {
	sub, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.lists.Get(ctx, actor, sub.MailingListID); err != nil {
		return nil, err
	}
	return sub, nil
}

// Update changes the address of a subscriber on one of actor's lists.
func (s *Service) Update(ctx context.Context, actor *domain.User, id int64, in UpdateInput) (*domain.Subscriber, error) {
	sub, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Email == nil || strings.TrimSpace(*in.Email) == "" {
		return sub, nil
	}
	email := NormalizeEmail(*in.Email)
	if !ValidEmail(email) {
		return nil, domain.Invalid("a valid email is required")
	}
	return s.repo.ChangeEmail(ctx, id, email)
}

// Delete unsubscribes one address from one of actor's lists.
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// NormalizeEmail trims and lowercases an address so global uniqueness does
// not depend on the caller's capitalization.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail performs a cheap structural check: one @, non-empty local part,
// and a dotted domain.
func ValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") || at > 64 {
		return false
	}
	domainPart := email[at+1:]
	dot := strings.LastIndex(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
