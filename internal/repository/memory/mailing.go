package memory

import (
	"context"
	"time"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/mailing"
)

// MailingRepo implements mailing.Repository.
type MailingRepo struct{ s *Store }

func (r *MailingRepo) Create(_ context.Context, m *domain.Mailing) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, listOK := r.s.lists[m.MailingListID]
	_, tplOK := r.s.templates[m.TemplateID]
	if !listOK || !tplOK {
		return domain.Invalid("mailing list or template no longer exists")
	}
	m.ID = r.s.id()
	r.s.mailings[m.ID] = *m
	return nil
}

func (r *MailingRepo) Get(_ context.Context, id int64) (*domain.Mailing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.mailings[id]
	if !ok {
		return nil, mailing.ErrNotFound
	}
	return &m, nil
}

func (r *MailingRepo) ListByUser(_ context.Context, userID int64) ([]domain.Mailing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.mailings, func(m domain.Mailing) bool { return m.UserID == userID }), nil
}

func (r *MailingRepo) ListAll(_ context.Context) ([]domain.Mailing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.mailings, nil), nil
}

func (r *MailingRepo) MarkSent(_ context.Context, id int64, at time.Time) (*domain.Mailing, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.mailings[id]
	if !ok {
		return nil, mailing.ErrNotFound
	}
	if m.SentAt != nil {
		return nil, mailing.ErrAlreadySent
	}
	m.SentAt = &at
	r.s.mailings[id] = m
	return &m, nil
}

func (r *MailingRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.mailings[id]; !ok {
		return mailing.ErrNotFound
	}
	delete(r.s.mailings, id)
	return nil
}
