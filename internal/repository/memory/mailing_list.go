package memory

import (
	"context"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/mailinglist"
	"github.com/ignite/listserv/internal/service/user"
)

// MailingListRepo implements mailinglist.Repository.
type MailingListRepo struct{ s *Store }

func (r *MailingListRepo) Create(_ context.Context, l *domain.MailingList) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[l.UserID]; !ok {
		return user.ErrNotFound
	}
	l.ID = r.s.id()
	r.s.lists[l.ID] = *l
	return nil
}

func (r *MailingListRepo) Get(_ context.Context, id int64) (*domain.MailingList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lists[id]
	if !ok {
		return nil, mailinglist.ErrNotFound
	}
	return &l, nil
}

func (r *MailingListRepo) ListByUser(_ context.Context, userID int64) ([]domain.MailingList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.lists, func(l domain.MailingList) bool { return l.UserID == userID }), nil
}

func (r *MailingListRepo) Rename(_ context.Context, id int64, name string) (*domain.MailingList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.lists[id]
	if !ok {
		return nil, mailinglist.ErrNotFound
	}
	l.Name = name
	r.s.lists[id] = l
	return &l, nil
}

func (r *MailingListRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lists[id]; !ok {
		return mailinglist.ErrNotFound
	}
	r.s.deleteList(id)
	return nil
}
