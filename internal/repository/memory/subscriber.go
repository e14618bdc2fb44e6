package memory

import (
	"context"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/mailinglist"
	"github.com/ignite/listserv/internal/service/subscriber"
)

// SubscriberRepo implements subscriber.Repository.
type SubscriberRepo struct{ s *Store }

func (r *SubscriberRepo) emailTaken(self int64, email string) bool {
	for id, sub := range r.s.subscribers {
		if id != self && sub.Email == email {
			return true
		}
	}
	return false
}

func (r *SubscriberRepo) Create(_ context.Context, sub *domain.Subscriber) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lists[sub.MailingListID]; !ok {
		return mailinglist.ErrNotFound
	}
	if r.emailTaken(0, sub.Email) {
		return subscriber.ErrConflict
	}
	sub.ID = r.s.id()
	r.s.subscribers[sub.ID] = *sub
	return nil
}

func (r *SubscriberRepo) Get(_ context.Context, id int64) (*domain.Subscriber, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub, ok := r.s.subscribers[id]
	if !ok {
		return nil, subscriber.ErrNotFound
	}
	return &sub, nil
}

func (r *SubscriberRepo) ListByMailingList(_ context.Context, listID int64) ([]domain.Subscriber, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.subscribers, func(sub domain.Subscriber) bool {
		return sub.MailingListID == listID
	}), nil
}

func (r *SubscriberRepo) ChangeEmail(_ context.Context, id int64, email string) (*domain.Subscriber, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sub, ok := r.s.subscribers[id]
	if !ok {
		return nil, subscriber.ErrNotFound
	}
	if r.emailTaken(id, email) {
		return nil, subscriber.ErrConflict
	}
	sub.Email = email
	r.s.subscribers[id] = sub
	return &sub, nil
}

func (r *SubscriberRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.subscribers[id]; !ok {
		return subscriber.ErrNotFound
	}
	delete(r.s.subscribers, id)
	return nil
}
