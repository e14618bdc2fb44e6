// Package memory is an in-process implementation of every repository. It
// enforces the same uniqueness, foreign-key and cascade rules as the
// PostgreSQL schema. Tests use it in place of a database.
package memory

import (
	"sort"
	"sync"

	"github.com/ignite/listserv/internal/domain"
)

// Store holds all entities behind a single mutex.
type Store struct {
	mu     sync.Mutex
	nextID int64

	users       map[int64]domain.User
	lists       map[int64]domain.MailingList
	subscribers map[int64]domain.Subscriber
	templates   map[int64]domain.Template
	mailings    map[int64]domain.Mailing
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:       make(map[int64]domain.User),
		lists:       make(map[int64]domain.MailingList),
		subscribers: make(map[int64]domain.Subscriber),
		templates:   make(map[int64]domain.Template),
		mailings:    make(map[int64]domain.Mailing),
	}
}

// Users returns the store's user repository.
func (s *Store) Users() *UserRepo { return &UserRepo{s} }

// MailingLists returns the store's mailing list repository.
func (s *Store) MailingLists() *MailingListRepo { return &MailingListRepo{s} }

// Subscribers returns the store's subscriber repository.
func (s *Store) Subscribers() *SubscriberRepo { return &SubscriberRepo{s} }

// Templates returns the store's template repository.
func (s *Store) Templates() *TemplateRepo { return &TemplateRepo{s} }

// Mailings returns the store's mailing repository.
func (s *Store) Mailings() *MailingRepo { return &MailingRepo{s} }

// id hands out ids from one sequence. Callers hold s.mu.
func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// sortedValues returns m's values ordered by key.
func sortedValues[T any](m map[int64]T, keep func(T) bool) []T {
	keys := make([]int64, 0, len(m))
	for k, v := range m {
		if keep == nil || keep(v) {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

// deleteList removes a list with its subscribers and mailings. Callers hold
// s.mu.
func (s *Store) deleteList(id int64) {
	for sid, sub := range s.subscribers {
		if sub.MailingListID == id {
			delete(s.subscribers, sid)
		}
	}
	s.deleteMailings(func(m domain.Mailing) bool { return m.MailingListID == id })
	delete(s.lists, id)
}

// deleteTemplate removes a template and the mailings that use it. Callers
// hold s.mu.
func (s *Store) deleteTemplate(id int64) {
	s.deleteMailings(func(m domain.Mailing) bool { return m.TemplateID == id })
	delete(s.templates, id)
}

func (s *Store) deleteMailings(match func(domain.Mailing) bool) {
	for mid, m := range s.mailings {
		if match(m) {
			delete(s.mailings, mid)
		}
	}
}
