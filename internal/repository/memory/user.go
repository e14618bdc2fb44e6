package memory

import (
	"context"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/user"
)

// UserRepo implements user.Repository.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.taken(0, u.Username, u.Email) {
		return user.ErrConflict
	}
	u.ID = r.s.id()
	r.s.users[u.ID] = *u
	return nil
}

// taken reports whether another user than self holds username or email.
func (s *Store) taken(self int64, username, email string) bool {
	for id, u := range s.users {
		if id != self && (u.Username == username || u.Email == email) {
			return true
		}
	}
	return false
}

func (r *UserRepo) Get(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Username == username })
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return u.Email == email })
}

func (r *UserRepo) find(match func(domain.User) bool) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *UserRepo) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return sortedValues(r.s.users, nil), nil
}

func (r *UserRepo) Update(_ context.Context, id int64, f user.UpdateFields) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	if f.Username != nil {
		u.Username = *f.Username
	}
	if f.HashedPassword != nil {
		u.HashedPassword = *f.HashedPassword
	}
	if f.Email != nil {
		u.Email = *f.Email
	}
	if f.IsAdmin != nil {
		u.IsAdmin = *f.IsAdmin
	}
	if r.s.taken(id, u.Username, u.Email) {
		return nil, user.ErrConflict
	}
	r.s.users[id] = u
	return &u, nil
}

// Delete removes the user with everything it owns.
func (r *UserRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return user.ErrNotFound
	}
	r.s.deleteMailings(func(m domain.Mailing) bool { return m.UserID == id })
	for lid, l := range r.s.lists {
		if l.UserID == id {
			r.s.deleteList(lid)
		}
	}
	for tid, t := range r.s.templates {
		if t.UserID == id {
			r.s.deleteTemplate(tid)
		}
	}
	delete(r.s.users, id)
	return nil
}
