package user

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ignite/listserv/internal/domain"
)

// Hasher turns plaintext passwords into opaque digests and checks them.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// Service implements account business logic. It is safe for concurrent use
// if the underlying repository is.
type Service struct {
	repo   Repository
	hasher Hasher

	dummyOnce sync.Once
	dummy     string
}

// NewService creates a user service backed by the given repository.
func NewService(repo Repository, hasher Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// RegisterInput holds the fields accepted at sign-up.
type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateInput holds an admin's changes to an account. Nil and empty values
// both leave the stored field unchanged; an empty username never clears it.
type UpdateInput struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
	IsAdmin  *bool   `json:"is_admin"`
}

// Register hashes the password and stores a new active account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	switch {
	case in.Username == "":
		return nil, domain.Invalid("username is required")
	case in.Password == "":
		return nil, domain.Invalid("password is required")
	case in.Email == "":
		return nil, domain.Invalid("email is required")
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username:       in.Username,
		HashedPassword: digest,
		Email:          in.Email,
		IsActive:       true,
		IsAdmin:        in.IsAdmin,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks a username/password pair. Unknown users and wrong
// passwords produce the same ErrInvalidCredentials, and an unknown user still
// pays for one hash comparison.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		s.hasher.Verify(password, s.dummyDigest())
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(password, u.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get returns a single account.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.Get(ctx, id)
}

// List returns every account.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Update applies an admin's partial update to the account with the given id.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.User, error) {
	fields := UpdateFields{
		Username: nonEmpty(in.Username),
		Email:    nonEmpty(in.Email),
		IsAdmin:  in.IsAdmin,
	}
	if in.Password != nil && *in.Password != "" {
		digest, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		fields.HashedPassword = &digest
	}
	return s.repo.Update(ctx, id, fields)
}

// Delete removes an account and everything it owns.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) dummyDigest() string {
	s.dummyOnce.Do(func() {
		s.dummy, _ = s.hasher.Hash("listserv-timing-equalizer")
	})
	return s.dummy
}

func nonEmpty(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
