package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/repository/memory"
	"github.com/ignite/listserv/internal/service/user"
)

// plainHasher is a reversible stand-in for bcrypt.
type plainHasher struct{ verifies int }

func (h *plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }

func (h *plainHasher) Verify(p, digest string) bool {
	h.verifies++
	return digest == "h:"+p
}

func newService() (*user.Service, *plainHasher) {
	h := &plainHasher{}
	return user.NewService(memory.NewStore().Users(), h), h
}

func register(t *testing.T, svc *user.Service, name string) *domain.User {
	t.Helper()
	u, err := svc.Register(context.Background(), user.RegisterInput{
		Username: name, Password: "pw-" + name, Email: name + "@example.com",
	})
	if err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
	return u
}

func TestRegister(t *testing.T) {
	svc, _ := newService()
	u := register(t, svc, "alice")
	if u.ID == 0 {
		t.Fatal("expected id to be assigned")
	}
	if !u.IsActive || u.IsAdmin {
		t.Fatalf("expected active non-admin, got %+v", u)
	}
	if u.HashedPassword == "pw-alice" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newService()
	for _, in := range []user.RegisterInput{
		{Password: "p", Email: "e@x.io"},
		{Username: "u", Email: "e@x.io"},
		{Username: "u", Password: "p"},
		{Username: "   ", Password: "p", Email: "e@x.io"},
	} {
		_, err := svc.Register(context.Background(), in)
		if !errors.Is(err, domain.ErrInvalid) {
			t.Fatalf("%+v: expected ErrInvalid, got %v", in, err)
		}
	}
}

func TestRegisterConflict(t *testing.T) {
	svc, _ := newService()
	register(t, svc, "alice")

	_, err := svc.Register(context.Background(), user.RegisterInput{
		Username: "alice", Password: "x", Email: "other@example.com",
	})
	if !errors.Is(err, user.ErrConflict) {
		t.Fatalf("duplicate username: expected ErrConflict, got %v", err)
	}

	_, err = svc.Register(context.Background(), user.RegisterInput{
		Username: "other", Password: "x", Email: "alice@example.com",
	})
	if !errors.Is(err, user.ErrConflict) {
		t.Fatalf("duplicate email: expected ErrConflict, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, h := newService()
	register(t, svc, "alice")
	ctx := context.Background()

	u, err := svc.Authenticate(ctx, "alice", "pw-alice")
	if err != nil || u.Username != "alice" {
		t.Fatalf("expected alice, got %v %v", u, err)
	}

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", err)
	}

	before := h.verifies
	_, err = svc.Authenticate(ctx, "nobody", "pw")
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("unknown user: got %v", err)
	}
	if h.verifies != before+1 {
		t.Fatal("unknown user should still cost one verification")
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, _ := newService()
	u := register(t, svc, "alice")
	ctx := context.Background()

	empty := ""
	blank := "   "
	got, err := svc.Update(ctx, u.ID, user.UpdateInput{Username: &empty, Email: &blank, Password: &empty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Username != "alice" || got.Email != "alice@example.com" || got.HashedPassword != u.HashedPassword {
		t.Fatalf("empty values must leave fields unchanged, got %+v", got)
	}

	admin := true
	name := "alicia"
	got, err = svc.Update(ctx, u.ID, user.UpdateInput{Username: &name, IsAdmin: &admin})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Username != "alicia" || !got.IsAdmin || got.Email != "alice@example.com" {
		t.Fatalf("unexpected user %+v", got)
	}

	pw := "new-secret"
	got, _ = svc.Update(ctx, u.ID, user.UpdateInput{Password: &pw})
	if !strings.HasSuffix(got.HashedPassword, "new-secret") {
		t.Fatalf("password was not rehashed: %q", got.HashedPassword)
	}
	if _, err := svc.Authenticate(ctx, "alicia", "new-secret"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newService()
	name := "x"
	_, err := svc.Update(context.Background(), 404, user.UpdateInput{Username: &name})
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateConflict(t *testing.T) {
	svc, _ := newService()
	register(t, svc, "alice")
	bob := register(t, svc, "bob")

	name := "alice"
	_, err := svc.Update(context.Background(), bob.ID, user.UpdateInput{Username: &name})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newService()
	u := register(t, svc, "alice")
	ctx := context.Background()

	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, u.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := svc.Delete(ctx, u.ID); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}
