package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ignite/listserv/internal/domain"
)

// Access-control failures.
var (
	ErrUnauthorized = &domain.Error{Kind: domain.ErrUnauthorized, Detail: "Could not validate credentials"}
	ErrForbidden    = &domain.Error{Kind: domain.ErrForbidden, Detail: "The user doesn't have enough privileges"}
)

// UserFinder loads a user by id.
type UserFinder interface {
	Get(ctx context.Context, id int64) (*domain.User, error)
}

// Authenticator resolves bearer tokens to users.
type Authenticator struct {
	tokens  *TokenService
	users   UserFinder
	revoked Revocations
}

// NewAuthenticator wires token verification to user lookup. revoked may be
// nil, in which case tokens are only checked for signature and expiry.
func NewAuthenticator(tokens *TokenService, users UserFinder, revoked Revocations) *Authenticator {
	return &Authenticator{tokens: tokens, users: users, revoked: revoked}
}

// Authenticate verifies raw and loads the user it names. Verification
// failures, revoked tokens and deleted users all return ErrUnauthorized.
// Infrastructure failures are returned wrapped so they surface as 5xx.
func (a *Authenticator) Authenticate(ctx context.Context, raw string) (*domain.User, *Claims, error) {
	if raw == "" {
		return nil, nil, ErrUnauthorized
	}
	claims, ok := a.tokens.Verify(raw)
	if !ok {
		return nil, nil, ErrUnauthorized
	}

	if a.revoked != nil && claims.ID != "" {
		revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, nil, ErrUnauthorized
		}
	}

	u, err := a.users.Get(ctx, *claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, ErrUnauthorized
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load user: %w", err)
	}
	return u, claims, nil
}

// Revoke invalidates the token described by claims for the rest of its
// lifetime. It fails when no revocation store is configured.
func (a *Authenticator) Revoke(ctx context.Context, claims *Claims) error {
	if a.revoked == nil {
		return ErrRevocationUnavailable
	}
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return ErrUnauthorized
	}
	return a.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

// ErrRevocationUnavailable is returned by Revoke without a revocation store.
var ErrRevocationUnavailable = errors.New("token revocation is not configured")

// RequireAdmin returns ErrForbidden unless u is an admin.
func RequireAdmin(u *domain.User) error {
	if u == nil || !u.IsAdmin {
		return ErrForbidden
	}
	return nil
}

// BearerToken extracts the token from an Authorization header value. The
// scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

type ctxKey int

const (
	userKey ctxKey = iota
	claimsKey
)

// WithUser returns a copy of ctx carrying the authenticated user and claims.
func WithUser(ctx context.Context, u *domain.User, c *Claims) context.Context {
	ctx = context.WithValue(ctx, userKey, u)
	return context.WithValue(ctx, claimsKey, c)
}

// UserFrom returns the authenticated user stored by WithUser.
func UserFrom(ctx context.Context) (*domain.User, bool) {
	u, ok := ctx.Value(userKey).(*domain.User)
	return u, ok && u != nil
}

// ClaimsFrom returns the token claims stored by WithUser.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	return c, ok && c != nil
}
