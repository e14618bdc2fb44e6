package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ignite/listserv/internal/auth"
	"github.com/ignite/listserv/internal/pkg/httputil"
	"github.com/ignite/listserv/internal/pkg/logger"
)

// TokenResponse is the body returned by POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges a username and password for a bearer token. It accepts an
// OAuth2 password-grant form body or the same fields as JSON.
//
//	POST /token
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if !httputil.Decode(w, r, &creds) {
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, httputil.MaxBodyBytes)
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form body")
			return
		}
		creds.Username = r.PostForm.Get("username")
		creds.Password = r.PostForm.Get("password")
	}
	if creds.Username == "" || creds.Password == "" {
		httputil.Error(w, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	u, err := h.users.Authenticate(r.Context(), creds.Username, creds.Password)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	token, _, err := h.tokens.Issue(u.ID)
	if err != nil {
		respondErr(w, r, err)
		return
	}

	logger.Info("token issued", "user_id", u.ID)
	httputil.OK(w, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(auth.TokenTTL.Seconds()),
	})
}

// RevokeToken invalidates the bearer token used for this request.
//
//	POST /token/revoke
func (h *Handlers) RevokeToken(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFrom(r.Context())
	err := h.auth.Revoke(r.Context(), claims)
	if errors.Is(err, auth.ErrRevocationUnavailable) {
		httputil.Error(w, http.StatusNotImplemented, "Token revocation is not enabled")
		return
	}
	if err != nil {
		respondErr(w, r, err)
		return
	}
	logger.Info("token revoked", "user_id", currentUser(r).ID)
	httputil.NoContent(w)
}
