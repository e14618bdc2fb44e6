package api

import (
	"net/http"

	"github.com/ignite/listserv/internal/pkg/httputil"
	"github.com/ignite/listserv/internal/pkg/logger"
	"github.com/ignite/listserv/internal/service/user"
)

// Register creates an account. No authentication is required.
//
//	POST /users
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in user.RegisterInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	u, err := h.users.Register(r.Context(), in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	logger.Info("user registered", "user_id", u.ID, "username", u.Username)
	httputil.Created(w, u)
}

// GetMe returns the authenticated user.
func (h *Handlers) GetMe(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, currentUser(r))
}

// ListUsers returns every account. Admin only.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, nonNil(users))
}

// UpdateUser applies a partial update to an account. Admin only.
//
//	PUT /users/{user_id}
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "user_id")
	if !ok {
		return
	}
	var in user.UpdateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	u, err := h.users.Update(r.Context(), id, in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, u)
}

// DeleteUser removes an account and everything it owns. Admin only.
//
//	DELETE /users/{user_id}
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "user_id")
	if !ok {
		return
	}
	if err := h.users.Delete(r.Context(), id); err != nil {
		respondErr(w, r, err)
		return
	}
	logger.Info("user deleted", "user_id", id, "by", currentUser(r).ID)
	httputil.NoContent(w)
}
