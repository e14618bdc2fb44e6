package api

import (
	"net/http"

	"github.com/ignite/listserv/internal/auth"
)

// requireUser rejects requests without a valid bearer token and stores the
// authenticated user on the request context.
func (h *Handlers) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := auth.BearerToken(r.Header.Get("Authorization"))
		if !ok {
			respondErr(w, r, auth.ErrUnauthorized)
			return
		}
		u, claims, err := h.auth.Authenticate(r.Context(), raw)
		if err != nil {
			respondErr(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), u, claims)))
	})
}

// requireAdmin must be mounted after requireUser.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := auth.RequireAdmin(currentUser(r)); err != nil {
			respondErr(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
