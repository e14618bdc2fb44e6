package api

import (
	"net/http"

	"github.com/ignite/listserv/internal/auth"
	"github.com/ignite/listserv/internal/domain"
	"github.com/ignite/listserv/internal/service/mailing"
	"github.com/ignite/listserv/internal/service/mailinglist"
	"github.com/ignite/listserv/internal/service/subscriber"
	"github.com/ignite/listserv/internal/service/template"
	"github.com/ignite/listserv/internal/service/user"
)

// Deps holds everything the HTTP layer calls into.
type Deps struct {
	Users         *user.Service
	MailingLists  *mailinglist.Service
	Subscribers   *subscriber.Service
	Templates     *template.Service
	Mailings      *mailing.Service
	Tokens        *auth.TokenService
	Authenticator *auth.Authenticator
}

// Handlers contains the HTTP handlers for the API
type Handlers struct {
	users       *user.Service
	lists       *mailinglist.Service
	subscribers *subscriber.Service
	templates   *template.Service
	mailings    *mailing.Service
	tokens      *auth.TokenService
	auth        *auth.Authenticator
}

// NewHandlers creates a new Handlers instance
func NewHandlers(d Deps) *Handlers {
	return &Handlers{
		users:       d.Users,
		lists:       d.MailingLists,
		subscribers: d.Subscribers,
		templates:   d.Templates,
		mailings:    d.Mailings,
		tokens:      d.Tokens,
		auth:        d.Authenticator,
	}
}

// currentUser returns the user placed on the request by requireUser. Only
// call it from handlers mounted behind that middleware.
func currentUser(r *http.Request) *domain.User {
	u, _ := auth.UserFrom(r.Context())
	return u
}

// nonNil keeps empty collections encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
