package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes. health may be nil, in which case
// the /health endpoints are not mounted.
func SetupRoutes(h *Handlers, health *HealthChecker, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Bearer tokens travel in a header, so credentials are only allowed when
	// the origins are explicit.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: !wildcard(allowedOrigins),
		MaxAge:           300,
	}))

	// Health checks (no auth required)
	if health != nil {
		r.Get("/health", health.HandleHealth)
		r.Get("/health/live", health.HandleLiveness)
		r.Get("/health/ready", health.HandleReadiness)
	}

	r.Post("/token", h.Login)
	r.With(h.requireUser).Post("/token/revoke", h.RevokeToken)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)
			r.Get("/me", h.GetMe)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/", h.ListUsers)
				r.Put("/{user_id}", h.UpdateUser)
				r.Delete("/{user_id}", h.DeleteUser)
			})
		})
	})

	// Everything else requires a bearer token
	r.Group(func(r chi.Router) {
		r.Use(h.requireUser)

		r.Route("/mailing_lists", func(r chi.Router) {
			r.Get("/", h.HandleGetLists)
			r.Post("/", h.HandleCreateList)
			r.Get("/{mailing_list_id}", h.HandleGetList)
			r.Put("/{mailing_list_id}", h.HandleUpdateList)
			r.Delete("/{mailing_list_id}", h.HandleDeleteList)
		})

		r.Route("/subscribers", func(r chi.Router) {
			r.Post("/", h.HandleCreateSubscriber)
			r.Get("/{id}", h.HandleGetSubscribers)
			r.Put("/{id}", h.HandleUpdateSubscriber)
			r.Delete("/{id}", h.HandleDeleteSubscriber)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.HandleGetTemplates)
			r.Post("/", h.HandleCreateTemplate)
			r.Get("/{template_id}", h.HandleGetTemplate)
			r.Put("/{template_id}", h.HandleUpdateTemplate)
			r.Delete("/{template_id}", h.HandleDeleteTemplate)
			r.Post("/{template_id}/preview", h.HandlePreviewTemplate)
		})

		r.Route("/mailings", func(r chi.Router) {
			r.Get("/", h.HandleGetMailings)
			r.Post("/", h.HandleCreateMailing)
			r.With(requireAdmin).Get("/all", h.HandleGetAllMailings)
			r.Get("/{mailing_id}", h.HandleGetMailing)
			r.Delete("/{mailing_id}", h.HandleDeleteMailing)
			r.Post("/{mailing_id}/send", h.HandleSendMailing)
		})
	})

	return r
}

func wildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return len(origins) == 0
}
