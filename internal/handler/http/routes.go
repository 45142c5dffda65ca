package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route parameter names.
const (
	paramOldName = "oldname"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// organization API, bearer token required
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/organization", h.listOrganizations)
		r.Post("/organization", h.createOrganization)
		r.Post("/organization/active/{"+paramOldName+"}", h.activateOrganization)
		r.Put("/organization/{"+paramOldName+"}", h.updateOrganization)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
