package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi mux. Routing by path happens in the dispatcher, so the
// mux sends every path and method, including unknown ones, to dispatch.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Handle("/*", h.dispatch())
	router.NotFound(h.dispatch())
	router.MethodNotAllowed(h.dispatch())

	return router
}
