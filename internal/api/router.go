package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"

	"github.com/paddynes2/stride-process-app/internal/api/handlers"
	mw "github.com/paddynes2/stride-process-app/internal/api/middleware"
)

type Dependencies struct {
	WorkspacesHandler  *handlers.WorkspacesHandler
	TabsHandler        *handlers.TabsHandler
	SectionsHandler    *handlers.SectionsHandler
	StepsHandler       *handlers.StepsHandler
	ConnectionsHandler *handlers.ConnectionsHandler
	SummaryHandler     *handlers.SummaryHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler()
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/workspaces", func(wr chi.Router) {
			wr.Get("/", dep.WorkspacesHandler.List)
			wr.Post("/", dep.WorkspacesHandler.Create)
			wr.Get("/{id}", dep.WorkspacesHandler.Get)
			wr.Patch("/{id}", dep.WorkspacesHandler.Update)
			wr.Delete("/{id}", dep.WorkspacesHandler.Delete)
			wr.Get("/{id}/summary", dep.SummaryHandler.WorkspaceSummary)
		})

		api.Route("/tabs", func(tr chi.Router) {
			tr.Get("/", dep.TabsHandler.List)
			tr.Post("/", dep.TabsHandler.Create)
			tr.Patch("/{id}", dep.TabsHandler.Update)
			tr.Delete("/{id}", dep.TabsHandler.Delete)
		})

		api.Route("/sections", func(sr chi.Router) {
			sr.Get("/", dep.SectionsHandler.List)
			sr.Post("/", dep.SectionsHandler.Create)
			sr.Patch("/{id}", dep.SectionsHandler.Update)
			sr.Delete("/{id}", dep.SectionsHandler.Delete)
		})

		api.Route("/steps", func(sr chi.Router) {
			sr.Get("/", dep.StepsHandler.List)
			sr.Post("/", dep.StepsHandler.Create)
			sr.Patch("/{id}", dep.StepsHandler.Update)
			sr.Delete("/{id}", dep.StepsHandler.Delete)
		})

		api.Route("/connections", func(cr chi.Router) {
			cr.Get("/", dep.ConnectionsHandler.List)
			cr.Post("/", dep.ConnectionsHandler.Create)
			cr.Delete("/{id}", dep.ConnectionsHandler.Delete)
		})
	})

	return r
}
