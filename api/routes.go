package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public API. Every project route exists twice: under
// an explicit /api/{locale} prefix and under /api with a negotiated locale.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", handlers.siteHandler.health())
	r.Get("/sitemap.xml", handlers.siteHandler.sitemap())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(negotiatedLocale)
			setupLocalizedRoutes(r, handlers)
		})

		r.Route("/{locale}", func(r chi.Router) {
			r.Use(pathLocale)
			setupLocalizedRoutes(r, handlers)
		})
	})
}

func setupLocalizedRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/projects", func(r chi.Router) {
		r.Get("/", handlers.projectHandler.getAllProjects())
		r.Get("/featured", handlers.projectHandler.getFeaturedProjects())
		r.Get("/other", handlers.projectHandler.getOtherProjects())
		r.Get("/categories", handlers.projectHandler.getCategories())
		r.Get("/{slug}", handlers.projectHandler.getProject())
		r.Get("/{slug}/metadata", handlers.projectHandler.getProjectMetadata())
	})

	r.Get("/profile", handlers.profileHandler.getProfile())
	r.Post("/contact", handlers.contactHandler.submitContact())
}
