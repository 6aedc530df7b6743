package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/portfolio-backend/catalog"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/seo"
	"github.com/rpupo63/portfolio-backend/services"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Config, store *catalog.Store, profile models.Profile, sender services.ContactSender) (Server, error) {
	if store == nil {
		return Server{}, errors.New("catalog store is required")
	}
	if sender == nil {
		return Server{}, errors.New("contact sender is required")
	}

	// Capture startup time
	startupTime := time.Now()

	router := newRouter(dependencies{store: store, profile: profile, sender: sender},
		withSite(cfg.Site.Site()),
		withAcceptedOrigins(cfg.AcceptedOrigins),
		withContactTimeout(cfg.Contact.Timeout()),
		withStartupTime(startupTime),
	)

	server := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout(),  // Timeout for reading the entire request
		WriteTimeout: cfg.WriteTimeout(), // Timeout for writing the response
		IdleTimeout:  cfg.IdleTimeout(),  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type dependencies struct {
	store   *catalog.Store
	profile models.Profile
	sender  services.ContactSender
}

type router struct {
	site            seo.Site
	acceptedOrigins []string
	contactTimeout  time.Duration
	startupTime     time.Time
}

func withSite(site seo.Site) func(*router) {
	return func(r *router) {
		r.site = site
	}
}

func withAcceptedOrigins(origins []string) func(*router) {
	return func(r *router) {
		r.acceptedOrigins = origins
	}
}

func withContactTimeout(timeout time.Duration) func(*router) {
	return func(r *router) {
		r.contactTimeout = timeout
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps dependencies, opts ...func(*router)) *chi.Mux {
	rt := router{site: seo.DefaultSite(), startupTime: time.Now()}
	for _, opt := range opts {
		opt(&rt)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(RequestLoggingMiddleware(log.With().Str("component", "http").Logger()))
	chiRouter.Use(LogInternalServerErrors)

	// Apply CORS middleware. No accepted origins means same-origin only.
	chiRouter.Use(CORSCheckMiddleware(rt.acceptedOrigins))
	if len(rt.acceptedOrigins) > 0 {
		chiRouter.Use(corsMiddleware(rt.acceptedOrigins))
	}

	handlers := initializeHandlers(deps, rt)
	setupRoutes(chiRouter, handlers)

	return chiRouter
}

// Start serves until the listener fails or the server is shut down. A
// graceful shutdown is not reported as an error.
func (s Server) Start() error {
	log.Info().Msgf("Server started on: %s", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s Server) ShutdownGracefully(timeout time.Duration) error {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
		return err
	}
	log.Info().Msg("HttpServer gracefully shut down")
	return nil
}
