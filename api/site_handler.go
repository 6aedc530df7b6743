package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/catalog"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/seo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type siteHandler struct {
	responder   Responder
	logger      zerolog.Logger
	store       *catalog.Store
	site        seo.Site
	startupTime time.Time
}

func newSiteHandler(store *catalog.Store, site seo.Site, startupTime time.Time) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		store:       store,
		site:        site,
		startupTime: startupTime,
	}
}

// health reports liveness and the size of the loaded catalog
// @Summary Health check
// @Tags Site
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h siteHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, HealthResponse{
			Status:   "ok",
			Uptime:   time.Since(h.startupTime).Round(time.Second).String(),
			Projects: h.store.Len(),
		})
	}
}

// sitemap renders sitemap.xml for every locale and project
// @Summary Sitemap
// @Tags Site
// @Produce xml
// @Success 200 {string} string "sitemap.xml"
// @Router /sitemap.xml [get]
func (h siteHandler) sitemap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := seo.Sitemap(h.site, h.store.AllProjects())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to build sitemap", err))
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		if _, err := w.Write(body); err != nil {
			h.logger.Error().Err(err).Msg("error writing sitemap")
		}
	}
}
