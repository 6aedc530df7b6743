package api

import (
	"net/http"

	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/seo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	profile   models.Profile
	site      seo.Site
}

func newProfileHandler(profile models.Profile, site seo.Site) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		profile:   profile,
		site:      site,
	}
}

// getProfile returns the owner profile with skills grouped by category
// @Summary Get profile
// @Description Returns the about page content resolved for the locale, with Person and WebSite JSON-LD
// @Tags Profile
// @Produce json
// @Param locale path string true "Locale (en or ar)"
// @Success 200 {object} ProfileResponse
// @Router /api/{locale}/profile [get]
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := ctxGetLocale(r.Context())
		view := i18n.ResolveProfile(h.profile, locale)

		h.responder.WriteJSON(w, ProfileResponse{
			Profile: view,
			StructuredData: ProfileStructuredData{
				Person:  seo.PersonStructuredData(h.site, view),
				Website: seo.WebsiteStructuredData(h.site, locale),
			},
		})
	}
}
