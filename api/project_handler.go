package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-backend/catalog"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rpupo63/portfolio-backend/seo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *catalog.Store
	site      seo.Site
}

func newProjectHandler(store *catalog.Store, site seo.Site) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		site:      site,
	}
}

func (h projectHandler) writeCollection(w http.ResponseWriter, r *http.Request, projects []models.Project) {
	locale := ctxGetLocale(r.Context())
	views := i18n.ResolveAll(projects, locale)

	h.responder.WriteJSON(w, ProjectCollection{
		Locale:   locale.String(),
		Projects: views,
		Total:    len(views),
	})
}

// getAllProjects lists projects in priority order
// @Summary List projects
// @Description Lists projects resolved for the locale, optionally filtered
// @Tags Projects
// @Produce json
// @Param locale path string true "Locale (en or ar)"
// @Param category query string false "SEO category"
// @Param status query string false "Project status"
// @Param technology query string false "Technology name, case-insensitive"
// @Param featured query bool false "Featured flag"
// @Success 200 {object} ProjectCollection
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid filter"
// @Router /api/{locale}/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseProjectFilter(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.writeCollection(w, r, h.store.Filter(filter))
	}
}

// getFeaturedProjects lists featured projects
// @Summary List featured projects
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection
// @Router /api/{locale}/projects/featured [get]
func (h projectHandler) getFeaturedProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeCollection(w, r, h.store.FeaturedProjects())
	}
}

// getOtherProjects lists projects that are not featured
// @Summary List other projects
// @Tags Projects
// @Produce json
// @Success 200 {object} ProjectCollection
// @Router /api/{locale}/projects/other [get]
func (h projectHandler) getOtherProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeCollection(w, r, h.store.OtherProjects())
	}
}

// getCategories lists the distinct project categories
// @Summary List categories
// @Tags Projects
// @Produce json
// @Success 200 {object} CategoryCollection
// @Router /api/{locale}/projects/categories [get]
func (h projectHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, CategoryCollection{
			Locale:     ctxGetLocale(r.Context()).String(),
			Categories: h.store.Categories(),
		})
	}
}

// getProject returns a localized project with its page metadata
// @Summary Get project
// @Description Retrieves a project by slug, resolved for the locale, with SEO head and structured data
// @Tags Projects
// @Produce json
// @Param locale path string true "Locale (en or ar)"
// @Param slug path string true "Project slug"
// @Success 200 {object} ProjectDetail
// @Failure 404 {object} ProjectNotFoundResponse "Not Found - Unknown slug"
// @Router /api/{locale}/projects/{slug} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.store.FindBySlug(chi.URLParam(r, "slug"))
		if !ok {
			h.writeNotFound(w)
			return
		}

		view := i18n.Resolve(project, ctxGetLocale(r.Context()))
		h.responder.WriteJSON(w, ProjectDetail{
			Project:  view,
			Metadata: seo.ProjectMetadata(view),
			Head:     seo.BuildHead(h.site, view),
			StructuredData: StructuredData{
				Project:    seo.ProjectStructuredData(h.site, view),
				Breadcrumb: seo.ProjectBreadcrumbs(h.site, view),
			},
		})
	}
}

// getProjectMetadata returns only the SEO summary of a project
// @Summary Get project metadata
// @Tags Projects
// @Produce json
// @Param locale path string true "Locale (en or ar)"
// @Param slug path string true "Project slug"
// @Success 200 {object} ProjectMetadataResponse
// @Failure 404 {object} ProjectNotFoundResponse "Not Found - Unknown slug"
// @Router /api/{locale}/projects/{slug}/metadata [get]
func (h projectHandler) getProjectMetadata() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, ok := h.store.FindBySlug(chi.URLParam(r, "slug"))
		if !ok {
			h.writeNotFound(w)
			return
		}

		view := i18n.Resolve(project, ctxGetLocale(r.Context()))
		h.responder.WriteJSON(w, ProjectMetadataResponse{
			Metadata: seo.ProjectMetadata(view),
			Head:     seo.BuildHead(h.site, view),
		})
	}
}

func (h projectHandler) writeNotFound(w http.ResponseWriter) {
	h.responder.WriteJSONStatus(w, http.StatusNotFound, ProjectNotFoundResponse{
		Error:    errs.NewNotFoundError("project not found").Error(),
		Status:   "error",
		Metadata: seo.NotFoundMetadata(),
	})
}

func parseProjectFilter(r *http.Request) (catalog.ProjectFilter, error) {
	query := r.URL.Query()
	filter := catalog.ProjectFilter{
		Category:   strings.TrimSpace(query.Get("category")),
		Technology: strings.TrimSpace(query.Get("technology")),
	}

	if status := strings.TrimSpace(query.Get("status")); status != "" {
		filter.Status = models.ProjectStatus(status)
		if !filter.Status.Valid() {
			return filter, errs.NewInvalidFieldError("status", "must be one of completed, in-progress, planned, archived")
		}
	}

	if featured := strings.TrimSpace(query.Get("featured")); featured != "" {
		value, err := strconv.ParseBool(featured)
		if err != nil {
			return filter, errs.NewInvalidFieldError("featured", "must be true or false")
		}
		filter.Featured = &value
	}

	return filter, nil
}
