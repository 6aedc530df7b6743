package api

import (
	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/seo"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	profileHandler profileHandler
	contactHandler contactHandler
	siteHandler    siteHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"email"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// ValidationErrorResponse lists every invalid field of a submitted form
type ValidationErrorResponse struct {
	Error   string            `json:"error" example:"Validation error"`
	Status  string            `json:"status" example:"validation_error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// ProjectCollection is a localized project listing
type ProjectCollection struct {
	Locale   string               `json:"locale"`
	Projects []i18n.LocalizedView `json:"projects"`
	Total    int                  `json:"total"`
}

type CategoryCollection struct {
	Locale     string   `json:"locale"`
	Categories []string `json:"categories"`
}

type StructuredData struct {
	Project    seo.CreativeWork   `json:"project"`
	Breadcrumb seo.BreadcrumbList `json:"breadcrumb"`
}

// ProjectDetail is everything a project page needs
type ProjectDetail struct {
	Project        i18n.LocalizedView `json:"project"`
	Metadata       seo.Metadata       `json:"metadata"`
	Head           seo.Head           `json:"head"`
	StructuredData StructuredData     `json:"structuredData"`
}

type ProjectMetadataResponse struct {
	Metadata seo.Metadata `json:"metadata"`
	Head     seo.Head     `json:"head"`
}

// ProjectNotFoundResponse is returned for unknown slugs so the frontend can
// still render a page title and description
type ProjectNotFoundResponse struct {
	Error    string       `json:"error" example:"project not found"`
	Status   string       `json:"status" example:"error"`
	Metadata seo.Metadata `json:"metadata"`
}

type ProfileStructuredData struct {
	Person  seo.PersonPage `json:"person"`
	Website seo.WebSite    `json:"website"`
}

// ProfileResponse is everything the about page needs
type ProfileResponse struct {
	Profile        i18n.ProfileView      `json:"profile"`
	StructuredData ProfileStructuredData `json:"structuredData"`
}

type ContactResponse struct {
	Status  string `json:"status" example:"sent"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Uptime   string `json:"uptime"`
	Projects int    `json:"projects"`
}
