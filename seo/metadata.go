package seo

import (
	"strings"

	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/models"
)

const (
	notFoundTitle       = "Project Not Found"
	notFoundDescription = "The requested project could not be found."
)

// Metadata is the search-engine summary of a page.
type Metadata struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Keywords    string               `json:"keywords,omitempty"`
	SocialImage *models.ProjectImage `json:"socialImage,omitempty"`
}

// ProjectMetadata summarizes a localized project.
func ProjectMetadata(view i18n.LocalizedView) Metadata {
	thumbnail := view.Thumbnail
	return Metadata{
		Title:       view.Title,
		Description: view.ShortDescription,
		Keywords:    strings.Join(view.Keywords, ", "),
		SocialImage: &thumbnail,
	}
}

// NotFoundMetadata is returned for unknown slugs. It is the same in every locale.
func NotFoundMetadata() Metadata {
	return Metadata{
		Title:       notFoundTitle,
		Description: notFoundDescription,
	}
}
