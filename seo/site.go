package seo

import (
	"net/url"
	"strings"

	"github.com/rpupo63/portfolio-backend/models"
)

// Site describes the published website the metadata points at.
type Site struct {
	URL         string
	Name        string
	Title       string
	Description string
	Author      string
	Twitter     string
	OGImage     string
}

// DefaultSite mirrors the placeholders the site ships with.
func DefaultSite() Site {
	return Site{
		URL:         "https://your-domain.com",
		Name:        "Portfolio",
		Title:       "Web Developer Portfolio",
		Description: "Modern, responsive portfolio website showcasing web development projects and skills.",
		Author:      "Your Name",
		Twitter:     "@yourusername",
		OGImage:     "/og-image.jpg",
	}
}

// URLFor joins path segments onto the site root.
func (s Site) URLFor(segments ...string) string {
	base := strings.TrimRight(s.URL, "/")
	joined, err := url.JoinPath(base, segments...)
	if err != nil {
		return base + "/" + strings.Join(segments, "/")
	}
	return joined
}

// Absolute turns a site-relative asset path into a full URL.
func (s Site) Absolute(path string) string {
	if path == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(s.URL, "/") + "/" + strings.TrimLeft(path, "/")
}

func (s Site) ProjectURL(locale models.Locale, slug string) string {
	return s.URLFor(locale.String(), "projects", slug)
}

func (s Site) ProjectsURL(locale models.Locale) string {
	return s.URLFor(locale.String(), "projects")
}

func (s Site) HomeURL(locale models.Locale) string {
	return s.URLFor(locale.String())
}
