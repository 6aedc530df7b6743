package seo

import (
	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/models"
)

type Alternate struct {
	HrefLang string `json:"hrefLang"`
	Href     string `json:"href"`
}

type OpenGraphImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Alt    string `json:"alt,omitempty"`
}

type OpenGraph struct {
	Type        string           `json:"type"`
	Locale      string           `json:"locale"`
	URL         string           `json:"url"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	SiteName    string           `json:"siteName"`
	Images      []OpenGraphImage `json:"images"`
}

type TwitterCard struct {
	Card        string   `json:"card"`
	Site        string   `json:"site,omitempty"`
	Creator     string   `json:"creator,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Head is everything a renderer needs for a project page's <head>.
type Head struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Keywords    string      `json:"keywords,omitempty"`
	Canonical   string      `json:"canonical"`
	Dir         string      `json:"dir"`
	Alternates  []Alternate `json:"alternates"`
	OpenGraph   OpenGraph   `json:"openGraph"`
	Twitter     TwitterCard `json:"twitter"`
}

// BuildHead expands project metadata into page head tags for the site.
func BuildHead(site Site, view i18n.LocalizedView) Head {
	meta := ProjectMetadata(view)
	canonical := site.ProjectURL(view.Locale, view.Slug)

	image := OpenGraphImage{
		URL:    site.Absolute(view.Thumbnail.Src),
		Width:  view.Thumbnail.Width,
		Height: view.Thumbnail.Height,
		Alt:    view.Thumbnail.Alt,
	}

	return Head{
		Title:       PageTitle(site, meta.Title),
		Description: meta.Description,
		Keywords:    meta.Keywords,
		Canonical:   canonical,
		Dir:         view.Dir,
		Alternates:  Alternates(site, view.Slug),
		OpenGraph: OpenGraph{
			Type:        "article",
			Locale:      view.Locale.String(),
			URL:         canonical,
			Title:       meta.Title,
			Description: meta.Description,
			SiteName:    site.Name,
			Images:      []OpenGraphImage{image},
		},
		Twitter: TwitterCard{
			Card:        "summary_large_image",
			Site:        site.Twitter,
			Creator:     site.Twitter,
			Title:       meta.Title,
			Description: meta.Description,
			Images:      []string{image.URL},
		},
	}
}

// PageTitle suffixes a page title with the site name.
func PageTitle(site Site, title string) string {
	if title == "" {
		return site.Title
	}
	if site.Name == "" {
		return title
	}
	return title + " | " + site.Name
}

// Alternates lists the hreflang links for a project in every locale, with
// x-default pointing at the default locale.
func Alternates(site Site, slug string) []Alternate {
	alternates := make([]Alternate, 0, len(models.SupportedLocales)+1)
	for _, locale := range models.SupportedLocales {
		alternates = append(alternates, Alternate{HrefLang: locale.String(), Href: site.ProjectURL(locale, slug)})
	}
	return append(alternates, Alternate{
		HrefLang: "x-default",
		Href:     site.ProjectURL(models.DefaultLocale, slug),
	})
}
