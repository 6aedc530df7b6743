package seo

import (
	"encoding/xml"
	"fmt"

	"github.com/rpupo63/portfolio-backend/models"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

type sitemapLink struct {
	XMLName  xml.Name `xml:"xhtml:link"`
	Rel      string   `xml:"rel,attr"`
	HrefLang string   `xml:"hreflang,attr"`
	Href     string   `xml:"href,attr"`
}

type sitemapURL struct {
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod,omitempty"`
	Priority   string        `xml:"priority,omitempty"`
	Alternates []sitemapLink `xml:"xhtml:link"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders a sitemaps.org document with the home and listing pages
// plus every project in every locale, each linked to its translations.
func Sitemap(site Site, projects []models.Project) ([]byte, error) {
	set := urlSet{XMLNS: sitemapNS, XHTML: xhtmlNS}

	for _, locale := range models.SupportedLocales {
		set.URLs = append(set.URLs,
			sitemapURL{Loc: site.HomeURL(locale), Priority: "1.0", Alternates: pageAlternates(site.HomeURL)},
			sitemapURL{Loc: site.ProjectsURL(locale), Priority: "0.8", Alternates: pageAlternates(site.ProjectsURL)},
		)
	}

	for _, p := range projects {
		priority := "0.6"
		if p.Featured {
			priority = "0.7"
		}
		var links []sitemapLink
		for _, alt := range Alternates(site, p.Slug) {
			links = append(links, sitemapLink{Rel: "alternate", HrefLang: alt.HrefLang, Href: alt.Href})
		}
		for _, locale := range models.SupportedLocales {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        site.ProjectURL(locale, p.Slug),
				LastMod:    p.LastUpdated.String(),
				Priority:   priority,
				Alternates: links,
			})
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func pageAlternates(urlFor func(models.Locale) string) []sitemapLink {
	links := make([]sitemapLink, 0, len(models.SupportedLocales)+1)
	for _, locale := range models.SupportedLocales {
		links = append(links, sitemapLink{Rel: "alternate", HrefLang: locale.String(), Href: urlFor(locale)})
	}
	return append(links, sitemapLink{Rel: "alternate", HrefLang: "x-default", Href: urlFor(models.DefaultLocale)})
}
