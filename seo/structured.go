package seo

import (
	"strings"

	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/models"
)

const schemaContext = "https://schema.org"

type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// CreativeWork is the JSON-LD description of a project page.
type CreativeWork struct {
	Context             string   `json:"@context"`
	Type                string   `json:"@type"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	URL                 string   `json:"url"`
	Image               string   `json:"image,omitempty"`
	Author              Person   `json:"author"`
	DateCreated         string   `json:"dateCreated,omitempty"`
	DateModified        string   `json:"dateModified,omitempty"`
	ProgrammingLanguage []string `json:"programmingLanguage,omitempty"`
	CodeRepository      string   `json:"codeRepository,omitempty"`
	Keywords            string   `json:"keywords,omitempty"`
	Genre               string   `json:"genre,omitempty"`
	InLanguage          string   `json:"inLanguage"`
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

type Crumb struct {
	Name string
	URL  string
}

func ProjectStructuredData(site Site, view i18n.LocalizedView) CreativeWork {
	work := CreativeWork{
		Context:      schemaContext,
		Type:         "CreativeWork",
		Name:         view.Title,
		Description:  view.Description,
		URL:          site.ProjectURL(view.Locale, view.Slug),
		Image:        site.Absolute(view.Thumbnail.Src),
		Author:       Person{Type: "Person", Name: site.Author, URL: site.HomeURL(view.Locale)},
		DateCreated:  view.StartDate.String(),
		DateModified: view.LastUpdated.String(),
		Keywords:     strings.Join(view.Keywords, ", "),
		Genre:        view.Category,
		InLanguage:   view.Locale.String(),
	}
	for _, tech := range view.Technologies {
		work.ProgrammingLanguage = append(work.ProgrammingLanguage, tech.Name)
	}
	if view.PrimaryDemo != nil && view.PrimaryDemo.URL != "" {
		work.URL = view.PrimaryDemo.URL
	}
	if view.PrimaryGithub != nil {
		work.CodeRepository = view.PrimaryGithub.URL
	}
	return work
}

func BreadcrumbStructuredData(crumbs []Crumb) BreadcrumbList {
	items := make([]ListItem, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Name,
			Item:     crumb.URL,
		})
	}
	return BreadcrumbList{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}

// ProjectBreadcrumbs is the home > projects > project trail for a page.
func ProjectBreadcrumbs(site Site, view i18n.LocalizedView) BreadcrumbList {
	printer := i18n.Printer(view.Locale)
	return BreadcrumbStructuredData([]Crumb{
		{Name: site.Name, URL: site.HomeURL(view.Locale)},
		{Name: printer.Sprintf(i18n.MsgProjectsTitle), URL: site.ProjectsURL(view.Locale)},
		{Name: view.Title, URL: site.ProjectURL(view.Locale, view.Slug)},
	})
}

type Organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality,omitempty"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	AddressCountry  string `json:"addressCountry,omitempty"`
}

// PersonPage is the JSON-LD description of the portfolio owner.
type PersonPage struct {
	Context    string         `json:"@context"`
	Type       string         `json:"@type"`
	Name       string         `json:"name"`
	URL        string         `json:"url"`
	Image      string         `json:"image,omitempty"`
	SameAs     []string       `json:"sameAs,omitempty"`
	JobTitle   string         `json:"jobTitle,omitempty"`
	WorksFor   *Organization  `json:"worksFor,omitempty"`
	AlumniOf   *Organization  `json:"alumniOf,omitempty"`
	KnowsAbout []string       `json:"knowsAbout,omitempty"`
	Email      string         `json:"email,omitempty"`
	Address    *PostalAddress `json:"address,omitempty"`
}

// WebSite is the JSON-LD description of the site itself.
type WebSite struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	InLanguage  string `json:"inLanguage"`
	Author      Person `json:"author"`
}

// PersonStructuredData describes the owner. sameAs lists the web profiles
// among the social links; mailto links are left out.
func PersonStructuredData(site Site, view i18n.ProfileView) PersonPage {
	person := PersonPage{
		Context:    schemaContext,
		Type:       "Person",
		Name:       view.Name,
		URL:        site.HomeURL(view.Locale),
		Image:      site.Absolute(view.Image),
		JobTitle:   view.JobTitle,
		KnowsAbout: view.KnowsAbout,
		Email:      view.Email,
	}
	for _, link := range view.SocialLinks {
		if strings.HasPrefix(link.URL, "http://") || strings.HasPrefix(link.URL, "https://") {
			person.SameAs = append(person.SameAs, link.URL)
		}
	}
	if view.WorksFor != "" {
		person.WorksFor = &Organization{Type: "Organization", Name: view.WorksFor}
	}
	if view.AlumniOf != "" {
		person.AlumniOf = &Organization{Type: "EducationalOrganization", Name: view.AlumniOf}
	}
	if view.Address != nil {
		person.Address = &PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: view.Address.Locality,
			AddressRegion:   view.Address.Region,
			AddressCountry:  view.Address.Country,
		}
	}
	return person
}

func WebsiteStructuredData(site Site, locale models.Locale) WebSite {
	home := site.HomeURL(locale)
	return WebSite{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        site.Name,
		URL:         home,
		Description: site.Description,
		InLanguage:  locale.String(),
		Author:      Person{Type: "Person", Name: site.Author, URL: home},
	}
}
