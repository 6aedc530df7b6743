package models

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusPlanned    ProjectStatus = "planned"
	StatusArchived   ProjectStatus = "archived"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPlanned, StatusArchived:
		return true
	}
	return false
}

type TechnologyCategory string

const (
	TechFrontend   TechnologyCategory = "frontend"
	TechBackend    TechnologyCategory = "backend"
	TechDatabase   TechnologyCategory = "database"
	TechDeployment TechnologyCategory = "deployment"
	TechDesign     TechnologyCategory = "design"
	TechOther      TechnologyCategory = "other"
)

// TechnologyCategories is the order technology groups are displayed in.
var TechnologyCategories = []TechnologyCategory{
	TechFrontend, TechBackend, TechDatabase, TechDeployment, TechDesign, TechOther,
}

func (c TechnologyCategory) Valid() bool {
	for _, known := range TechnologyCategories {
		if c == known {
			return true
		}
	}
	return false
}

type LinkType string

const (
	LinkDemo          LinkType = "demo"
	LinkGithub        LinkType = "github"
	LinkWebsite       LinkType = "website"
	LinkDocumentation LinkType = "documentation"
	LinkFigma         LinkType = "figma"
	LinkOther         LinkType = "other"
)

func (t LinkType) Valid() bool {
	switch t {
	case LinkDemo, LinkGithub, LinkWebsite, LinkDocumentation, LinkFigma, LinkOther:
		return true
	}
	return false
}

type VideoType string

const (
	VideoMP4     VideoType = "mp4"
	VideoWebM    VideoType = "webm"
	VideoYouTube VideoType = "youtube"
	VideoVimeo   VideoType = "vimeo"
)

func (t VideoType) Valid() bool {
	switch t {
	case VideoMP4, VideoWebM, VideoYouTube, VideoVimeo:
		return true
	}
	return false
}

// ProjectImage references a visual asset. Width and height only reserve layout space.
type ProjectImage struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type ProjectVideo struct {
	Src    string    `json:"src"`
	Poster string    `json:"poster,omitempty"`
	Type   VideoType `json:"type"`
}

type ProjectTechnology struct {
	Name     string             `json:"name"`
	Category TechnologyCategory `json:"category"`
	Icon     string             `json:"icon,omitempty"`
	Color    string             `json:"color,omitempty"`
}

type ProjectLink struct {
	Type  LinkType `json:"type"`
	URL   string   `json:"url"`
	Label string   `json:"label"`
}

// ImageCaption describes Project.Images at the same index.
type ImageCaption struct {
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
}

// ProjectTranslation holds the text of a project in one locale.
type ProjectTranslation struct {
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription"`
	Features         []string       `json:"features"`
	Challenges       []string       `json:"challenges,omitempty"`
	Learnings        []string       `json:"learnings,omitempty"`
	Images           []ImageCaption `json:"images"`
}

// Translations carries exactly one ProjectTranslation per supported locale.
type Translations struct {
	EN ProjectTranslation `json:"en"`
	AR ProjectTranslation `json:"ar"`
}

// For returns the translation for the locale.
func (t Translations) For(locale Locale) ProjectTranslation {
	switch locale {
	case LocaleAR:
		return t.AR
	default:
		return t.EN
	}
}

type ProjectSEO struct {
	Keywords []string `json:"keywords"`
	Category string   `json:"category"`
}

// Project represents one portfolio entry with its text in every supported locale
type Project struct {
	ID           uuid.UUID           `json:"id"`
	Slug         string              `json:"slug"`
	Status       ProjectStatus       `json:"status"`
	Featured     bool                `json:"featured"`
	Priority     int                 `json:"priority"`
	StartDate    Date                `json:"startDate"`
	EndDate      *Date               `json:"endDate,omitempty"`
	LastUpdated  Date                `json:"lastUpdated"`
	Thumbnail    ProjectImage        `json:"thumbnail"`
	Images       []ProjectImage      `json:"images"`
	Video        *ProjectVideo       `json:"video,omitempty"`
	Technologies []ProjectTechnology `json:"technologies"`
	Links        []ProjectLink       `json:"links"`
	Translations Translations        `json:"translations"`
	SEO          ProjectSEO          `json:"seo"`
}

// PrimaryLink returns the first link of the given type.
func (p Project) PrimaryLink(linkType LinkType) (ProjectLink, bool) {
	for _, link := range p.Links {
		if link.Type == linkType {
			return link, true
		}
	}
	return ProjectLink{}, false
}

// UsesTechnology reports whether the project lists a technology, ignoring case.
func (p Project) UsesTechnology(name string) bool {
	for _, tech := range p.Technologies {
		if strings.EqualFold(tech.Name, strings.TrimSpace(name)) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can't alter catalog data through shared slices.
func (p Project) Clone() Project {
	c := p
	c.Images = slices.Clone(p.Images)
	c.Technologies = slices.Clone(p.Technologies)
	c.Links = slices.Clone(p.Links)
	c.SEO.Keywords = slices.Clone(p.SEO.Keywords)
	c.Translations.EN = p.Translations.EN.clone()
	c.Translations.AR = p.Translations.AR.clone()
	if p.EndDate != nil {
		end := *p.EndDate
		c.EndDate = &end
	}
	if p.Video != nil {
		video := *p.Video
		c.Video = &video
	}
	return c
}

func (t ProjectTranslation) clone() ProjectTranslation {
	c := t
	c.Features = slices.Clone(t.Features)
	c.Challenges = slices.Clone(t.Challenges)
	c.Learnings = slices.Clone(t.Learnings)
	c.Images = slices.Clone(t.Images)
	return c
}
