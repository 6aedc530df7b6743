package i18n

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
)

// LocalizedImage is a project image with its alt text and caption resolved
// for one locale.
type LocalizedImage struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

type TechnologyGroup struct {
	Category     models.TechnologyCategory  `json:"category"`
	Technologies []models.ProjectTechnology `json:"technologies"`
}

// LocalizedView is a project as it is presented in a single locale.
type LocalizedView struct {
	ID               uuid.UUID                  `json:"id"`
	Slug             string                     `json:"slug"`
	Locale           models.Locale              `json:"locale"`
	Dir              string                     `json:"dir"`
	Status           models.ProjectStatus       `json:"status"`
	Featured         bool                       `json:"featured"`
	Priority         int                        `json:"priority"`
	StartDate        models.Date                `json:"startDate"`
	EndDate          *models.Date               `json:"endDate,omitempty"`
	LastUpdated      models.Date                `json:"lastUpdated"`
	Title            string                     `json:"title"`
	Description      string                     `json:"description"`
	ShortDescription string                     `json:"shortDescription"`
	Features         []string                   `json:"features"`
	Challenges       []string                   `json:"challenges"`
	Learnings        []string                   `json:"learnings"`
	Thumbnail        models.ProjectImage        `json:"thumbnail"`
	Images           []LocalizedImage           `json:"images"`
	Video            *models.ProjectVideo       `json:"video,omitempty"`
	Technologies     []models.ProjectTechnology `json:"technologies"`
	TechnologyGroups []TechnologyGroup          `json:"technologyGroups"`
	Links            []models.ProjectLink       `json:"links"`
	PrimaryDemo      *models.ProjectLink        `json:"primaryDemo,omitempty"`
	PrimaryGithub    *models.ProjectLink        `json:"primaryGithub,omitempty"`
	Keywords         []string                   `json:"keywords"`
	Category         string                     `json:"category"`
}

// Resolve merges a project's locale independent fields with the text of the
// chosen locale. It never fails: every project carries every locale.
func Resolve(project models.Project, locale models.Locale) LocalizedView {
	p := project.Clone()
	text := p.Translations.For(locale)

	view := LocalizedView{
		ID:               p.ID,
		Slug:             p.Slug,
		Locale:           locale,
		Dir:              locale.Dir(),
		Status:           p.Status,
		Featured:         p.Featured,
		Priority:         p.Priority,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		LastUpdated:      p.LastUpdated,
		Title:            text.Title,
		Description:      text.Description,
		ShortDescription: text.ShortDescription,
		Features:         nonNil(text.Features),
		Challenges:       nonNil(text.Challenges),
		Learnings:        nonNil(text.Learnings),
		Thumbnail:        p.Thumbnail,
		Images:           localizeImages(p.Images, text.Images),
		Video:            p.Video,
		Technologies:     nonNil(p.Technologies),
		TechnologyGroups: GroupTechnologies(p.Technologies),
		Links:            nonNil(p.Links),
		Keywords:         nonNil(p.SEO.Keywords),
		Category:         p.SEO.Category,
	}
	if link, ok := p.PrimaryLink(models.LinkDemo); ok {
		view.PrimaryDemo = &link
	}
	if link, ok := p.PrimaryLink(models.LinkGithub); ok {
		view.PrimaryGithub = &link
	}
	return view
}

// ResolveAll resolves a listing, keeping its order.
func ResolveAll(projects []models.Project, locale models.Locale) []LocalizedView {
	views := make([]LocalizedView, 0, len(projects))
	for _, p := range projects {
		views = append(views, Resolve(p, locale))
	}
	return views
}

// Captions line up with images by position. Images past the end of the
// caption list keep their own alt text and get no caption.
func localizeImages(images []models.ProjectImage, captions []models.ImageCaption) []LocalizedImage {
	localized := make([]LocalizedImage, 0, len(images))
	for i, img := range images {
		li := LocalizedImage{
			Src:    img.Src,
			Alt:    img.Alt,
			Width:  img.Width,
			Height: img.Height,
		}
		if i < len(captions) {
			if captions[i].Alt != "" {
				li.Alt = captions[i].Alt
			}
			li.Caption = captions[i].Caption
		}
		localized = append(localized, li)
	}
	return localized
}

// GroupTechnologies buckets technologies by category in display order,
// skipping empty categories.
func GroupTechnologies(technologies []models.ProjectTechnology) []TechnologyGroup {
	groups := []TechnologyGroup{}
	for _, category := range models.TechnologyCategories {
		var members []models.ProjectTechnology
		for _, tech := range technologies {
			if tech.Category == category {
				members = append(members, tech)
			}
		}
		if len(members) > 0 {
			groups = append(groups, TechnologyGroup{Category: category, Technologies: members})
		}
	}
	return groups
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
