package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/models"
)

// AllProjects returns every project in ascending priority order.
func (s *Store) AllProjects() []models.Project {
	return s.list(indexRank)
}

// FindBySlug looks a project up by exact slug. A miss is reported through the
// boolean, not as an error.
func (s *Store) FindBySlug(slug string) (models.Project, bool) {
	return s.first(indexSlug, slug)
}

func (s *Store) FindByID(id uuid.UUID) (models.Project, bool) {
	if id == uuid.Nil {
		return models.Project{}, false
	}
	return s.first(indexUUID, id.String())
}

func (s *Store) FeaturedProjects() []models.Project {
	return s.list(indexFeatured, true)
}

func (s *Store) OtherProjects() []models.Project {
	return s.list(indexFeatured, false)
}

// ByCategory matches the SEO category exactly.
func (s *Store) ByCategory(category string) []models.Project {
	return s.list(indexCategory, category)
}

func (s *Store) ByStatus(status models.ProjectStatus) []models.Project {
	return s.list(indexStatus, string(status))
}

// ByTechnology matches technology names case-insensitively.
func (s *Store) ByTechnology(name string) []models.Project {
	return s.list(indexTechnology, strings.TrimSpace(name))
}

// Categories lists distinct SEO categories in the order they first appear.
func (s *Store) Categories() []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range s.AllProjects() {
		if seen[p.SEO.Category] {
			continue
		}
		seen[p.SEO.Category] = true
		categories = append(categories, p.SEO.Category)
	}
	return categories
}

func (s *Store) Slugs() []string {
	projects := s.AllProjects()
	slugs := make([]string, 0, len(projects))
	for _, p := range projects {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

func (s *Store) Len() int {
	return s.count
}

// ProjectFilter narrows a listing. Zero fields match everything.
type ProjectFilter struct {
	Category   string
	Status     models.ProjectStatus
	Technology string
	Featured   *bool
}

func (f ProjectFilter) IsZero() bool {
	return f.Category == "" && f.Status == "" && strings.TrimSpace(f.Technology) == "" && f.Featured == nil
}

// Matches reports whether p passes every set field of the filter.
func (f ProjectFilter) Matches(p models.Project) bool {
	if f.Category != "" && p.SEO.Category != f.Category {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if strings.TrimSpace(f.Technology) != "" && !p.UsesTechnology(f.Technology) {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

// Filter scans the most selective index available and applies the rest of
// the filter in memory. Results stay in priority order.
func (s *Store) Filter(f ProjectFilter) []models.Project {
	var candidates []models.Project
	switch {
	case f.Category != "":
		candidates = s.ByCategory(f.Category)
	case f.Status != "":
		candidates = s.ByStatus(f.Status)
	case strings.TrimSpace(f.Technology) != "":
		candidates = s.ByTechnology(f.Technology)
	case f.Featured != nil:
		candidates = s.list(indexFeatured, *f.Featured)
	default:
		return s.AllProjects()
	}

	matched := []models.Project{}
	for _, p := range candidates {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
