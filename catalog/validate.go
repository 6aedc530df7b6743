package catalog

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks catalog integrity and reports every problem it finds, not
// just the first one.
func Validate(projects []models.Project) error {
	if len(projects) == 0 {
		return errs.ErrEmptyCatalog
	}

	var result *multierror.Error
	slugs := make(map[string]int, len(projects))
	ids := make(map[uuid.UUID]int, len(projects))

	for i, p := range projects {
		fail := func(err error) {
			result = multierror.Append(result, errs.NewCatalogError(i, p.Slug, err))
		}

		if p.ID == uuid.Nil {
			fail(errs.ErrMissingID)
		} else if first, seen := ids[p.ID]; seen {
			fail(errs.Catalogf(errs.ErrDuplicateID, "%s already used by project #%d", p.ID, first))
		} else {
			ids[p.ID] = i
		}

		if !slugPattern.MatchString(p.Slug) {
			fail(errs.Catalogf(errs.ErrInvalidSlug, "%q", p.Slug))
		} else if first, seen := slugs[p.Slug]; seen {
			fail(errs.Catalogf(errs.ErrDuplicateSlug, "%q already used by project #%d", p.Slug, first))
		} else {
			slugs[p.Slug] = i
		}

		if strings.TrimSpace(p.SEO.Category) == "" {
			fail(errs.ErrMissingCategory)
		}

		if !p.Status.Valid() {
			fail(errs.Catalogf(errs.ErrInvalidStatus, "%q", p.Status))
		}

		for _, err := range validateDates(p) {
			fail(err)
		}
		for _, err := range validateMedia(p) {
			fail(err)
		}

		for _, tech := range p.Technologies {
			if !tech.Category.Valid() {
				fail(errs.Catalogf(errs.ErrInvalidTechCategory, "%q for %s", tech.Category, tech.Name))
			}
		}
		for _, link := range p.Links {
			if !link.Type.Valid() {
				fail(errs.Catalogf(errs.ErrInvalidLinkType, "%q", link.Type))
			}
		}

		for _, locale := range models.SupportedLocales {
			for _, err := range validateTranslation(p, locale) {
				fail(err)
			}
		}
	}

	return result.ErrorOrNil()
}

func validateDates(p models.Project) []error {
	var problems []error
	if p.StartDate.IsZero() {
		problems = append(problems, errs.Catalogf(errs.ErrMissingDate, "startDate"))
	}
	if p.LastUpdated.IsZero() {
		problems = append(problems, errs.Catalogf(errs.ErrMissingDate, "lastUpdated"))
	}
	if p.EndDate != nil && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate.Time) {
		problems = append(problems, errs.Catalogf(errs.ErrInvalidDateRange, "%s < %s", p.EndDate, p.StartDate))
	}
	return problems
}

func validateMedia(p models.Project) []error {
	var problems []error
	if p.Thumbnail.Src == "" {
		problems = append(problems, errs.ErrMissingThumbnail)
	}
	for i, img := range p.Images {
		if img.Src == "" {
			problems = append(problems, errs.Catalogf(errs.ErrMissingImageSource, "images[%d]", i))
		}
	}
	if p.Video != nil && !p.Video.Type.Valid() {
		problems = append(problems, errs.Catalogf(errs.ErrInvalidVideoType, "%q", p.Video.Type))
	}
	return problems
}

func validateTranslation(p models.Project, locale models.Locale) []error {
	t := p.Translations.For(locale)

	var problems []error
	required := []struct {
		field string
		value string
	}{
		{"title", t.Title},
		{"description", t.Description},
		{"shortDescription", t.ShortDescription},
	}
	for _, r := range required {
		if r.value == "" {
			problems = append(problems, errs.Catalogf(errs.ErrMissingTranslation, "%s.%s", locale, r.field))
		}
	}
	if len(t.Images) > len(p.Images) {
		problems = append(problems, errs.Catalogf(errs.ErrCaptionOverflow, "%s has %d captions for %d images", locale, len(t.Images), len(p.Images)))
	}
	return problems
}
