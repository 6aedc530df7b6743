package catalog

import (
	"net/url"
	"strings"

	"github.com/go-openapi/strfmt"
	"github.com/hashicorp/go-multierror"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// ValidateProfile checks the profile document and reports every problem.
func ValidateProfile(p models.Profile) error {
	if p.Author.Name == "" && len(p.Skills) == 0 && len(p.Experience) == 0 {
		return errs.ErrEmptyProfile
	}

	var result *multierror.Error
	fail := func(section string, index int, err error) {
		result = multierror.Append(result, errs.NewProfileError(section, index, err))
	}

	if strings.TrimSpace(p.Author.Name) == "" {
		fail("author", -1, errs.Catalogf(errs.ErrMissingField, "name"))
	}
	if p.Author.Email != "" && !strfmt.IsEmail(p.Author.Email) {
		fail("author", -1, errs.Catalogf(errs.ErrInvalidEmail, "%q", p.Author.Email))
	}

	for _, locale := range models.SupportedLocales {
		text := p.Translations.For(locale)
		required := []struct {
			field string
			value string
		}{
			{"jobTitle", text.JobTitle},
			{"headline", text.Headline},
			{"bio", text.Bio},
		}
		for _, r := range required {
			if r.value == "" {
				fail("translations", -1, errs.Catalogf(errs.ErrMissingTranslation, "%s.%s", locale, r.field))
			}
		}
	}

	for i, link := range p.SocialLinks {
		if link.Name == "" {
			fail("socialLinks", i, errs.Catalogf(errs.ErrMissingField, "name"))
		}
		if !validURL(link.URL) {
			fail("socialLinks", i, errs.Catalogf(errs.ErrInvalidURL, "%q", link.URL))
		}
	}

	skills := map[string]int{}
	for i, skill := range p.Skills {
		key := strings.ToLower(strings.TrimSpace(skill.Name))
		if key == "" {
			fail("skills", i, errs.Catalogf(errs.ErrMissingField, "name"))
		} else if first, seen := skills[key]; seen {
			fail("skills", i, errs.Catalogf(errs.ErrDuplicateEntry, "%q already listed at #%d", skill.Name, first))
		} else {
			skills[key] = i
		}
		if !skill.Level.Valid() {
			fail("skills", i, errs.Catalogf(errs.ErrInvalidSkillLevel, "%q", skill.Level))
		}
		if !skill.Category.Valid() {
			fail("skills", i, errs.Catalogf(errs.ErrInvalidSkillCategory, "%q", skill.Category))
		}
	}

	experienceIDs := map[string]bool{}
	for i, e := range p.Experience {
		for _, err := range validateEntry(experienceIDs, e.ID, e.StartDate, e.EndDate) {
			fail("experience", i, err)
		}
		if e.Company == "" {
			fail("experience", i, errs.Catalogf(errs.ErrMissingField, "company"))
		}
		for _, locale := range models.SupportedLocales {
			text := e.Translations.For(locale)
			if text.Position == "" {
				fail("experience", i, errs.Catalogf(errs.ErrMissingTranslation, "%s.position", locale))
			}
			if text.Description == "" {
				fail("experience", i, errs.Catalogf(errs.ErrMissingTranslation, "%s.description", locale))
			}
		}
	}

	educationIDs := map[string]bool{}
	for i, e := range p.Education {
		for _, err := range validateEntry(educationIDs, e.ID, e.StartDate, e.EndDate) {
			fail("education", i, err)
		}
		if e.Institution == "" {
			fail("education", i, errs.Catalogf(errs.ErrMissingField, "institution"))
		}
		for _, locale := range models.SupportedLocales {
			if e.Translations.For(locale).Degree == "" {
				fail("education", i, errs.Catalogf(errs.ErrMissingTranslation, "%s.degree", locale))
			}
		}
	}

	certificationIDs := map[string]bool{}
	for i, c := range p.Certifications {
		for _, err := range validateEntry(certificationIDs, c.ID, c.IssueDate, c.ExpiryDate) {
			fail("certifications", i, err)
		}
		if c.Name == "" {
			fail("certifications", i, errs.Catalogf(errs.ErrMissingField, "name"))
		}
		if c.Issuer == "" {
			fail("certifications", i, errs.Catalogf(errs.ErrMissingField, "issuer"))
		}
		if c.CredentialURL != "" && !validURL(c.CredentialURL) {
			fail("certifications", i, errs.Catalogf(errs.ErrInvalidURL, "%q", c.CredentialURL))
		}
	}

	return result.ErrorOrNil()
}

// validateEntry checks the id and date range shared by every dated list entry.
func validateEntry(ids map[string]bool, id string, start models.Date, end *models.Date) []error {
	var problems []error
	switch {
	case id == "":
		problems = append(problems, errs.Catalogf(errs.ErrMissingField, "id"))
	case ids[id]:
		problems = append(problems, errs.Catalogf(errs.ErrDuplicateEntry, "id %q", id))
	default:
		ids[id] = true
	}
	if start.IsZero() {
		problems = append(problems, errs.ErrMissingDate)
	} else if end != nil && !end.IsZero() && end.Before(start.Time) {
		problems = append(problems, errs.Catalogf(errs.ErrInvalidDateRange, "%s < %s", end, start))
	}
	return problems
}

// validURL accepts absolute http(s) URLs and mailto links.
func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return strfmt.IsEmail(u.Opaque)
	}
	return false
}
