package i18n

import (
	"github.com/rpupo63/portfolio-backend/models"
)

type SkillGroup struct {
	Category models.SkillCategory `json:"category"`
	Skills   []models.Skill       `json:"skills"`
}

type ExperienceView struct {
	ID           string       `json:"id"`
	Company      string       `json:"company"`
	Position     string       `json:"position"`
	Description  string       `json:"description"`
	Achievements []string     `json:"achievements"`
	Technologies []string     `json:"technologies"`
	StartDate    models.Date  `json:"startDate"`
	EndDate      *models.Date `json:"endDate,omitempty"`
	Current      bool         `json:"current"`
}

type EducationView struct {
	ID          string       `json:"id"`
	Institution string       `json:"institution"`
	Degree      string       `json:"degree"`
	Field       string       `json:"field"`
	Description string       `json:"description,omitempty"`
	GPA         string       `json:"gpa,omitempty"`
	StartDate   models.Date  `json:"startDate"`
	EndDate     *models.Date `json:"endDate,omitempty"`
}

// ProfileView is the owner profile as it is presented in a single locale.
type ProfileView struct {
	Locale         models.Locale          `json:"locale"`
	Dir            string                 `json:"dir"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email,omitempty"`
	Image          string                 `json:"image,omitempty"`
	Github         string                 `json:"github,omitempty"`
	Linkedin       string                 `json:"linkedin,omitempty"`
	Twitter        string                 `json:"twitter,omitempty"`
	JobTitle       string                 `json:"jobTitle"`
	Headline       string                 `json:"headline"`
	Bio            string                 `json:"bio"`
	WorksFor       string                 `json:"worksFor,omitempty"`
	AlumniOf       string                 `json:"alumniOf,omitempty"`
	Address        *models.Address        `json:"address,omitempty"`
	KnowsAbout     []string               `json:"knowsAbout"`
	SocialLinks    []models.SocialLink    `json:"socialLinks"`
	SkillGroups    []SkillGroup           `json:"skillGroups"`
	Experience     []ExperienceView       `json:"experience"`
	Education      []EducationView        `json:"education"`
	Certifications []models.Certification `json:"certifications"`
}

// ResolveProfile picks the locale's text for the profile and every entry in it.
func ResolveProfile(profile models.Profile, locale models.Locale) ProfileView {
	p := profile.Clone()
	text := p.Translations.For(locale)

	view := ProfileView{
		Locale:         locale,
		Dir:            locale.Dir(),
		Name:           p.Author.Name,
		Email:          p.Author.Email,
		Image:          p.Author.Image,
		Github:         p.Author.Github,
		Linkedin:       p.Author.Linkedin,
		Twitter:        p.Author.Twitter,
		JobTitle:       text.JobTitle,
		Headline:       text.Headline,
		Bio:            text.Bio,
		WorksFor:       p.WorksFor,
		AlumniOf:       p.AlumniOf,
		Address:        p.Address,
		KnowsAbout:     nonNil(text.KnowsAbout),
		SocialLinks:    nonNil(p.SocialLinks),
		SkillGroups:    GroupSkills(p.Skills),
		Experience:     make([]ExperienceView, 0, len(p.Experience)),
		Education:      make([]EducationView, 0, len(p.Education)),
		Certifications: nonNil(p.Certifications),
	}

	for _, e := range p.Experience {
		t := e.Translations.For(locale)
		view.Experience = append(view.Experience, ExperienceView{
			ID:           e.ID,
			Company:      e.Company,
			Position:     t.Position,
			Description:  t.Description,
			Achievements: nonNil(t.Achievements),
			Technologies: nonNil(e.Technologies),
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Current:      e.EndDate == nil,
		})
	}
	for _, e := range p.Education {
		t := e.Translations.For(locale)
		view.Education = append(view.Education, EducationView{
			ID:          e.ID,
			Institution: e.Institution,
			Degree:      t.Degree,
			Field:       t.Field,
			Description: t.Description,
			GPA:         e.GPA,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
		})
	}
	return view
}

// GroupSkills buckets skills by category in display order, skipping empty
// categories.
func GroupSkills(skills []models.Skill) []SkillGroup {
	groups := []SkillGroup{}
	for _, category := range models.SkillCategories {
		var members []models.Skill
		for _, skill := range skills {
			if skill.Category == category {
				members = append(members, skill)
			}
		}
		if len(members) > 0 {
			groups = append(groups, SkillGroup{Category: category, Skills: members})
		}
	}
	return groups
}
