package models

import "slices"

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

func (l SkillLevel) Valid() bool {
	switch l {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillExpert:
		return true
	}
	return false
}

type SkillCategory string

const (
	SkillFrontend SkillCategory = "frontend"
	SkillBackend  SkillCategory = "backend"
	SkillDatabase SkillCategory = "database"
	SkillDevOps   SkillCategory = "devops"
	SkillDesign   SkillCategory = "design"
	SkillOther    SkillCategory = "other"
)

// SkillCategories is the order skill groups are displayed in.
var SkillCategories = []SkillCategory{
	SkillFrontend, SkillBackend, SkillDatabase, SkillDevOps, SkillDesign, SkillOther,
}

func (c SkillCategory) Valid() bool {
	return slices.Contains(SkillCategories, c)
}

type Skill struct {
	Name     string        `json:"name"`
	Level    SkillLevel    `json:"level"`
	Category SkillCategory `json:"category"`
	Icon     string        `json:"icon,omitempty"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// Author identifies the portfolio owner. Account fields are handles, not URLs.
type Author struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Image    string `json:"image,omitempty"`
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

type Address struct {
	Locality string `json:"locality,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
}

// ProfileText is the owner's introduction in one locale.
type ProfileText struct {
	JobTitle   string   `json:"jobTitle"`
	Headline   string   `json:"headline"`
	Bio        string   `json:"bio"`
	KnowsAbout []string `json:"knowsAbout,omitempty"`
}

type ExperienceText struct {
	Position     string   `json:"position"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements,omitempty"`
}

// Experience is one position held. A nil EndDate means it is current.
type Experience struct {
	ID           string                    `json:"id"`
	Company      string                    `json:"company"`
	StartDate    Date                      `json:"startDate"`
	EndDate      *Date                     `json:"endDate,omitempty"`
	Technologies []string                  `json:"technologies,omitempty"`
	Translations Localized[ExperienceText] `json:"translations"`
}

type EducationText struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID           string                   `json:"id"`
	Institution  string                   `json:"institution"`
	StartDate    Date                     `json:"startDate"`
	EndDate      *Date                    `json:"endDate,omitempty"`
	GPA          string                   `json:"gpa,omitempty"`
	Translations Localized[EducationText] `json:"translations"`
}

type Certification struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	IssueDate     Date   `json:"issueDate"`
	ExpiryDate    *Date  `json:"expiryDate,omitempty"`
	CredentialID  string `json:"credentialId,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`
}

// Profile is the portfolio owner's about page: who they are, what they know
// and where they have worked.
type Profile struct {
	Author         Author                 `json:"author"`
	WorksFor       string                 `json:"worksFor,omitempty"`
	AlumniOf       string                 `json:"alumniOf,omitempty"`
	Address        *Address               `json:"address,omitempty"`
	SocialLinks    []SocialLink           `json:"socialLinks"`
	Skills         []Skill                `json:"skills"`
	Experience     []Experience           `json:"experience"`
	Education      []Education            `json:"education"`
	Certifications []Certification        `json:"certifications"`
	Translations   Localized[ProfileText] `json:"translations"`
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	c := p
	if p.Address != nil {
		address := *p.Address
		c.Address = &address
	}
	c.SocialLinks = slices.Clone(p.SocialLinks)
	c.Skills = slices.Clone(p.Skills)
	c.Translations.EN.KnowsAbout = slices.Clone(p.Translations.EN.KnowsAbout)
	c.Translations.AR.KnowsAbout = slices.Clone(p.Translations.AR.KnowsAbout)

	c.Experience = make([]Experience, len(p.Experience))
	for i, e := range p.Experience {
		e.EndDate = cloneDate(e.EndDate)
		e.Technologies = slices.Clone(e.Technologies)
		e.Translations.EN.Achievements = slices.Clone(e.Translations.EN.Achievements)
		e.Translations.AR.Achievements = slices.Clone(e.Translations.AR.Achievements)
		c.Experience[i] = e
	}
	c.Education = make([]Education, len(p.Education))
	for i, e := range p.Education {
		e.EndDate = cloneDate(e.EndDate)
		c.Education[i] = e
	}
	c.Certifications = make([]Certification, len(p.Certifications))
	for i, cert := range p.Certifications {
		cert.ExpiryDate = cloneDate(cert.ExpiryDate)
		c.Certifications[i] = cert
	}
	return c
}

func cloneDate(d *Date) *Date {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
