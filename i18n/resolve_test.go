package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/catalog"
	"github.com/rpupo63/portfolio-backend/models"
)

func Test_ResolvePicksLocaleText(t *testing.T) {
	for _, p := range catalog.Default().AllProjects() {
		for _, locale := range models.SupportedLocales {
			view := Resolve(p, locale)
			text := p.Translations.For(locale)

			assert.Equal(t, text.Title, view.Title)
			assert.Equal(t, text.Description, view.Description)
			assert.Equal(t, text.ShortDescription, view.ShortDescription)
			assert.Equal(t, locale, view.Locale)
			assert.Len(t, view.Images, len(p.Images))
		}
	}
}

func Test_ResolveSentora(t *testing.T) {
	p, ok := catalog.Default().FindBySlug("sentora-perfume-store")
	require.True(t, ok)

	en := Resolve(p, models.LocaleEN)
	ar := Resolve(p, models.LocaleAR)

	assert.Equal(t, "Sentora – Luxury Perfume Store", en.Title)
	assert.Equal(t, p.Translations.AR.Title, ar.Title)
	assert.Equal(t, "ltr", en.Dir)
	assert.Equal(t, "rtl", ar.Dir)
	require.NotNil(t, en.PrimaryDemo)
	assert.Equal(t, "https://sentora.com", en.PrimaryDemo.URL)
	require.NotNil(t, en.PrimaryGithub)
}

func Test_ResolveCaptionFallback(t *testing.T) {
	p, ok := catalog.Default().FindBySlug("daraa-shop")
	require.True(t, ok)

	view := Resolve(p, models.LocaleEN)

	require.Len(t, view.Images, 4)
	assert.Equal(t, "Daraa Shop Landing Page", view.Images[0].Alt)
	assert.Equal(t, "Homepage introducing the platform and offers", view.Images[0].Caption)
	assert.Equal(t, p.Images[3].Alt, view.Images[3].Alt)
	assert.Empty(t, view.Images[3].Caption)
}

func Test_ResolveMissingSectionsAreEmpty(t *testing.T) {
	p := models.Project{
		Slug:   "bare",
		Images: []models.ProjectImage{{Src: "/a.png", Alt: "own alt"}},
		Links: []models.ProjectLink{
			{Type: models.LinkWebsite, URL: "https://a.example"},
			{Type: models.LinkDemo, URL: "https://first.example"},
			{Type: models.LinkDemo, URL: "https://second.example"},
		},
		Translations: models.Translations{
			EN: models.ProjectTranslation{Title: "Bare"},
		},
	}

	view := Resolve(p, models.LocaleEN)

	assert.NotNil(t, view.Challenges)
	assert.Empty(t, view.Challenges)
	assert.NotNil(t, view.Learnings)
	assert.Empty(t, view.Learnings)
	assert.Equal(t, "own alt", view.Images[0].Alt)
	require.NotNil(t, view.PrimaryDemo)
	assert.Equal(t, "https://first.example", view.PrimaryDemo.URL)
	assert.Nil(t, view.PrimaryGithub)
}

func Test_GroupTechnologiesFixedOrder(t *testing.T) {
	groups := GroupTechnologies([]models.ProjectTechnology{
		{Name: "Figma", Category: models.TechDesign},
		{Name: "Go", Category: models.TechBackend},
		{Name: "React", Category: models.TechFrontend},
		{Name: "Postgres", Category: models.TechDatabase},
		{Name: "Vite", Category: models.TechFrontend},
	})

	require.Len(t, groups, 4)
	assert.Equal(t, models.TechFrontend, groups[0].Category)
	assert.Len(t, groups[0].Technologies, 2)
	assert.Equal(t, models.TechBackend, groups[1].Category)
	assert.Equal(t, models.TechDatabase, groups[2].Category)
	assert.Equal(t, models.TechDesign, groups[3].Category)
}
