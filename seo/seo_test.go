package seo

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/catalog"
	"github.com/rpupo63/portfolio-backend/i18n"
	"github.com/rpupo63/portfolio-backend/models"
)

func testSite() Site {
	site := DefaultSite()
	site.URL = "https://example.com/"
	return site
}

func sentoraView(t *testing.T, locale models.Locale) i18n.LocalizedView {
	t.Helper()
	p, ok := catalog.Default().FindBySlug("sentora-perfume-store")
	require.True(t, ok)
	return i18n.Resolve(p, locale)
}

func Test_ProjectMetadata(t *testing.T) {
	view := sentoraView(t, models.LocaleEN)

	meta := ProjectMetadata(view)

	assert.Equal(t, "Sentora – Luxury Perfume Store", meta.Title)
	assert.Equal(t, view.ShortDescription, meta.Description)
	assert.Equal(t, strings.Join(view.Keywords, ", "), meta.Keywords)
	require.NotNil(t, meta.SocialImage)
	assert.Equal(t, view.Thumbnail, *meta.SocialImage)
}

func Test_ProjectMetadataArabic(t *testing.T) {
	p, _ := catalog.Default().FindBySlug("sentora-perfume-store")

	meta := ProjectMetadata(i18n.Resolve(p, models.LocaleAR))

	assert.Equal(t, p.Translations.AR.Title, meta.Title)
	assert.Equal(t, p.Translations.AR.ShortDescription, meta.Description)
}

func Test_NotFoundMetadata(t *testing.T) {
	assert.Equal(t, Metadata{
		Title:       "Project Not Found",
		Description: "The requested project could not be found.",
	}, NotFoundMetadata())
}

func Test_BuildHead(t *testing.T) {
	site := testSite()
	view := sentoraView(t, models.LocaleAR)

	head := BuildHead(site, view)

	assert.Equal(t, view.Title+" | Portfolio", head.Title)
	assert.Equal(t, "https://example.com/ar/projects/sentora-perfume-store", head.Canonical)
	assert.Equal(t, "rtl", head.Dir)
	assert.Equal(t, []Alternate{
		{HrefLang: "en", Href: "https://example.com/en/projects/sentora-perfume-store"},
		{HrefLang: "ar", Href: "https://example.com/ar/projects/sentora-perfume-store"},
		{HrefLang: "x-default", Href: "https://example.com/en/projects/sentora-perfume-store"},
	}, head.Alternates)

	require.Len(t, head.OpenGraph.Images, 1)
	assert.Equal(t, "https://example.com/images/projects/sentora/sentora.png", head.OpenGraph.Images[0].URL)
	assert.Equal(t, 800, head.OpenGraph.Images[0].Width)
	assert.Equal(t, "ar", head.OpenGraph.Locale)
	assert.Equal(t, "summary_large_image", head.Twitter.Card)
	assert.Equal(t, view.Title, head.Twitter.Title)
}

func Test_PageTitle(t *testing.T) {
	site := testSite()

	assert.Equal(t, "About | Portfolio", PageTitle(site, "About"))
	assert.Equal(t, site.Title, PageTitle(site, ""))
}

func Test_StructuredData(t *testing.T) {
	site := testSite()
	view := sentoraView(t, models.LocaleEN)

	work := ProjectStructuredData(site, view)
	assert.Equal(t, "CreativeWork", work.Type)
	assert.Equal(t, "https://sentora.com", work.URL)
	assert.Equal(t, "https://github.com/yourusername/sentora-perfume-store", work.CodeRepository)
	assert.Equal(t, "2025-01-15", work.DateCreated)
	assert.Contains(t, work.ProgrammingLanguage, "Next.js")
	assert.Equal(t, "e-commerce", work.Genre)

	crumbs := ProjectBreadcrumbs(site, view)
	require.Len(t, crumbs.ItemListElement, 3)
	assert.Equal(t, 3, crumbs.ItemListElement[2].Position)
	assert.Equal(t, "Projects", crumbs.ItemListElement[1].Name)
	assert.Equal(t, BuildHead(site, view).Canonical, crumbs.ItemListElement[2].Item)
}

func Test_StructuredDataSkipsEmptyDemoURL(t *testing.T) {
	site := testSite()
	p, ok := catalog.Default().FindBySlug("daraa-shop")
	require.True(t, ok)

	work := ProjectStructuredData(site, i18n.Resolve(p, models.LocaleEN))

	assert.Equal(t, "https://example.com/en/projects/daraa-shop", work.URL)
}

func Test_PersonStructuredData(t *testing.T) {
	site := testSite()
	view := i18n.ResolveProfile(catalog.DefaultProfile(), models.LocaleAR)

	person := PersonStructuredData(site, view)

	assert.Equal(t, "Person", person.Type)
	assert.Equal(t, "Your Name", person.Name)
	assert.Equal(t, "https://example.com/ar", person.URL)
	assert.Equal(t, "https://example.com/profile-image.jpg", person.Image)
	assert.Equal(t, "مطور ويب", person.JobTitle)
	assert.Equal(t, []string{
		"https://github.com/yourusername",
		"https://linkedin.com/in/yourusername",
		"https://twitter.com/yourusername",
	}, person.SameAs)
	require.NotNil(t, person.WorksFor)
	assert.Equal(t, "Freelance", person.WorksFor.Name)
	require.NotNil(t, person.AlumniOf)
	assert.Equal(t, "EducationalOrganization", person.AlumniOf.Type)
	require.NotNil(t, person.Address)
	assert.Equal(t, "San Francisco", person.Address.AddressLocality)
}

func Test_PersonStructuredDataOmitsMissingParts(t *testing.T) {
	person := PersonStructuredData(testSite(), i18n.ResolveProfile(models.Profile{Author: models.Author{Name: "Jane"}}, models.LocaleEN))

	assert.Nil(t, person.WorksFor)
	assert.Nil(t, person.AlumniOf)
	assert.Nil(t, person.Address)
	assert.Empty(t, person.SameAs)
}

func Test_WebsiteStructuredData(t *testing.T) {
	website := WebsiteStructuredData(testSite(), models.LocaleEN)

	assert.Equal(t, "WebSite", website.Type)
	assert.Equal(t, "https://example.com/en", website.URL)
	assert.Equal(t, "en", website.InLanguage)
	assert.Equal(t, "Portfolio", website.Name)
	assert.Equal(t, "Your Name", website.Author.Name)
}

func Test_Sitemap(t *testing.T) {
	site := testSite()
	projects := catalog.Default().AllProjects()

	body, err := Sitemap(site, projects)
	require.NoError(t, err)

	var parsed struct {
		URLs []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(body, &parsed))
	assert.Len(t, parsed.URLs, 2*len(models.SupportedLocales)+len(projects)*len(models.SupportedLocales))
	assert.Contains(t, string(body), "<loc>https://example.com/ar/projects/daraa-shop</loc>")
	assert.Contains(t, string(body), `hreflang="x-default"`)
}
