package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func slugsOf(projects []models.Project) []string {
	slugs := make([]string, 0, len(projects))
	for _, p := range projects {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

func Test_FindBySlug(t *testing.T) {
	store := Default()

	project, ok := store.FindBySlug("sentora-perfume-store")
	require.True(t, ok)
	assert.Equal(t, "sentora-perfume-store", project.Slug)
	assert.Equal(t, "Sentora – Luxury Perfume Store", project.Translations.EN.Title)

	for _, slug := range []string{"does-not-exist", "", "Sentora-Perfume-Store"} {
		missing, ok := store.FindBySlug(slug)
		assert.False(t, ok, slug)
		assert.Equal(t, models.Project{}, missing)
	}
}

func Test_FindByID(t *testing.T) {
	store := Default()

	project, ok := store.FindByID(uuid.MustParse("3c5e7a9b-2f4d-4a6c-8e1b-5d7f9a1c3e33"))
	require.True(t, ok)
	assert.Equal(t, "sentora-perfume-store", project.Slug)

	_, ok = store.FindByID(uuid.New())
	assert.False(t, ok)
	_, ok = store.FindByID(uuid.Nil)
	assert.False(t, ok)
}

func Test_FeaturedAndOtherPartitionCatalog(t *testing.T) {
	store := Default()

	featured := slugsOf(store.FeaturedProjects())
	other := slugsOf(store.OtherProjects())

	assert.Equal(t, []string{"sillalink-company", "sentora-perfume-store", "dbhamz-perfumes-website"}, featured)
	assert.Equal(t, []string{"daraa-shop"}, other)
	assert.ElementsMatch(t, store.Slugs(), append(append([]string{}, featured...), other...))
	for _, slug := range featured {
		assert.NotContains(t, other, slug)
	}
}

func Test_ByCategory(t *testing.T) {
	store := Default()

	assert.Equal(t,
		[]string{"sentora-perfume-store", "dbhamz-perfumes-website", "daraa-shop"},
		slugsOf(store.ByCategory("e-commerce")))
	assert.Equal(t, []string{"sillalink-company"}, slugsOf(store.ByCategory("company-website")))

	none := store.ByCategory("games")
	assert.NotNil(t, none)
	assert.Empty(t, none)
	assert.Empty(t, store.ByCategory("E-Commerce"))
}

func Test_EveryProjectReachableByCategory(t *testing.T) {
	store := Default()

	reached := 0
	for _, category := range store.Categories() {
		reached += len(store.ByCategory(category))
	}
	assert.Equal(t, store.Len(), reached)
}

func Test_NewRejectsUncategorizedProject(t *testing.T) {
	uncategorized := validProject("a", 1)
	uncategorized.SEO.Category = ""

	_, err := New([]models.Project{uncategorized, validProject("b", 2)})

	assert.ErrorIs(t, err, errs.ErrMissingCategory)
}

func Test_ByStatusAndTechnology(t *testing.T) {
	store := Default()

	assert.Equal(t, []string{"daraa-shop"}, slugsOf(store.ByStatus(models.StatusInProgress)))
	assert.Empty(t, store.ByStatus(models.StatusArchived))

	assert.Equal(t,
		[]string{"sentora-perfume-store", "dbhamz-perfumes-website", "daraa-shop"},
		slugsOf(store.ByTechnology(" mongodb ")))
	assert.Equal(t,
		[]string{"sillalink-company", "sentora-perfume-store", "daraa-shop"},
		slugsOf(store.ByTechnology("NEXT.JS")))
	assert.Empty(t, store.ByTechnology(""))
}

func Test_Filter(t *testing.T) {
	store := Default()
	yes, no := true, false

	type testCase struct {
		name   string
		filter ProjectFilter
		want   []string
	}
	testcases := []testCase{
		{"zero filter", ProjectFilter{}, store.Slugs()},
		{"category and featured", ProjectFilter{Category: "e-commerce", Featured: &yes}, []string{"sentora-perfume-store", "dbhamz-perfumes-website"}},
		{"not featured", ProjectFilter{Featured: &no}, []string{"daraa-shop"}},
		{"status and technology", ProjectFilter{Status: models.StatusCompleted, Technology: "react"}, []string{"dbhamz-perfumes-website"}},
		{"technology only", ProjectFilter{Technology: "Mongo-DB"}, []string{"sillalink-company"}},
		{"nothing matches", ProjectFilter{Category: "company-website", Featured: &no}, []string{}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slugsOf(store.Filter(tc.filter)))
		})
	}
}

func Test_CategoriesInPriorityOrder(t *testing.T) {
	assert.Equal(t, []string{"company-website", "e-commerce"}, Default().Categories())
}

func Test_QueriesAreIdempotent(t *testing.T) {
	store := Default()

	assert.Equal(t, store.AllProjects(), store.AllProjects())
	assert.Equal(t, store.FeaturedProjects(), store.FeaturedProjects())
	assert.Equal(t, store.OtherProjects(), store.OtherProjects())
	assert.Equal(t, store.ByCategory("e-commerce"), store.ByCategory("e-commerce"))

	first, _ := store.FindBySlug("daraa-shop")
	second, _ := store.FindBySlug("daraa-shop")
	assert.Equal(t, first, second)
}
