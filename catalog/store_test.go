package catalog

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

func validProject(slug string, priority int) models.Project {
	start, _ := models.ParseDate("2024-01-01")
	translation := models.ProjectTranslation{
		Title:            slug + " title",
		Description:      slug + " description",
		ShortDescription: slug + " short",
		Features:         []string{"feature"},
	}
	return models.Project{
		ID:          uuid.New(),
		Slug:        slug,
		Status:      models.StatusCompleted,
		Priority:    priority,
		StartDate:   start,
		LastUpdated: start,
		Thumbnail:   models.ProjectImage{Src: "/images/" + slug + ".png", Alt: slug},
		Translations: models.Translations{
			EN: translation,
			AR: translation,
		},
		SEO: models.ProjectSEO{Category: "web"},
	}
}

func Test_EmbeddedCatalogLoads(t *testing.T) {
	store, err := LoadEmbedded()

	require.NoError(t, err)
	assert.Equal(t, 4, store.Len())
	assert.Same(t, Default(), Default())
}

func Test_AllProjectsOrderedByPriorityStable(t *testing.T) {
	store := Default()

	assert.Equal(t, []string{
		"sillalink-company",
		"sentora-perfume-store",
		"dbhamz-perfumes-website",
		"daraa-shop",
	}, store.Slugs())

	projects := store.AllProjects()
	for i := 1; i < len(projects); i++ {
		assert.LessOrEqual(t, projects[i-1].Priority, projects[i].Priority)
	}
}

func Test_NewKeepsInputOrderOnTies(t *testing.T) {
	store, err := New([]models.Project{
		validProject("c", 2),
		validProject("a", 1),
		validProject("b", 2),
		validProject("d", 1),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "c", "b"}, store.Slugs())
}

func Test_NewDoesNotAliasInput(t *testing.T) {
	projects := []models.Project{validProject("alpha", 1)}
	projects[0].SEO.Keywords = []string{"original"}

	store, err := New(projects)
	require.NoError(t, err)

	projects[0].SEO.Keywords[0] = "changed"
	got, ok := store.FindBySlug("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"original"}, got.SEO.Keywords)

	got.SEO.Keywords[0] = "changed again"
	again, _ := store.FindBySlug("alpha")
	assert.Equal(t, []string{"original"}, again.SEO.Keywords)
}

func Test_ValidateRejectsMalformedCatalog(t *testing.T) {
	duplicateSlug := validProject("same", 2)
	duplicateID := validProject("other", 3)

	type testCase struct {
		name   string
		mutate func(projects []models.Project)
		want   error
	}
	testcases := []testCase{
		{"duplicate slug", func(ps []models.Project) { ps[1].Slug = ps[0].Slug }, errs.ErrDuplicateSlug},
		{"duplicate id", func(ps []models.Project) { ps[1].ID = ps[0].ID }, errs.ErrDuplicateID},
		{"missing id", func(ps []models.Project) { ps[0].ID = uuid.Nil }, errs.ErrMissingID},
		{"unsafe slug", func(ps []models.Project) { ps[0].Slug = "Not Safe" }, errs.ErrInvalidSlug},
		{"trailing hyphen", func(ps []models.Project) { ps[0].Slug = "slug-" }, errs.ErrInvalidSlug},
		{"missing arabic title", func(ps []models.Project) { ps[0].Translations.AR.Title = "" }, errs.ErrMissingTranslation},
		{"missing english short description", func(ps []models.Project) { ps[0].Translations.EN.ShortDescription = "" }, errs.ErrMissingTranslation},
		{"unknown status", func(ps []models.Project) { ps[0].Status = "paused" }, errs.ErrInvalidStatus},
		{"unknown technology category", func(ps []models.Project) {
			ps[0].Technologies = []models.ProjectTechnology{{Name: "Go", Category: "systems"}}
		}, errs.ErrInvalidTechCategory},
		{"unknown link type", func(ps []models.Project) {
			ps[0].Links = []models.ProjectLink{{Type: "blog", URL: "https://example.com"}}
		}, errs.ErrInvalidLinkType},
		{"unknown video type", func(ps []models.Project) {
			ps[0].Video = &models.ProjectVideo{Src: "/v.avi", Type: "avi"}
		}, errs.ErrInvalidVideoType},
		{"end before start", func(ps []models.Project) {
			end, _ := models.ParseDate("2023-12-31")
			ps[0].EndDate = &end
		}, errs.ErrInvalidDateRange},
		{"missing start date", func(ps []models.Project) { ps[0].StartDate = models.Date{} }, errs.ErrMissingDate},
		{"empty thumbnail", func(ps []models.Project) { ps[0].Thumbnail.Src = "" }, errs.ErrMissingThumbnail},
		{"image without source", func(ps []models.Project) { ps[0].Images = []models.ProjectImage{{Alt: "x"}} }, errs.ErrMissingImageSource},
		{"missing category", func(ps []models.Project) { ps[0].SEO.Category = "" }, errs.ErrMissingCategory},
		{"blank category", func(ps []models.Project) { ps[0].SEO.Category = "  " }, errs.ErrMissingCategory},
		{"more captions than images", func(ps []models.Project) {
			ps[0].Translations.EN.Images = []models.ImageCaption{{Alt: "orphan"}}
		}, errs.ErrCaptionOverflow},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			projects := []models.Project{validProject("first", 1), duplicateSlug, duplicateID}
			tc.mutate(projects)

			_, err := New(projects)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)

			var catalogErr *errs.CatalogError
			assert.True(t, errors.As(err, &catalogErr))
		})
	}
}

func Test_EmptyEndDateIsAbsent(t *testing.T) {
	p := validProject("open-ended", 1)
	p.EndDate = &models.Date{}

	store, err := New([]models.Project{p})
	require.NoError(t, err)

	got, ok := store.FindBySlug("open-ended")
	require.True(t, ok)
	assert.Nil(t, got.EndDate)

	decoded, err := decode([]byte("projects:\n  - slug: \"x\"\n    endDate: \"\"\n"))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Nil(t, decoded[0].EndDate)
}

func Test_LenCountsProjects(t *testing.T) {
	store, err := New([]models.Project{validProject("a", 1), validProject("b", 2)})

	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, len(Default().AllProjects()), Default().Len())
}

func Test_ValidateReportsEveryProblem(t *testing.T) {
	broken := validProject("Broken Slug", 1)
	broken.Status = "unknown"
	broken.Thumbnail.Src = ""

	err := Validate([]models.Project{broken})

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3)
}

func Test_ValidateAcceptsShortCaptionList(t *testing.T) {
	p := validProject("gallery", 1)
	p.Images = []models.ProjectImage{{Src: "/a.png", Alt: "a"}, {Src: "/b.png", Alt: "b"}}
	p.Translations.EN.Images = []models.ImageCaption{{Alt: "first"}}

	assert.NoError(t, Validate([]models.Project{p}))
}

func Test_ValidateRejectsEmptyCatalog(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), errs.ErrEmptyCatalog)
}

func Test_ParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("projects:\n  - slug: \"x\"\n    colour: \"red\"\n"))

	assert.Error(t, err)
}

func Test_LoadFileMissing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/missing.yaml")

	assert.Error(t, err)
}

func Test_ConcurrentReads(t *testing.T) {
	store := Default()
	want := store.Slugs()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, store.Slugs())
			_, ok := store.FindBySlug("daraa-shop")
			assert.True(t, ok)
			assert.Len(t, store.FeaturedProjects(), 3)
		}()
	}
	wg.Wait()
}
