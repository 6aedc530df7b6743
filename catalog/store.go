package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-memdb"
	"github.com/rpupo63/portfolio-backend/models"
)

const (
	projectTable = "project"

	indexRank       = "id"
	indexUUID       = "uuid"
	indexSlug       = "slug"
	indexFeatured   = "featured"
	indexCategory   = "category"
	indexStatus     = "status"
	indexTechnology = "technology"
)

// projectRecord is what the memdb table stores. Rank is the project's position
// after sorting by priority, zero padded so that every index iterates in
// priority order.
type projectRecord struct {
	Rank         string
	UUID         string
	Slug         string
	Featured     bool
	Category     string
	Status       string
	Technologies []string
	Project      models.Project
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			projectTable: {
				Name: projectTable,
				Indexes: map[string]*memdb.IndexSchema{
					indexRank: {
						Name:    indexRank,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Rank"},
					},
					indexUUID: {
						Name:    indexUUID,
						Unique:  true,
						Indexer: &memdb.UUIDFieldIndex{Field: "UUID"},
					},
					indexSlug: {
						Name:    indexSlug,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Slug"},
					},
					indexFeatured: {
						Name:    indexFeatured,
						Indexer: &memdb.BoolFieldIndex{Field: "Featured"},
					},
					indexCategory: {
						Name:    indexCategory,
						Indexer: &memdb.StringFieldIndex{Field: "Category"},
					},
					indexStatus: {
						Name:    indexStatus,
						Indexer: &memdb.StringFieldIndex{Field: "Status"},
					},
					indexTechnology: {
						Name:         indexTechnology,
						AllowMissing: true,
						Indexer:      &memdb.StringSliceFieldIndex{Field: "Technologies", Lowercase: true},
					},
				},
			},
		},
	}
}

// Store is the immutable project catalog. It only ever opens read
// transactions after New returns, so it is safe for concurrent use.
type Store struct {
	db    *memdb.MemDB
	count int
}

// New validates projects and indexes them. Ties on priority keep input order.
func New(projects []models.Project) (*Store, error) {
	if err := Validate(projects); err != nil {
		return nil, err
	}

	ordered := make([]models.Project, len(projects))
	for i, p := range projects {
		ordered[i] = p.Clone()
		ordered[i].EndDate = models.OptionalDate(ordered[i].EndDate)
	}
	slices.SortStableFunc(ordered, func(a, b models.Project) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("create catalog db: %w", err)
	}

	txn := db.Txn(true)
	defer txn.Abort()

	for i, p := range ordered {
		if err := txn.Insert(projectTable, newRecord(i, p)); err != nil {
			return nil, fmt.Errorf("index project %q: %w", p.Slug, err)
		}
	}
	txn.Commit()

	return &Store{db: db, count: len(ordered)}, nil
}

func newRecord(rank int, p models.Project) *projectRecord {
	techs := make([]string, 0, len(p.Technologies))
	for _, tech := range p.Technologies {
		techs = append(techs, strings.TrimSpace(tech.Name))
	}
	return &projectRecord{
		Rank:         fmt.Sprintf("%06d", rank),
		UUID:         p.ID.String(),
		Slug:         p.Slug,
		Featured:     p.Featured,
		Category:     p.SEO.Category,
		Status:       string(p.Status),
		Technologies: techs,
		Project:      p,
	}
}

// list runs an index scan. The schema is fixed, so a lookup error is a bug
// in this package rather than a runtime condition.
func (s *Store) list(index string, args ...any) []models.Project {
	txn := s.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(projectTable, index, args...)
	if err != nil {
		panic(fmt.Sprintf("catalog: scan %s: %v", index, err))
	}

	projects := []models.Project{}
	for obj := it.Next(); obj != nil; obj = it.Next() {
		projects = append(projects, obj.(*projectRecord).Project.Clone())
	}
	return projects
}

func (s *Store) first(index string, arg any) (models.Project, bool) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(projectTable, index, arg)
	if err != nil {
		panic(fmt.Sprintf("catalog: lookup %s: %v", index, err))
	}
	if obj == nil {
		return models.Project{}, false
	}
	return obj.(*projectRecord).Project.Clone(), true
}
