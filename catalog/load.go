package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/rpupo63/portfolio-backend/models"
	"sigs.k8s.io/yaml"
)

//go:embed data/projects.yaml
var embeddedCatalog []byte

type document struct {
	Projects []models.Project `json:"projects"`
}

// Unknown keys are rejected so typos in the data file surface at startup.
func decode(data []byte) ([]models.Project, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range doc.Projects {
		doc.Projects[i].EndDate = models.OptionalDate(doc.Projects[i].EndDate)
	}
	return doc.Projects, nil
}

// Parse decodes a catalog document and validates every project in it.
func Parse(data []byte) ([]models.Project, error) {
	projects, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := Validate(projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Load decodes data and builds a Store from it.
func Load(data []byte) (*Store, error) {
	projects, err := decode(data)
	if err != nil {
		return nil, err
	}
	return New(projects)
}

// Embedded returns a copy of the catalog document compiled into the binary.
func Embedded() []byte {
	return append([]byte(nil), embeddedCatalog...)
}

// LoadEmbedded builds the Store compiled into the binary.
func LoadEmbedded() (*Store, error) {
	return Load(embeddedCatalog)
}

func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}
	return Load(data)
}

// Default is the process-wide catalog. It is built on first use and panics if
// the embedded data is malformed.
var Default = sync.OnceValue(func() *Store {
	store, err := LoadEmbedded()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return store
})
