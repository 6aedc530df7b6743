package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/rpupo63/portfolio-backend/models"
	"sigs.k8s.io/yaml"
)

//go:embed data/profile.yaml
var embeddedProfile []byte

type profileDocument struct {
	Profile *models.Profile `json:"profile"`
}

func decodeProfile(data []byte) (models.Profile, error) {
	var doc profileDocument
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	if doc.Profile == nil {
		return models.Profile{}, nil
	}

	p := *doc.Profile
	for i := range p.Experience {
		p.Experience[i].EndDate = models.OptionalDate(p.Experience[i].EndDate)
	}
	for i := range p.Education {
		p.Education[i].EndDate = models.OptionalDate(p.Education[i].EndDate)
	}
	for i := range p.Certifications {
		p.Certifications[i].ExpiryDate = models.OptionalDate(p.Certifications[i].ExpiryDate)
	}
	return p, nil
}

// ParseProfile decodes a profile document and validates it.
func ParseProfile(data []byte) (models.Profile, error) {
	p, err := decodeProfile(data)
	if err != nil {
		return models.Profile{}, err
	}
	if err := ValidateProfile(p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// EmbeddedProfile returns a copy of the profile document compiled into the binary.
func EmbeddedProfile() []byte {
	return append([]byte(nil), embeddedProfile...)
}

func LoadProfileFile(path string) (models.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read profile file %s: %w", path, err)
	}
	return ParseProfile(data)
}

var defaultProfile = sync.OnceValue(func() models.Profile {
	p, err := ParseProfile(embeddedProfile)
	if err != nil {
		panic(fmt.Sprintf("embedded profile is invalid: %v", err))
	}
	return p
})

// DefaultProfile returns a copy of the embedded profile, parsed on first use.
// It panics if the embedded data is malformed.
func DefaultProfile() models.Profile {
	return defaultProfile().Clone()
}
