package errs

import (
	"errors"
	"fmt"
)

// Catalog integrity errors. These surface while the project catalog is built
// and are fatal for the process.
var (
	ErrEmptyCatalog        = errors.New("catalog has no projects")
	ErrDuplicateSlug       = errors.New("duplicate slug")
	ErrDuplicateID         = errors.New("duplicate project id")
	ErrMissingID           = errors.New("missing project id")
	ErrInvalidSlug         = errors.New("slug is not URL-safe")
	ErrMissingTranslation  = errors.New("missing translation")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTechCategory = errors.New("invalid technology category")
	ErrInvalidLinkType     = errors.New("invalid link type")
	ErrInvalidVideoType    = errors.New("invalid video type")
	ErrInvalidDateRange    = errors.New("end date precedes start date")
	ErrMissingDate         = errors.New("missing date")
	ErrMissingThumbnail    = errors.New("missing thumbnail")
	ErrCaptionOverflow     = errors.New("more image captions than images")
	ErrMissingImageSource  = errors.New("image has no source")
	ErrMissingCategory     = errors.New("missing seo category")
)

// Profile integrity errors.
var (
	ErrEmptyProfile         = errors.New("profile document is empty")
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidURL           = errors.New("invalid URL")
	ErrInvalidSkillLevel    = errors.New("invalid skill level")
	ErrInvalidSkillCategory = errors.New("invalid skill category")
	ErrDuplicateEntry       = errors.New("duplicate entry")
)

// CatalogError ties an integrity problem to the project it was found in.
type CatalogError struct {
	Slug  string
	Index int
	Err   error
}

func (e *CatalogError) Error() string {
	if e.Slug == "" {
		return fmt.Sprintf("project #%d: %s", e.Index, e.Err)
	}
	return fmt.Sprintf("project %q (#%d): %s", e.Slug, e.Index, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(index int, slug string, err error) *CatalogError {
	return &CatalogError{Slug: slug, Index: index, Err: err}
}

// Catalogf wraps a catalog sentinel with extra context while keeping errors.Is working.
func Catalogf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// ProfileError ties an integrity problem to a profile section. Index is -1
// for problems that are not about a list entry.
type ProfileError struct {
	Section string
	Index   int
	Err     error
}

func (e *ProfileError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("profile %s: %s", e.Section, e.Err)
	}
	return fmt.Sprintf("profile %s[%d]: %s", e.Section, e.Index, e.Err)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func NewProfileError(section string, index int, err error) *ProfileError {
	return &ProfileError{Section: section, Index: index, Err: err}
}
