package movie

import (
	"castingagency/errs"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength matches the width of movies.title.
const MaxTitleLength = 256

var (
	ErrInvalidTitle       = errs.Errorf(errs.EINVALID, "movie: title must not be empty")
	ErrTitleTooLong       = errs.Errorf(errs.EINVALID, "movie: title must be at most 256 characters")
	ErrInvalidReleaseYear = errs.Errorf(errs.EINVALID, "movie: release_year must be a positive integer")
	ErrInvalidDuration    = errs.Errorf(errs.EINVALID, "movie: duration must be a positive integer")
	ErrInvalidRating      = errs.Errorf(errs.EINVALID, "movie: imdb_rating must be between 0 and 10")
	ErrEmptyCast          = errs.Errorf(errs.EINVALID, "movie: cast must not be empty")
	ErrUnknownCast        = errs.Errorf(errs.EINVALID, "movie: cast contains unknown actors")
	ErrAmbiguousCast      = errs.Errorf(errs.EINVALID, "movie: cast name matches more than one actor")
	ErrDuplicateCast      = errs.Errorf(errs.EINVALID, "movie: cast lists an actor more than once")
	ErrEmptyPatch         = errs.Errorf(errs.EINVALID, "movie: no fields to update")
	ErrMovieNotFound      = errs.Errorf(errs.ENOTFOUND, "Resource not found")
)

type Movie struct {
	ID          int64
	Title       string
	ReleaseYear int
	Duration    int
	IMDBRating  float64

	// Cast holds the names of the actors in the movie.
	// Only populated by single-movie reads.
	Cast []string
}

func (m Movie) Validate() error {
	if err := validateTitle(m.Title); err != nil {
		return err
	}

	if m.ReleaseYear <= 0 {
		return ErrInvalidReleaseYear
	}

	if m.Duration <= 0 {
		return ErrInvalidDuration
	}

	return validateRating(m.IMDBRating)
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrInvalidTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateRating(r float64) error {
	if r < 0 || r > 10 {
		return ErrInvalidRating
	}
	return nil
}

// Patch is a partial update. A nil field is left untouched.
//
// Cast replaces the whole cast when non-nil. An empty non-nil slice is an
// explicit request for an empty cast and is rejected.
type Patch struct {
	Title       *string
	ReleaseYear *int
	Duration    *int
	IMDBRating  *float64
	Cast        []string
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.ReleaseYear == nil && p.Duration == nil &&
		p.IMDBRating == nil && p.Cast == nil
}

// Validate checks every provided field. Cast names must be distinct; whether
// they exist is checked against storage by the usecase.
func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}

	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}

	if p.ReleaseYear != nil && *p.ReleaseYear <= 0 {
		return ErrInvalidReleaseYear
	}

	if p.Duration != nil && *p.Duration <= 0 {
		return ErrInvalidDuration
	}

	if p.IMDBRating != nil {
		if err := validateRating(*p.IMDBRating); err != nil {
			return err
		}
	}

	if p.Cast != nil && len(p.Cast) == 0 {
		return ErrEmptyCast
	}

	seen := make(map[string]struct{}, len(p.Cast))
	for _, name := range p.Cast {
		if _, ok := seen[name]; ok {
			return ErrDuplicateCast
		}
		seen[name] = struct{}{}
	}

	return nil
}

// Apply copies the provided scalar fields onto m. Cast is handled by the usecase.
func (p Patch) Apply(m *Movie) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.ReleaseYear != nil {
		m.ReleaseYear = *p.ReleaseYear
	}
	if p.Duration != nil {
		m.Duration = *p.Duration
	}
	if p.IMDBRating != nil {
		m.IMDBRating = *p.IMDBRating
	}
}
