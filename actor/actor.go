package actor

import (
	"castingagency/errs"
	"strings"
	"unicode/utf8"
)

// MaxFieldLength matches the width of actors.name and actors.gender.
const MaxFieldLength = 256

var (
	ErrInvalidName   = errs.Errorf(errs.EINVALID, "actor: name must not be empty")
	ErrNameTooLong   = errs.Errorf(errs.EINVALID, "actor: name must be at most 256 characters")
	ErrInvalidAge    = errs.Errorf(errs.EINVALID, "actor: age must be a positive integer")
	ErrInvalidGender = errs.Errorf(errs.EINVALID, "actor: gender must not be empty")
	ErrGenderTooLong = errs.Errorf(errs.EINVALID, "actor: gender must be at most 256 characters")
	ErrEmptyPatch    = errs.Errorf(errs.EINVALID, "actor: no fields to update")
	ErrActorNotFound = errs.Errorf(errs.ENOTFOUND, "Resource not found")
)

type Actor struct {
	ID     int64
	Name   string
	Age    int
	Gender string

	// Movies holds the titles of the movies the actor is cast in.
	// Only populated by single-actor reads.
	Movies []string
}

func (a Actor) Validate() error {
	if err := validateText(a.Name, ErrInvalidName, ErrNameTooLong); err != nil {
		return err
	}

	if a.Age <= 0 {
		return ErrInvalidAge
	}

	return validateText(a.Gender, ErrInvalidGender, ErrGenderTooLong)
}

func validateText(v string, blank, tooLong error) error {
	if strings.TrimSpace(v) == "" {
		return blank
	}
	if utf8.RuneCountInString(v) > MaxFieldLength {
		return tooLong
	}
	return nil
}

// Patch is a partial update. A nil field is left untouched.
type Patch struct {
	Name   *string
	Age    *int
	Gender *string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.Gender == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}

	if p.Name != nil {
		if err := validateText(*p.Name, ErrInvalidName, ErrNameTooLong); err != nil {
			return err
		}
	}

	if p.Age != nil && *p.Age <= 0 {
		return ErrInvalidAge
	}

	if p.Gender != nil {
		if err := validateText(*p.Gender, ErrInvalidGender, ErrGenderTooLong); err != nil {
			return err
		}
	}

	return nil
}

func (p Patch) Apply(a *Actor) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
}
