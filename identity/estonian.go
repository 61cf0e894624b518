package identity

import (
	"time"

	"github.com/dknight/go-isikukood"
)

// EstonianValidator adapts the isikukood library to the Validator
// interface. The library owns the jurisdiction rules: the 11-digit
// GYYMMDDSSSC layout, the century/sex digit, the embedded calendar
// date and the mod-11 checksum.
type EstonianValidator struct{}

// NewEstonianValidator returns a validator for Estonian personal codes.
func NewEstonianValidator() EstonianValidator {
	return EstonianValidator{}
}

// Valid reports whether code is a structurally and checksum-valid
// Estonian personal code.
func (EstonianValidator) Valid(code string) bool {
	return isikukood.Isikukood(code).Validate()
}

// BirthDate decodes the birth date embedded in code.
func (EstonianValidator) BirthDate(code string) (time.Time, error) {
	return isikukood.Isikukood(code).BirthDate()
}
