package identity

import (
	"testing"
	"time"
)

func TestValid_AcceptsWellFormedCodes(t *testing.T) {

	validator := NewEstonianValidator()

	codes := []string{
		"37605030299",
		"49912247295",
		"38001013000",
		"51001013005",
		"28001013002",
	}

	for _, code := range codes {
		if !validator.Valid(code) {
			t.Errorf("expected %s to be valid", code)
		}
	}
}

func TestValid_RejectsMalformedCodes(t *testing.T) {

	validator := NewEstonianValidator()

	cases := []struct {
		name string
		code string
	}{
		{"wrong checksum", "37605030298"},
		{"too short", "3760503029"},
		{"too long", "376050302991"},
		{"empty", ""},
		{"non-digit", "3760503029a"},
		{"century digit 9", "97605030299"},
		{"century digit 0", "07605030299"},
		{"month 13", "37613030299"},
		{"day 32", "37605320299"},
		{"feb 29 in a non-leap year", "61502294008"},
	}

	for _, c := range cases {
		if validator.Valid(c.code) {
			t.Errorf("%s: expected %q to be invalid", c.name, c.code)
		}
	}
}

func TestBirthDate(t *testing.T) {

	validator := NewEstonianValidator()

	cases := []struct {
		code string
		want time.Time
	}{
		{"37605030299", time.Date(1976, time.May, 3, 0, 0, 0, 0, time.UTC)},
		{"49912247295", time.Date(1999, time.December, 24, 0, 0, 0, 0, time.UTC)},
		{"51001013005", time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"28001013002", time.Date(1880, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, c := range cases {
		got, err := validator.BirthDate(c.code)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.code, err)
		}
		if !got.Equal(c.want) {
			t.Errorf("%s: expected %s, got %s", c.code, c.want, got)
		}
	}
}

func TestBirthDate_FailsOnMalformedCode(t *testing.T) {

	validator := NewEstonianValidator()

	if _, err := validator.BirthDate("37613030299"); err == nil {
		t.Errorf("expected error for impossible month")
	}
}
