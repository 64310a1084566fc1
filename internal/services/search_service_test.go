package services

import (
	"reflect"
	"testing"
	"time"
)

func TestParseSearchFilterEmpty(t *testing.T) {
	f := parseSearchFilter(SearchInput{})
	if !f.IsEmpty() {
		t.Errorf("empty input should produce empty filter, got %+v", f)
	}
}

func TestParseSearchFilterInvalidValuesDropped(t *testing.T) {
	f := parseSearchFilter(SearchInput{
		PetType:   "hamster",
		StartDate: "not-a-date",
		EndDate:   "2024-13-45",
	})
	if !f.IsEmpty() {
		t.Errorf("invalid values should be treated as not provided, got %+v", f)
	}
}

func TestParseSearchFilterColorExpansion(t *testing.T) {
	f := parseSearchFilter(SearchInput{Color: "Golden"})
	want := []string{"golden", "yellow", "blonde"}
	if !reflect.DeepEqual(f.ColorTerms, want) {
		t.Errorf("ColorTerms = %v, want %v", f.ColorTerms, want)
	}
}

func TestParseSearchFilterPetTypeNormalized(t *testing.T) {
	f := parseSearchFilter(SearchInput{PetType: " Dog "})
	if f.PetType == nil || *f.PetType != "dog" {
		t.Errorf("PetType = %v, want dog", f.PetType)
	}
}

func TestParseSearchFilterDatesInclusive(t *testing.T) {
	f := parseSearchFilter(SearchInput{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	if f.StartDate == nil || !f.StartDate.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", f.StartDate)
	}
	// Inclusive end date becomes an exclusive next-day bound.
	if f.EndDate == nil || !f.EndDate.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("EndDate = %v, want 2024-02-01 exclusive", f.EndDate)
	}
}
