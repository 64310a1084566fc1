package repositories

import (
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestBuildPetSearchQueryNoFilters(t *testing.T) {
	query, args := buildPetSearchQuery(PetSearchFilter{})

	for _, want := range []string{
		"p.status = 'found'",
		"r.request_type = 'found'",
		"r.status = 'accepted'",
		"ORDER BY p.created_at DESC",
	} {
		if !strings.Contains(query, want) {
			t.Errorf("query missing %q:\n%s", want, query)
		}
	}
	// Only limit and offset remain.
	if len(args) != 2 {
		t.Fatalf("args = %v, want [limit, offset]", args)
	}
	if args[0] != 20 || args[1] != 0 {
		t.Errorf("default limit/offset = %v, want [20 0]", args)
	}
}

func TestBuildPetSearchQueryColorSynonyms(t *testing.T) {
	query, args := buildPetSearchQuery(PetSearchFilter{
		ColorTerms: []string{"brown", "tan", "chocolate"},
	})

	if !strings.Contains(query, "(p.color ILIKE $1 OR p.color ILIKE $2 OR p.color ILIKE $3)") {
		t.Errorf("color terms should OR together:\n%s", query)
	}
	if args[0] != "%brown%" || args[1] != "%tan%" || args[2] != "%chocolate%" {
		t.Errorf("color args = %v", args[:3])
	}
}

func TestBuildPetSearchQueryAllFilters(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	f := PetSearchFilter{
		PetType:    strPtr("dog"),
		Breed:      strPtr("Labrador"),
		ColorTerms: []string{"golden", "yellow", "blonde"},
		Location:   strPtr("Central"),
		StartDate:  &start,
		EndDate:    &end,
		Limit:      10,
		Offset:     5,
	}

	query, args := buildPetSearchQuery(f)

	for _, want := range []string{
		"p.pet_type = $1",
		"p.breed ILIKE $2",
		"p.color ILIKE $3",
		"p.location ILIKE $6",
		"p.created_at >= $7",
		"p.created_at < $8",
		"LIMIT $9 OFFSET $10",
	} {
		if !strings.Contains(query, want) {
			t.Errorf("query missing %q:\n%s", want, query)
		}
	}
	if len(args) != 10 {
		t.Fatalf("len(args) = %d, want 10", len(args))
	}
	if args[1] != "%Labrador%" {
		t.Errorf("breed arg = %v", args[1])
	}
	if args[8] != 10 || args[9] != 5 {
		t.Errorf("limit/offset args = %v %v", args[8], args[9])
	}
}

func TestPetSearchFilterIsEmpty(t *testing.T) {
	if !(PetSearchFilter{}).IsEmpty() {
		t.Error("zero filter should be empty")
	}
	if (PetSearchFilter{PetType: strPtr("cat")}).IsEmpty() {
		t.Error("filter with pet_type should not be empty")
	}
	if (PetSearchFilter{ColorTerms: []string{"black"}}).IsEmpty() {
		t.Error("filter with color terms should not be empty")
	}
}
