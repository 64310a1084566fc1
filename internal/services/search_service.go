package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/colors"
	"github.com/petrescue/backend/internal/models"
	"github.com/petrescue/backend/internal/repositories"
)

type SearchService struct {
	petRepo *repositories.PetRepo
	log     *zap.Logger
}

func NewSearchService(petRepo *repositories.PetRepo, log *zap.Logger) *SearchService {
	return &SearchService{petRepo: petRepo, log: log}
}

// SearchInput carries the raw query-string values. Invalid values are
// treated as not provided, never as an error.
type SearchInput struct {
	PetType   string
	Breed     string
	Color     string
	Location  string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

const dateLayout = "2006-01-02"

// parseSearchFilter normalizes raw input into a repository filter. Color is
// expanded through the synonym table; dates are inclusive on both ends, so
// the end date becomes an exclusive next-day bound.
func parseSearchFilter(in SearchInput) repositories.PetSearchFilter {
	f := repositories.PetSearchFilter{Limit: in.Limit, Offset: in.Offset}

	if t := models.NormalizeStatus(in.PetType); models.IsValidPetType(t) {
		f.PetType = &t
	}
	if b := strings.TrimSpace(in.Breed); b != "" {
		f.Breed = &b
	}
	f.ColorTerms = colors.Expand(in.Color)
	if l := strings.TrimSpace(in.Location); l != "" {
		f.Location = &l
	}
	if d, err := time.Parse(dateLayout, strings.TrimSpace(in.StartDate)); err == nil {
		f.StartDate = &d
	}
	if d, err := time.Parse(dateLayout, strings.TrimSpace(in.EndDate)); err == nil {
		end := d.AddDate(0, 0, 1)
		f.EndDate = &end
	}
	return f
}

// SearchFoundPets returns accepted found pets matching every provided
// dimension. No filter means no results: search is opt-in, not a listing.
func (s *SearchService) SearchFoundPets(ctx context.Context, in SearchInput) ([]models.Pet, error) {
	f := parseSearchFilter(in)
	if f.IsEmpty() {
		return []models.Pet{}, nil
	}
	pets, err := s.petRepo.SearchFound(ctx, f)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	return pets, nil
}

// ListAvailablePets unions adoptable pets with accepted found pets, newest
// first.
func (s *SearchService) ListAvailablePets(ctx context.Context, limit, offset int) ([]models.Pet, error) {
	pets, err := s.petRepo.ListAvailable(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	return pets, nil
}
