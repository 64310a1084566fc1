package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/petrescue/backend/internal/models"
)

func validLostInput() LostReportInput {
	return LostReportInput{
		PetName:          "Rex",
		PetType:          "dog",
		Breed:            "Labrador",
		Color:            "Golden",
		LastSeenLocation: "Central Park",
		DateLost:         time.Now().Add(-24 * time.Hour),
		ContactPhone:     "555-0100",
	}
}

func TestValidateLostReport(t *testing.T) {
	now := time.Now()

	if err := validateLostReport(validLostInput(), now); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*LostReportInput)
	}{
		{"missing pet name", func(in *LostReportInput) { in.PetName = "  " }},
		{"invalid pet type", func(in *LostReportInput) { in.PetType = "hamster" }},
		{"uppercase pet type", func(in *LostReportInput) { in.PetType = "Dog" }},
		{"missing breed", func(in *LostReportInput) { in.Breed = "" }},
		{"missing color", func(in *LostReportInput) { in.Color = "" }},
		{"missing location", func(in *LostReportInput) { in.LastSeenLocation = "" }},
		{"zero date", func(in *LostReportInput) { in.DateLost = time.Time{} }},
		{"future date", func(in *LostReportInput) { in.DateLost = now.Add(48 * time.Hour) }},
		{"missing phone", func(in *LostReportInput) { in.ContactPhone = " " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validLostInput()
			tt.mutate(&in)
			err := validateLostReport(in, now)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("error %v is not ErrValidation", err)
			}
		})
	}
}

func TestValidateFoundReport(t *testing.T) {
	valid := FoundReportInput{
		PetType:       "cat",
		Breed:         "Siamese",
		Color:         "white",
		FoundLocation: "5th Avenue",
	}
	if err := validateFoundReport(valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	// Contact info is optional for found reports.
	if err := validateFoundReport(valid); err != nil {
		t.Fatalf("found report without contact rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*FoundReportInput)
	}{
		{"invalid pet type", func(in *FoundReportInput) { in.PetType = "" }},
		{"missing breed", func(in *FoundReportInput) { in.Breed = " " }},
		{"missing color", func(in *FoundReportInput) { in.Color = "" }},
		{"missing location", func(in *FoundReportInput) { in.FoundLocation = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := validateFoundReport(in)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("error %v is not ErrValidation", err)
			}
		})
	}
}

func TestCanModifyReport(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		status  string
		actorID uuid.UUID
		ok      bool
	}{
		{"owner pending", models.RequestStatusPending, owner, true},
		{"owner accepted", models.RequestStatusAccepted, owner, false},
		{"owner rejected", models.RequestStatusRejected, owner, false},
		{"other user pending", models.RequestStatusPending, other, false},
		{"other user rejected", models.RequestStatusRejected, other, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.Request{ID: uuid.New(), UserID: owner, Status: tt.status}
			err := canModifyReport(req, &models.User{ID: tt.actorID, Username: "bob"})
			if tt.ok {
				if err != nil {
					t.Fatalf("canModifyReport = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected permission error, got nil")
			}
			if !errors.Is(err, ErrPermission) {
				t.Errorf("error %v is not ErrPermission", err)
			}
		})
	}
}

func TestErrorKinds(t *testing.T) {
	if !errors.Is(validationf("x"), ErrValidation) {
		t.Error("validationf does not wrap ErrValidation")
	}
	if !errors.Is(notFoundf("x"), ErrNotFound) {
		t.Error("notFoundf does not wrap ErrNotFound")
	}
	if !errors.Is(permissionf("x"), ErrPermission) {
		t.Error("permissionf does not wrap ErrPermission")
	}
}
