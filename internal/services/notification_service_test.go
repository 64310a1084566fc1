package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/models"
)

type fakeNotificationStore struct {
	found         bool
	markReadCalls int
}

func (f *fakeNotificationStore) List(ctx context.Context, limit, offset int) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationStore) UnreadCount(ctx context.Context) (int, error) {
	return 0, nil
}

func (f *fakeNotificationStore) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	f.markReadCalls++
	return f.found, nil
}

func (f *fakeNotificationStore) MarkAllRead(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestMarkReadMissingNotification(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationStore{found: false}, zap.NewNop())
	err := svc.MarkRead(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected error for missing notification, got nil")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error %v is not ErrNotFound", err)
	}
}

func TestMarkReadIdempotent(t *testing.T) {
	store := &fakeNotificationStore{found: true}
	svc := NewNotificationService(store, zap.NewNop())

	id := uuid.New()
	for i := 0; i < 2; i++ {
		if err := svc.MarkRead(context.Background(), id); err != nil {
			t.Fatalf("MarkRead call %d failed: %v", i+1, err)
		}
	}
	if store.markReadCalls != 2 {
		t.Errorf("markReadCalls = %d, want 2", store.markReadCalls)
	}
}

func TestReportNotificationMessage(t *testing.T) {
	name := "Rex"
	lost := &models.Pet{
		Name:     &name,
		PetType:  "dog",
		Breed:    "Labrador",
		Color:    "golden",
		Location: "Central Park",
	}

	msg := reportNotificationMessage(models.RequestTypeLost, lost, "bob")
	for _, want := range []string{"lost", "Rex", "Labrador", "Central Park", "bob"} {
		if !strings.Contains(msg, want) {
			t.Errorf("lost message %q missing %q", msg, want)
		}
	}

	found := &models.Pet{
		PetType:  "cat",
		Breed:    "Siamese",
		Color:    "white",
		Location: "5th Avenue",
	}
	msg = reportNotificationMessage(models.RequestTypeFound, found, "alice")
	for _, want := range []string{"found", "cat", "Siamese", "5th Avenue", "alice"} {
		if !strings.Contains(msg, want) {
			t.Errorf("found message %q missing %q", msg, want)
		}
	}
}

func TestContactNotificationMessage(t *testing.T) {
	sub := &models.ContactSubmission{
		Name:           "Carol",
		Email:          "carol@example.com",
		Subject:        "Wrong photo on a listing",
		SubmissionType: models.SubmissionIssue,
	}
	msg := contactNotificationMessage(sub)
	if !strings.Contains(msg, "issue") || !strings.Contains(msg, "Carol") {
		t.Errorf("issue message %q", msg)
	}

	sub.SubmissionType = models.SubmissionGeneral
	msg = contactNotificationMessage(sub)
	if !strings.Contains(msg, "contact submission") {
		t.Errorf("general message %q", msg)
	}
}

func TestValidateContact(t *testing.T) {
	valid := ContactInput{
		Name:           "Carol",
		Email:          "carol@example.com",
		Subject:        "Hello",
		Message:        "A question about adoption.",
		SubmissionType: models.SubmissionGeneral,
	}
	if err := validateContact(valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ContactInput)
	}{
		{"missing name", func(in *ContactInput) { in.Name = "" }},
		{"bad email", func(in *ContactInput) { in.Email = "not-an-email" }},
		{"missing subject", func(in *ContactInput) { in.Subject = " " }},
		{"missing message", func(in *ContactInput) { in.Message = "" }},
		{"bad type", func(in *ContactInput) { in.SubmissionType = "spam" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := validateContact(in); err == nil {
				t.Fatal("expected validation error, got nil")
			}
		})
	}
}
