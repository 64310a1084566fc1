package models

import "testing"

func TestIsValidTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		// Moderation decisions
		{RequestStatusPending, RequestStatusAccepted, true},
		{RequestStatusPending, RequestStatusRejected, true},

		// Admin corrections
		{RequestStatusAccepted, RequestStatusRejected, true},
		{RequestStatusRejected, RequestStatusAccepted, true},

		// Nothing goes back to pending
		{RequestStatusAccepted, RequestStatusPending, false},
		{RequestStatusRejected, RequestStatusPending, false},

		// Self-transitions are not transitions
		{RequestStatusPending, RequestStatusPending, false},
		{RequestStatusAccepted, RequestStatusAccepted, false},
		{RequestStatusRejected, RequestStatusRejected, false},

		// Unknown values
		{"nonexistent", RequestStatusAccepted, false},
		{RequestStatusPending, "nonexistent", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestAllStatusesHaveTransitionEntry(t *testing.T) {
	for _, status := range []string{RequestStatusPending, RequestStatusAccepted, RequestStatusRejected} {
		if _, ok := ValidRequestTransitions[status]; !ok {
			t.Errorf("status %q missing from ValidRequestTransitions map", status)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Accepted", "accepted"},
		{"REJECTED", "rejected"},
		{"  Pending ", "pending"},
		{"accepted", "accepted"},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.input); got != tt.expected {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestEnumValidators(t *testing.T) {
	for _, valid := range []string{PetTypeDog, PetTypeCat, PetTypeBird, PetTypeRabbit, PetTypeOther} {
		if !IsValidPetType(valid) {
			t.Errorf("IsValidPetType(%q) = false, want true", valid)
		}
	}
	for _, invalid := range []string{"", "Dog", "hamster", "dogs"} {
		if IsValidPetType(invalid) {
			t.Errorf("IsValidPetType(%q) = true, want false", invalid)
		}
	}

	for _, valid := range []string{RequestTypeLost, RequestTypeFound, RequestTypeAdoption} {
		if !IsValidRequestType(valid) {
			t.Errorf("IsValidRequestType(%q) = false, want true", valid)
		}
	}
	if IsValidRequestType("foster") {
		t.Error("IsValidRequestType(\"foster\") = true, want false")
	}
}
