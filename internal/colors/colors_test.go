package colors

import (
	"reflect"
	"testing"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"brown", []string{"brown", "tan", "chocolate"}},
		{"black", []string{"black", "dark"}},
		{"white", []string{"white", "light"}},
		{"gray", []string{"gray", "grey", "silver"}},
		{"golden", []string{"golden", "yellow", "blonde"}},
		{"red", []string{"red", "orange", "rust"}},
		{"Golden", []string{"golden", "yellow", "blonde"}},
		{"  BROWN ", []string{"brown", "tan", "chocolate"}},
		{"tabby", []string{"tabby"}},
		{"", nil},
		{"   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Expand(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Expand(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
