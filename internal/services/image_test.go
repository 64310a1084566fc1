package services

import (
	"errors"
	"testing"
)

var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F'}
)

func TestValidateImage(t *testing.T) {
	const maxBytes = 5 << 20

	tests := []struct {
		name     string
		filename string
		size     int64
		head     []byte
		ok       bool
	}{
		{"png", "rex.png", 1024, pngHeader, true},
		{"jpg", "rex.jpg", 1024, jpegHeader, true},
		{"jpeg", "rex.JPEG", 1024, jpegHeader, true},
		{"gif extension", "rex.gif", 1024, pngHeader, false},
		{"no extension", "rex", 1024, pngHeader, false},
		{"renamed text file", "rex.png", 1024, []byte("not an image at all"), false},
		{"too large", "rex.png", maxBytes + 1, pngHeader, false},
		{"exactly max", "rex.png", maxBytes, pngHeader, true},
		{"empty", "rex.png", 0, pngHeader, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.filename, tt.size, tt.head, maxBytes)
			if tt.ok && err != nil {
				t.Errorf("ValidateImage(%q) = %v, want nil", tt.filename, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("ValidateImage(%q) = nil, want error", tt.filename)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error %v is not ErrValidation", err)
				}
			}
		})
	}
}
