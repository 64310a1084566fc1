package services

import (
	"net/http"
	"path/filepath"
	"strings"
)

// Accepted upload formats for pet images.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var allowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// ValidateImage checks a pet image upload: jpg/jpeg/png only, size capped,
// and the first bytes must sniff as the matching image type so a renamed
// file does not pass.
func ValidateImage(filename string, size int64, head []byte, maxBytes int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return validationf("unsupported image format %q, use jpg, jpeg or png", ext)
	}
	if size <= 0 {
		return validationf("empty image upload")
	}
	if size > maxBytes {
		return validationf("image exceeds maximum size of %d bytes", maxBytes)
	}
	if contentType := http.DetectContentType(head); !allowedImageContentTypes[contentType] {
		return validationf("file content is %s, not a supported image", contentType)
	}
	return nil
}
