package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GetFileExtension returns the lower-cased file extension without the dot
func GetFileExtension(filename string) string {
	_, ext := SplitExt(filename)
	if len(ext) > 0 {
		return strings.ToLower(ext[1:])
	}
	return ""
}

// SplitExt splits a path into everything before the final extension and the
// extension itself (with its dot). A leading dot in the base name, as in
// ".profile", does not start an extension.
func SplitExt(path string) (string, string) {
	ext := filepath.Ext(path)
	if ext == "" || ext == filepath.Base(path) {
		return path, ""
	}
	return strings.TrimSuffix(path, ext), ext
}

// IsImageFile checks if a file has an image extension we can write
func IsImageFile(filename string) bool {
	switch GetFileExtension(filename) {
	case "jpg", "jpeg", "png", "gif", "bmp", "tif", "tiff", "webp":
		return true
	}
	return false
}

// FormatFileSize formats file size in human-readable format
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
