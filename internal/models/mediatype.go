package models

import "strings"

// MediaType represents the coarse classification of an uploaded file
type MediaType string

const (
	MediaTypePDF   MediaType = "pdf"
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// extensionMediaTypes maps every allowed file extension to its media type
var extensionMediaTypes = map[string]MediaType{
	"pdf":  MediaTypePDF,
	"jpg":  MediaTypeImage,
	"jpeg": MediaTypeImage,
	"png":  MediaTypeImage,
	"gif":  MediaTypeImage,
	"webp": MediaTypeImage,
	"mp4":  MediaTypeVideo,
	"avi":  MediaTypeVideo,
	"mov":  MediaTypeVideo,
	"mkv":  MediaTypeVideo,
	"webm": MediaTypeVideo,
}

// AllowedFilename reports whether the filename carries an allowed extension.
// The extension is everything after the last dot, compared case-insensitively.
func AllowedFilename(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	_, ok := extensionMediaTypes[strings.ToLower(filename[idx+1:])]
	return ok
}

// MediaTypeForExtension returns the media type for a file extension.
// The extension is matched case-insensitively and may carry a leading dot.
// ok is false for unsupported extensions.
func MediaTypeForExtension(ext string) (MediaType, bool) {
	mt, ok := extensionMediaTypes[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return mt, ok
}

// ParseMediaType validates a raw media type filter value
func ParseMediaType(s string) (MediaType, bool) {
	switch mt := MediaType(s); mt {
	case MediaTypePDF, MediaTypeImage, MediaTypeVideo:
		return mt, true
	default:
		return "", false
	}
}
