package models

import "strings"

// MIME types accepted at upload time. Checked once, against the declared
// content type of the multipart file part; never re-checked on read.
var AllowedTypes = []string{
	"video/mp4",
	"video/quicktime",
	"application/pdf",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"image/jpeg",
	"image/png",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// TypeAllowed reports whether mimeType is exactly one of the allow-listed
// types. No wildcard or prefix matching.
func TypeAllowed(mimeType string) bool {
	for _, t := range AllowedTypes {
		if mimeType == t {
			return true
		}
	}
	return false
}

// Category is the closed set of preview/filter kinds a file can fall into.
type Category string

const (
	CategoryImage Category = "image"
	CategoryVideo Category = "video"
	CategoryPDF   Category = "pdf"
	CategoryOther Category = "other"
)

// CategoryOf maps a MIME type onto its Category. Anything that is not an
// image, a video, or a PDF is CategoryOther, which the UI renders as a
// download affordance instead of an inline preview.
func CategoryOf(mimeType string) Category {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return CategoryImage
	case strings.HasPrefix(mimeType, "video/"):
		return CategoryVideo
	case mimeType == "application/pdf":
		return CategoryPDF
	default:
		return CategoryOther
	}
}

// MatchesFilter reports whether the file passes the gallery's type filter.
// Valid filters are "all", "documents", "images" and "videos"; "documents"
// covers PDF, Word and presentation types. Unknown filter values match
// nothing.
func (f File) MatchesFilter(filter string) bool {
	switch filter {
	case "all", "":
		return true
	case "documents":
		return strings.Contains(f.MimeType, "pdf") ||
			strings.Contains(f.MimeType, "word") ||
			strings.Contains(f.MimeType, "presentation")
	case "images":
		return strings.HasPrefix(f.MimeType, "image/")
	case "videos":
		return strings.HasPrefix(f.MimeType, "video/")
	default:
		return false
	}
}
