package mimetypes

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown     MIME = "unknown"
	OctetStream MIME = "application/octet-stream"
	TextPlain   MIME = "text/plain"

	ApplicationPDF MIME = "application/pdf"
	ApplicationZIP MIME = "application/zip"

	ImagePNG  MIME = "image/png"
	ImageJPEG MIME = "image/jpeg"
	ImageGIF  MIME = "image/gif"
	ImageWEBP MIME = "image/webp"
)

// Normalize strips parameters and lowercases a declared content type.
func Normalize(declared string) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(strings.TrimSpace(declared))
	if err != nil {
		return Unknown, false
	}
	return MIME(strings.ToLower(mt)), true
}

// Resolve returns the canonical form of a declared content type when it is
// one the detector knows, aliases included.
func Resolve(declared string) (MIME, bool) {
	mt, ok := Normalize(declared)
	if !ok {
		return Unknown, false
	}
	known := mimetype.Lookup(string(mt))
	if known == nil {
		return Unknown, false
	}
	canonical, _, err := mime.ParseMediaType(known.String())
	if err != nil {
		return Unknown, false
	}
	return MIME(canonical), true
}

func (m MIME) IsImage() bool {
	return strings.HasPrefix(string(m), "image/")
}

// Extension is empty for types the detector does not know.
func (m MIME) Extension() string {
	known := mimetype.Lookup(string(m))
	if known == nil {
		return ""
	}
	return known.Extension()
}
