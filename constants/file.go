package constants

import "strings"

// MIMEJPEG is the fallback content type for grading material whose type
// cannot be determined from the reference or the response headers.
const (
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEPDF  = "application/pdf"
)

// AllowedExtensions holds the accepted file extensions for answer-sheet uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ResolveContentType picks the MIME type for a material reference.
// PDFs are detected from either the URL or the reported content type;
// anything that is not an image falls back to image/jpeg, matching what
// the grading provider accepts for photographed answer sheets.
func ResolveContentType(ref, reported string) string {
	ct := reported
	if ct == "" {
		ct = MIMEJPEG
	}
	if strings.HasSuffix(strings.ToLower(ref), ".pdf") || ct == MIMEPDF {
		return MIMEPDF
	}
	if !strings.HasPrefix(ct, "image/") {
		return MIMEJPEG
	}
	// strip any charset or boundary parameters
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
