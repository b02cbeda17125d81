package storage

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// unsafeFilenameChars matches every rune that may not appear in a stored
// filename
var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename reduces an uploaded filename to a filesystem-safe token:
// directory components are stripped, accented characters fold to their ASCII
// base, whitespace collapses to underscores and any remaining unsafe rune is
// dropped. The extension survives sanitization. Returns "" when nothing safe
// remains; callers must treat that as an invalid filename.
func SanitizeFilename(name string) string {
	// Uploaded names may use either separator style
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	// Decompose accents so the mark is dropped, not the whole letter
	name = norm.NFKD.String(name)

	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
