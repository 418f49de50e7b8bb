// Package media stores uploaded product, service and content images.
package media

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidFormat is returned for uploads whose extension is not an image type
var ErrInvalidFormat = shared.InvalidInput("Invalid file format")

var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}

const stampLayout = "20060102_150405"

var (
	unsafeChars    = regexp.MustCompile(`[^A-Za-z0-9_.\-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	separators     = strings.NewReplacer("/", " ", "\\", " ")
	nonASCII       = runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })
)

// AllowedFile reports whether filename carries an allowed image extension
func AllowedFile(filename string) bool {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(ext)]
	return ok
}

// SecureFilename reduces an uploaded filename to a safe ASCII form.
// It may return an empty string when nothing usable is left.
func SecureFilename(filename string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(nonASCII))
	ascii, _, err := transform.String(t, filename)
	if err != nil {
		return ""
	}
	ascii = separators.Replace(ascii)
	ascii = strings.Join(whitespaceRuns.Split(strings.TrimSpace(ascii), -1), "_")
	ascii = unsafeChars.ReplaceAllString(ascii, "")
	return strings.Trim(ascii, "._")
}

// StoredName returns the timestamped name an upload is stored under
func StoredName(filename string, now time.Time) string {
	return now.Format(stampLayout) + "_" + SecureFilename(filename)
}
