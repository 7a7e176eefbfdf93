package export

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mgpai22/draftsub/internal/subtitle"
)

const maxFileNameLen = 200

var (
	fileNameReplacer = strings.NewReplacer(
		"/", "-",
		"\\", "-",
		":", "-",
		"*", "-",
		"?", "",
		"\"", "",
		"<", "",
		">", "",
		"|", "",
	)
	controlRunes = regexp.MustCompile(`[\x00-\x1F]`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// SanitizeFileName makes name safe as a single path element. Empty results
// become "untitled".
func SanitizeFileName(name string) string {
	clean := fileNameReplacer.Replace(name)
	clean = controlRunes.ReplaceAllString(clean, " ")
	clean = multiSpace.ReplaceAllString(strings.TrimSpace(clean), " ")
	clean = strings.TrimRight(clean, ".")

	if len(clean) > maxFileNameLen {
		clean = truncateRunes(clean, maxFileNameLen)
	}
	if clean == "" {
		return "untitled"
	}
	return clean
}

// StripExtension drops the last extension of name.
func StripExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// WithExtension appends the format's extension unless name already ends
// with it (case-insensitive).
func WithExtension(name string, format subtitle.Format) string {
	ext := subtitle.GetExtensionForFormat(format)
	if strings.HasSuffix(strings.ToLower(name), ext) {
		return name
	}
	return name + ext
}

// cuts s to at most n bytes without splitting a rune
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
