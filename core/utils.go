package core

import (
	"regexp"
	"strings"
	"time"
)

// DateFormat is the persisted date layout.
const DateFormat = "2006-01-02"

var spaceRunRegex = regexp.MustCompile(`\s+`)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// SanitizeText prepares free text for storage: trims, collapses whitespace
// runs to a single space and strips the characters that would corrupt the
// persisted line format (the field delimiter and line breaks).
func SanitizeText(s string) string {
	s = strings.NewReplacer("|", "", "\n", " ", "\r", " ").Replace(s)
	return CleanString(spaceRunRegex.ReplaceAllString(s, " "))
}

// Today returns the current date in the persisted date format.
func Today() string {
	return time.Now().Format(DateFormat)
}
