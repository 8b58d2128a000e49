package validators

import (
	"regexp"
	"strings"
)

// MaxTextLength is the cap applied by SanitizeText to free-text input.
const MaxTextLength = 200

var dangerousChars = regexp.MustCompile(`[<>'"\\]`)

// SanitizeText strips characters with markup or quoting significance
// (angle brackets, quotes, backslashes), truncates the result to
// MaxTextLength bytes, and trims surrounding whitespace.
//
// Truncation happens after stripping, so a hostile input cannot smuggle a
// dangerous character past the cap.
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}

	cleaned := dangerousChars.ReplaceAllString(text, "")
	if len(cleaned) > MaxTextLength {
		cleaned = cleaned[:MaxTextLength]
	}

	return strings.TrimSpace(cleaned)
}
