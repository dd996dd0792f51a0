package question

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and keeps only letters, digits, and
// whitespace. All other runes are dropped outright rather than replaced
// with separators, so "H2O!" and "h2o" normalize identically.
// Normalize is idempotent.
func Normalize(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// Matches reports whether the normalized expected substring occurs
// contiguously in the normalized answer.
func Matches(answer, expected string) bool {
	return strings.Contains(Normalize(answer), Normalize(expected))
}
