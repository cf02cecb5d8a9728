package caption

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// boilerplatePattern matches the generic descriptive prefixes vision models
// tend to emit ("a photo of", "an image of", ...), anywhere in the string.
var boilerplatePattern = regexp.MustCompile(`(?i)\b(a picture|an image|a photo|a photograph) of\b`)

// CleanCaption strips boilerplate phrasing from a raw caption and
// sentence-capitalizes the result. It is pure and idempotent.
func CleanCaption(raw string) string {
	cleaned := boilerplatePattern.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)
	return capitalize(cleaned)
}

// capitalize upper-cases the first rune and lower-cases the remainder
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
