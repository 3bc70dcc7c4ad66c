package scoring

import (
	"regexp"
	"strings"
)

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// Normalize lowercases text, trims surrounding whitespace and strips
// punctuation. It is applied before phoneme conversion and before
// exact-match checks so that both scoring paths compare the same form.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	return strings.TrimSpace(nonWordChars.ReplaceAllString(text, ""))
}
