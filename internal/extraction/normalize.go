package extraction

import (
	"regexp"
	"strings"
)

var (
	newlineRuns    = regexp.MustCompile(`\n+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Normalize collapses runs of newlines, then runs of whitespace, then
// trims leading and trailing whitespace. Applying it twice yields the
// same result as applying it once.
func Normalize(text string) string {
	text = newlineRuns.ReplaceAllString(text, "\n")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
