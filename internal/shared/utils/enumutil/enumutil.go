// Package enumutil normalizes user-supplied enum spellings.
package enumutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims s and upper-cases it with full Unicode case mapping, so
// "média" becomes "MÉDIA".
func Normalize(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}
