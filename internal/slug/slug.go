// Package slug derives URL-safe task identifiers from titles.
package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// Parameterize lowercases the input and collapses every run of
// non-alphanumeric characters into a single hyphen. Leading and trailing
// hyphens are stripped. The result is idempotent: parameterizing an already
// parameterized string returns it unchanged.
func Parameterize(title string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingHyphen = true
	}

	return b.String()
}

// Candidate returns the nth probe candidate for a slug base: the base itself
// for itr 1, then "base-2", "base-3" and so on.
func Candidate(base string, itr int) string {
	if itr <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, itr)
}
