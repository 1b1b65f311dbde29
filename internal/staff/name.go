package staff

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims, collapses inner whitespace and title-cases a name:
// "  jean-PIERRE   dupont " becomes "Jean-Pierre Dupont".
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	// a Caser keeps state, so one per call
	return cases.Title(language.French).String(strings.Join(fields, " "))
}
