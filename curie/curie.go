// Package curie provides helpers for compact URIs (CURIEs) of the form
// PREFIX:LOCAL, plus label normalization for fuzzy comparison.
//
// A CURIE's prefix names the ontology the term belongs to (GO, CHEBI, ...);
// everything after the first colon is the local identifier. A string without
// a colon is not a valid CURIE.
package curie

import (
	"regexp"
	"strings"
)

// Prefix extracts the ontology prefix from a CURIE.
// Returns false if the string contains no colon and therefore has no prefix.
func Prefix(curie string) (string, bool) {
	idx := strings.Index(curie, ":")
	if idx < 0 {
		return "", false
	}
	return curie[:idx], true
}

// IsValid reports whether s has the PREFIX:LOCAL shape.
func IsValid(s string) bool {
	_, ok := Prefix(s)
	return ok
}

var (
	punctRun = regexp.MustCompile(`[^\w\s]+`)
	spaceRun = regexp.MustCompile(`\s+`)
)

// Normalize reduces a label to its canonical comparison form: lowercase,
// every run of punctuation replaced by a single space, whitespace runs
// collapsed, and leading/trailing space trimmed.
//
//	Normalize("Hello, World!")   == "hello world"
//	Normalize("T-Cell Receptor") == "t cell receptor"
func Normalize(s string) string {
	normalized := punctRun.ReplaceAllString(strings.ToLower(s), " ")
	normalized = spaceRun.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}
