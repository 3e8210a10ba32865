// Package ontology defines the backend capability consumed by term
// validation and the resolver that maps CURIE prefixes to backends.
//
// An Adapter is bound to a single ontology and answers three questions:
// what is a term's label, and which terms are reachable from it walking
// edges up (ancestors) or down (descendants). Concrete adapters register
// themselves by adapter-string scheme:
//
//	import _ "github.com/c360studio/semterms/ontology/sqlite"
package ontology

import "context"

// Adapter is a handle to one ontology backend.
//
// Implementations are not required to be safe for concurrent use; the
// resolver hands out one handle per prefix and callers serialize access.
type Adapter interface {
	// Label returns the display label for a term. The second return is
	// false when the backend has no such term (absent, not an error).
	Label(ctx context.Context, curie string) (string, bool, error)

	// Ancestors returns terms reachable from curie walking the given
	// predicates toward the root. When reflexive is true the result
	// includes curie itself.
	Ancestors(ctx context.Context, curie string, predicates []string, reflexive bool) ([]string, error)

	// Descendants returns terms reachable from curie walking the given
	// predicates away from the root. When reflexive is true the result
	// includes curie itself.
	Descendants(ctx context.Context, curie string, predicates []string, reflexive bool) ([]string, error)
}
