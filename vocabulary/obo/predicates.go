package obo

// Classification predicates.
const (
	// SubClassOf is the rdfs subclass relation, the default edge type for
	// reachability queries ("is-a" in OBO parlance).
	SubClassOf = "rdfs:subClassOf"

	// Type is the rdf instance-of relation.
	Type = "rdf:type"

	// SubPropertyOf relates a property to a more general property.
	SubPropertyOf = "rdfs:subPropertyOf"
)

// Mereology and common OBO relations.
const (
	// PartOf is the OBO Relations Ontology part-whole relation.
	PartOf = "BFO:0000050"

	// HasPart is the inverse of PartOf.
	HasPart = "BFO:0000051"

	// DevelopsFrom relates an anatomical entity to its developmental precursor.
	DevelopsFrom = "RO:0002202"
)

// SKOS mapping predicates for cross-vocabulary alignment.
const (
	// ExactMatch indicates two concepts can be used interchangeably.
	ExactMatch = "skos:exactMatch"

	// CloseMatch indicates two concepts are sufficiently similar for some
	// applications.
	CloseMatch = "skos:closeMatch"

	// BroadMatch indicates the object concept is broader than the subject.
	BroadMatch = "skos:broadMatch"

	// NarrowMatch indicates the object concept is narrower than the subject.
	NarrowMatch = "skos:narrowMatch"
)

// DefaultTraversalPredicates returns the predicate set used when a
// reachability query does not name relationship types.
func DefaultTraversalPredicates() []string {
	return []string{SubClassOf}
}
