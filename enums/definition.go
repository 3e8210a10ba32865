// Package enums models declarative enum definitions and expands dynamic
// enums into concrete identifier sets.
//
// A dynamic enum describes its members by ontology query (reachability,
// pattern match, explicit concept lists) and set algebra over
// sub-expressions, instead of, or in addition to, a static list of
// permissible values. Expansion materializes the definition against the
// configured ontology backends.
package enums

// PermissibleValue is a statically declared enum member. The member's
// symbolic name is the key in the definition's PermissibleValues map;
// Meaning optionally maps it to an ontology term.
type PermissibleValue struct {
	Description string `yaml:"description,omitempty"`
	Meaning     string `yaml:"meaning,omitempty"`
}

// ReachabilityQuery selects every term reachable from the source nodes over
// the given relationship types.
type ReachabilityQuery struct {
	// SourceNodes are the starting term identifiers. The query's ontology
	// is determined by the first node's prefix.
	SourceNodes []string `yaml:"source_nodes"`

	// RelationshipTypes are predicate CURIEs to traverse. Empty means the
	// subclass relation.
	RelationshipTypes []string `yaml:"relationship_types,omitempty"`

	// TraverseUp walks toward the root (ancestors) instead of away from it
	// (descendants).
	TraverseUp bool `yaml:"traverse_up,omitempty"`

	// IncludeSelf controls whether source nodes appear in the result. When
	// unset the default is direction-dependent: descendants include the
	// source, ancestors do not.
	IncludeSelf *bool `yaml:"include_self,omitempty"`
}

// MatchQuery selects terms whose identifier matches a pattern within a
// source ontology. Expansion of match queries is not implemented and always
// yields the empty set; see Expander.
type MatchQuery struct {
	SourceOntology    string `yaml:"source_ontology,omitempty"`
	IdentifierPattern string `yaml:"identifier_pattern,omitempty"`
}

// Expression is the query payload carried by enum definitions and by
// include/minus sub-expressions. Sub-expressions are flat: they do not nest
// further include/minus/inherits clauses.
type Expression struct {
	ReachableFrom     *ReachabilityQuery          `yaml:"reachable_from,omitempty"`
	Matches           *MatchQuery                 `yaml:"matches,omitempty"`
	Concepts          []string                    `yaml:"concepts,omitempty"`
	PermissibleValues map[string]PermissibleValue `yaml:"permissible_values,omitempty"`
}

// Definition is a declarative enum definition. Any combination of the
// query components may be present; the expansion is their union minus the
// subtracted set.
type Definition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	Expression `yaml:",inline"`

	// Include unions in the expansion of each sub-expression.
	Include []Expression `yaml:"include,omitempty"`

	// Minus subtracts the expansion of each sub-expression. Subtraction is
	// applied after every union, inherited values included.
	Minus []Expression `yaml:"minus,omitempty"`

	// Inherits names parent enum definitions whose expansions are unioned
	// in. Parents are resolved through the lookup supplied at expansion
	// time; unresolvable names are skipped.
	Inherits []string `yaml:"inherits,omitempty"`
}

// IsDynamic reports whether the definition uses ontology queries or
// composition rather than only static permissible values, and therefore
// needs expansion at validation time.
func (d *Definition) IsDynamic() bool {
	return d.ReachableFrom != nil ||
		d.Matches != nil ||
		len(d.Concepts) > 0 ||
		len(d.Include) > 0 ||
		len(d.Inherits) > 0
}
