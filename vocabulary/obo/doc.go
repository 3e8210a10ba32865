// Package obo provides predicate CURIE constants for ontology graph
// traversal.
//
// Reachability queries name relationship types by predicate CURIE; the
// constants here cover the predicates that OBO-style ontologies use for
// classification and mereology, plus the SKOS mapping predicates used when
// concepts are aligned across vocabularies.
package obo
