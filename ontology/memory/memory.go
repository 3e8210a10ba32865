// Package memory provides an in-memory ontology adapter, used by tests and
// for small embedded term sets that ship with a schema.
package memory

import (
	"context"
	"sort"

	"github.com/c360studio/semterms/ontology"
)

// Edge is one directed relationship assertion: Subject Predicate Object,
// e.g. ("TEST:0000002", "rdfs:subClassOf", "TEST:0000001").
type Edge struct {
	Subject   string
	Predicate string
	Object    string
}

// Adapter is an in-memory ontology backend.
type Adapter struct {
	labels map[string]string
	edges  []Edge
}

var _ ontology.Adapter = (*Adapter)(nil)

// New creates an empty in-memory adapter.
func New() *Adapter {
	return &Adapter{labels: make(map[string]string)}
}

// AddTerm registers a term with its label.
func (a *Adapter) AddTerm(curie, label string) {
	a.labels[curie] = label
}

// AddEdge registers a relationship assertion. For classification edges the
// subject is the child and the object the parent.
func (a *Adapter) AddEdge(subject, predicate, object string) {
	a.edges = append(a.edges, Edge{Subject: subject, Predicate: predicate, Object: object})
}

// Label returns the label for a term, with found=false for unknown terms.
func (a *Adapter) Label(_ context.Context, curie string) (string, bool, error) {
	label, ok := a.labels[curie]
	return label, ok, nil
}

// Ancestors returns terms reachable from curie walking edges subject to
// object over the given predicates.
func (a *Adapter) Ancestors(_ context.Context, curie string, predicates []string, reflexive bool) ([]string, error) {
	return a.walk(curie, predicates, reflexive, true), nil
}

// Descendants returns terms reachable from curie walking edges object to
// subject over the given predicates.
func (a *Adapter) Descendants(_ context.Context, curie string, predicates []string, reflexive bool) ([]string, error) {
	return a.walk(curie, predicates, reflexive, false), nil
}

func (a *Adapter) walk(start string, predicates []string, reflexive, up bool) []string {
	allowed := make(map[string]struct{}, len(predicates))
	for _, p := range predicates {
		allowed[p] = struct{}{}
	}

	visited := map[string]struct{}{start: {}}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range a.edges {
			if _, ok := allowed[e.Predicate]; !ok {
				continue
			}
			var next string
			switch {
			case up && e.Subject == cur:
				next = e.Object
			case !up && e.Object == cur:
				next = e.Subject
			default:
				continue
			}
			if _, seen := visited[next]; !seen {
				visited[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}

	if !reflexive {
		delete(visited, start)
	}

	out := make([]string, 0, len(visited))
	for c := range visited {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
