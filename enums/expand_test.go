package enums

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/semterms/ontology"
	"github.com/c360studio/semterms/ontology/memory"
	"github.com/c360studio/semterms/vocabulary/obo"
)

// newTestExpander wires an expander over a single adapter served for every
// prefix.
func newTestExpander(adapter ontology.Adapter) *Expander {
	resolver := ontology.NewResolver(ontology.ResolverOptions{
		Adapters: map[string]string{"TEST": "stub:test"},
		Open: func(context.Context, string) (ontology.Adapter, error) {
			return adapter, nil
		},
	})
	return NewExpander(ExpanderOptions{Resolver: resolver})
}

// testTree builds TEST:1 with children TEST:2 and TEST:3, and grandchild
// TEST:4 under TEST:2.
func testTree() *memory.Adapter {
	a := memory.New()
	a.AddTerm("TEST:1", "root")
	a.AddTerm("TEST:2", "left")
	a.AddTerm("TEST:3", "right")
	a.AddTerm("TEST:4", "deep")
	a.AddEdge("TEST:2", obo.SubClassOf, "TEST:1")
	a.AddEdge("TEST:3", obo.SubClassOf, "TEST:1")
	a.AddEdge("TEST:4", obo.SubClassOf, "TEST:2")
	return a
}

func TestExpandStaticPermissibleValues(t *testing.T) {
	e := newTestExpander(memory.New())
	def := &Definition{
		Name: "StaticEnum",
		Expression: Expression{
			PermissibleValues: map[string]PermissibleValue{
				"A": {Meaning: "TEST:001"},
				"B": {Meaning: "TEST:002"},
			},
		},
	}

	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"A", "B", "TEST:001", "TEST:002"}, got.Values())
}

func TestExpandPermissibleValueWithoutMeaning(t *testing.T) {
	e := newTestExpander(memory.New())
	def := &Definition{
		Name: "NamesOnly",
		Expression: Expression{
			PermissibleValues: map[string]PermissibleValue{
				"solo": {},
			},
		},
	}

	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"solo"}, got.Values())
}

func TestExpandConcepts(t *testing.T) {
	e := newTestExpander(memory.New())
	def := &Definition{
		Name: "Concepts",
		Expression: Expression{
			Concepts: []string{"TEST:10", "TEST:11"},
		},
	}

	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"TEST:10", "TEST:11"}, got.Values())
}

func TestExpandReachableFromDescendants(t *testing.T) {
	e := newTestExpander(testTree())
	def := &Definition{
		Name: "Subtree",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{SourceNodes: []string{"TEST:1"}},
		},
	}

	// Descendants default to reflexive: the source node is included.
	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"TEST:1", "TEST:2", "TEST:3", "TEST:4"}, got.Values())
}

func TestExpandReachableFromAncestors(t *testing.T) {
	e := newTestExpander(testTree())
	def := &Definition{
		Name: "Ancestry",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{
				SourceNodes: []string{"TEST:4"},
				TraverseUp:  true,
			},
		},
	}

	// Ancestors default to non-reflexive: the source node is excluded.
	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"TEST:1", "TEST:2"}, got.Values())
}

func TestExpandReachableFromIncludeSelfOverrides(t *testing.T) {
	yes, no := true, false

	e := newTestExpander(testTree())
	up := &Definition{
		Name: "AncestrySelf",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{
				SourceNodes: []string{"TEST:4"},
				TraverseUp:  true,
				IncludeSelf: &yes,
			},
		},
	}
	got := e.Expand(context.Background(), up, nil)
	assert.Contains(t, got.Values(), "TEST:4")

	down := &Definition{
		Name: "SubtreeNoSelf",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{
				SourceNodes: []string{"TEST:1"},
				IncludeSelf: &no,
			},
		},
	}
	got = e.Expand(context.Background(), down, nil)
	assert.NotContains(t, got.Values(), "TEST:1")
	assert.Contains(t, got.Values(), "TEST:2")
}

func TestExpandReachableFromNoSources(t *testing.T) {
	e := newTestExpander(testTree())
	def := &Definition{
		Name: "Empty",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{},
		},
	}
	assert.Empty(t, e.Expand(context.Background(), def, nil).Values())
}

func TestExpandReachableFromUnresolvedPrefix(t *testing.T) {
	// The allow-list only covers TEST; OTHER degrades to an empty set.
	e := newTestExpander(testTree())
	def := &Definition{
		Name: "NoBackend",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{SourceNodes: []string{"OTHER:1"}},
			Concepts:      []string{"OTHER:kept"},
		},
	}

	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"OTHER:kept"}, got.Values())
}

// failingAdapter fails traversal for one specific source node.
type failingAdapter struct {
	*memory.Adapter
	failOn string
}

func (f *failingAdapter) Descendants(ctx context.Context, curie string, predicates []string, reflexive bool) ([]string, error) {
	if curie == f.failOn {
		return nil, errors.New("traversal failed")
	}
	return f.Adapter.Descendants(ctx, curie, predicates, reflexive)
}

func TestExpandReachableFromSkipsFailedSources(t *testing.T) {
	e := newTestExpander(&failingAdapter{Adapter: testTree(), failOn: "TEST:3"})
	def := &Definition{
		Name: "PartialFailure",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{
				SourceNodes: []string{"TEST:2", "TEST:3"},
			},
		},
	}

	// TEST:3's failure contributes nothing; TEST:2's subtree survives.
	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"TEST:2", "TEST:4"}, got.Values())
}

func TestExpandMatchesYieldsEmptySet(t *testing.T) {
	e := newTestExpander(testTree())
	def := &Definition{
		Name: "Patterns",
		Expression: Expression{
			Matches:  &MatchQuery{IdentifierPattern: "TEST:*"},
			Concepts: []string{"TEST:77"},
		},
	}

	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"TEST:77"}, got.Values())
}

func TestExpandIncludeSubExpressions(t *testing.T) {
	e := newTestExpander(testTree())
	def := &Definition{
		Name: "WithIncludes",
		Expression: Expression{
			Concepts: []string{"TEST:50"},
		},
		Include: []Expression{
			{Concepts: []string{"TEST:51"}},
			{PermissibleValues: map[string]PermissibleValue{"C": {Meaning: "TEST:52"}}},
		},
	}

	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"C", "TEST:50", "TEST:51", "TEST:52"}, got.Values())
}

func TestExpandMinusAppliedAfterAllUnions(t *testing.T) {
	e := newTestExpander(testTree())

	parent := &Definition{
		Name: "Parent",
		Expression: Expression{
			Concepts: []string{"TEST:2", "TEST:99"},
		},
	}
	defs := map[string]*Definition{"Parent": parent}

	def := &Definition{
		Name: "Child",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{SourceNodes: []string{"TEST:1"}},
		},
		Inherits: []string{"Parent"},
		Minus: []Expression{
			{Concepts: []string{"TEST:2", "TEST:3"}},
		},
	}

	got := e.Expand(context.Background(), def, LookupFrom(defs))

	// TEST:2 arrived both via reachability and via the inherited parent;
	// subtraction runs last, so it is gone from the final set either way.
	assert.Equal(t, []string{"TEST:1", "TEST:4", "TEST:99"}, got.Values())
}

func TestExpandInheritsMissingParentSkipped(t *testing.T) {
	e := newTestExpander(memory.New())
	def := &Definition{
		Name: "Orphan",
		Expression: Expression{
			Concepts: []string{"TEST:1"},
		},
		Inherits: []string{"NoSuchEnum"},
	}

	got := e.Expand(context.Background(), def, LookupFrom(nil))
	assert.Equal(t, []string{"TEST:1"}, got.Values())
}

func TestExpandInheritsWithoutLookup(t *testing.T) {
	e := newTestExpander(memory.New())
	def := &Definition{
		Name: "NoLookup",
		Expression: Expression{
			Concepts: []string{"TEST:1"},
		},
		Inherits: []string{"Parent"},
	}

	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"TEST:1"}, got.Values())
}

func TestExpandNestedInherits(t *testing.T) {
	e := newTestExpander(memory.New())
	defs := map[string]*Definition{
		"GrandParent": {
			Name:       "GrandParent",
			Expression: Expression{Concepts: []string{"TEST:100"}},
		},
		"Parent": {
			Name:       "Parent",
			Expression: Expression{Concepts: []string{"TEST:200"}},
			Inherits:   []string{"GrandParent"},
		},
	}

	def := &Definition{
		Name:       "Child",
		Expression: Expression{Concepts: []string{"TEST:300"}},
		Inherits:   []string{"Parent"},
	}

	got := e.Expand(context.Background(), def, LookupFrom(defs))
	assert.Equal(t, []string{"TEST:100", "TEST:200", "TEST:300"}, got.Values())
}

func TestExpandDiamondInheritance(t *testing.T) {
	// A shared ancestor contributes through every branch that inherits
	// it, even when another branch subtracts its values.
	e := newTestExpander(memory.New())
	defs := map[string]*Definition{
		"Root": {
			Name:       "Root",
			Expression: Expression{Concepts: []string{"TEST:X"}},
		},
		"Left": {
			Name:     "Left",
			Inherits: []string{"Root"},
			Minus:    []Expression{{Concepts: []string{"TEST:X"}}},
		},
		"Right": {
			Name:     "Right",
			Inherits: []string{"Root"},
		},
	}

	def := &Definition{
		Name:     "Top",
		Inherits: []string{"Left", "Right"},
	}

	got := e.Expand(context.Background(), def, LookupFrom(defs))
	assert.Equal(t, []string{"TEST:X"}, got.Values())
}

func TestExpandInheritanceCycleTerminates(t *testing.T) {
	e := newTestExpander(memory.New())
	defs := map[string]*Definition{
		"A": {
			Name:       "A",
			Expression: Expression{Concepts: []string{"TEST:1"}},
			Inherits:   []string{"B"},
		},
		"B": {
			Name:       "B",
			Expression: Expression{Concepts: []string{"TEST:2"}},
			Inherits:   []string{"A"},
		},
	}

	got := e.Expand(context.Background(), defs["A"], LookupFrom(defs))
	assert.Equal(t, []string{"TEST:1", "TEST:2"}, got.Values())
}

func TestExpandCombinesAllComponents(t *testing.T) {
	e := newTestExpander(testTree())
	def := &Definition{
		Name: "Everything",
		Expression: Expression{
			ReachableFrom: &ReachabilityQuery{SourceNodes: []string{"TEST:2"}},
			Concepts:      []string{"TEST:60"},
			PermissibleValues: map[string]PermissibleValue{
				"X": {Meaning: "TEST:61"},
			},
		},
		Include: []Expression{{Concepts: []string{"TEST:62"}}},
		Minus:   []Expression{{Concepts: []string{"TEST:4"}}},
	}

	got := e.Expand(context.Background(), def, nil)
	assert.Equal(t, []string{"TEST:2", "TEST:60", "TEST:61", "TEST:62", "X"}, got.Values())
}
