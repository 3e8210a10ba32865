package enums

import (
	"context"
	"log/slog"
	"time"

	"github.com/c360studio/semterms/curie"
	"github.com/c360studio/semterms/metric"
	"github.com/c360studio/semterms/ontology"
	"github.com/c360studio/semterms/vocabulary/obo"
)

// Lookup resolves a parent enum name to its definition, for definitions
// that inherit from other enums. Returning ok=false skips the parent.
type Lookup func(name string) (*Definition, bool)

// Expander materializes dynamic enum definitions against ontology backends.
//
// Expansion is a pure function of the definition and lookup; the expander
// itself keeps no per-enum state, only the shared adapter resolver.
type Expander struct {
	resolver *ontology.Resolver
	logger   *slog.Logger
	metrics  *metric.Metrics
}

// ExpanderOptions configures an Expander.
type ExpanderOptions struct {
	// Resolver supplies adapters per prefix. Required.
	Resolver *ontology.Resolver

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *metric.Metrics
}

// NewExpander creates an expander.
func NewExpander(opts ExpanderOptions) *Expander {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Expander{
		resolver: opts.Resolver,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
}

// Expand materializes a definition into the set of allowed values: the
// union of its reachability results, concepts, include sub-expressions,
// inherited parent expansions, and static permissible values (both the
// symbolic name and its meaning), with every minus sub-expression
// subtracted after all unions.
//
// A missing ontology backend degrades to an empty contribution; expansion
// itself never fails. lookup may be nil when the definition does not
// inherit.
func (e *Expander) Expand(ctx context.Context, def *Definition, lookup Lookup) Set {
	start := time.Now()
	values := e.expand(ctx, def, lookup, map[string]struct{}{def.Name: {}})
	e.metrics.RecordExpansion(time.Since(start).Seconds())
	return values
}

func (e *Expander) expand(ctx context.Context, def *Definition, lookup Lookup, seen map[string]struct{}) Set {
	values := NewSet()
	values.Union(e.expandExpression(ctx, &def.Expression))

	for i := range def.Include {
		values.Union(e.expandExpression(ctx, &def.Include[i]))
	}

	if lookup != nil {
		for _, parentName := range def.Inherits {
			if _, ok := seen[parentName]; ok {
				// Inheritance cycle on the current chain.
				continue
			}
			parent, ok := lookup(parentName)
			if !ok || parent == nil {
				e.logger.Debug("inherited enum not found, skipping",
					slog.String("enum", def.Name),
					slog.String("parent", parentName))
				continue
			}
			// seen tracks only the chain from the root definition to this
			// parent, so an ancestor shared by sibling branches expands
			// under each of them independently.
			chain := make(map[string]struct{}, len(seen)+1)
			for name := range seen {
				chain[name] = struct{}{}
			}
			chain[parentName] = struct{}{}
			values.Union(e.expand(ctx, parent, lookup, chain))
		}
	}

	// Subtraction runs last so exclusions also apply to inherited values.
	if len(def.Minus) > 0 {
		excluded := NewSet()
		for i := range def.Minus {
			excluded.Union(e.expandExpression(ctx, &def.Minus[i]))
		}
		values.Subtract(excluded)
	}

	return values
}

// expandExpression expands the flat query components shared by definitions
// and include/minus sub-expressions.
func (e *Expander) expandExpression(ctx context.Context, expr *Expression) Set {
	values := NewSet()

	if expr.ReachableFrom != nil {
		values.Union(e.expandReachableFrom(ctx, expr.ReachableFrom))
	}

	if expr.Matches != nil {
		values.Union(e.expandMatches(expr.Matches))
	}

	values.AddAll(expr.Concepts)

	for name, pv := range expr.PermissibleValues {
		values.Add(name)
		if pv.Meaning != "" {
			values.Add(pv.Meaning)
		}
	}

	return values
}

// sourceResult is the outcome of one source node's graph traversal. Failed
// traversals stay explicit here and are skipped when the results collapse
// into the union: one broken source never aborts the expansion.
type sourceResult struct {
	source string
	terms  []string
	err    error
}

func (e *Expander) expandReachableFrom(ctx context.Context, q *ReachabilityQuery) Set {
	values := NewSet()
	if len(q.SourceNodes) == 0 {
		return values
	}

	prefix, ok := curie.Prefix(q.SourceNodes[0])
	if !ok {
		return values
	}

	adapter, err := e.resolver.Resolve(ctx, prefix)
	if err != nil {
		e.logger.Warn("adapter unavailable for reachability query",
			slog.String("prefix", prefix),
			slog.String("error", err.Error()))
		return values
	}
	if adapter == nil {
		return values
	}

	predicates := q.RelationshipTypes
	if len(predicates) == 0 {
		predicates = obo.DefaultTraversalPredicates()
	}

	results := make([]sourceResult, 0, len(q.SourceNodes))
	for _, source := range q.SourceNodes {
		results = append(results, e.traverse(ctx, adapter, prefix, source, q, predicates))
	}

	for _, r := range results {
		if r.err != nil {
			e.logger.Debug("traversal failed for source node, skipping",
				slog.String("source", r.source),
				slog.String("error", r.err.Error()))
			continue
		}
		values.AddAll(r.terms)
	}
	return values
}

func (e *Expander) traverse(ctx context.Context, adapter ontology.Adapter, prefix, source string, q *ReachabilityQuery, predicates []string) sourceResult {
	if q.TraverseUp {
		// Ancestors exclude the source unless asked for; descendants
		// include it unless asked not to.
		reflexive := false
		if q.IncludeSelf != nil {
			reflexive = *q.IncludeSelf
		}
		e.metrics.RecordBackendQuery(prefix, "ancestors")
		terms, err := adapter.Ancestors(ctx, source, predicates, reflexive)
		return sourceResult{source: source, terms: terms, err: err}
	}

	reflexive := true
	if q.IncludeSelf != nil {
		reflexive = *q.IncludeSelf
	}
	e.metrics.RecordBackendQuery(prefix, "descendants")
	terms, err := adapter.Descendants(ctx, source, predicates, reflexive)
	return sourceResult{source: source, terms: terms, err: err}
}

// expandMatches is a documented capability gap: pattern matching would
// require enumerating every term in the ontology, which no configured
// backend contract offers, so match queries contribute nothing.
func (e *Expander) expandMatches(q *MatchQuery) Set {
	e.logger.Debug("match query expansion not implemented, yields empty set",
		slog.String("pattern", q.IdentifierPattern))
	return NewSet()
}
