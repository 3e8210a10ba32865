package ontology

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/c360studio/semterms/metric"
)

// DefaultAdapterTemplate is the wildcard adapter-string template. When it is
// the configured default, an unconfigured prefix PREFIX resolves to
// "sqlite:obo:prefix" (lowercased). Any other default disables the fallback.
const DefaultAdapterTemplate = "sqlite:obo:"

// Resolver maps CURIE prefixes to adapter handles.
//
// Resolution results, including absent ones, are frozen for the resolver's
// lifetime: a prefix is resolved against its backend at most once. Handles
// are owned by the resolver and must not be closed by callers.
//
// Not safe for concurrent use; callers provide external mutual exclusion if
// they share a resolver across goroutines.
type Resolver struct {
	defaultAdapter string
	configured     map[string]string // prefix -> adapter string; nil or empty means no config loaded
	cache          map[string]Adapter
	open           Factory
	logger         *slog.Logger
	metrics        *metric.Metrics
}

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// DefaultAdapter is the adapter-string template used for prefixes with
	// no explicit configuration. Only DefaultAdapterTemplate enables the
	// per-prefix fallback; any other value means "no default backend".
	DefaultAdapter string

	// Adapters maps prefixes to adapter strings, typically loaded from the
	// ontology_adapters configuration document. Once this map is non-empty
	// it is an allow-list: prefixes not present resolve to absent, and an
	// empty string value explicitly disables a prefix.
	Adapters map[string]string

	// Open constructs adapters. Defaults to the package-level Open using
	// the default registry.
	Open Factory

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *metric.Metrics
}

// NewResolver creates a resolver with empty caches.
func NewResolver(opts ResolverOptions) *Resolver {
	if opts.DefaultAdapter == "" {
		opts.DefaultAdapter = DefaultAdapterTemplate
	}
	if opts.Open == nil {
		opts.Open = Open
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Resolver{
		defaultAdapter: opts.DefaultAdapter,
		configured:     opts.Adapters,
		cache:          make(map[string]Adapter),
		open:           opts.Open,
		logger:         opts.Logger,
		metrics:        opts.Metrics,
	}
}

// IsConfigured reports whether prefix has a non-empty adapter string in the
// loaded configuration. An explicitly disabled prefix (empty string value)
// is configured-but-off and reports false.
func (r *Resolver) IsConfigured(prefix string) bool {
	return r.configured[prefix] != ""
}

// Declared reports whether prefix appears in the loaded configuration at
// all, including with an empty (explicitly disabled) adapter string. An
// explicitly disabled prefix is declared but not configured; a prefix
// missing from the map entirely is unknown.
func (r *Resolver) Declared(prefix string) bool {
	_, ok := r.configured[prefix]
	return ok
}

// Resolve returns the adapter handle for a prefix, or (nil, nil) when no
// backend is available for it.
//
// Resolution order, first match wins: a configured adapter string (empty
// string means explicitly absent); absent if a non-empty configuration map
// was loaded but does not contain the prefix; the wildcard default template
// applied to the lowercased prefix; otherwise absent.
//
// Every resolution outcome is memoized except construction errors, which
// propagate to the caller un-memoized.
func (r *Resolver) Resolve(ctx context.Context, prefix string) (Adapter, error) {
	if adapter, ok := r.cache[prefix]; ok {
		return adapter, nil
	}

	adapterString := ""
	switch {
	case len(r.configured) > 0:
		configured, ok := r.configured[prefix]
		if !ok || configured == "" {
			// Explicit allow-list semantics: no silent fallback once any
			// configuration is present.
			r.cache[prefix] = nil
			r.metrics.RecordResolution(metric.OutcomeAbsent)
			r.logger.Debug("prefix not configured, no adapter",
				slog.String("prefix", prefix))
			return nil, nil
		}
		adapterString = configured
	case r.defaultAdapter == DefaultAdapterTemplate:
		adapterString = DefaultAdapterTemplate + strings.ToLower(prefix)
	}

	if adapterString == "" {
		r.cache[prefix] = nil
		r.metrics.RecordResolution(metric.OutcomeAbsent)
		return nil, nil
	}

	adapter, err := r.open(ctx, adapterString)
	if err != nil {
		r.metrics.RecordResolution(metric.OutcomeError)
		return nil, fmt.Errorf("open adapter %q for prefix %q: %w", adapterString, prefix, err)
	}

	r.cache[prefix] = adapter
	r.metrics.RecordResolution(metric.OutcomeResolved)
	r.logger.Debug("resolved ontology adapter",
		slog.String("prefix", prefix),
		slog.String("adapter", adapterString))
	return adapter, nil
}
