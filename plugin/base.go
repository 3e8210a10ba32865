package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/semterms/config"
	"github.com/c360studio/semterms/enums"
	"github.com/c360studio/semterms/labelcache"
	"github.com/c360studio/semterms/metric"
	"github.com/c360studio/semterms/ontology"
)

// Base owns the shared ontology state every plugin needs: the adapter
// resolver with its frozen resolution cache, the two-tier label cache, the
// enum expansion engine, and the unknown-prefix tracker. All caches are
// created empty at construction and live until the Base is discarded.
type Base struct {
	cfg      *config.Config
	resolver *ontology.Resolver
	cache    *labelcache.Cache
	expander *enums.Expander
	tracker  *ontology.PrefixTracker
	logger   *slog.Logger
}

// Options configures a Base plugin.
type Options struct {
	// Config defaults to config.DefaultConfig().
	Config *config.Config

	// Adapters is the prefix-to-adapter-string map. When nil it is loaded
	// from Config.Adapter.ConfigPath (when set).
	Adapters map[string]string

	// Open constructs adapters; defaults to the registered adapter
	// factories.
	Open ontology.Factory

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *metric.Metrics
}

// NewBase creates a base plugin with empty caches.
func NewBase(opts Options) (*Base, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("plugin config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	adapters := opts.Adapters
	if adapters == nil && cfg.Adapter.ConfigPath != "" {
		loaded, err := config.LoadAdapters(cfg.Adapter.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("plugin config: %w", err)
		}
		adapters = loaded
	}

	tracker := ontology.NewPrefixTracker()
	resolver := ontology.NewResolver(ontology.ResolverOptions{
		DefaultAdapter: cfg.Adapter.Default,
		Adapters:       adapters,
		Open:           opts.Open,
		Logger:         logger,
		Metrics:        opts.Metrics,
	})

	return &Base{
		cfg:      cfg,
		resolver: resolver,
		tracker:  tracker,
		logger:   logger,
		cache: labelcache.New(labelcache.Options{
			Resolver: resolver,
			Tracker:  tracker,
			Dir:      cfg.Cache.Dir,
			Persist:  cfg.Cache.Labels,
			Logger:   logger,
			Metrics:  opts.Metrics,
		}),
		expander: enums.NewExpander(enums.ExpanderOptions{
			Resolver: resolver,
			Logger:   logger,
			Metrics:  opts.Metrics,
		}),
	}, nil
}

// Label returns the cached or freshly retrieved label for a term.
func (b *Base) Label(ctx context.Context, curie string) (string, bool, error) {
	return b.cache.Label(ctx, curie)
}

// ExpandEnum materializes a dynamic enum definition. lookup resolves
// inherited parent enums and may be nil.
func (b *Base) ExpandEnum(ctx context.Context, def *enums.Definition, lookup enums.Lookup) enums.Set {
	return b.expander.Expand(ctx, def, lookup)
}

// Resolver exposes the shared adapter resolver.
func (b *Base) Resolver() *ontology.Resolver {
	return b.resolver
}

// UnknownPrefixes returns the prefixes encountered without a usable
// adapter, sorted, for end-of-run reporting.
func (b *Base) UnknownPrefixes() []string {
	return b.tracker.All()
}

// PreProcess is a no-op; concrete plugins override it as needed.
func (b *Base) PreProcess(run *Run) error {
	return nil
}

// PostProcess is a no-op; concrete plugins override it as needed.
func (b *Base) PostProcess(run *Run) error {
	return nil
}
