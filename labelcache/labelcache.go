// Package labelcache provides two-tier caching of ontology term labels.
//
// Lookups are served from an in-memory map first, then from per-prefix CSV
// files on disk, and only then from the ontology backend. A given
// identifier is queried against its backend at most once per cache
// lifetime; the persistent tier carries results across process runs.
package labelcache

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/c360studio/semterms/curie"
	"github.com/c360studio/semterms/metric"
	"github.com/c360studio/semterms/ontology"
)

// CacheFileName is the per-prefix label store file name.
const CacheFileName = "terms.csv"

// csv column order: curie, label, retrieved_at.
var cacheHeader = []string{"curie", "label", "retrieved_at"}

type entry struct {
	label string
	found bool
}

// Cache is a two-tier label cache backed by an adapter resolver.
//
// The in-memory tier also caches absent results; the persistent tier only
// holds labels that were actually found. Not safe for concurrent use.
type Cache struct {
	resolver *ontology.Resolver
	tracker  *ontology.PrefixTracker
	dir      string
	persist  bool
	mem      map[string]entry
	logger   *slog.Logger
	metrics  *metric.Metrics
	now      func() time.Time
}

// Options configures a Cache.
type Options struct {
	// Resolver supplies adapters per prefix. Required.
	Resolver *ontology.Resolver

	// Tracker, when set, records prefixes that had no usable adapter and
	// were not declared in configuration.
	Tracker *ontology.PrefixTracker

	// Dir is the root directory for per-prefix cache files.
	Dir string

	// Persist enables the file tier. When false the cache is memory-only.
	Persist bool

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Metrics is optional.
	Metrics *metric.Metrics
}

// New creates an empty cache.
func New(opts Options) *Cache {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Cache{
		resolver: opts.Resolver,
		tracker:  opts.Tracker,
		dir:      opts.Dir,
		persist:  opts.Persist,
		mem:      make(map[string]entry),
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		now:      time.Now,
	}
}

// Label returns the display label for a term identifier, with found=false
// when the term is absent: invalid identifier, no adapter for the prefix,
// or the backend does not know the term.
//
// The only error surfaced is an adapter construction failure, which likely
// indicates misconfiguration; per-term backend misses degrade to absent.
func (c *Cache) Label(ctx context.Context, id string) (string, bool, error) {
	if e, ok := c.mem[id]; ok {
		c.metrics.RecordLabelLookup(metric.TierMemory)
		return e.label, e.found, nil
	}

	prefix, ok := curie.Prefix(id)
	if !ok {
		// Not a CURIE: absent, uncached, no side effects.
		c.metrics.RecordLabelLookup(metric.TierMiss)
		return "", false, nil
	}

	if c.persist {
		stored, err := c.loadFile(prefix)
		if err != nil {
			// A damaged prefix store is regenerable from the backend, so
			// it degrades to a miss for this prefix only.
			c.logger.Warn("failed to read label cache file",
				slog.String("prefix", prefix),
				slog.String("error", err.Error()))
		}
		if label, ok := stored[id]; ok {
			c.mem[id] = entry{label: label, found: true}
			c.metrics.RecordLabelLookup(metric.TierFile)
			return label, true, nil
		}
	}

	adapter, err := c.resolver.Resolve(ctx, prefix)
	if err != nil {
		return "", false, err
	}
	if adapter == nil {
		if c.tracker != nil && !c.resolver.Declared(prefix) {
			c.tracker.Record(prefix)
			c.metrics.RecordUnknownPrefix()
		}
		c.mem[id] = entry{}
		c.metrics.RecordLabelLookup(metric.TierMiss)
		return "", false, nil
	}

	c.metrics.RecordBackendQuery(prefix, "label")
	label, found, err := adapter.Label(ctx, id)
	if err != nil {
		c.logger.Warn("backend label query failed",
			slog.String("curie", id),
			slog.String("error", err.Error()))
		c.mem[id] = entry{}
		c.metrics.RecordLabelLookup(metric.TierMiss)
		return "", false, nil
	}

	c.mem[id] = entry{label: label, found: found}
	if found && label != "" && c.persist {
		if err := c.saveToFile(prefix, id, label); err != nil {
			c.logger.Warn("failed to write label cache file",
				slog.String("prefix", prefix),
				slog.String("error", err.Error()))
		}
	}

	c.metrics.RecordLabelLookup(metric.TierBackend)
	return label, found, nil
}

// cacheFile returns the cache file path for a prefix.
func (c *Cache) cacheFile(prefix string) string {
	return filepath.Join(c.dir, strings.ToLower(prefix), CacheFileName)
}

// loadFile reads a prefix's on-disk label store. A missing file is an empty
// store, not an error.
func (c *Cache) loadFile(prefix string) (map[string]string, error) {
	f, err := os.Open(c.cacheFile(prefix))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.cacheFile(prefix), err)
	}

	stored := make(map[string]string)
	for i, rec := range records {
		if i == 0 {
			// Header row.
			continue
		}
		if len(rec) < 2 {
			continue
		}
		stored[rec[0]] = rec[1]
	}
	return stored, nil
}

// saveToFile merges one label into a prefix's store and rewrites the file
// in full (read-modify-write; there is no append path).
func (c *Cache) saveToFile(prefix, id, label string) error {
	stored, err := c.loadFile(prefix)
	if err != nil {
		// Rebuilding over a damaged store is fine, it is a cache.
		stored = nil
	}
	if stored == nil {
		stored = make(map[string]string)
	}
	stored[id] = label

	path := c.cacheFile(prefix)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	defer f.Close()

	ids := make([]string, 0, len(stored))
	for k := range stored {
		ids = append(ids, k)
	}
	sort.Strings(ids)

	retrievedAt := c.now().UTC().Format(time.RFC3339)
	w := csv.NewWriter(f)
	if err := w.Write(cacheHeader); err != nil {
		return fmt.Errorf("write cache header: %w", err)
	}
	for _, k := range ids {
		if err := w.Write([]string{k, stored[k], retrievedAt}); err != nil {
			return fmt.Errorf("write cache row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush cache file: %w", err)
	}
	return nil
}
