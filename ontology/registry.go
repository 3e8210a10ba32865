package ontology

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Factory constructs an adapter from a full adapter string, e.g.
// "sqlite:obo:go". The factory receives the entire string, scheme included.
type Factory func(ctx context.Context, adapterString string) (Adapter, error)

// Registry maps adapter-string schemes to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory // keyed by scheme
}

// DefaultRegistry is the global adapter registry. Concrete adapter packages
// register themselves here from init.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for a scheme, replacing any previous registration.
func (r *Registry) Register(scheme string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[scheme] = f
}

// Open constructs an adapter for the given adapter string. The scheme is
// the substring before the first colon.
func (r *Registry) Open(ctx context.Context, adapterString string) (Adapter, error) {
	scheme, _, ok := strings.Cut(adapterString, ":")
	if !ok || scheme == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAdapterString, adapterString)
	}

	r.mu.RLock()
	factory, ok := r.factories[scheme]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}

	return factory(ctx, adapterString)
}

// Register adds a factory to the default registry.
func Register(scheme string, f Factory) {
	DefaultRegistry.Register(scheme, f)
}

// Open constructs an adapter using the default registry.
func Open(ctx context.Context, adapterString string) (Adapter, error) {
	return DefaultRegistry.Open(ctx, adapterString)
}
