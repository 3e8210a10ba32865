// Package plugin provides the validation-plugin surface over the ontology
// core: a Base plugin owning the shared resolver, label cache, expansion
// engine, and unknown-prefix tracking, plus concrete plugins for
// permissible-value meaning checks and dynamic enum membership.
//
// The surrounding validation framework drives plugins through the Plugin
// lifecycle hooks and the per-identifier (Label) and per-enum (ExpandEnum)
// query contracts. The core is synchronous and keeps no internal locking;
// a plugin instance must not be shared across goroutines without external
// mutual exclusion.
package plugin

import (
	"time"

	"github.com/google/uuid"
)

// Run carries per-validation-run state through the lifecycle hooks.
type Run struct {
	// ID uniquely identifies the validation run.
	ID string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Schema names the schema under validation, when known.
	Schema string
}

// NewRun creates a run context with a fresh ID.
func NewRun(schema string) *Run {
	return &Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		Schema:    schema,
	}
}

// Plugin is the lifecycle contract a validation framework drives. Both
// hooks are invoked once per batch of validation events; Base provides
// no-op implementations so concrete plugins override only what they need.
type Plugin interface {
	// PreProcess runs once before any validation event of a run.
	PreProcess(run *Run) error

	// PostProcess runs once after every validation event of a run.
	PostProcess(run *Run) error
}
