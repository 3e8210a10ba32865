package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/semterms/enums"
)

// DynamicEnumPlugin checks values for membership in dynamic enums. Each
// enum is expanded at most once per plugin instance; the expansion map is
// empty at construction and grows as enums are first checked.
type DynamicEnumPlugin struct {
	*Base

	lookup   enums.Lookup
	expanded map[string]enums.Set
}

// NewDynamicEnumPlugin creates a membership-checking plugin over a shared
// Base. lookup resolves inherited parent enums and may be nil for schemas
// without enum inheritance.
func NewDynamicEnumPlugin(base *Base, lookup enums.Lookup) *DynamicEnumPlugin {
	return &DynamicEnumPlugin{
		Base:     base,
		lookup:   lookup,
		expanded: make(map[string]enums.Set),
	}
}

// Expansion returns the materialized value set for a definition, expanding
// it on first use and serving the memoized set afterwards.
func (p *DynamicEnumPlugin) Expansion(ctx context.Context, def *enums.Definition) enums.Set {
	if set, ok := p.expanded[def.Name]; ok {
		return set
	}

	set := p.ExpandEnum(ctx, def, p.lookup)
	p.expanded[def.Name] = set
	p.logger.Debug("expanded dynamic enum",
		slog.String("enum", def.Name),
		slog.Int("values", set.Len()))
	return set
}

// CheckValue validates that value is a member of the (expanded) enum.
func (p *DynamicEnumPlugin) CheckValue(ctx context.Context, def *enums.Definition, value string) []Issue {
	set := p.Expansion(ctx, def)
	if set.Contains(value) {
		return nil
	}

	if set.Len() == 0 {
		// An empty expansion usually means the backing ontology was
		// unavailable; flag the value as unverifiable rather than invalid.
		return []Issue{{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("enum %s expanded to no values; membership could not be verified", def.Name),
			Value:    value,
			Enum:     def.Name,
		}}
	}

	return []Issue{{
		Severity: SeverityError,
		Message:  fmt.Sprintf("value is not a member of enum %s", def.Name),
		Value:    value,
		Enum:     def.Name,
	}}
}
