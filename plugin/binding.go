package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/semterms/curie"
)

// BindingPlugin validates bound identifier/label pairs: data that carries
// both a term CURIE and the label it claims that term has. Label checking
// can be switched off to validate only that the identifier resolves.
type BindingPlugin struct {
	*Base

	validateLabels bool
}

// NewBindingPlugin creates a binding-checking plugin over a shared Base.
// When validateLabels is false, claimed labels are not compared against the
// ontology and only identifier resolution is checked.
func NewBindingPlugin(base *Base, validateLabels bool) *BindingPlugin {
	return &BindingPlugin{
		Base:           base,
		validateLabels: validateLabels,
	}
}

// ValidatesLabels reports whether claimed labels are compared against
// ontology labels.
func (p *BindingPlugin) ValidatesLabels() bool {
	return p.validateLabels
}

// CheckBinding validates one identifier/label pair. An identifier whose
// label cannot be retrieved (unknown prefix, disabled adapter, term absent
// from the backend) yields a warning; a retrieved label that disagrees with
// the claimed label under normalization yields an error.
func (p *BindingPlugin) CheckBinding(ctx context.Context, id, claimedLabel string) []Issue {
	if !curie.IsValid(id) {
		return []Issue{{
			Severity: SeverityError,
			Message:  fmt.Sprintf("bound identifier %q is not a valid CURIE", id),
			Value:    id,
		}}
	}

	label, found, err := p.Label(ctx, id)
	if err != nil {
		return []Issue{{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("could not query ontology for %s: %v", id, err),
			Value:    id,
		}}
	}
	if !found {
		return []Issue{{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("no ontology label found for %s", id),
			Value:    id,
		}}
	}

	if !p.validateLabels || claimedLabel == "" {
		return nil
	}

	if curie.Normalize(claimedLabel) == curie.Normalize(label) {
		return nil
	}

	p.logger.Debug("bound label mismatch",
		slog.String("id", id),
		slog.String("claimed", claimedLabel),
		slog.String("label", label))

	return []Issue{{
		Severity: SeverityError,
		Message:  fmt.Sprintf("label for %s is %q, not %q", id, label, claimedLabel),
		Value:    id,
	}}
}
