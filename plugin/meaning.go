package plugin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/semterms/curie"
	"github.com/c360studio/semterms/enums"
)

// MeaningPlugin verifies that a permissible value's meaning CURIE exists in
// its ontology and that the ontology label agrees with the value's symbolic
// name or description under normalization.
type MeaningPlugin struct {
	*Base
}

// NewMeaningPlugin creates a meaning-checking plugin over a shared Base.
func NewMeaningPlugin(base *Base) *MeaningPlugin {
	return &MeaningPlugin{Base: base}
}

// CheckPermissibleValue validates one permissible value. Values without a
// meaning produce no issues. A meaning whose label cannot be retrieved
// (unknown prefix, disabled adapter, term absent from the backend) yields a
// warning; a retrieved label that matches neither the value name nor its
// description yields an error.
func (p *MeaningPlugin) CheckPermissibleValue(ctx context.Context, enumName, valueName string, pv enums.PermissibleValue) []Issue {
	if pv.Meaning == "" {
		return nil
	}

	if !curie.IsValid(pv.Meaning) {
		return []Issue{{
			Severity: SeverityError,
			Message:  fmt.Sprintf("meaning %q is not a valid CURIE", pv.Meaning),
			Value:    valueName,
			Enum:     enumName,
		}}
	}

	label, found, err := p.Label(ctx, pv.Meaning)
	if err != nil {
		return []Issue{{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("could not query ontology for %s: %v", pv.Meaning, err),
			Value:    valueName,
			Enum:     enumName,
		}}
	}
	if !found {
		return []Issue{{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("no ontology label found for %s", pv.Meaning),
			Value:    valueName,
			Enum:     enumName,
		}}
	}

	want := curie.Normalize(label)
	if curie.Normalize(valueName) == want || curie.Normalize(pv.Description) == want {
		return nil
	}

	p.logger.Debug("permissible value label mismatch",
		slog.String("enum", enumName),
		slog.String("value", valueName),
		slog.String("meaning", pv.Meaning),
		slog.String("label", label))

	return []Issue{{
		Severity: SeverityError,
		Message:  fmt.Sprintf("label for %s is %q, which matches neither the value name nor its description", pv.Meaning, label),
		Value:    valueName,
		Enum:     enumName,
	}}
}

// CheckDefinition validates every permissible value of a definition.
func (p *MeaningPlugin) CheckDefinition(ctx context.Context, def *enums.Definition) []Issue {
	var issues []Issue
	for name, pv := range def.PermissibleValues {
		issues = append(issues, p.CheckPermissibleValue(ctx, def.Name, name, pv)...)
	}
	return issues
}
