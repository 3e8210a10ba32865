package plugin

import "fmt"

// Severity classifies validation issues.
type Severity string

const (
	// SeverityError indicates an invalid value.
	SeverityError Severity = "error"

	// SeverityWarning indicates a value that could not be fully verified.
	SeverityWarning Severity = "warning"

	// SeverityInfo indicates advisory findings.
	SeverityInfo Severity = "info"
)

// Issue is one validation finding.
type Issue struct {
	// Severity is the issue's classification.
	Severity Severity

	// Message describes the finding.
	Message string

	// Value is the offending value.
	Value string

	// Enum names the enum definition the value was checked against, when
	// applicable.
	Enum string
}

// String renders the issue for reports.
func (i Issue) String() string {
	if i.Enum != "" {
		return fmt.Sprintf("[%s] %s (value %q, enum %s)", i.Severity, i.Message, i.Value, i.Enum)
	}
	return fmt.Sprintf("[%s] %s (value %q)", i.Severity, i.Message, i.Value)
}
