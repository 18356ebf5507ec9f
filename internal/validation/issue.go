package validation

import "fmt"

// Issue types for non-fatal findings. The document or list carrying them is
// still usable; consumers may log or surface a notice but must not block
// rendering on them.
const (
	IssueDurationMismatch    = "duration_mismatch"
	IssueLinkFormat          = "link_format"
	IssueBudgetInconsistency = "budget_inconsistency"
	IssueCountMismatch       = "count_mismatch"
)

// SeverityWarning is the severity of every soft issue. Structural failures
// are not issues at all; they surface as *SchemaError.
const SeverityWarning = "warning"

// Issue represents a single non-fatal validation finding.
type Issue struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Field    string `json:"field,omitempty"`
	Details  string `json:"details"`
}

func (i Issue) String() string {
	if i.Field != "" {
		return fmt.Sprintf("[%s] %s: %s", i.Type, i.Field, i.Details)
	}
	return fmt.Sprintf("[%s] %s", i.Type, i.Details)
}

func warn(issueType, field, format string, args ...any) Issue {
	return Issue{
		Type:     issueType,
		Severity: SeverityWarning,
		Field:    field,
		Details:  fmt.Sprintf(format, args...),
	}
}
