// Package validator provides the shared diagnostics contract for agentlint.
package validator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Diagnostic represents a single validation finding.
type Diagnostic struct {
	// Message is a human-readable description of the finding.
	Message string `json:"message"`
	// Line is the 1-based line the finding refers to.
	// Zero means the finding is document-wide.
	Line int `json:"line,omitempty"`
	// Suggestion is an optional remediation hint. Warnings always carry one.
	Suggestion string `json:"suggestion,omitempty"`
}

// String renders the diagnostic for terminal output.
func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", d.Line)
	}
	sb.WriteString(d.Message)
	return sb.String()
}

// Result aggregates the findings of one validation run.
// Errors mark the document structurally invalid; warnings never do.
// Diagnostics keep the order their checks ran in.
type Result struct {
	Errors   []Diagnostic `json:"errors"`
	Warnings []Diagnostic `json:"warnings"`
}

// Valid reports whether the document passed validation.
// It is true exactly when no errors were recorded.
func (r *Result) Valid() bool {
	if r == nil {
		return true
	}
	return len(r.Errors) == 0
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	return len(r.Warnings) > 0
}

// AddError records an error finding. Pass line 0 for document-wide findings.
func (r *Result) AddError(line int, message string) {
	r.Errors = append(r.Errors, Diagnostic{
		Message: message,
		Line:    line,
	})
}

// AddErrorf records an error finding with a formatted message.
func (r *Result) AddErrorf(line int, format string, args ...any) {
	r.AddError(line, fmt.Sprintf(format, args...))
}

// AddWarning records a warning finding with a remediation suggestion.
func (r *Result) AddWarning(line int, message, suggestion string) {
	r.Warnings = append(r.Warnings, Diagnostic{
		Message:    message,
		Line:       line,
		Suggestion: suggestion,
	})
}

// MarshalJSON includes the computed valid flag so downstream tooling can
// consume results without re-deriving the invariant.
func (r *Result) MarshalJSON() ([]byte, error) {
	type alias Result
	return json.Marshal(struct {
		Valid bool `json:"valid"`
		*alias
	}{
		Valid: r.Valid(),
		alias: (*alias)(r),
	})
}
