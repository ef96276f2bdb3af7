package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

// reportJSON writes the result as JSON.
func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

// reportText writes the result as human-readable text.
func (r *Reporter) reportText(result *Result) error {
	if result.Valid() && !result.HasWarnings() {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}

	summary := []string{}
	if len(result.Errors) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(result.Errors)))
	}
	if len(result.Warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(result.Warnings)))
	}
	if result.Valid() {
		fmt.Fprintf(r.out, "Validation passed with %s\n\n", strings.Join(summary, ", "))
	} else {
		fmt.Fprintf(r.out, "Validation failed: %s\n\n", strings.Join(summary, ", "))
	}

	if len(result.Errors) > 0 {
		fmt.Fprintln(r.out, "Errors:")
		for _, d := range result.Errors {
			r.printDiagnostic(d, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, d := range result.Warnings {
			r.printDiagnostic(d, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

func (r *Reporter) printDiagnostic(d Diagnostic, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	var sb strings.Builder
	sb.WriteString("  • ")

	if d.Line > 0 {
		sb.WriteString(printer(fmt.Sprintf("line %d", d.Line)))
		sb.WriteString(": ")
	}

	sb.WriteString(d.Message)

	if d.Suggestion != "" {
		sb.WriteString(" ")
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("(%s)", d.Suggestion))
	}

	fmt.Fprintln(r.out, sb.String())
}
