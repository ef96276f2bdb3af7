// Package checkup sweeps a project directory for every known document
// kind and validates whatever it finds, aggregating the results into one
// report. It backs the "agentlint check" command.
package checkup

import (
	"time"

	"github.com/agentlint/agentlint/internal/errors"
	"github.com/agentlint/agentlint/internal/instructions"
	"github.com/agentlint/agentlint/internal/paths"
	skillvalidator "github.com/agentlint/agentlint/internal/skill/validator"
	"github.com/agentlint/agentlint/internal/toolconfig"
	"github.com/agentlint/agentlint/internal/validator"
	"github.com/agentlint/agentlint/pkg/fileutil"
)

// Status summarizes one document's validation outcome.
type Status int

const (
	// StatusPass means no errors and no warnings.
	StatusPass Status = iota

	// StatusWarn means warnings only.
	StatusWarn

	// StatusFail means at least one error.
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalJSON emits the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// DocumentResult is the outcome for one discovered document.
type DocumentResult struct {
	Path   string            `json:"path"`
	Kind   string            `json:"kind"`
	Status Status            `json:"status"`
	Result *validator.Result `json:"result"`
}

// Summary counts documents by status.
type Summary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// Report aggregates the validation of every document found under a root.
type Report struct {
	Timestamp time.Time         `json:"timestamp"`
	Root      string            `json:"root"`
	Documents []*DocumentResult `json:"documents"`
	Summary   Summary           `json:"summary"`
}

// HasFailures reports whether any document failed validation.
func (r *Report) HasFailures() bool {
	return r.Summary.Failed > 0
}

// validators dispatches a document kind to its validator.
var validators = map[string]func(string) *validator.Result{
	paths.KindInstructions: instructions.Validate,
	paths.KindSkill:        skillvalidator.Validate,
	paths.KindConfig:       toolconfig.Validate,
}

// Run discovers and validates every document of every kind under root.
// Discovery and read failures abort the run; validation findings never do.
func Run(root string) (*Report, error) {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Root:      root,
		Documents: []*DocumentResult{},
	}

	for _, kind := range paths.Kinds() {
		docs, err := paths.Discover(root, kind)
		if err != nil {
			return nil, errors.Wrapf(err, "discovering %s documents", kind)
		}

		for _, path := range docs {
			data, err := fileutil.ReadFileWithLimit(path)
			if err != nil {
				return nil, errors.Wrapf(err, "reading %q", path)
			}

			result := validators[kind](string(data))
			doc := &DocumentResult{
				Path:   path,
				Kind:   kind,
				Result: result,
			}
			switch {
			case !result.Valid():
				doc.Status = StatusFail
				report.Summary.Failed++
			case result.HasWarnings():
				doc.Status = StatusWarn
				report.Summary.Warnings++
			default:
				doc.Status = StatusPass
				report.Summary.Passed++
			}
			report.Documents = append(report.Documents, doc)
		}
	}

	return report, nil
}
