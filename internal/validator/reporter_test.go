package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatJSON)

	result := &Result{}
	result.AddError(4, "Invalid approval_policy")
	if err := r.Report(result); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["valid"] != false {
		t.Errorf("valid = %v, want false", decoded["valid"])
	}
}

func TestReporter_Text(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "clean result",
			result: &Result{},
			want:   []string{"Validation passed"},
		},
		{
			name: "errors and warnings",
			result: func() *Result {
				r := &Result{}
				r.AddError(1, "missing frontmatter")
				r.AddWarning(0, "no MCP servers configured", "add an [mcp_servers.name] section")
				return r
			}(),
			want: []string{"Validation failed", "1 error(s)", "1 warning(s)", "line 1", "missing frontmatter", "mcp_servers"},
		},
		{
			name: "warnings only",
			result: func() *Result {
				r := &Result{}
				r.AddWarning(0, "no Setup section found", "add a ## Setup section")
				return r
			}(),
			want: []string{"Validation passed with", "1 warning(s)", "Setup"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewReporter(&buf, FormatText)
			if err := r.Report(tt.result); err != nil {
				t.Fatalf("Report() error = %v", err)
			}
			out := buf.String()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}
