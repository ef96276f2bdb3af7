package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agentlint/agentlint/internal/errors"
)

func TestSelectPath(t *testing.T) {
	candidates := []string{"a/AGENTS.md", "b/CLAUDE.md", "c/GEMINI.md"}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"picks by number", "2\n", "b/CLAUDE.md", nil},
		{"empty input defaults to first", "\n", "a/AGENTS.md", nil},
		{"out of range", "9\n", "", ErrInvalidSelection},
		{"not a number", "abc\n", "", ErrInvalidSelection},
		{"eof cancels", "", "", ErrSelectionCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &out)

			got, err := s.SelectPath("instructions", candidates)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectPath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectPath() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "instructions") {
				t.Errorf("prompt should name the document kind: %q", out.String())
			}
		})
	}
}

func TestSelectPath_SingleAutoSelects(t *testing.T) {
	var out bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &out)

	got, err := s.SelectPath("skill", []string{"only/SKILL.md"})
	if err != nil {
		t.Fatalf("SelectPath() error = %v", err)
	}
	if got != "only/SKILL.md" {
		t.Errorf("SelectPath() = %q", got)
	}
	if out.Len() != 0 {
		t.Error("single candidate should not prompt")
	}
}

func TestSelectPath_Empty(t *testing.T) {
	s := NewSelectorWithIO(strings.NewReader(""), &bytes.Buffer{})
	if _, err := s.SelectPath("config", nil); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("error = %v, want ErrNoCandidates", err)
	}
}
