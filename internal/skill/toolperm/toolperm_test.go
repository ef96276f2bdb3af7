package toolperm

import (
	"testing"

	"github.com/agentlint/agentlint/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Permission
		wantErr bool
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Permission{},
		},
		{
			name:  "single bare tool",
			input: "Read",
			want:  []Permission{{Name: "Read"}},
		},
		{
			name:  "scoped tool",
			input: "Bash(git:*)",
			want:  []Permission{{Name: "Bash", Scope: "git:*"}},
		},
		{
			name:  "mixed list",
			input: "Read Write Bash(npm:test)",
			want: []Permission{
				{Name: "Read"},
				{Name: "Write"},
				{Name: "Bash", Scope: "npm:test"},
			},
		},
		{
			name:  "extra whitespace",
			input: "  Read   Grep  ",
			want:  []Permission{{Name: "Read"}, {Name: "Grep"}},
		},
		{
			name:    "lowercase name",
			input:   "read",
			wantErr: true,
		},
		{
			name:    "unclosed scope",
			input:   "Bash(git:*",
			wantErr: true,
		},
		{
			name:    "empty scope",
			input:   "Bash()",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, ErrInvalidPermission) {
					t.Errorf("error = %v, want ErrInvalidPermission", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d permissions, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("perm[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormat(t *testing.T) {
	perms := []Permission{
		{Name: "Read"},
		{Name: "Bash", Scope: "git:*"},
	}
	if got := Format(perms); got != "Read Bash(git:*)" {
		t.Errorf("Format() = %q", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty", got)
	}
}

func TestPermissionString(t *testing.T) {
	if got := (Permission{Name: "Write"}).String(); got != "Write" {
		t.Errorf("String() = %q", got)
	}
	if got := (Permission{Name: "Bash", Scope: "go:*"}).String(); got != "Bash(go:*)" {
		t.Errorf("String() = %q", got)
	}
}
