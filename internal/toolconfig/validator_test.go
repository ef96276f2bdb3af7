package toolconfig

import (
	"reflect"
	"strings"
	"testing"
)

const validConfig = `
model = "gpt-5"
approval_policy = "on-request"
sandbox_mode = "workspace-write"

[mcp_servers.github]
command = "github-mcp"
`

func TestValidate_ValidConfig(t *testing.T) {
	result := Validate(validConfig)
	if !result.Valid() {
		t.Fatalf("expected valid, got errors: %+v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got: %+v", result.Warnings)
	}
}

func TestValidate_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "# only comments\n"} {
		result := Validate(text)
		if result.Valid() {
			t.Fatal("expected invalid result")
		}
		if len(result.Errors) < 3 {
			t.Fatalf("got %d errors, want at least 3: %+v", len(result.Errors), result.Errors)
		}
	}
}

func TestValidate_MissingKeys(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"missing model", "approval_policy = \"never\"\nsandbox_mode = \"read-only\"\n", "model"},
		{"missing approval_policy", "model = \"m\"\nsandbox_mode = \"read-only\"\n", "approval_policy"},
		{"missing sandbox_mode", "model = \"m\"\napproval_policy = \"never\"\n", "sandbox_mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.text)
			var found bool
			for _, d := range result.Errors {
				if strings.Contains(d.Message, "missing required key") && strings.Contains(d.Message, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected missing-key error naming %q: %+v", tt.want, result.Errors)
			}
		})
	}
}

func TestValidate_InvalidEnums(t *testing.T) {
	result := Validate("model = \"m\"\napproval_policy = \"invalid-policy\"\nsandbox_mode = \"read-only\"\n")
	var found bool
	for _, d := range result.Errors {
		if strings.Contains(d.Message, "Invalid approval_policy") && strings.Contains(d.Message, "invalid-policy") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Invalid approval_policy error: %+v", result.Errors)
	}

	result = Validate("model = \"m\"\napproval_policy = \"never\"\nsandbox_mode = \"everything\"\n")
	found = false
	for _, d := range result.Errors {
		if strings.Contains(d.Message, "Invalid sandbox_mode") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Invalid sandbox_mode error: %+v", result.Errors)
	}
}

func TestValidate_UnscopedNeverPolicy(t *testing.T) {
	base := "model = \"m\"\napproval_policy = \"never\"\nsandbox_mode = \"read-only\"\n[mcp_servers.gh]\ncommand = \"gh\"\n"

	result := Validate(base)
	var warned bool
	for _, d := range result.Warnings {
		if strings.Contains(d.Message, `"never" approval policy`) {
			warned = true
			if d.Suggestion == "" {
				t.Error("warning should carry a suggestion")
			}
		}
	}
	if !warned {
		t.Errorf("expected unscoped never-policy warning: %+v", result.Warnings)
	}

	// Any profiles section removes that specific warning.
	scoped := Validate(base + "[profiles.ci]\nmodel = \"m\"\n")
	for _, d := range scoped.Warnings {
		if strings.Contains(d.Message, `"never" approval policy`) {
			t.Errorf("profiles section should clear the warning: %+v", d)
		}
	}
}

func TestValidate_UnscopedFullAccess(t *testing.T) {
	result := Validate("model = \"m\"\napproval_policy = \"on-request\"\nsandbox_mode = \"danger-full-access\"\n")
	var warned bool
	for _, d := range result.Warnings {
		if strings.Contains(d.Message, "danger-full-access") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected unscoped full-access warning: %+v", result.Warnings)
	}
}

func TestValidate_NoMCPServersWarning(t *testing.T) {
	result := Validate("model = \"m\"\napproval_policy = \"on-request\"\nsandbox_mode = \"read-only\"\n")
	var warned bool
	for _, d := range result.Warnings {
		if strings.Contains(d.Message, "MCP servers") {
			warned = true
		}
	}
	if !warned {
		t.Errorf("expected MCP servers warning: %+v", result.Warnings)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	text := "approval_policy = \"never\"\n"
	if !reflect.DeepEqual(Validate(text), Validate(text)) {
		t.Error("repeated validation of identical input should be structurally equal")
	}
}
