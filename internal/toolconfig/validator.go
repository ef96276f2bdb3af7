package toolconfig

import (
	"github.com/agentlint/agentlint/internal/validator"
)

// requiredKeys are the top-level keys every tool config must define,
// checked in order.
var requiredKeys = []string{"model", "approval_policy", "sandbox_mode"}

// approvalPolicies is the closed set of accepted approval_policy values.
var approvalPolicies = map[string]bool{
	"untrusted":  true,
	"on-failure": true,
	"on-request": true,
	"never":      true,
}

// sandboxModes is the closed set of accepted sandbox_mode values.
var sandboxModes = map[string]bool{
	"read-only":          true,
	"workspace-write":    true,
	"danger-full-access": true,
}

// Validate checks a tool configuration document. Empty input, or input
// containing only comments, fails on all three required keys.
func Validate(content string) *validator.Result {
	result := &validator.Result{}
	cfg := Parse(content)

	for _, key := range requiredKeys {
		if _, ok := cfg.TopLevel[key]; !ok {
			result.AddErrorf(0, "missing required key %q", key)
		}
	}

	approval, hasApproval := cfg.TopLevel["approval_policy"]
	if hasApproval && !approvalPolicies[approval] {
		result.AddErrorf(0, "Invalid approval_policy %q: must be one of untrusted, on-failure, on-request, never", approval)
	}

	sandbox, hasSandbox := cfg.TopLevel["sandbox_mode"]
	if hasSandbox && !sandboxModes[sandbox] {
		result.AddErrorf(0, "Invalid sandbox_mode %q: must be one of read-only, workspace-write, danger-full-access", sandbox)
	}

	if len(cfg.SectionsWithPrefix("mcp_servers.")) == 0 {
		result.AddWarning(0,
			"no MCP servers configured",
			"Add an [mcp_servers.name] section to give the agent tool access")
	}

	hasProfiles := len(cfg.SectionsWithPrefix("profiles.")) > 0
	if approval == "never" && !hasProfiles {
		result.AddWarning(0,
			`"never" approval policy set without profile overrides`,
			"Add a [profiles.name] section so unattended runs can be scoped")
	}
	if sandbox == "danger-full-access" && !hasProfiles {
		result.AddWarning(0,
			`sandbox_mode "danger-full-access" set without profile overrides`,
			"Add a [profiles.name] section so full filesystem access stays scoped")
	}

	return result
}
