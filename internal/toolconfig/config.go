package toolconfig

import (
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the strict typed view of a tool configuration document. Use
// Decode when the document is known to be well-formed TOML; the lenient
// Parse remains authoritative for diagnostics.
type Config struct {
	Model          string `toml:"model"`
	ApprovalPolicy string `toml:"approval_policy"`
	SandboxMode    string `toml:"sandbox_mode"`

	MCPServers map[string]MCPServer `toml:"mcp_servers"`
	Profiles   map[string]Profile   `toml:"profiles"`
}

// MCPServer configures one MCP server entry.
type MCPServer struct {
	Command string            `toml:"command"`
	Args    []string          `toml:"args"`
	Env     map[string]string `toml:"env"`
}

// Profile overrides top-level settings for a named execution profile.
type Profile struct {
	Model          string `toml:"model"`
	ApprovalPolicy string `toml:"approval_policy"`
	SandboxMode    string `toml:"sandbox_mode"`
}

// Decode strictly parses text as TOML into a Config.
func Decode(text string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal([]byte(text), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
