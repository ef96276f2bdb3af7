// Package toolconfig parses and validates agent tool configuration files:
// TOML-style documents declaring the model, execution policy, sandbox mode,
// MCP servers, and profiles for a coding agent.
package toolconfig

import (
	"regexp"
	"strings"

	"github.com/agentlint/agentlint/internal/mdtext"
)

// headerPattern matches a bracketed section header of dotted identifiers,
// e.g. [mcp_servers.github] or [profiles.ci].
var headerPattern = regexp.MustCompile(`^\[([A-Za-z0-9_-]+(?:\.[A-Za-z0-9_-]+)*)\]$`)

// keyPattern matches a bare assignment key.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ParsedConfig is the best-effort view of a tool configuration document.
// Section names are the dotted identifiers from bracketed headers; values
// are de-quoted source text with no type coercion.
type ParsedConfig struct {
	TopLevel map[string]string
	Sections map[string]map[string]string
}

// SectionsWithPrefix returns the names of sections underneath the given
// dotted prefix, e.g. "mcp_servers." matches [mcp_servers.github].
func (c *ParsedConfig) SectionsWithPrefix(prefix string) []string {
	var names []string
	for name := range c.Sections {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}

// Parse reads a restricted line-oriented configuration syntax: top-level
// `key = value` assignments, one bracketed section header per line, and `#`
// comments. It is lenient by design: unrecognized lines are skipped, never
// reported. Missing required keys are a semantic matter for the validator,
// not a syntax error here.
func Parse(text string) *ParsedConfig {
	cfg := &ParsedConfig{
		TopLevel: map[string]string{},
		Sections: map[string]map[string]string{},
	}

	current := "" // empty means top level
	for _, line := range mdtext.SplitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			current = m[1]
			if cfg.Sections[current] == nil {
				cfg.Sections[current] = map[string]string{}
			}
			continue
		}

		key, value, ok := parseAssignment(line)
		if !ok {
			continue
		}
		if current == "" {
			cfg.TopLevel[key] = value
		} else {
			cfg.Sections[current][key] = value
		}
	}

	return cfg
}

// parseAssignment splits a `key = value` line. Values keep their source
// text: quoted strings are de-quoted verbatim, bracketed lists stay as the
// literal bracketed text, and bare literals (true, numbers) are untouched.
func parseAssignment(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if !keyPattern.MatchString(key) {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}
