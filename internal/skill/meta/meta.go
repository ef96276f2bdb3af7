// Package meta provides a strict typed view of skill-definition documents
// for display and tooling. The lenient validator remains authoritative for
// diagnostics; Load fails outright on malformed documents.
package meta

import (
	"strings"

	"github.com/agentlint/agentlint/internal/errors"
	"github.com/agentlint/agentlint/internal/skill/toolperm"
	"github.com/agentlint/agentlint/pkg/fileutil"
	"github.com/agentlint/agentlint/pkg/frontmatter"
)

// Meta is the frontmatter of a skill definition plus its markdown body.
type Meta struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	License      string `yaml:"license"`
	AllowedTools string `yaml:"allowed-tools"`

	// Instructions is the markdown body after the frontmatter block.
	Instructions string `yaml:"-"`
}

// Permissions parses the allowed-tools field.
func (m *Meta) Permissions() ([]toolperm.Permission, error) {
	return toolperm.Parse(m.AllowedTools)
}

// Parse decodes a skill document from text.
func Parse(text string) (*Meta, error) {
	var m Meta
	body, err := frontmatter.Decode(text, &m)
	if err != nil {
		return nil, errors.Wrap(err, "parsing skill metadata")
	}
	m.Instructions = strings.TrimSpace(body)
	return &m, nil
}

// Load reads and decodes a skill document from path.
func Load(path string) (*Meta, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading skill %q", path)
	}
	return Parse(string(data))
}
