// Package frontmatter provides parsing of "---" delimited metadata blocks
// at the top of markdown documents.
package frontmatter

import (
	"errors"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agentlint/agentlint/internal/mdtext"
)

// Marker delimits a front matter block. It must appear alone on the first
// line to open a block and alone on a later line to close it.
const Marker = "---"

// ErrMissingFrontmatter is returned by Decode when no block is found.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// ErrUnclosedFrontmatter is returned by Decode when the block never closes.
var ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")

// FrontMatter is the best-effort view of a document's leading metadata
// block. Closed=false with Present=true signals an opened-but-unterminated
// block, a distinct condition from an absent one.
type FrontMatter struct {
	Present   bool
	Closed    bool
	Fields    map[string]string
	StartLine int
	EndLine   int
}

// Extract scans text for a front matter block. It never fails: malformed
// content yields a partial FrontMatter and it is up to the caller to decide
// severity. A document has front matter only when its very first line is
// exactly the marker.
func Extract(text string) FrontMatter {
	lines := mdtext.SplitLines(text)
	return ExtractLines(lines)
}

// ExtractLines is Extract over pre-split lines.
func ExtractLines(lines []string) FrontMatter {
	fm := FrontMatter{Fields: map[string]string{}}

	if len(lines) == 0 || lines[0] != Marker {
		return fm
	}
	fm.Present = true
	fm.StartLine = 1

	closeLine := 0
	for i := 1; i < len(lines); i++ {
		if lines[i] == Marker {
			closeLine = i + 1
			break
		}
	}
	if closeLine == 0 {
		// Opened but never terminated. Content past this point is
		// unreliable, so no field parsing is attempted.
		fm.EndLine = len(lines)
		return fm
	}

	fm.Closed = true
	fm.EndLine = closeLine
	parseFields(lines[1:closeLine-1], fm.Fields)
	return fm
}

// parseFields extracts top-level "key: value" pairs from the block body.
// A value of ">" or "|" introduces a multi-line scalar that absorbs all
// subsequently indented lines until indentation returns to the top level.
// Lines that parse as nothing are ignored; the extractor reports what it
// can and leaves policy to the caller.
func parseFields(body []string, fields map[string]string) {
	for i := 0; i < len(body); i++ {
		line := body[i]
		if line == "" || line[0] == ' ' || line[0] == '\t' || line[0] == '#' {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}
		value = strings.TrimSpace(value)

		if value == ">" || value == "|" {
			var block []string
			for i+1 < len(body) && isIndented(body[i+1]) {
				i++
				block = append(block, strings.TrimSpace(body[i]))
			}
			value = strings.Join(block, "\n")
		}

		fields[key] = unquote(value)
	}
}

// isIndented reports whether a line continues a multi-line scalar: it is
// blank or starts with whitespace.
func isIndented(line string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	return line[0] == ' ' || line[0] == '\t'
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Decode strictly parses the front matter block as YAML into out and
// returns the body following the closing marker. Unlike Extract it fails on
// absent or unterminated blocks and on invalid YAML; use it when a typed
// view of a well-formed document is needed.
func Decode(text string, out any) (body string, err error) {
	lines := mdtext.SplitLines(text)
	if len(lines) == 0 || lines[0] != Marker {
		return "", ErrMissingFrontmatter
	}

	closeIdx := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == Marker {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return "", ErrUnclosedFrontmatter
	}

	block := strings.Join(lines[1:closeIdx], "\n")
	if err := yaml.Unmarshal([]byte(block), out); err != nil {
		return "", err
	}

	return strings.Join(lines[closeIdx+1:], "\n"), nil
}
