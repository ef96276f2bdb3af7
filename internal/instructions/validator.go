// Package instructions validates project-instructions documents: the
// machine-authored onboarding files that tell a coding agent how to work in
// a repository.
package instructions

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentlint/agentlint/internal/mdtext"
	"github.com/agentlint/agentlint/internal/secrets"
	"github.com/agentlint/agentlint/internal/validator"
)

// skillRefPattern matches skill-reference tokens: a '$' immediately
// followed by an identifier, e.g. "$commit-style".
var skillRefPattern = regexp.MustCompile(`\$[A-Za-z][A-Za-z0-9_-]*`)

// minCodeBlocks is the number of fenced code blocks a useful instructions
// document is expected to carry.
const minCodeBlocks = 2

// recommendedSections are the level-2 sections every instructions document
// should have, checked in order.
var recommendedSections = []struct {
	title      string
	suggestion string
}{
	{"Setup", "Add a ## Setup section describing how to install and build the project"},
	{"Code Standards", "Add a ## Code Standards section describing formatting and style rules"},
	{"Security", "Add a ## Security section describing secret handling and safe defaults"},
}

// Validate checks a project-instructions document. Checks run in a fixed
// order: heading structure, secret scanning, recommended sections, skill
// references, code examples. It is pure: identical input yields identical
// diagnostics.
func Validate(content string) *validator.Result {
	result := &validator.Result{}
	lines := mdtext.SplitLines(content)
	sections := mdtext.ScanSections(lines)

	checkLeadingHeading(result, lines)
	checkSecrets(result, lines)
	checkSections(result, sections)
	checkSkillReferences(result, lines)
	checkCodeExamples(result, lines)

	return result
}

// checkLeadingHeading requires the first non-blank line to be a level-1
// heading.
func checkLeadingHeading(result *validator.Result, lines []string) {
	line, text := mdtext.FirstContentLine(lines)
	if line == 0 {
		result.AddError(1, "document must start with a level-1 heading (# Title)")
		return
	}
	if !strings.HasPrefix(text, "# ") {
		result.AddErrorf(line, "first content must be a level-1 heading (# Title), found %q", truncate(text, 40))
	}
}

// checkSecrets scans every line against the secret rule table. Each match
// is a separate error.
func checkSecrets(result *validator.Result, lines []string) {
	for i, line := range lines {
		for _, m := range secrets.Scan(line) {
			result.AddErrorf(i+1,
				"potential secret exposed on line %d: %s value should not appear in instructions",
				i+1, m.Keyword)
		}
	}
}

// checkSections warns for each recommended section that is missing.
func checkSections(result *validator.Result, sections []mdtext.Section) {
	for _, rec := range recommendedSections {
		if _, ok := mdtext.FindSection(sections, rec.title); !ok {
			result.AddWarning(0,
				fmt.Sprintf("no %q section found", rec.title),
				rec.suggestion)
		}
	}
}

// checkSkillReferences warns when the document never references a skill.
// Fenced code blocks are opaque: a "$var" inside shell output is not a
// skill reference.
func checkSkillReferences(result *validator.Result, lines []string) {
	fenced := mdtext.FencedLines(lines)
	for i, line := range lines {
		if fenced[i+1] {
			continue
		}
		if skillRefPattern.MatchString(line) {
			return
		}
	}
	result.AddWarning(0,
		"no skill references found in document",
		"Reference skills with $skill-name tokens so agents know which skills apply")
}

// checkCodeExamples warns when the document carries too few fenced code
// blocks to be actionable.
func checkCodeExamples(result *validator.Result, lines []string) {
	if n := mdtext.CountFencedBlocks(lines); n < minCodeBlocks {
		result.AddWarning(0,
			fmt.Sprintf("document has %d fenced code block(s); expected at least %d code examples", n, minCodeBlocks),
			"Add fenced code blocks showing common commands and expected output")
	}
}

// truncate shortens a string for inclusion in a diagnostic message.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
