// Package validator validates skill-definition documents: SKILL.md files
// with YAML frontmatter metadata and a markdown body.
package validator

import (
	"fmt"

	"github.com/agentlint/agentlint/internal/mdtext"
	"github.com/agentlint/agentlint/internal/skill/toolperm"
	"github.com/agentlint/agentlint/internal/validator"
	"github.com/agentlint/agentlint/pkg/frontmatter"
)

// requiredFields are the frontmatter keys every skill must define, checked
// in order.
var requiredFields = []string{"name", "description"}

// triggerTitles is the accepted set of titles for the section describing
// when the skill applies. Adding a synonym is a one-line change.
var triggerTitles = []string{"When to Trigger", "When to Use"}

// Validate checks a skill-definition document. Frontmatter structure is
// checked first; field and body checks only run once the block is known to
// be closed, since content past an unterminated block is unreliable.
func Validate(content string) *validator.Result {
	result := &validator.Result{}
	lines := mdtext.SplitLines(content)
	fm := frontmatter.ExtractLines(lines)

	if !fm.Present {
		result.AddError(1, "missing frontmatter: document must start with a --- delimited metadata block")
		return result
	}
	if !fm.Closed {
		result.AddError(fm.StartLine, "frontmatter block is not properly closed with ---")
		return result
	}

	for _, field := range requiredFields {
		if fm.Fields[field] == "" {
			result.AddErrorf(fm.StartLine, "frontmatter is missing required field %q", field)
		}
	}

	checkAllowedTools(result, fm)
	checkBody(result, lines, fm)
	return result
}

// checkAllowedTools verifies the optional allowed-tools field parses as
// tool permission tokens. The field is advisory, so a bad value is a
// warning rather than an error.
func checkAllowedTools(result *validator.Result, fm frontmatter.FrontMatter) {
	allowed, ok := fm.Fields["allowed-tools"]
	if !ok || allowed == "" {
		return
	}
	if _, err := toolperm.Parse(allowed); err != nil {
		result.AddWarning(fm.StartLine,
			fmt.Sprintf("allowed-tools is not valid tool permission syntax: %v", err),
			`Use space-delimited PascalCase tool names, e.g. "Read Bash(git:*)"`)
	}
}

// checkBody scans the markdown body following the frontmatter close for the
// recommended sections.
func checkBody(result *validator.Result, lines []string, fm frontmatter.FrontMatter) {
	sections := mdtext.ScanSections(lines[fm.EndLine:])
	for i := range sections {
		sections[i].StartLine += fm.EndLine
		sections[i].EndLine += fm.EndLine
	}

	if _, ok := mdtext.FindSection(sections, "Purpose"); !ok {
		result.AddWarning(0,
			`no "Purpose" section found`,
			"Add a ## Purpose section explaining what the skill does")
	}

	if _, ok := mdtext.FindSection(sections, triggerTitles...); !ok {
		result.AddWarning(0,
			fmt.Sprintf("no trigger section found (%q or %q)", triggerTitles[0], triggerTitles[1]),
			"Add a ## When to Trigger section describing when agents should apply the skill")
	}
}
