package mdtext

import "strings"

// fenceMarker delimits fenced code blocks.
const fenceMarker = "```"

// Section represents a heading and the line range it owns. The range spans
// from the heading line to the line before the next heading of
// equal-or-shallower level, or the end of the document.
type Section struct {
	Title     string
	Level     int
	StartLine int
	EndLine   int
}

// ScanSections extracts ATX-style headings (a leading run of '#', levels
// 1-6, followed by at least one space) from the given lines. Heading-looking
// lines inside fenced code blocks are inert. The scanner only reports what
// it finds; callers decide whether an absent or misplaced heading is an
// error.
func ScanSections(lines []string) []Section {
	var sections []Section
	inFence := false

	for i, line := range lines {
		if isFenceLine(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		level, title, ok := parseHeading(line)
		if !ok {
			continue
		}
		sections = append(sections, Section{
			Title:     title,
			Level:     level,
			StartLine: i + 1,
			EndLine:   len(lines),
		})
	}

	// Close each section at the line before the next heading of
	// equal-or-shallower level.
	for i := range sections {
		for j := i + 1; j < len(sections); j++ {
			if sections[j].Level <= sections[i].Level {
				sections[i].EndLine = sections[j].StartLine - 1
				break
			}
		}
	}

	return sections
}

// FindSection returns the first section whose title matches one of the
// given titles, case-insensitively. Accepted titles form a set so synonym
// headings ("When to Trigger", "When to Use") stay a one-line change.
func FindSection(sections []Section, titles ...string) (Section, bool) {
	for _, s := range sections {
		for _, title := range titles {
			if strings.EqualFold(s.Title, title) {
				return s, true
			}
		}
	}
	return Section{}, false
}

// FencedLines returns the set of 1-based line numbers that belong to fenced
// code blocks, including the fence marker lines themselves. Content on these
// lines is opaque to structural checks.
func FencedLines(lines []string) map[int]bool {
	fenced := make(map[int]bool)
	inFence := false

	for i, line := range lines {
		if isFenceLine(line) {
			fenced[i+1] = true
			inFence = !inFence
			continue
		}
		if inFence {
			fenced[i+1] = true
		}
	}

	return fenced
}

// CountFencedBlocks returns the number of fenced code blocks opened in the
// document. A trailing unterminated fence still counts as one block.
func CountFencedBlocks(lines []string) int {
	count := 0
	inFence := false
	for _, line := range lines {
		if isFenceLine(line) {
			if !inFence {
				count++
			}
			inFence = !inFence
		}
	}
	return count
}

// isFenceLine reports whether the line toggles a fenced code block. The
// marker may carry an info string ("```go") but must start the line.
func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), fenceMarker)
}

// parseHeading parses an ATX heading line into its level and title.
func parseHeading(line string) (level int, title string, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	rest := line[level:]
	if !strings.HasPrefix(rest, " ") {
		return 0, "", false
	}
	title = strings.TrimSpace(rest)
	if title == "" {
		return 0, "", false
	}
	return level, title, true
}
