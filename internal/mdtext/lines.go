// Package mdtext provides line-oriented scanning helpers for markdown-style
// documents: line indexing, heading extraction, and fenced-code tracking.
package mdtext

import "strings"

// SplitLines splits raw text into lines for 1-based attribution: line n of
// the document is lines[n-1]. It splits on line feeds, tolerates a trailing
// carriage return per line, and preserves empty lines. No other
// normalization is applied.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// FirstContentLine returns the 1-based number and text of the first
// non-blank line, or 0 and "" when the document has none.
func FirstContentLine(lines []string) (int, string) {
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return i + 1, line
		}
	}
	return 0, ""
}
