// Package prompt provides interactive CLI prompts for choosing a document
// when discovery finds more than one candidate.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/agentlint/agentlint/internal/errors"
)

// Sentinel errors for document selection.
var (
	ErrNoCandidates       = errors.New("no documents to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Selector handles interactive document selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
}

// NewSelector creates a new Selector using stdin and stdout.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
}

// NewSelectorWithIO creates a Selector with custom reader and writer for testing.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectPath prompts the user to choose one path from candidates.
//
// Returns:
//   - ErrNoCandidates if the list is empty
//   - The path directly if only one exists (auto-selects without prompting)
//   - The selected path based on user input
//   - ErrInvalidSelection if the selection is out of range
//   - ErrSelectionCancelled if input is EOF (e.g., Ctrl+D)
func (s *Selector) SelectPath(kind string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}

	fmt.Fprintf(s.writer, "Multiple %s documents found:\n", kind)
	for i, path := range candidates {
		fmt.Fprintf(s.writer, "  [%d] %s\n", i+1, path)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	scanner := bufio.NewScanner(s.reader)
	if !scanner.Scan() {
		return "", ErrSelectionCancelled
	}

	input := strings.TrimSpace(scanner.Text())
	if input == "" {
		return candidates[0], nil
	}

	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(candidates) {
		return "", errors.Wrapf(ErrInvalidSelection, "%q", input)
	}
	return candidates[idx-1], nil
}

// FuzzySelectPath opens a fuzzy finder over candidates with a preview of
// each file's first lines. Intended for interactive terminals; returns
// ErrSelectionCancelled if the user aborts.
func FuzzySelectPath(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return previewFile(candidates[i], h)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", ErrSelectionCancelled
		}
		return "", errors.Wrap(err, "fuzzy selection failed")
	}
	return candidates[idx], nil
}

// previewFile returns up to maxLines lines of the file at path.
func previewFile(path string, maxLines int) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Sprintf("cannot read %s: %v", path, err)
	}
	lines := strings.Split(string(data), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}
