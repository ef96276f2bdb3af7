package paths

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"

	"github.com/agentlint/agentlint/internal/errors"
)

// Document kinds agentlint validates.
const (
	KindInstructions = "instructions"
	KindSkill        = "skill"
	KindConfig       = "config"
)

// kindFileNames maps each document kind to the file names it is published
// under, in preference order.
var kindFileNames = map[string][]string{
	KindInstructions: {"AGENTS.md", "CLAUDE.md", "GEMINI.md"},
	KindSkill:        {"SKILL.md"},
	KindConfig:       {"config.toml"},
}

// ErrUnknownKind indicates an unrecognized document kind.
var ErrUnknownKind = errors.New("unknown document kind")

// Kinds returns the known document kinds in stable order.
func Kinds() []string {
	return []string{KindInstructions, KindSkill, KindConfig}
}

// ValidKind reports whether kind is a known document kind.
func ValidKind(kind string) bool {
	_, ok := kindFileNames[kind]
	return ok
}

// FileNames returns the candidate file names for a document kind, in
// preference order. Unknown kinds yield nil.
func FileNames(kind string) []string {
	return kindFileNames[kind]
}

// ConfigHome returns the directory agentlint's own configuration lives in,
// following the XDG Base Directory Specification.
func ConfigHome() string {
	return xdg.ConfigHome
}

// Discover returns the paths of candidate documents of the given kind under
// dir: matching files in dir itself, plus matches one subdirectory deep
// (skills conventionally live in one directory per skill). Results are
// sorted for deterministic CLI behavior.
func Discover(dir, kind string) ([]string, error) {
	names, ok := kindFileNames[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}

	var found []string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if isFile(path) {
			found = append(found, path)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading directory")
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		for _, name := range names {
			path := filepath.Join(dir, entry.Name(), name)
			if isFile(path) {
				found = append(found, path)
			}
		}
	}

	sort.Strings(found)
	return found, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
