// Package paths resolves where agentlint's documents and configuration live.
//
// The validated document kinds map to the file names coding agents publish
// them under:
//
//	| Kind         | File names                    |
//	|--------------|-------------------------------|
//	| instructions | AGENTS.md, CLAUDE.md, GEMINI.md |
//	| skill        | SKILL.md                      |
//	| config       | config.toml                   |
//
// [Discover] locates candidate documents of a kind under a directory so the
// CLI can validate a project without being handed exact file paths.
//
// agentlint's own configuration follows the XDG Base Directory
// Specification via github.com/adrg/xdg; see [ConfigHome].
package paths
