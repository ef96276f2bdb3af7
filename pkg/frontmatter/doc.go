// Package frontmatter parses "---" delimited metadata blocks from markdown
// documents used by agentlint for skill definitions.
//
// Two layers are provided. [Extract] is lenient: it never fails, reporting
// presence, closedness, line range, and best-effort top-level fields so a
// validator can attach severity. [Decode] is strict: it parses the block as
// YAML into a caller-supplied struct and errors on absent or unterminated
// blocks.
//
// # Lenient Extraction
//
//	fm := frontmatter.Extract(content)
//	if fm.Present && !fm.Closed {
//		// opened but unterminated block
//	}
//	name := fm.Fields["name"]
//
// # Strict Decoding
//
//	type SkillMeta struct {
//		Name        string `yaml:"name"`
//		Description string `yaml:"description"`
//	}
//
//	var meta SkillMeta
//	body, err := frontmatter.Decode(content, &meta)
//	if errors.Is(err, frontmatter.ErrMissingFrontmatter) {
//		// handle missing frontmatter
//	}
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter
