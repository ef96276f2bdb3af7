// Package validator defines the diagnostics contract shared by the
// agentlint document validators.
//
// Each validator returns a [Result] holding ordered errors and warnings.
// A document is valid exactly when it has no errors; warnings never flip
// validity. Diagnostics keep the fixed order their checks ran in, which
// makes results reproducible across runs on identical input.
//
// # Core Concepts
//
//   - [Diagnostic]: one finding with message, optional line, optional suggestion.
//   - [Result]: ordered errors and warnings plus the computed valid flag.
//   - [Reporter]: renders a Result as colorized text or JSON.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if !strings.HasPrefix(firstLine, "# ") {
//		result.AddError(1, "document must start with a level-1 heading")
//	}
//
//	if !result.Valid() {
//		// handle validation failure
//	}
package validator
