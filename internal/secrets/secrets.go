// Package secrets detects and masks secret-like values in document text.
package secrets

import (
	"regexp"
	"strings"
)

// Rule describes one class of secret-like assignment to scan for. Rules are
// kept as an ordered table so the check stays auditable and adding a
// category never touches control flow.
type Rule struct {
	// Keyword is the case-insensitive key name that marks an assignment
	// as sensitive.
	Keyword string
	// MinValueLength is the minimum value length to consider a match.
	// Shorter values are assumed to be placeholders or examples.
	MinValueLength int
}

// Rules is the ordered scan table. Keywords are matched case-insensitively
// and must be followed on the same line by a separator and a value.
var Rules = []Rule{
	{Keyword: "api_key", MinValueLength: 8},
	{Keyword: "apikey", MinValueLength: 8},
	{Keyword: "password", MinValueLength: 8},
	{Keyword: "secret", MinValueLength: 8},
	{Keyword: "token", MinValueLength: 8},
}

// Placeholders lists values that look like secrets but are obvious
// stand-ins. Matched case-insensitively.
var Placeholders = []string{
	"xxx",
	"xxxxxxxx",
	"your-key-here",
	"your-api-key",
	"changeme",
	"change-me",
	"placeholder",
	"redacted",
	"example",
}

// rulePatterns holds one compiled pattern per rule, in table order.
// Pattern shape: keyword, then a separator (=, :, or whitespace), optional
// quote, then the candidate value. Requiring a separator keeps prose like
// "tokenization" from matching the "token" rule.
var rulePatterns = compileRules()

func compileRules() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(Rules))
	for i, r := range Rules {
		patterns[i] = regexp.MustCompile(
			`(?i)` + regexp.QuoteMeta(r.Keyword) + `(?:\s*[:=]\s*|\s+)["']?([^"'\s]+)`)
	}
	return patterns
}

// Match is one secret-like value found in a line of text.
type Match struct {
	// Keyword is the rule keyword that fired.
	Keyword string
	// Value is the matched candidate value.
	Value string
}

// Scan checks a single line against the rule table and returns all matches.
// Values shorter than the rule's minimum or on the placeholder list do not
// match.
func Scan(line string) []Match {
	var matches []Match
	for i, rule := range Rules {
		for _, m := range rulePatterns[i].FindAllStringSubmatch(line, -1) {
			value := m[1]
			if len(value) < rule.MinValueLength {
				continue
			}
			if IsPlaceholder(value) {
				continue
			}
			matches = append(matches, Match{Keyword: rule.Keyword, Value: value})
		}
	}
	return matches
}

// IsPlaceholder reports whether a value is an obvious stand-in rather than
// a real credential.
func IsPlaceholder(value string) bool {
	lower := strings.ToLower(value)
	for _, p := range Placeholders {
		if lower == p {
			return true
		}
	}
	return false
}

// ShouldMask returns true if the key name suggests it holds sensitive data.
// Matching is case-insensitive and by substring, so "GITHUB_TOKEN" and
// "db_password" both match.
func ShouldMask(key string) bool {
	lower := strings.ToLower(key)
	for _, rule := range Rules {
		if strings.Contains(lower, rule.Keyword) {
			return true
		}
	}
	return false
}

// MaskValue masks a potentially sensitive string value. Values with 4 or
// fewer characters are fully masked; longer values keep the last 4.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
