// Package toolperm parses the allowed-tools permission syntax used in
// skill frontmatter: space-delimited tokens of the form Name or
// Name(scope), e.g. "Read Bash(git:*)".
package toolperm

import (
	"regexp"
	"strings"

	"github.com/agentlint/agentlint/internal/errors"
)

// ErrInvalidPermission is wrapped into every parse failure.
var ErrInvalidPermission = errors.New("invalid tool permission")

// Permission is one parsed allowed-tools token.
type Permission struct {
	// Name is the tool name, always PascalCase (Read, Bash, WebSearch).
	Name string

	// Scope narrows the permission, e.g. "git:*" from "Bash(git:*)".
	// Empty when the token carries no scope.
	Scope string
}

// String renders the permission in canonical token form.
func (p Permission) String() string {
	if p.Scope == "" {
		return p.Name
	}
	return p.Name + "(" + p.Scope + ")"
}

// tokenPattern matches Name or Name(scope). Names start with an uppercase
// letter followed by alphanumerics.
var tokenPattern = regexp.MustCompile(`^([A-Z][a-zA-Z0-9]*)(?:\(([^)]+)\))?$`)

// Parse splits a space-delimited allowed-tools value into permissions.
// Empty input yields an empty slice.
func Parse(allowedTools string) ([]Permission, error) {
	tokens := strings.Fields(allowedTools)
	perms := make([]Permission, 0, len(tokens))

	for _, token := range tokens {
		perm, err := ParseToken(token)
		if err != nil {
			return nil, err
		}
		perms = append(perms, perm)
	}

	return perms, nil
}

// ParseToken parses a single allowed-tools token.
func ParseToken(token string) (Permission, error) {
	m := tokenPattern.FindStringSubmatch(token)
	if m == nil {
		return Permission{}, errors.Wrapf(ErrInvalidPermission,
			"%q: tool names must be PascalCase, optionally scoped like Bash(git:*)", token)
	}
	return Permission{Name: m[1], Scope: m[2]}, nil
}

// Format joins permissions back into a space-delimited value.
func Format(perms []Permission) string {
	parts := make([]string, len(perms))
	for i, perm := range perms {
		parts[i] = perm.String()
	}
	return strings.Join(parts, " ")
}
