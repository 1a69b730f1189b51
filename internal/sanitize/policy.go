// file: internal/sanitize/policy.go
// version: 1.0.0
// guid: f58cc5b7-dbc3-4810-958f-bff07f8d3e6c

package sanitize

import (
	"fmt"
	"strings"
)

// Separator policy names accepted by PolicyByName.
const (
	PolicyAuto     = "auto"
	PolicyPortable = "portable"
	PolicyLinux    = "linux"
	PolicyDashes   = "dashes"
)

// Replacement substitutes Old with New inside a path component.
type Replacement struct {
	Old string
	New string
}

// Policy is an ordered substitution table applied to every path component.
// Wider patterns must come before their substrings (": " before ":").
type Policy struct {
	Name         string
	Replacements []Replacement
	// TrimTrailing lists characters a component may not end with.
	TrimTrailing string
}

var baseReplacements = []Replacement{
	{Old: ": ", New: " - "},
	{Old: ":", New: ";"},
	{Old: `"`, New: "'"},
	{Old: `\`, New: ""},
	{Old: "|", New: ""},
	{Old: "*", New: "-"},
	{Old: "?", New: "❓"},
	{Old: "...", New: "…"},
	{Old: "<", New: "{"},
	{Old: ">", New: "}"},
}

// newPolicy slots the forward-slash rule in right after the backslash rule.
func newPolicy(name, slash string) Policy {
	repl := make([]Replacement, 0, len(baseReplacements)+1)
	for _, r := range baseReplacements {
		repl = append(repl, r)
		if r.Old == `\` {
			repl = append(repl, Replacement{Old: "/", New: slash})
		}
	}
	return Policy{Name: name, Replacements: repl, TrimTrailing: ". "}
}

// Portable drops forward slashes entirely. Safe on every platform.
func Portable() Policy { return newPolicy(PolicyPortable, "") }

// Linux keeps the look of a slash by mapping it to U+2044 FRACTION SLASH.
func Linux() Policy { return newPolicy(PolicyLinux, "⁄") }

// Dashes maps forward slashes to "-" ("AC/DC" becomes "AC-DC").
func Dashes() Policy { return newPolicy(PolicyDashes, "-") }

// PolicyByName resolves a configured policy name. "auto" (or empty) picks
// Linux on linux and Portable everywhere else.
func PolicyByName(name, goos string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyAuto:
		if goos == "linux" {
			return Linux(), nil
		}
		return Portable(), nil
	case PolicyPortable:
		return Portable(), nil
	case PolicyLinux:
		return Linux(), nil
	case PolicyDashes:
		return Dashes(), nil
	default:
		return Policy{}, fmt.Errorf("unknown separator policy %q", name)
	}
}
