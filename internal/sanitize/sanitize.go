// file: internal/sanitize/sanitize.go
// version: 1.0.0
// guid: ae7f961e-d564-40f3-bf23-ae2cc6474d0c

// Package sanitize turns raw tag strings into path components that are safe
// on the target operating system and bounded in rendered width.
package sanitize

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Placeholder marks a component that was shortened to fit its width.
const Placeholder = "(…)"

// IllegalChars can never appear in a sanitized component.
const IllegalChars = `<>:"/\|?*`

// Sanitizer applies a Policy to raw strings.
type Sanitizer struct {
	policy Policy
}

// New creates a sanitizer for the given policy.
func New(policy Policy) Sanitizer {
	return Sanitizer{policy: policy}
}

// Policy returns the substitution policy in use.
func (s Sanitizer) Policy() Policy {
	return s.policy
}

// Sanitize converts raw into a path component no wider than maxWidth.
// Only the text before the first semicolon is kept, since multi-value tags
// are usually joined that way. The result is empty when nothing usable is
// left; callers substitute their own placeholder in that case.
func (s Sanitizer) Sanitize(raw string, maxWidth int) string {
	return s.clean(raw, maxWidth, ";")
}

// SanitizeGenre is Sanitize that also cuts at the first comma
// ("Rock, Pop" becomes "Rock").
func (s Sanitizer) SanitizeGenre(raw string, maxWidth int) string {
	return s.clean(raw, maxWidth, ";,")
}

func (s Sanitizer) clean(raw string, maxWidth int, cutset string) string {
	out := norm.NFC.String(strings.TrimSpace(raw))
	if i := strings.IndexAny(out, cutset); i >= 0 {
		out = out[:i]
	}
	for _, r := range s.policy.Replacements {
		out = strings.ReplaceAll(out, r.Old, r.New)
	}
	out = stripIllegal(out)
	out = strings.Join(strings.Fields(out), " ")
	out = strings.TrimRight(out, s.policy.TrimTrailing)
	out = Truncate(out, maxWidth, Placeholder)
	return strings.TrimRight(out, s.policy.TrimTrailing)
}

// stripIllegal removes control characters and anything from IllegalChars the
// policy table left behind.
func stripIllegal(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(IllegalChars, r) {
			return -1
		}
		return r
	}, s)
}

// Truncate shortens s to at most maxWidth rendered columns, breaking on a
// word boundary and appending placeholder. A single word that does not fit
// on its own is cut and still marked with the placeholder. maxWidth <= 0
// disables truncation.
func Truncate(s string, maxWidth int, placeholder string) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	pw := runewidth.StringWidth(placeholder)
	if maxWidth <= pw {
		return fit(runewidth.Truncate(s, maxWidth, ""), maxWidth)
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	budget := maxWidth - pw
	var b strings.Builder
	width := 0
	for i, w := range words {
		ww := runewidth.StringWidth(w)
		sep := 0
		if i > 0 {
			sep = 1
		}
		if width+sep+ww > budget {
			break
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
		width += sep + ww
	}
	if b.Len() == 0 {
		return fit(runewidth.Truncate(words[0], budget, "")+placeholder, maxWidth)
	}
	return fit(b.String()+placeholder, maxWidth)
}

// fit drops trailing runes until s renders within maxWidth. Grapheme
// clustering can make a joined string measure differently from its parts.
func fit(s string, maxWidth int) string {
	for s != "" && runewidth.StringWidth(s) > maxWidth {
		r := []rune(s)
		s = string(r[:len(r)-1])
	}
	return s
}
