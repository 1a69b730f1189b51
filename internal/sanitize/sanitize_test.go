// file: internal/sanitize/sanitize_test.go
// version: 1.0.0
// guid: 08657d7e-b662-4183-9bef-0ad3419afdbf

package sanitize

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSanitize(t *testing.T) {
	s := New(Portable())

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Power Metal", "Power Metal"},
		{"surrounding whitespace", "  Blind Guardian \t", "Blind Guardian"},
		{"multi-value tag", "Power Metal;Heavy Metal", "Power Metal"},
		{"colon with space", "Re: Stacks", "Re - Stacks"},
		{"bare colon", "12:00", "12;00"},
		{"double quotes", `Say "Hello"`, "Say 'Hello'"},
		{"forward slash", "AC/DC", "ACDC"},
		{"backslash", `Left\Right`, "LeftRight"},
		{"pipe and asterisk", "a|b*c", "ab-c"},
		{"question mark", "Why?", "Why❓"},
		{"ellipsis", "Wait...", "Wait…"},
		{"angle brackets", "<Intro>", "{Intro}"},
		{"trailing dot", "Vol.", "Vol"},
		{"collapsed whitespace", "Night   Of\tthe  Hunter", "Night Of the Hunter"},
		{"control characters", "Bad\x00Name\x1f", "BadName"},
		{"nothing usable", "///", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Sanitize(tt.input, 50))
		})
	}
}

func TestSanitizeSeparatorPolicies(t *testing.T) {
	assert.Equal(t, "ACDC", New(Portable()).Sanitize("AC/DC", 50))
	assert.Equal(t, "AC⁄DC", New(Linux()).Sanitize("AC/DC", 50))
	assert.Equal(t, "AC-DC", New(Dashes()).Sanitize("AC/DC", 50))
}

func TestSanitizeGenre(t *testing.T) {
	s := New(Portable())
	assert.Equal(t, "Rock", s.SanitizeGenre("Rock, Pop", 50))
	assert.Equal(t, "Rock", s.SanitizeGenre("Rock;Pop, Jazz", 50))
	// Sanitize keeps commas, only genres are split on them.
	assert.Equal(t, "Earth, Wind & Fire", s.Sanitize("Earth, Wind & Fire", 50))
}

func TestSanitizeTruncatesLongValues(t *testing.T) {
	s := New(Portable())
	got := s.Sanitize("The Legend of the Seven Golden Vampires and Other Stories", 20)
	assert.Equal(t, "The Legend of the(…)", got)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 20)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"fits", "Short", 10, "Short"},
		{"word boundary", "The Quick Brown Fox", 12, "The Quick(…)"},
		{"single long token", "Supercalifragilistic", 10, "Superca(…)"},
		{"width smaller than placeholder", "abcdef", 2, "ab"},
		{"unbounded", strings.Repeat("x", 300), 0, strings.Repeat("x", 300)},
		{"wide runes", "日本語のアルバム名前", 9, "日本語(…)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.width, Placeholder)
			assert.Equal(t, tt.expected, got)
			if tt.width > 0 {
				assert.LessOrEqual(t, runewidth.StringWidth(got), tt.width)
			}
		})
	}
}

func TestSanitizeNeverEmitsIllegalCharacters(t *testing.T) {
	policies := []Policy{Portable(), Linux(), Dashes()}
	tricky := rapid.StringOf(rapid.RuneFrom([]rune(`<>:"/\|?*;,. …abcXYZ日` + "\t\n\x00")))

	rapid.Check(t, func(rt *rapid.T) {
		policy := rapid.SampledFrom(policies).Draw(rt, "policy")
		raw := rapid.OneOf(rapid.String(), tricky).Draw(rt, "raw")
		width := rapid.IntRange(1, 120).Draw(rt, "width")

		out := New(policy).Sanitize(raw, width)

		if strings.ContainsAny(out, IllegalChars) {
			rt.Fatalf("illegal character in %q (policy %s)", out, policy.Name)
		}
		for _, r := range out {
			if r < 0x20 || r == 0x7f {
				rt.Fatalf("control character %U in %q", r, out)
			}
		}
		if w := runewidth.StringWidth(out); w > width {
			rt.Fatalf("width %d exceeds %d for %q", w, width, out)
		}
	})
}
