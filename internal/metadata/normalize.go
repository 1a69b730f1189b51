// file: internal/metadata/normalize.go
// version: 1.0.0
// guid: d0db4004-6591-4153-b662-78df1d562a77

package metadata

import (
	"strconv"
	"strings"
)

// NormalizeYear reduces date-like values to a leading four digit year:
// "1985-03-01" and "19850301" both become "1985". Values that do not look
// numeric are returned trimmed but otherwise unchanged.
func NormalizeYear(raw string) string {
	raw = strings.TrimSpace(raw)
	head, _, _ := strings.Cut(raw, "-")
	head = strings.TrimSpace(head)
	if head == "" || !isDigits(head) {
		return raw
	}
	if len(head) > 4 {
		return head[:4]
	}
	return head
}

// ParseTrack extracts a positive track number from values such as "3",
// "03" or "3/12".
func ParseTrack(raw string) (int, bool) {
	head, _, _ := strings.Cut(strings.TrimSpace(raw), "/")
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
