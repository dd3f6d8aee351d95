package stringsx

import (
	"slices"
	"strings"
)

// HasPrefix reports whether s starts with any of prefixes.
func HasPrefix(s string, prefixes ...string) bool {
	return slices.ContainsFunc(prefixes, func(p string) bool {
		return strings.HasPrefix(s, p)
	})
}
