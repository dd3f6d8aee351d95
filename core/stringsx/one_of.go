package stringsx

import "slices"

// OneOf reports whether s is one of ss.
func OneOf(s string, ss ...string) bool {
	return slices.Contains(ss, s)
}
