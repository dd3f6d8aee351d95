package stringsx

import "strings"

// TrimFirstPrefix removes the first non-empty prefix of s found in prefixes. The string
// is returned unchanged when none matches.
func TrimFirstPrefix(s string, prefixes ...string) string {
	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return rest
		}
	}

	return s
}
