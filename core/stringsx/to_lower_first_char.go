package stringsx

import (
	"unicode"
	"unicode/utf8"
)

// LowerFirstChar returns s with its first character in lower case: "QueryLast" becomes
// "queryLast".
func LowerFirstChar(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
