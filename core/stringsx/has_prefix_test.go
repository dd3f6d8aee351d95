package stringsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		prefixes []string
		want     bool
	}{
		{name: "match", s: "exampleString", prefixes: []string{"ex", "pre"}, want: true},
		{name: "no match", s: "testString", prefixes: []string{"ex", "pre"}},
		{name: "empty string", s: "", prefixes: []string{"ex"}},
		{name: "no prefixes", s: "exampleString"},
		{name: "exact", s: "hello", prefixes: []string{"hello"}, want: true},
		{name: "unicode", s: "ñandú", prefixes: []string{"n", "ñan"}, want: true},
		{name: "case sensitive", s: "HelloWorld", prefixes: []string{"hello"}},
		{name: "empty prefix", s: "anything", prefixes: []string{""}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HasPrefix(tt.s, tt.prefixes...))
		})
	}
}
