package stringsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrimFirstPrefix(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		prefixes []string
		want     string
	}{
		{name: "first match wins", s: "QueryLast", prefixes: []string{"Query", "Q"}, want: "Last"},
		{name: "order matters", s: "QueryLast", prefixes: []string{"Q", "Query"}, want: "ueryLast"},
		{name: "no match", s: "Reset", prefixes: []string{"Query"}, want: "Reset"},
		{name: "empty prefix skipped", s: "Last", prefixes: []string{"", "La"}, want: "st"},
		{name: "whole string", s: "Query", prefixes: []string{"Query"}, want: ""},
		{name: "no prefixes", s: "Query", want: "Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TrimFirstPrefix(tt.s, tt.prefixes...))
		})
	}
}
