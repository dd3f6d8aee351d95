package stringsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOneOf(t *testing.T) {
	require.True(t, OneOf("b", "a", "b"))
	require.False(t, OneOf("c", "a", "b"))
	require.False(t, OneOf("a"))
	require.True(t, OneOf("", ""))
}
