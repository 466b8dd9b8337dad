package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New(2, 20, 45)
	require.Equal(t, 2, p.Page)
	require.Equal(t, 3, p.Pages)
	require.Equal(t, 20, p.Offset)
	require.True(t, p.HasNext)
	require.True(t, p.HasPrev)

	// Out-of-range inputs are clamped
	p = New(0, 0, 0)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 20, p.Limit)
	require.Equal(t, 1, p.Pages)
	require.False(t, p.HasNext)
}

func TestFromRequest(t *testing.T) {
	r := FromRequest("3", "50")
	require.Equal(t, 3, r.Page)
	require.Equal(t, 50, r.Limit)

	r = FromRequest("", "1000")
	require.Equal(t, 1, r.Page)
	require.Equal(t, 100, r.Limit)

	r = FromRequest("abc", "-1")
	require.Equal(t, 1, r.Page)
	require.Equal(t, 20, r.Limit)
}
