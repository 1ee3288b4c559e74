package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressView(t *testing.T) {
	t.Parallel()

	p := NewProgress(3)
	view := p.View(1)
	require.Contains(t, view, "1/3")

	done := p.View(3)
	require.Contains(t, done, "3/3")
}

func TestProgressViewZeroTotal(t *testing.T) {
	t.Parallel()

	p := NewProgress(0)
	require.Contains(t, p.View(0), "0/0")
}
