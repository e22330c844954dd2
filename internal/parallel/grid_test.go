package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexGrid_CommitRows(t *testing.T) {
	g := NewIndexGrid(3, 4)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())

	require.NoError(t, g.CommitRows(1, []uint16{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal(t, []uint16{0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8}, g.Cells())
	assert.Equal(t, uint16(7), g.At(2, 2))
}

func TestIndexGrid_CommitRowsRejectsBadRanges(t *testing.T) {
	g := NewIndexGrid(2, 3)

	tests := []struct {
		name string
		y0   int
		vals []uint16
	}{
		{"partial row", 0, []uint16{1, 2}},
		{"past end", 1, make([]uint16, 6)},
		{"negative", -1, make([]uint16, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, g.CommitRows(tt.y0, tt.vals))
		})
	}
	assert.Equal(t, make([]uint16, 6), g.Cells())
}
