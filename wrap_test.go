package loopscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		number, length, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{9, 4, 1},
		{-1, 4, 3},
		{-4, 4, 0},
		{-5, 4, 3},
		{-8, 4, 0},
		{-13, 12, 11},
		{25, 12, 1},
		{7, 1, 0},
		{-7, 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.number, tt.length), "Wrap(%d, %d)", tt.number, tt.length)
	}
}

func TestWrapRangeAndPeriod(t *testing.T) {
	for length := 1; length <= 13; length++ {
		for x := -60; x <= 60; x++ {
			got := Wrap(x, length)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, length)
			assert.Equal(t, got, Wrap(x+length, length), "x=%d length=%d", x, length)
			// Same as floor modulo.
			assert.Equal(t, ((x%length)+length)%length, got, "x=%d length=%d", x, length)
		}
	}
}
