package loopscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLoopMetrics(t *testing.T) {
	m := computeLoopMetrics(10, 100, 20, 0)
	assert.Equal(t, loopMetrics{trackCells: 10, trackLen: 80, thumbLen: 16, thumbStart: 0}, m)

	for cell, want := range [][2]int{{0, 8}, {0, 8}, {0, 0}} {
		start, fill := m.cellFill(cell)
		assert.Equal(t, want, [2]int{start, fill}, "cell %d", cell)
	}
}

func TestComputeLoopMetricsWrapsThumb(t *testing.T) {
	for _, position := range []float64{90, -10} {
		m := computeLoopMetrics(10, 100, 20, position)
		assert.Equal(t, 72, m.thumbStart, "position %v", position)

		start, fill := m.cellFill(9)
		assert.Equal(t, [2]int{0, 8}, [2]int{start, fill})
		// The part past the end continues at the first cell.
		start, fill = m.cellFill(0)
		assert.Equal(t, [2]int{0, 8}, [2]int{start, fill})
		start, fill = m.cellFill(1)
		assert.Equal(t, [2]int{0, 0}, [2]int{start, fill})
	}
}

func TestComputeLoopMetricsFractional(t *testing.T) {
	m := computeLoopMetrics(10, 100, 20, 5)
	assert.Equal(t, 4, m.thumbStart)

	for cell, want := range [][2]int{{4, 4}, {0, 8}, {0, 4}, {0, 0}} {
		start, fill := m.cellFill(cell)
		assert.Equal(t, want, [2]int{start, fill}, "cell %d", cell)
	}
}

func TestComputeLoopMetricsEdges(t *testing.T) {
	full := computeLoopMetrics(4, 10, 30, 7)
	assert.Equal(t, 32, full.thumbLen)
	assert.Equal(t, 0, full.thumbStart)

	assert.Equal(t, loopMetrics{}, computeLoopMetrics(4, 0, 3, 0))
	assert.Equal(t, loopMetrics{}, computeLoopMetrics(0, 10, 3, 0))

	// The thumb never gets shorter than one cell.
	tiny := computeLoopMetrics(4, 1000, 1, 0)
	assert.Equal(t, subcell, tiny.thumbLen)
}

func TestLoopIndicatorDrawVertical(t *testing.T) {
	indicator := NewLoopIndicator(AxisVertical)
	indicator.SetRect(0, 0, 1, 10)
	indicator.SetLoop(100, 20, 5)

	canvas := NewCanvas(1, 10)
	indicator.Draw(canvas)

	assert.Equal(t, []string{"▄", "█", "▀", "│"}, column(canvas, 0)[:4])
	_, style, _ := canvas.Get(0, 1)
	assert.Equal(t, indicator.thumbStyle, style)
	_, style, _ = canvas.Get(0, 3)
	assert.Equal(t, indicator.trackStyle, style)
}

func TestLoopIndicatorDrawHorizontal(t *testing.T) {
	indicator := NewLoopIndicator(AxisHorizontal)
	indicator.SetRect(0, 0, 4, 1)
	indicator.SetLoop(40, 10, 5)
	indicator.SetGlyphSet(UnicodeGlyphSet())

	canvas := NewCanvas(4, 1)
	indicator.Draw(canvas)

	// Thumb covers subcells 4..12: the right half of cell 0 and the left
	// half of cell 1.
	assert.Equal(t, "▐▌──", canvas.Line(0))
}

func TestLoopIndicatorHiddenTrack(t *testing.T) {
	indicator := NewLoopIndicator(AxisVertical)
	indicator.SetRect(0, 0, 1, 4)
	indicator.SetLoop(40, 10, 0)
	indicator.SetTrackVisible(false)

	canvas := NewCanvas(1, 4)
	canvas.Fill('x', canvas.defaultStyle)
	indicator.Draw(canvas)
	assert.Equal(t, []string{"█", " ", " ", " "}, column(canvas, 0))
}

func TestLoopIndicatorEmptyLoop(t *testing.T) {
	indicator := NewLoopIndicator(AxisVertical)
	indicator.SetRect(0, 0, 1, 3)

	canvas := NewCanvas(1, 3)
	canvas.Fill('x', canvas.defaultStyle)
	indicator.Draw(canvas)
	assert.Equal(t, []string{"x", "x", "x"}, canvas.Lines())
}

func TestGlyphSetByName(t *testing.T) {
	for _, name := range []string{"", "legacy", "unicode", "minimal"} {
		_, ok := GlyphSetByName(name)
		assert.True(t, ok, name)
	}
	minimal, _ := GlyphSetByName("minimal")
	assert.Equal(t, " ", minimal.TrackVertical)

	_, ok := GlyphSetByName("fancy")
	assert.False(t, ok)
}
