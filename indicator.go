package loopscroll

import (
	"math"

	"github.com/gdamore/tcell/v3"
)

// subcell is the number of thumb steps per cell.
const subcell = 8

// GlyphSet defines the track and fractional thumb glyphs of a LoopIndicator.
// Index i of a thumb array covers i+1 eighths of a cell.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	// ThumbVerticalLower fills a cell from the bottom, ThumbVerticalUpper from
	// the top.
	ThumbVerticalLower [8]string
	ThumbVerticalUpper [8]string

	// ThumbHorizontalLeft fills a cell from the left, ThumbHorizontalRight
	// from the right.
	ThumbHorizontalLeft  [8]string
	ThumbHorizontalRight [8]string
}

// MinimalGlyphSet returns the legacy computing set with an invisible track.
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8
// fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ThumbVerticalLower: [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper: [8]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"},

		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "🮇", "🮈", "▐", "🮉", "🮊", "🮋", "█"},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ThumbVerticalLower: [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper: [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"},

		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"},
	}
}

// GlyphSetByName returns a glyph set by its configuration name: "legacy",
// "unicode" or "minimal".
func GlyphSetByName(name string) (GlyphSet, bool) {
	switch name {
	case "legacy", "":
		return LegacyComputingGlyphSet(), true
	case "unicode":
		return UnicodeGlyphSet(), true
	case "minimal":
		return MinimalGlyphSet(), true
	default:
		return GlyphSet{}, false
	}
}

// LoopIndicator shows where the viewport sits inside one loop of a cyclic
// list. The thumb wraps around the track end, so the bar has no start or end
// position.
type LoopIndicator struct {
	*Box

	axis Axis

	// Loop length, visible length and position inside the loop, all in the
	// list's offset units.
	loopLen     float64
	viewportLen float64
	position    float64

	trackStyle tcell.Style
	thumbStyle tcell.Style
	glyphSet   GlyphSet
	showTrack  bool
}

// NewLoopIndicator returns an indicator along the given axis.
func NewLoopIndicator(axis Axis) *LoopIndicator {
	box := NewBox()
	box.SetDontClear(true)
	return &LoopIndicator{
		Box:        box,
		axis:       axis,
		trackStyle: tcell.StyleDefault.Dim(true),
		thumbStyle: tcell.StyleDefault.Foreground(Styles.GraphicsColor),
		glyphSet:   LegacyComputingGlyphSet(),
		showTrack:  true,
	}
}

// SetLoop sets the loop length, the visible length and the position of the
// viewport origin inside the loop. The position is wrapped into the loop.
func (s *LoopIndicator) SetLoop(loopLen, viewportLen, position float64) *LoopIndicator {
	s.loopLen = max(loopLen, 0)
	s.viewportLen = max(viewportLen, 0)
	s.position = position
	return s
}

// SetGlyphSet applies a glyph set.
func (s *LoopIndicator) SetGlyphSet(g GlyphSet) *LoopIndicator {
	s.glyphSet = g
	return s
}

// SetThumbStyle sets the thumb style.
func (s *LoopIndicator) SetThumbStyle(style tcell.Style) *LoopIndicator {
	s.thumbStyle = style
	return s
}

// SetTrackStyle sets the track style.
func (s *LoopIndicator) SetTrackStyle(style tcell.Style) *LoopIndicator {
	s.trackStyle = style
	return s
}

// SetTrackVisible toggles drawing of the track glyphs.
func (s *LoopIndicator) SetTrackVisible(visible bool) *LoopIndicator {
	s.showTrack = visible
	return s
}

type loopMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

// computeLoopMetrics computes the thumb geometry in subcell units. The thumb
// starts at the wrapped position and may run past the end of the track, in
// which case it continues from the start.
func computeLoopMetrics(trackCells int, loopLen, viewportLen, position float64) loopMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 || loopLen <= 0 {
		return loopMetrics{}
	}
	if viewportLen >= loopLen {
		return loopMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: trackLen}
	}

	thumbLen := min(max(int(float64(trackLen)*viewportLen/loopLen), subcell), trackLen)
	wrapped := math.Mod(position, loopLen)
	if wrapped < 0 {
		wrapped += loopLen
	}
	thumbStart := Wrap(int(float64(trackLen)*wrapped/loopLen), trackLen)
	return loopMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

// cellFill returns the cell-local start and length of the thumb's coverage of
// cell cellIndex, considering the wrapped part of the thumb as well. When both
// parts touch the cell, the larger one wins.
func (m loopMetrics) cellFill(cellIndex int) (start, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	start, fillLen = segmentFill(m.thumbStart, m.thumbStart+m.thumbLen, cellIndex)
	if end := m.thumbStart + m.thumbLen; end > m.trackLen {
		if wrapStart, wrapLen := segmentFill(0, end-m.trackLen, cellIndex); wrapLen > fillLen {
			return wrapStart, wrapLen
		}
	}
	return start, fillLen
}

func segmentFill(segmentStart, segmentEnd, cellIndex int) (start, fillLen int) {
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	from := max(segmentStart, cellStart)
	to := min(segmentEnd, cellEnd)
	if to <= from {
		return 0, 0
	}
	return from - cellStart, to - from
}

func (s *LoopIndicator) glyph(start, fillLen int) (string, tcell.Style) {
	if fillLen <= 0 {
		switch {
		case !s.showTrack:
			return " ", s.trackStyle
		case s.axis == AxisHorizontal:
			return s.glyphSet.TrackHorizontal, s.trackStyle
		default:
			return s.glyphSet.TrackVertical, s.trackStyle
		}
	}
	ix := min(fillLen, subcell) - 1
	if s.axis == AxisHorizontal {
		if start == 0 {
			return s.glyphSet.ThumbHorizontalLeft[ix], s.thumbStyle
		}
		return s.glyphSet.ThumbHorizontalRight[ix], s.thumbStyle
	}
	if start == 0 {
		return s.glyphSet.ThumbVerticalUpper[ix], s.thumbStyle
	}
	return s.glyphSet.ThumbVerticalLower[ix], s.thumbStyle
}

// Draw draws the indicator along its axis inside the inner rect.
func (s *LoopIndicator) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	length := height
	if s.axis == AxisHorizontal {
		length = width
	}
	if length <= 0 || s.loopLen <= 0 {
		return
	}

	m := computeLoopMetrics(length, s.loopLen, s.viewportLen, s.position)
	for cell := 0; cell < m.trackCells; cell++ {
		glyph, style := s.glyph(m.cellFill(cell))
		if s.axis == AxisHorizontal {
			screen.Put(x+cell, y, glyph, style)
		} else {
			screen.Put(x, y+cell, glyph, style)
		}
	}
}

var _ Primitive = &LoopIndicator{}
