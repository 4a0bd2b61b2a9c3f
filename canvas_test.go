package loopscroll

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestCanvasPutGet(t *testing.T) {
	canvas := NewCanvas(4, 2)
	style := tcell.StyleDefault.Bold(true)

	rest, width := canvas.Put(1, 0, "ab", style)
	assert.Equal(t, "b", rest)
	assert.Equal(t, 1, width)

	text, got, width := canvas.Get(1, 0)
	assert.Equal(t, "a", text)
	assert.Equal(t, style, got)
	assert.Equal(t, 1, width)

	text, _, _ = canvas.Get(0, 0)
	assert.Equal(t, " ", text)

	text, got, width = canvas.Get(9, 9)
	assert.Empty(t, text)
	assert.Equal(t, tcell.StyleDefault, got)
	assert.Equal(t, 1, width)
}

func TestCanvasWideGraphemes(t *testing.T) {
	canvas := NewCanvas(3, 1)

	rest, width := canvas.Put(0, 0, "世界", tcell.StyleDefault)
	assert.Equal(t, "界", rest)
	assert.Equal(t, 2, width)
	text, _, width := canvas.Get(0, 0)
	assert.Equal(t, "世", text)
	assert.Equal(t, 2, width)
	assert.Equal(t, "世", canvas.Line(0))

	// No room for the right half in the last column.
	canvas.Put(2, 0, "界", tcell.StyleDefault)
	text, _, _ = canvas.Get(2, 0)
	assert.Equal(t, " ", text)

	// Overwriting the left half blanks the right half.
	canvas.Put(0, 0, "a", tcell.StyleDefault)
	assert.Equal(t, "a", canvas.Line(0))
	text, _, _ = canvas.Get(1, 0)
	assert.Equal(t, " ", text)
}

func TestCanvasCombiningMarks(t *testing.T) {
	canvas := NewCanvas(3, 1)
	canvas.PutStrStyled(0, 0, "e\u0301x", tcell.StyleDefault)
	assert.Equal(t, "e\u0301x", canvas.Line(0))

	canvas.SetContent(2, 0, 'a', []rune{'\u0308'}, tcell.StyleDefault)
	text, _, _ := canvas.Get(2, 0)
	assert.Equal(t, "a\u0308", text)
}

func TestCanvasPutStrClips(t *testing.T) {
	canvas := NewCanvas(3, 2)
	canvas.PutStr(0, 1, "abcdef")
	assert.Equal(t, []string{"", "abc"}, canvas.Lines())
	assert.Equal(t, "\nabc", canvas.String())
	assert.Empty(t, canvas.Line(5))
}

func TestCanvasClearAndResize(t *testing.T) {
	canvas := NewCanvas(2, 1)
	canvas.PutStr(0, 0, "ab")
	canvas.Clear()
	assert.Equal(t, []string{""}, canvas.Lines())

	canvas.SetSize(3, 2)
	width, height := canvas.Size()
	assert.Equal(t, 3, width)
	assert.Equal(t, 2, height)

	canvas.Fill('.', tcell.StyleDefault)
	assert.Equal(t, []string{"...", "..."}, canvas.Lines())
}
