package loopscroll

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintAlignment(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		alignment Alignment
		want      string
	}{
		{"left", "ab", AlignmentLeft, "ab"},
		{"center", "ab", AlignmentCenter, "  ab"},
		{"right", "abc", AlignmentRight, "   abc"},
		{"truncated", "abcdefgh", AlignmentLeft, "abcdef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := NewCanvas(6, 1)
			Print(canvas, tt.text, 0, 0, 6, tt.alignment, tcell.ColorDefault)
			assert.Equal(t, tt.want, canvas.Line(0))
		})
	}
}

func TestPrintReturnsPrintedBytesAndWidth(t *testing.T) {
	canvas := NewCanvas(10, 1)

	n, width := Print(canvas, "abcdef", 0, 0, 3, AlignmentLeft, tcell.ColorDefault)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, width)

	// The second wide grapheme does not fit.
	n, width = Print(canvas, "世界", 0, 0, 3, AlignmentLeft, tcell.ColorDefault)
	assert.Equal(t, len("世"), n)
	assert.Equal(t, 2, width)

	n, width = Print(canvas, "x", 0, 3, 3, AlignmentLeft, tcell.ColorDefault)
	assert.Zero(t, n)
	assert.Zero(t, width)
}

func TestPrintKeepsBackground(t *testing.T) {
	canvas := NewCanvas(3, 1)
	canvas.Fill(' ', tcell.StyleDefault.Background(color.Blue))

	Print(canvas, "a", 0, 0, 3, AlignmentLeft, color.Yellow)
	_, style, _ := canvas.Get(0, 0)
	assert.Equal(t, color.Blue, style.GetBackground())
	assert.Equal(t, color.Yellow, style.GetForeground())

	PrintWithStyle(canvas, "b", 1, 0, 2, AlignmentLeft, tcell.StyleDefault.Background(color.Green))
	_, style, _ = canvas.Get(1, 0)
	assert.Equal(t, color.Green, style.GetBackground())
}

func TestTaggedStringWidth(t *testing.T) {
	assert.Equal(t, 0, TaggedStringWidth(""))
	assert.Equal(t, 3, TaggedStringWidth("abc"))
	assert.Equal(t, 3, TaggedStringWidth("世a"))
	assert.Equal(t, 1, TaggedStringWidth("e\u0301"))
}

func TestClippedScreen(t *testing.T) {
	canvas := NewCanvas(5, 2)
	clipped := newClippedScreen(canvas, 1, 0, 3, 1)

	rest, width := clipped.Put(0, 0, "x", tcell.StyleDefault)
	assert.Equal(t, "x", rest)
	assert.Zero(t, width)

	clipped.PutStrStyled(0, 0, "abcde", tcell.StyleDefault)
	clipped.PutStrStyled(0, 1, "abcde", tcell.StyleDefault)
	assert.Equal(t, []string{" bcd", ""}, canvas.Lines())
}
