package help

import (
	"strings"
	"testing"

	"github.com/ayn2op/loopscroll"
	"github.com/stretchr/testify/assert"
)

func TestHelpShortLines(t *testing.T) {
	h := New().SetKeyMap(loopscroll.DefaultListKeyMap())

	assert.Equal(t, []string{"↓/j next • ↑/k prev • g first"}, h.Lines(0))
	// The ellipsis needs two more cells than what is left after "prev".
	assert.Equal(t, []string{"↓/j next • ↑/k prev"}, h.Lines(20))
	assert.Equal(t, []string{"↓/j next • ↑/k prev …"}, h.Lines(22))

	h.SetSeparator(" | ")
	assert.Equal(t, []string{"↓/j next | ↑/k prev | g first"}, h.Lines(0))
}

func TestHelpFullLines(t *testing.T) {
	h := New().SetKeyMap(loopscroll.DefaultListKeyMap()).SetShowAll(true)

	want := []string{
		"↓/j  next" + strings.Repeat(" ", 9) + "g first",
		"↑/k  prev" + strings.Repeat(" ", 9) + "G last",
		"pgdn page next    0 jump to first",
		"pgup page prev    ",
	}
	assert.Equal(t, want, h.Lines(0))

	width, height := h.Size()
	assert.Equal(t, 33, width)
	assert.Equal(t, 4, height)
}

func TestHelpFullLinesDropColumns(t *testing.T) {
	h := New().SetKeyMap(loopscroll.DefaultListKeyMap()).SetShowAll(true)

	assert.Equal(t, []string{
		"↓/j  next …",
		"↑/k  prev",
		"pgdn page next",
		"pgup page prev",
	}, h.Lines(20))

	assert.Equal(t, []string{loopscroll.Ellipsis}, h.Lines(10))
}

func TestHelpSkipsDisabledBindings(t *testing.T) {
	keyMap := loopscroll.DefaultListKeyMap()
	keyMap.First.SetEnabled(false)
	keyMap.PageNext.SetEnabled(false)
	keyMap.PagePrev.SetEnabled(false)
	h := New().SetKeyMap(keyMap).SetShowAll(true).SetGap(" ")

	assert.Equal(t, []string{
		"↓/j next G last",
		"↑/k prev 0 jump to first",
	}, h.Lines(0))

	h.SetShowAll(false)
	assert.False(t, h.ShowAll())
	assert.Equal(t, []string{"↓/j next • ↑/k prev"}, h.Lines(0))
}

func TestHelpWithoutKeyMap(t *testing.T) {
	h := New()
	assert.Empty(t, h.Lines(0))
	width, height := h.Size()
	assert.Zero(t, width)
	assert.Zero(t, height)
}

func TestHelpDraw(t *testing.T) {
	h := New().SetKeyMap(loopscroll.DefaultListKeyMap())
	h.SetRect(0, 0, 40, 1)

	canvas := loopscroll.NewCanvas(40, 1)
	h.Draw(canvas)
	assert.Equal(t, "↓/j next • ↑/k prev • g first", canvas.Line(0))

	_, style, _ := canvas.Get(0, 0)
	assert.Equal(t, h.Styles.ShortKeyStyle, style)
	_, style, _ = canvas.Get(4, 0)
	assert.Equal(t, h.Styles.ShortDescStyle, style)
}
