// Package help draws the key bindings of a list as a one-line summary or as
// aligned columns.
package help

import (
	"strings"

	"github.com/ayn2op/loopscroll"
	"github.com/ayn2op/loopscroll/keybind"
	"github.com/gdamore/tcell/v3"
)

// KeyMap is implemented by key maps that can describe themselves, such as
// [loopscroll.ListKeyMap].
type KeyMap interface {
	// ShortHelp returns the bindings of the one-line summary.
	ShortHelp() []keybind.Keybind
	// FullHelp returns binding groups, one column each.
	FullHelp() [][]keybind.Keybind
}

// Help is a primitive that renders a KeyMap.
type Help struct {
	*loopscroll.Box
	Styles Styles

	keyMap    KeyMap
	showAll   bool
	separator string
	gap       string
}

func New() *Help {
	return &Help{
		Box:       loopscroll.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		gap:       "    ",
	}
}

// SetKeyMap sets the key map to render.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll switches between the one-line summary and the full columns.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetSeparator sets the text between entries of the one-line summary.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

// SetGap sets the text between full help columns.
func (h *Help) SetGap(gap string) *Help {
	h.gap = gap
	return h
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	return h
}

// Size returns the number of columns and rows the help needs when drawn
// without a width limit, excluding the border.
func (h *Help) Size() (width, height int) {
	for _, line := range h.lines(0) {
		width = max(width, lineWidth(line))
		height++
	}
	return width, height
}

// Lines returns the rendered help as plain text, limited to maxWidth cells
// when maxWidth is positive.
func (h *Help) Lines(maxWidth int) []string {
	rendered := h.lines(maxWidth)
	out := make([]string, 0, len(rendered))
	for _, line := range rendered {
		var b strings.Builder
		for _, s := range line {
			b.WriteString(s.text)
		}
		out = append(out, b.String())
	}
	return out
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	for row, line := range h.lines(width) {
		if row >= height {
			break
		}
		drawLine(screen, x, y+row, width, line)
	}
}

func (h *Help) lines(maxWidth int) []line {
	if h.keyMap == nil {
		return nil
	}
	if h.showAll {
		return h.columns(h.keyMap.FullHelp(), maxWidth)
	}
	if summary := h.summary(h.keyMap.ShortHelp(), maxWidth); len(summary) > 0 {
		return []line{summary}
	}
	return nil
}

func drawLine(screen tcell.Screen, x, y, width int, l line) {
	for _, s := range l {
		if width <= 0 {
			return
		}
		if s.text == "" {
			continue
		}
		_, printed := loopscroll.PrintWithStyle(screen, s.text, x, y, width, loopscroll.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}
