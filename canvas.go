package loopscroll

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type canvasCell struct {
	text  string
	style tcell.Style
	width int
	cont  bool // Right half of a wide grapheme.
}

// Canvas is an off-screen tcell.Screen. Primitives draw into it without a
// terminal, which is used to render list snapshots in headless traces.
//
// Only the drawing methods are implemented. Calling terminal methods such as
// Init or EventQ panics.
type Canvas struct {
	tcell.Screen

	width        int
	height       int
	cells        []canvasCell
	defaultStyle tcell.Style
}

// NewCanvas returns a blank canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.SetSize(width, height)
	return c
}

// SetSize resizes and clears the canvas.
func (c *Canvas) SetSize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
	c.cells = make([]canvasCell, c.width*c.height)
	c.Clear()
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) SetStyle(style tcell.Style) {
	c.defaultStyle = style
}

// Clear fills the canvas with blanks in the default style.
func (c *Canvas) Clear() {
	c.Fill(' ', c.defaultStyle)
}

func (c *Canvas) Fill(r rune, style tcell.Style) {
	for i := range c.cells {
		c.cells[i] = canvasCell{text: string(r), style: style, width: 1}
	}
}

func (c *Canvas) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	c.Put(x, y, string(primary)+string(combining), style)
}

// Get returns the grapheme, style and width at the given cell.
func (c *Canvas) Get(x, y int) (string, tcell.Style, int) {
	if !c.inBounds(x, y) {
		return "", tcell.StyleDefault, 1
	}
	cell := c.cells[y*c.width+x]
	return cell.text, cell.style, max(cell.width, 1)
}

// Put writes the first grapheme of str and returns the rest and the width
// written. A wide grapheme in the last column is replaced by a blank.
func (c *Canvas) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}
	cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		_, size := utf8.DecodeRuneInString(str)
		cluster, rest, width = str[:size], str[size:], 1
	}
	if width <= 0 {
		return rest, 0
	}
	if !c.inBounds(x, y) {
		return rest, width
	}
	if width > 1 && x+width > c.width {
		cluster, width = " ", 1
	}

	c.clearWide(x, y)
	c.cells[y*c.width+x] = canvasCell{text: cluster, style: style, width: width}
	for i := 1; i < width; i++ {
		c.clearWide(x+i, y)
		c.cells[y*c.width+x+i] = canvasCell{style: style, cont: true}
	}
	return rest, width
}

// clearWide blanks the tail of a wide grapheme starting at (x, y) so an
// overwrite leaves no orphaned halves.
func (c *Canvas) clearWide(x, y int) {
	cell := c.cells[y*c.width+x]
	for i := 1; i < cell.width && x+i < c.width; i++ {
		c.cells[y*c.width+x+i] = canvasCell{text: " ", style: cell.style, width: 1}
	}
}

func (c *Canvas) PutStr(x int, y int, str string) {
	c.PutStrStyled(x, y, str, c.defaultStyle)
}

func (c *Canvas) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" && x < c.width {
		rest, width := c.Put(x, y, str, style)
		if rest == str {
			return
		}
		x += width
		str = rest
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// Line returns row y as text with trailing blanks removed.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		if cell := c.cells[y*c.width+x]; !cell.cont {
			b.WriteString(cell.text)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Lines returns every row, see [Canvas.Line].
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return lines
}

// String returns the rows joined by newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

var _ tcell.Screen = &Canvas{}
