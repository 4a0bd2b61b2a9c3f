package loopscroll

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. The screen's background color will not be changed.
//
// Returns the number of actual bytes of the text printed and the actual width
// used for the printed runes.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return end - start, width
}

// PrintWithStyle works like [Print] but takes a full style. The style's
// background is used as is.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, maxWidth, alignment, style, false)
	return end - start, width
}

// printWithStyle prints one line of text into the cells [x, x+maxWidth) of
// row y. Text too wide for the alignment loses cells on the left (right and
// center) or on the right (left). It returns the byte range of text that was
// printed and its width in cells. With keepBackground the screen's existing
// background replaces the style's.
func printWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style, keepBackground bool) (start, end, printed int) {
	screenWidth, screenHeight := screen.Size()
	if maxWidth <= 0 || text == "" || y < 0 || y >= screenHeight {
		return 0, 0, 0
	}

	clusters := splitGraphemes(text)
	width := 0
	for _, g := range clusters {
		width += g.width
	}

	var drop int
	switch alignment {
	case AlignmentRight:
		drop = width - maxWidth
	case AlignmentCenter:
		drop = (width - maxWidth) / 2
	}
	for drop > 0 && len(clusters) > 0 {
		drop -= clusters[0].width
		width -= clusters[0].width
		start += len(clusters[0].text)
		clusters = clusters[1:]
	}
	if width < maxWidth {
		switch alignment {
		case AlignmentRight:
			x, maxWidth = x+maxWidth-width, width
		case AlignmentCenter:
			x, maxWidth = x+maxWidth/2-width/2, width
		}
	}

	end = start
	limit := x + maxWidth
	for _, g := range clusters {
		if x >= screenWidth || x+g.width > limit {
			break
		}
		if g.width > 0 {
			cellStyle := style
			if keepBackground {
				_, existing, _ := screen.Get(x, y)
				cellStyle = cellStyle.Background(existing.GetBackground())
			}
			// Wide clusters own the cells to their right.
			for i := 1; i < g.width; i++ {
				screen.Put(x+i, y, " ", cellStyle)
			}
			screen.Put(x, y, g.text, cellStyle)
		}
		x += g.width
		end += len(g.text)
		printed += g.width
	}
	return start, end, printed
}

type grapheme struct {
	text  string
	width int
}

func splitGraphemes(text string) []grapheme {
	var (
		out        []grapheme
		cluster    string
		boundaries int
	)
	state := -1
	for text != "" {
		cluster, text, boundaries, state = uniseg.StepString(text, state)
		out = append(out, grapheme{text: cluster, width: boundaries >> uniseg.ShiftWidth})
	}
	return out
}

// TaggedStringWidth returns the number of cells text occupies on screen.
func TaggedStringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// clippedScreen drops every cell written outside its rectangle. Item labels
// are drawn through it so that partially scrolled items stay inside the list.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	graphemes := uniseg.NewGraphemes(str)
	for graphemes.Next() {
		cluster := graphemes.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}
