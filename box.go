package loopscroll

import (
	"github.com/gdamore/tcell/v3"
)

type rect struct {
	x, y, width, height int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

// caption is a line of text drawn over the top or bottom border.
type caption struct {
	text      string
	style     tcell.Style
	alignment Alignment
}

type padding struct {
	top, bottom, left, right int
}

// Box is the base of every primitive: a cleared rectangle with optional
// borders, a title and a footer. Embedding primitives draw their content in
// the inner rectangle.
type Box struct {
	rect    rect
	padding padding

	// inner caches the content rectangle; nil means it must be recomputed.
	inner *rect

	background tcell.Color
	// keepContent skips clearing the rectangle before drawing.
	keepContent bool

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title  caption
	footer caption

	hasFocus    bool
	focus, blur func()
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	return &Box{
		rect:        rect{width: 15, height: 10},
		background:  Styles.PrimitiveBackgroundColor,
		borderSet:   BorderSetPlain(),
		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		title: caption{
			style:     tcell.StyleDefault.Foreground(Styles.TitleColor),
			alignment: AlignmentCenter,
		},
		footer: caption{
			style:     tcell.StyleDefault.Foreground(Styles.TertiaryTextColor),
			alignment: AlignmentLeft,
		},
	}
}

func (b *Box) invalidate() {
	b.inner = nil
}

// SetBorderPadding sets the empty cells kept between the borders and the
// content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.padding = padding{top: top, bottom: bottom, left: left, right: right}
	b.invalidate()
	return b
}

// GetRect returns the position and size of the box.
func (b *Box) GetRect() (int, int, int, int) {
	return b.rect.x, b.rect.y, b.rect.width, b.rect.height
}

// SetRect moves and resizes the box.
func (b *Box) SetRect(x, y, width, height int) {
	r := rect{x, y, width, height}
	if r != b.rect {
		b.rect = r
		b.invalidate()
	}
}

// GetInnerRect returns the content rectangle: the box minus borders, caption
// rows and padding. Width and height never go below 0.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.inner == nil {
		inner := b.innerRect()
		b.inner = &inner
	}
	return b.inner.x, b.inner.y, b.inner.width, b.inner.height
}

func (b *Box) innerRect() rect {
	r := b.rect
	if b.title.text != "" || b.borders.Has(BordersTop) {
		r.y++
		r.height--
	}
	if b.footer.text != "" || b.borders.Has(BordersBottom) {
		r.height--
	}
	if b.borders.Has(BordersLeft) {
		r.x++
		r.width--
	}
	if b.borders.Has(BordersRight) {
		r.width--
	}

	r.x += b.padding.left
	r.y += b.padding.top
	r.width = max(r.width-b.padding.left-b.padding.right, 0)
	r.height = max(r.height-b.padding.top-b.padding.bottom, 0)
	return r
}

// InRect reports whether (x, y) lies inside the box.
func (b *Box) InRect(x, y int) bool {
	return b.rect.contains(x, y)
}

func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler takes the focus when the box is clicked.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// SetBackgroundColor sets the color the box is cleared with.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.background = color
	b.borderStyle = b.borderStyle.Background(color)
	return b
}

func (b *Box) GetBackgroundColor() tcell.Color {
	return b.background
}

// SetDontClear keeps whatever is already on screen underneath the box.
func (b *Box) SetDontClear(dontClear bool) *Box {
	b.keepContent = dontClear
	return b
}

func (b *Box) SetBorders(borders Borders) *Box {
	b.borders = borders
	b.invalidate()
	return b
}

func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

func (b *Box) GetTitle() string {
	return b.title.text
}

// SetTitle sets the text drawn over the top border.
func (b *Box) SetTitle(title string) *Box {
	b.setCaptionText(&b.title, title)
	return b
}

func (b *Box) SetTitleStyle(style tcell.Style) *Box {
	b.title.style = style
	return b
}

func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	b.title.alignment = alignment
	return b
}

func (b *Box) GetFooter() string {
	return b.footer.text
}

// SetFooter sets the text drawn over the bottom border.
func (b *Box) SetFooter(footer string) *Box {
	b.setCaptionText(&b.footer, footer)
	return b
}

func (b *Box) SetFooterStyle(style tcell.Style) *Box {
	b.footer.style = style
	return b
}

func (b *Box) SetFooterAlignment(alignment Alignment) *Box {
	b.footer.alignment = alignment
	return b
}

// setCaptionText invalidates the inner rect only when the caption row
// appears or disappears.
func (b *Box) setCaptionText(c *caption, text string) {
	if (c.text == "") != (text == "") {
		b.invalidate()
	}
	c.text = text
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the box for the primitive p that embeds it. The
// border uses the focus color when p has focus.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	r := b.rect
	if r.width <= 0 || r.height <= 0 {
		return
	}

	if !b.keepContent {
		fill(screen, r, tcell.StyleDefault.Background(b.background))
	}
	if b.borders != BordersNone && r.width >= 2 && r.height >= 2 {
		b.drawBorders(screen, p.HasFocus())
	}
	if r.width >= 4 {
		b.drawCaption(screen, b.title, r.y)
		b.drawCaption(screen, b.footer, r.y+r.height-1)
	}
	b.invalidate()
}

func fill(screen tcell.Screen, r rect, style tcell.Style) {
	for y := r.y; y < r.y+r.height; y++ {
		for x := r.x; x < r.x+r.width; x++ {
			screen.Put(x, y, " ", style)
		}
	}
}

func (b *Box) drawBorders(screen tcell.Screen, focused bool) {
	style := b.borderStyle
	if focused {
		style = style.Foreground(Styles.FocusBorderColor)
	}
	set := b.borderSet
	left, right := b.rect.x, b.rect.x+b.rect.width-1
	top, bottom := b.rect.y, b.rect.y+b.rect.height-1

	horizontal := []struct {
		side  Borders
		y     int
		glyph string
	}{
		{BordersTop, top, set.Top},
		{BordersBottom, bottom, set.Bottom},
	}
	for _, h := range horizontal {
		if !b.borders.Has(h.side) {
			continue
		}
		for x := left + 1; x < right; x++ {
			screen.Put(x, h.y, h.glyph, style)
		}
	}

	vertical := []struct {
		side  Borders
		x     int
		glyph string
	}{
		{BordersLeft, left, set.Left},
		{BordersRight, right, set.Right},
	}
	for _, v := range vertical {
		if !b.borders.Has(v.side) {
			continue
		}
		for y := top + 1; y < bottom; y++ {
			screen.Put(v.x, y, v.glyph, style)
		}
	}

	corners := []struct {
		sides Borders
		x, y  int
		glyph string
	}{
		{BordersTop | BordersLeft, left, top, set.TopLeft},
		{BordersTop | BordersRight, right, top, set.TopRight},
		{BordersBottom | BordersLeft, left, bottom, set.BottomLeft},
		{BordersBottom | BordersRight, right, bottom, set.BottomRight},
	}
	for _, c := range corners {
		if b.borders&c.sides == c.sides {
			screen.Put(c.x, c.y, c.glyph, style)
		}
	}
}

// drawCaption prints c on row y between the corners, replacing the last
// visible cell with an ellipsis when the text does not fit.
func (b *Box) drawCaption(screen tcell.Screen, c caption, y int) {
	if c.text == "" {
		return
	}
	start, end, _ := printWithStyle(screen, c.text, b.rect.x+1, y, b.rect.width-2, c.alignment, c.style, true)
	printed := end - start
	if printed == 0 || printed == len(c.text) {
		return
	}
	x := b.rect.x + b.rect.width - 2
	if c.alignment == AlignmentRight {
		x = b.rect.x + 1
	}
	_, existing, _ := screen.Get(x, y)
	Print(screen, Ellipsis, x, y, 1, AlignmentLeft, existing.GetForeground())
}

// SetFocusFunc sets a callback invoked when the box receives focus.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.focus = callback
	return b
}

// SetBlurFunc sets a callback invoked when the box loses focus.
func (b *Box) SetBlurFunc(callback func()) *Box {
	b.blur = callback
	return b
}

func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
	if b.focus != nil {
		b.focus()
	}
}

func (b *Box) Blur() {
	b.hasFocus = false
	if b.blur != nil {
		b.blur()
	}
}

func (b *Box) HasFocus() bool {
	return b.hasFocus
}

var _ Primitive = &Box{}
