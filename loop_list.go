package loopscroll

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/ayn2op/loopscroll/keybind"
	"github.com/gdamore/tcell/v3"
)

// Formatter renders the label of a logical item.
type Formatter[T any] func(itemIndex int, data T) string

// LoopList is a primitive that shows a cyclic list. Items repeat endlessly in
// both directions, the list can be dragged with the mouse and always comes to
// rest with an item at the configured fix place.
//
// The list only moves when it is ticked; put it under an [Application] (which
// ticks its root) or call [LoopList.Tick] yourself.
type LoopList[T any] struct {
	*Box

	engine    *Engine[T]
	surface   *Kinetic
	indicator *LoopIndicator

	keyMap ListKeyMap
	format Formatter[T]

	// Item size in cells, used when the configuration has no item extent.
	itemWidth, itemHeight int

	alignment     Alignment
	itemStyle     tcell.Style
	currentStyle  tcell.Style
	fixedStyle    tcell.Style
	showIndicator bool
	showHelp      bool

	// wheelVelocity is the velocity added per wheel notch. Zero makes the
	// wheel step one item at a time.
	wheelVelocity float64

	// fixedTotal is the total index the view last settled on.
	fixedTotal int
	fixed      func(totalIndex, itemIndex int, data T)

	lastDrag time.Time
	now      func() time.Time

	lastOffset float64
	lastMode   Mode
	redraw     bool
}

// NewLoopList returns an empty list using config. Item and viewport extents
// are measured in cells.
func NewLoopList[T any](config Config) *LoopList[T] {
	l := &LoopList[T]{
		Box:           NewBox(),
		surface:       NewKinetic(),
		indicator:     NewLoopIndicator(config.Axis),
		keyMap:        DefaultListKeyMap(),
		format:        func(_ int, data T) string { return fmt.Sprint(data) },
		itemWidth:     12,
		itemHeight:    1,
		itemStyle:     tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		currentStyle:  tcell.StyleDefault.Foreground(Styles.SecondaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		fixedStyle:    tcell.StyleDefault.Foreground(Styles.InverseTextColor).Background(Styles.ContrastBackgroundColor).Bold(true),
		showIndicator: true,
		now:           time.Now,
		redraw:        true,
	}
	if config.Axis == AxisHorizontal {
		l.alignment = AlignmentCenter
	}
	l.engine = New[T](config, l.surface, l)
	l.engine.SetFixedFunc(l.notifyFixed)
	return l
}

// Engine returns the engine driving the list.
func (l *LoopList[T]) Engine() *Engine[T] {
	return l.engine
}

// Surface returns the kinetic surface the list drags.
func (l *LoopList[T]) Surface() *Kinetic {
	return l.surface
}

// SetItems replaces the list content and settles on the first item. An empty
// slice is ignored.
func (l *LoopList[T]) SetItems(items []T) *LoopList[T] {
	l.engine.Populate(items)
	l.redraw = true
	return l
}

// SetFormatter sets the function used to render item labels. Labels are
// rendered when a slot is bound to an item, not on every draw.
func (l *LoopList[T]) SetFormatter(format Formatter[T]) *LoopList[T] {
	if format != nil {
		l.format = format
	}
	return l
}

// SetItemSize sets the size of one item in cells. It is used when the
// configuration leaves the item extent at zero and must be set before
// SetItems.
func (l *LoopList[T]) SetItemSize(width, height int) *LoopList[T] {
	l.itemWidth, l.itemHeight = max(width, 1), max(height, 1)
	return l
}

// ItemSize returns the item size in cells.
func (l *LoopList[T]) ItemSize() (float64, float64) {
	return float64(l.itemWidth), float64(l.itemHeight)
}

// NewItem returns the view for a pool slot.
func (l *LoopList[T]) NewItem(slot int) ItemView[T] {
	return &cellView[T]{list: l}
}

// SetKeyMap replaces the key bindings.
func (l *LoopList[T]) SetKeyMap(keyMap ListKeyMap) *LoopList[T] {
	l.keyMap = keyMap
	if l.showHelp {
		l.SetFooter(keybind.HelpText(" • ", l.keyMap.ShortHelp()...))
	}
	return l
}

// KeyMap returns the key bindings.
func (l *LoopList[T]) KeyMap() ListKeyMap {
	return l.keyMap
}

// SetShowHelp toggles the short key help in the footer.
func (l *LoopList[T]) SetShowHelp(show bool) *LoopList[T] {
	l.showHelp = show
	if show {
		l.SetFooter(keybind.HelpText(" • ", l.keyMap.ShortHelp()...))
	} else {
		l.SetFooter("")
	}
	return l
}

// SetShowIndicator toggles the loop indicator on the trailing edge.
func (l *LoopList[T]) SetShowIndicator(show bool) *LoopList[T] {
	l.showIndicator = show
	return l
}

// Indicator returns the loop indicator so it can be styled.
func (l *LoopList[T]) Indicator() *LoopIndicator {
	return l.indicator
}

// SetWheelVelocity sets the velocity one wheel notch adds. Zero, the
// default, makes the wheel scroll item by item.
func (l *LoopList[T]) SetWheelVelocity(velocity float64) *LoopList[T] {
	l.wheelVelocity = max(velocity, 0)
	return l
}

// SetAlignment sets the alignment of item labels.
func (l *LoopList[T]) SetAlignment(alignment Alignment) *LoopList[T] {
	l.alignment = alignment
	return l
}

// SetItemStyle sets the style of items other than the current one.
func (l *LoopList[T]) SetItemStyle(style tcell.Style) *LoopList[T] {
	l.itemStyle = style
	return l
}

// SetCurrentStyle sets the style of the item nearest the fix place while the
// list moves.
func (l *LoopList[T]) SetCurrentStyle(style tcell.Style) *LoopList[T] {
	l.currentStyle = style
	return l
}

// SetFixedStyle sets the style of the item the list rests on.
func (l *LoopList[T]) SetFixedStyle(style tcell.Style) *LoopList[T] {
	l.fixedStyle = style
	return l
}

// SetFixedFunc sets a handler called whenever the list settles on an item.
func (l *LoopList[T]) SetFixedFunc(handler func(totalIndex, itemIndex int, data T)) *LoopList[T] {
	l.fixed = handler
	return l
}

// SetLogger sets the logger of the underlying engine.
func (l *LoopList[T]) SetLogger(logger *slog.Logger) *LoopList[T] {
	l.engine.SetLogger(logger)
	return l
}

// CurrentItem returns the item nearest the fix place.
func (l *LoopList[T]) CurrentItem() (T, bool) {
	return l.engine.CurrentItem()
}

// CurrentItemIndex returns the logical index of the item nearest the fix
// place, or -1 when the list is empty.
func (l *LoopList[T]) CurrentItemIndex() int {
	return l.engine.CurrentItemIndex()
}

// Tick advances the list by dt seconds and reports whether it needs to be
// redrawn.
func (l *LoopList[T]) Tick(dt float64) bool {
	if l.engine.Populated() {
		l.engine.Advance(dt)
	}
	offset, mode := l.engine.Offset(), l.engine.Mode()
	changed := l.redraw || offset != l.lastOffset || mode != l.lastMode
	l.lastOffset, l.lastMode, l.redraw = offset, mode, false
	return changed
}

// layout splits the inner rect into the item area and the indicator strip.
func (l *LoopList[T]) layout() (area, bar rect) {
	x, y, width, height := l.GetInnerRect()
	area = rect{x, y, width, height}
	if !l.showIndicator || width < 2 || height < 1 {
		return area, rect{}
	}
	if l.engine.Config().Axis == AxisHorizontal {
		if height < 2 {
			return area, rect{}
		}
		area.height--
		return area, rect{x, y + height - 1, width, 1}
	}
	area.width--
	return area, rect{x + width - 1, y, 1, height}
}

func (l *LoopList[T]) extentOf(area rect) int {
	if l.engine.Config().Axis == AxisHorizontal {
		return area.width
	}
	return area.height
}

// Draw draws the list onto the screen.
func (l *LoopList[T]) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	area, bar := l.layout()
	l.engine.Resize(float64(l.extentOf(area)))
	if !l.engine.Populated() || area.width <= 0 || area.height <= 0 {
		return
	}

	clipped := newClippedScreen(screen, area.x, area.y, area.width, area.height)
	offset := l.engine.Offset()
	extent := l.engine.ItemExtent()
	cells := max(int(math.Round(extent)), 1)
	current := l.engine.CurrentIndex()
	settled := l.engine.Mode() == ModeFixed
	horizontal := l.engine.Config().Axis == AxisHorizontal

	for _, slot := range l.engine.Slots() {
		view, ok := slot.View.(*cellView[T])
		if !ok {
			continue
		}
		style := l.itemStyle
		switch {
		case settled && view.total == l.fixedTotal:
			style = l.fixedStyle
		case view.total == current:
			style = l.currentStyle
		}

		start := int(math.Round(offset + slot.Position))
		if horizontal {
			x := area.x + start
			fill(clipped, rect{x, area.y, cells, area.height}, style)
			printWithStyle(clipped, view.label, x, area.y+(area.height-1)/2, cells, l.alignment, style, false)
			continue
		}
		y := area.y + start
		fill(clipped, rect{area.x, y, area.width, cells}, style)
		printWithStyle(clipped, view.label, area.x, y+(cells-1)/2, area.width, l.alignment, style, false)
	}

	if bar.width > 0 && bar.height > 0 {
		l.indicator.SetRect(bar.x, bar.y, bar.width, bar.height)
		l.indicator.SetLoop(extent*float64(l.engine.Len()), float64(l.extentOf(area)), -offset)
		l.indicator.Draw(screen)
	}
}

// target is the total index keyboard and wheel steps are relative to.
func (l *LoopList[T]) target() int {
	if l.engine.Mode() != ModeFree {
		return l.engine.State().TargetIndex
	}
	return l.engine.CurrentIndex()
}

func (l *LoopList[T]) pageSize() int {
	extent := l.engine.ItemExtent()
	if extent <= 0 {
		return 1
	}
	return max(int(l.engine.ViewportExtent()/extent), 1)
}

// InputHandler handles key events.
func (l *LoopList[T]) InputHandler(event *tcell.EventKey) Command {
	if !l.engine.Populated() {
		return nil
	}
	switch {
	case keybind.Matches(event, l.keyMap.Next):
		l.engine.Scroll(l.target() + 1)
	case keybind.Matches(event, l.keyMap.Prev):
		l.engine.Scroll(l.target() - 1)
	case keybind.Matches(event, l.keyMap.PageNext):
		l.engine.Scroll(l.target() + l.pageSize())
	case keybind.Matches(event, l.keyMap.PagePrev):
		l.engine.Scroll(l.target() - l.pageSize())
	case keybind.Matches(event, l.keyMap.First):
		l.engine.ScrollInInfinite(0)
	case keybind.Matches(event, l.keyMap.Last):
		l.engine.ScrollInInfinite(l.engine.Len() - 1)
	case keybind.Matches(event, l.keyMap.Jump):
		l.engine.ForceScroll(l.engine.NearestIndex(0))
	default:
		return nil
	}
	l.redraw = true
	return RedrawCommand{}
}

// MouseHandler drags the list with the left button, scrolls it with the wheel
// and scrolls to an item when it is clicked.
func (l *LoopList[T]) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	pointer := float64(y)
	if l.engine.Config().Axis == AxisHorizontal {
		pointer = float64(x)
	}
	area, _ := l.layout()

	switch action {
	case MouseLeftDown:
		if !area.contains(x, y) {
			return nil, nil
		}
		l.surface.BeginDrag(pointer)
		l.lastDrag = l.now()
		return l, SetFocusCommand{Target: l}
	case MouseMove:
		if !l.surface.Dragging() {
			return nil, nil
		}
		now := l.now()
		l.surface.DragTo(pointer, now.Sub(l.lastDrag).Seconds())
		l.lastDrag = now
		return l, RedrawCommand{}
	case MouseLeftUp:
		if !l.surface.Dragging() {
			return nil, nil
		}
		l.surface.EndDrag()
		return nil, RedrawCommand{}
	case MouseLeftClick:
		if !area.contains(x, y) || !l.engine.Populated() {
			return nil, nil
		}
		l.engine.Scroll(l.indexAt(area, x, y))
		return nil, RedrawCommand{}
	case MouseScrollDown, MouseScrollRight:
		if area.contains(x, y) {
			return nil, l.wheel(1)
		}
	case MouseScrollUp, MouseScrollLeft:
		if area.contains(x, y) {
			return nil, l.wheel(-1)
		}
	}
	return nil, nil
}

func (l *LoopList[T]) wheel(direction int) Command {
	if !l.engine.Populated() {
		return nil
	}
	if l.wheelVelocity > 0 {
		// Higher indices have lower offsets.
		l.surface.Fling(-float64(direction) * l.wheelVelocity)
	} else {
		l.engine.Scroll(l.target() + direction)
	}
	return RedrawCommand{}
}

// indexAt returns the total index of the item drawn at the given cell.
func (l *LoopList[T]) indexAt(area rect, x, y int) int {
	cell := y - area.y
	if l.engine.Config().Axis == AxisHorizontal {
		cell = x - area.x
	}
	position := float64(cell) - l.engine.Offset()
	return int(math.Floor(position / l.engine.ItemExtent()))
}

func (l *LoopList[T]) notifyFixed(totalIndex, itemIndex int, data T) {
	l.redraw = true
	if l.fixed != nil {
		l.fixed(totalIndex, itemIndex, data)
	}
}

// cellView is the item view of one pool slot. It keeps the total index and
// rendered label of // the item the slot is bound to.
type cellView[T any] struct {
	list  *LoopList[T]
	total int
	label string
}

func (v *cellView[T]) OnInitItem(totalIndex, itemIndex int, data T) {
	v.label = ""
}

func (v *cellView[T]) OnUpdateItem(totalIndex, itemIndex int, data T) {
	v.total = totalIndex
	v.label = v.list.format(itemIndex, data)
}

func (v *cellView[T]) OnFixedItem(totalIndex, itemIndex int, data T) {
	v.list.fixedTotal = totalIndex
}

var (
	_ Primitive        = &LoopList[string]{}
	_ Ticker           = &LoopList[string]{}
	_ Template[string] = &LoopList[string]{}
	_ Sizer            = &LoopList[string]{}
)
