// Package layers stacks primitives on top of each other, for example a list
// with a help popup above it.
package layers

import (
	"github.com/ayn2op/loopscroll"
	"github.com/gdamore/tcell/v3"
)

type layer struct {
	name    string
	item    loopscroll.Primitive
	resize  bool // Fill the container's inner rect on draw.
	visible bool
	overlay bool // Restyle the layers behind this one while visible.

	// Size of a centered layer. Zero means the layer keeps its own rect.
	width  int
	height int
}

// Layers draws its layers from back to front. Input goes to the front-most
// visible layer; an overlay layer blocks mouse input to the layers behind it.
type Layers struct {
	*loopscroll.Box

	layers []*layer

	// Style applied to the layers behind the front-most visible overlay.
	backgroundLayerStyle tcell.Style

	setFocus func(p loopscroll.Primitive)
}

// Option configures a layer on AddLayer.
type Option func(*layer)

func WithName(name string) Option {
	return func(l *layer) {
		l.name = name
	}
}

// WithResize makes the layer fill the container's inner rect.
func WithResize(resize bool) Option {
	return func(l *layer) {
		l.resize = resize
	}
}

func WithVisible(visible bool) Option {
	return func(l *layer) {
		l.visible = visible
	}
}

// WithOverlay marks this layer as an overlay layer.
func WithOverlay() Option {
	return func(l *layer) {
		l.overlay = true
	}
}

// WithCentered centers the layer in the container at the given size, shrunk
// to fit when the container is smaller.
func WithCentered(width, height int) Option {
	return func(l *layer) {
		l.width = width
		l.height = height
	}
}

func New() *Layers {
	return &Layers{Box: loopscroll.NewBox()}
}

// AddLayer adds a layer in front of the existing ones. A layer with the same
// name is replaced.
func (l *Layers) AddLayer(item loopscroll.Primitive, opts ...Option) *Layers {
	added := &layer{item: item, visible: true}
	for _, opt := range opts {
		opt(added)
	}
	if added.name != "" {
		if index := l.index(added.name); index >= 0 {
			l.layers = append(l.layers[:index], l.layers[index+1:]...)
		}
	}
	l.layers = append(l.layers, added)
	l.refocus()
	return l
}

// Visible returns whether the named layer is visible.
func (l *Layers) Visible(name string) bool {
	if index := l.index(name); index >= 0 {
		return l.layers[index].visible
	}
	return false
}

func (l *Layers) ShowLayer(name string) *Layers {
	return l.setVisible(name, true)
}

func (l *Layers) HideLayer(name string) *Layers {
	return l.setVisible(name, false)
}

// ToggleLayer flips the visibility of the named layer and returns the new
// visibility.
func (l *Layers) ToggleLayer(name string) bool {
	visible := !l.Visible(name)
	l.setVisible(name, visible)
	return visible
}

// SetBackgroundLayerStyle sets the style applied to layers behind the active
// overlay layer.
func (l *Layers) SetBackgroundLayerStyle(style tcell.Style) *Layers {
	l.backgroundLayerStyle = style
	return l
}

func (l *Layers) index(name string) int {
	for index, layer := range l.layers {
		if layer.name == name {
			return index
		}
	}
	return -1
}

func (l *Layers) setVisible(name string, visible bool) *Layers {
	if index := l.index(name); index >= 0 {
		l.layers[index].visible = visible
		l.refocus()
	}
	return l
}

// refocus moves focus to the front-most visible layer if the container or
// one of its layers has it.
func (l *Layers) refocus() {
	if l.setFocus != nil && l.HasFocus() {
		l.Focus(l.setFocus)
	}
}

// HasFocus returns whether or not this primitive has focus.
func (l *Layers) HasFocus() bool {
	for _, layer := range l.layers {
		if layer.item.HasFocus() {
			return true
		}
	}
	return l.Box.HasFocus()
}

// Focus is called by the application when the primitive receives focus.
func (l *Layers) Focus(delegate func(p loopscroll.Primitive)) {
	if delegate == nil {
		return
	}
	l.setFocus = delegate
	if front := l.front(); front != nil {
		delegate(front.item)
		return
	}
	l.Box.Focus(delegate)
}

// Draw draws this primitive onto the screen.
func (l *Layers) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	overlayIndex := l.overlayIndex()
	var dimmed tcell.Screen
	if overlayIndex >= 0 {
		dimmed = &overlayScreen{Screen: screen, overlay: l.backgroundLayerStyle}
	}

	x, y, width, height := l.GetInnerRect()
	for index, layer := range l.layers {
		if !layer.visible {
			continue
		}
		target := screen
		if dimmed != nil && index < overlayIndex {
			target = dimmed
		}
		switch {
		case layer.width > 0 && layer.height > 0:
			w, h := min(layer.width, width), min(layer.height, height)
			layer.item.SetRect(x+(width-w)/2, y+(height-h)/2, w, h)
		case layer.resize:
			layer.item.SetRect(x, y, width, height)
		}
		layer.item.Draw(target)
	}
}

// MouseHandler passes mouse events to the front-most visible layer that
// takes them, but never to layers behind an active overlay layer.
func (l *Layers) MouseHandler(action loopscroll.MouseAction, event *tcell.EventMouse) (loopscroll.Primitive, loopscroll.Command) {
	if !l.InRect(event.Position()) {
		return nil, nil
	}

	overlayIndex := l.overlayIndex()
	for index := len(l.layers) - 1; index >= 0 && index >= overlayIndex; index-- {
		layer := l.layers[index]
		if !layer.visible {
			continue
		}
		if capture, cmd := layer.item.MouseHandler(action, event); capture != nil || cmd != nil {
			return capture, cmd
		}
	}

	if overlayIndex >= 0 {
		return nil, loopscroll.ConsumeEventCommand{}
	}
	return nil, nil
}

// InputHandler passes key events to the focused layer.
func (l *Layers) InputHandler(event *tcell.EventKey) loopscroll.Command {
	for _, layer := range l.layers {
		if layer.visible && layer.item.HasFocus() {
			return layer.item.InputHandler(event)
		}
	}
	return nil
}

// PasteHandler passes pasted text to the focused layer.
func (l *Layers) PasteHandler(text string) loopscroll.Command {
	for _, layer := range l.layers {
		if layer.visible && layer.item.HasFocus() {
			return layer.item.PasteHandler(text)
		}
	}
	return nil
}

// Tick ticks every visible layer that animates and reports whether any of
// them needs a redraw.
func (l *Layers) Tick(dt float64) bool {
	redraw := false
	for _, layer := range l.layers {
		if !layer.visible {
			continue
		}
		if ticker, ok := layer.item.(loopscroll.Ticker); ok && ticker.Tick(dt) {
			redraw = true
		}
	}
	return redraw
}

func (l *Layers) front() *layer {
	for index := len(l.layers) - 1; index >= 0; index-- {
		if l.layers[index].visible {
			return l.layers[index]
		}
	}
	return nil
}

// overlayIndex returns the index of the front-most visible overlay layer, or
// -1. Only that overlay is applied.
func (l *Layers) overlayIndex() int {
	for index := len(l.layers) - 1; index >= 0; index-- {
		if layer := l.layers[index]; layer.visible && layer.overlay {
			return index
		}
	}
	return -1
}

// overlayScreen restyles every cell written through it.
type overlayScreen struct {
	tcell.Screen
	overlay tcell.Style
}

func (s *overlayScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	return s.Screen.Put(x, y, str, applyBackgroundStyle(style, s.overlay))
}

func (s *overlayScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	s.Screen.PutStrStyled(x, y, str, applyBackgroundStyle(style, s.overlay))
}

// applyBackgroundStyle sets the overlay's colors where they are not the
// default and adds its attributes without clearing existing ones.
func applyBackgroundStyle(base tcell.Style, overlay tcell.Style) tcell.Style {
	if fg := overlay.GetForeground(); fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg := overlay.GetBackground(); bg != tcell.ColorDefault {
		base = base.Background(bg)
	}
	if overlay.HasDim() {
		base = base.Dim(true)
	}
	if overlay.HasBold() {
		base = base.Bold(true)
	}
	if overlay.HasItalic() {
		base = base.Italic(true)
	}
	if overlay.HasReverse() {
		base = base.Reverse(true)
	}
	return base
}

var (
	_ loopscroll.Primitive = &Layers{}
	_ loopscroll.Ticker    = &Layers{}
)
