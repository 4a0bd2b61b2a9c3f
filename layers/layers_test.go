package layers

import (
	"testing"

	"github.com/ayn2op/loopscroll"
	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubItem struct {
	*loopscroll.Box
	name   string
	keys   int
	ticks  int
	redraw bool
}

func newStubItem(name string) *stubItem {
	return &stubItem{Box: loopscroll.NewBox(), name: name}
}

func (s *stubItem) InputHandler(event *tcell.EventKey) loopscroll.Command {
	s.keys++
	return loopscroll.SetTitleCommand(s.name)
}

func (s *stubItem) Tick(dt float64) bool {
	s.ticks++
	return s.redraw
}

// newTestLayers returns a 10x6 container with a resized "list" layer and a
// hidden 4x2 "popup" overlay in front of it.
func newTestLayers() (*Layers, *stubItem, *stubItem) {
	list, popup := newStubItem("list"), newStubItem("popup")
	l := New()
	l.SetRect(0, 0, 10, 6)
	l.SetBackgroundLayerStyle(tcell.StyleDefault.Dim(true))
	l.AddLayer(list, WithName("list"), WithResize(true))
	l.AddLayer(popup, WithName("popup"), WithOverlay(), WithCentered(4, 2), WithVisible(false))
	return l, list, popup
}

func TestLayersVisibility(t *testing.T) {
	l, _, _ := newTestLayers()

	assert.True(t, l.Visible("list"))
	assert.False(t, l.Visible("popup"))
	assert.False(t, l.Visible("missing"))

	assert.True(t, l.ToggleLayer("popup"))
	assert.True(t, l.Visible("popup"))
	l.HideLayer("popup")
	assert.False(t, l.Visible("popup"))
	l.ShowLayer("popup")
	assert.True(t, l.Visible("popup"))
}

func TestLayersAddReplacesByName(t *testing.T) {
	l, _, _ := newTestLayers()
	replacement := newStubItem("other")
	l.AddLayer(replacement, WithName("list"))

	require.Len(t, l.layers, 2)
	assert.Equal(t, "popup", l.layers[0].name)
	assert.Same(t, replacement, l.layers[1].item)
}

func TestLayersDrawPlacesLayers(t *testing.T) {
	l, list, popup := newTestLayers()
	l.ShowLayer("popup")
	l.Draw(loopscroll.NewCanvas(10, 6))

	x, y, width, height := list.GetRect()
	assert.Equal(t, []int{0, 0, 10, 6}, []int{x, y, width, height})
	x, y, width, height = popup.GetRect()
	assert.Equal(t, []int{3, 2, 4, 2}, []int{x, y, width, height})

	// A centered layer shrinks to the container.
	l.AddLayer(popup, WithName("popup"), WithCentered(20, 3))
	l.Draw(loopscroll.NewCanvas(10, 6))
	x, y, width, height = popup.GetRect()
	assert.Equal(t, []int{0, 1, 10, 3}, []int{x, y, width, height})
}

func TestLayersOverlayRestylesBackground(t *testing.T) {
	l, _, _ := newTestLayers()
	canvas := loopscroll.NewCanvas(10, 6)

	l.Draw(canvas)
	_, style, _ := canvas.Get(0, 0)
	assert.False(t, style.HasDim())

	l.ShowLayer("popup")
	l.Draw(canvas)
	_, style, _ = canvas.Get(0, 0)
	assert.True(t, style.HasDim(), "behind the overlay")
	_, style, _ = canvas.Get(3, 2)
	assert.False(t, style.HasDim(), "the overlay itself")
}

func TestLayersMouseBlockedByOverlay(t *testing.T) {
	l, _, _ := newTestLayers()
	l.Draw(loopscroll.NewCanvas(10, 6))

	down := func(x, y int) loopscroll.Command {
		_, cmd := l.MouseHandler(loopscroll.MouseLeftDown, tcell.NewEventMouse(x, y, tcell.ButtonPrimary, tcell.ModNone))
		return cmd
	}

	assert.IsType(t, loopscroll.SetFocusCommand{}, down(0, 0))
	assert.Nil(t, down(20, 20))

	l.ShowLayer("popup")
	l.Draw(loopscroll.NewCanvas(10, 6))
	assert.Equal(t, loopscroll.ConsumeEventCommand{}, down(0, 0))
	assert.IsType(t, loopscroll.SetFocusCommand{}, down(4, 2))
}

func TestLayersFocusFollowsFrontLayer(t *testing.T) {
	l, list, popup := newTestLayers()

	var focused loopscroll.Primitive
	var delegate func(p loopscroll.Primitive)
	delegate = func(p loopscroll.Primitive) {
		if focused != nil {
			focused.Blur()
		}
		focused = p
		p.Focus(delegate)
	}
	l.Focus(delegate)
	assert.Same(t, list, focused)
	assert.True(t, l.HasFocus())

	event := tcell.NewEventKey(tcell.KeyRune, "x", tcell.ModNone)
	assert.Equal(t, loopscroll.SetTitleCommand("list"), l.InputHandler(event))

	l.ShowLayer("popup")
	assert.Same(t, popup, focused)
	assert.False(t, list.HasFocus())
	assert.Equal(t, loopscroll.SetTitleCommand("popup"), l.InputHandler(event))

	l.HideLayer("popup")
	assert.Same(t, list, focused)
	assert.Equal(t, 1, list.keys)
	assert.Equal(t, 1, popup.keys)
}

func TestLayersTickVisibleLayers(t *testing.T) {
	l, list, popup := newTestLayers()

	assert.False(t, l.Tick(0.1))
	assert.Equal(t, 1, list.ticks)
	assert.Zero(t, popup.ticks)

	l.ShowLayer("popup")
	popup.redraw = true
	assert.True(t, l.Tick(0.1))
	assert.Equal(t, 2, list.ticks)
	assert.Equal(t, 1, popup.ticks)
}
