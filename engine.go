package loopscroll

import (
	"log/slog"
	"math"
)

// Engine maps an unbounded, cyclic index space onto a fixed pool of slots and
// brings the view to rest on item boundaries.
//
// An Engine is driven by calling [Engine.Advance] once per frame. It is not
// safe for concurrent use; all calls, including the item view notifications
// it makes, happen on the caller's goroutine.
//
// The item extent must be positive and the populated list non-empty; the
// engine does not guard against degenerate geometry.
type Engine[T any] struct {
	config   Config
	surface  Surface
	template Template[T]
	logger   *slog.Logger

	store    *Store[T]
	ring     *ring[T]
	viewport float64

	state        ScrollState
	dragIndex    int
	pendingFixed bool
	stats        RecycleStats

	fixed func(totalIndex, itemIndex int, data T)
}

// New returns an engine for the given configuration. A nil surface is
// replaced with a [Kinetic] surface. The engine subscribes to the surface's
// drag notifications.
func New[T any](config Config, surface Surface, template Template[T]) *Engine[T] {
	if surface == nil {
		surface = NewKinetic()
	}
	e := &Engine[T]{
		config:   config,
		surface:  surface,
		template: template,
		logger:   slog.New(slog.DiscardHandler),
		viewport: config.ViewportExtent,
	}
	surface.OnDrag(e.beginDrag, e.endDrag)
	return e
}

// SetLogger sets the logger used for state transitions. A nil logger
// disables logging.
func (e *Engine[T]) SetLogger(logger *slog.Logger) *Engine[T] {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e.logger = logger
	return e
}

// SetFixedFunc sets a handler that is called whenever the view settles on an
// item, after the slot's own OnFixedItem notification.
func (e *Engine[T]) SetFixedFunc(handler func(totalIndex, itemIndex int, data T)) *Engine[T] {
	e.fixed = handler
	return e
}

// Config returns the engine's configuration.
func (e *Engine[T]) Config() Config {
	return e.config
}

// Surface returns the surface the engine reads its offset from.
func (e *Engine[T]) Surface() Surface {
	return e.surface
}

// Populate replaces the logical list and rebuilds the slot pool, settling the
// view on index 0. It does nothing when no template is configured or items is
// empty.
func (e *Engine[T]) Populate(items []T) {
	if e.template == nil || len(items) == 0 {
		return
	}
	e.store = NewStore(items)
	e.ring = newRing(SlotCount(e.viewport, e.ItemExtent()), e.template)
	e.stats = RecycleStats{}
	e.logger.Debug("populate", "items", len(items), "slots", e.ring.len())
	e.ForceScroll(0)
}

// Populated reports whether the engine holds a list.
func (e *Engine[T]) Populated() bool {
	return e.ring != nil
}

// Resize updates the viewport extent. The pool is rebuilt when the new extent
// needs a different number of slots, and the view is re-settled on the item
// it was at or heading to.
func (e *Engine[T]) Resize(viewportExtent float64) {
	if viewportExtent == e.viewport {
		return
	}
	if e.ring == nil {
		e.viewport = viewportExtent
		return
	}

	index := e.indexAt(e.surface.Offset())
	if e.state.Mode != ModeFree {
		index = e.state.TargetIndex
	}
	e.viewport = viewportExtent
	if size := SlotCount(viewportExtent, e.ItemExtent()); size != e.ring.len() {
		e.ring = newRing(size, e.template)
	}
	e.logger.Debug("resize", "viewport", viewportExtent, "slots", e.ring.len(), "index", index)
	e.ForceScroll(index)
}

// Advance runs one tick: it steps the surface when it simulates its own
// motion, applies the drag clamp or the snap state machine, recycles slots
// that left the window and finally delivers a pending fixed notification.
func (e *Engine[T]) Advance(dt float64) {
	if e.ring == nil {
		return
	}
	if stepper, ok := e.surface.(Stepper); ok {
		stepper.Step(dt)
	}

	offset := e.surface.Offset()
	if e.surface.Dragging() {
		// The user's hand overrides any automatic motion.
		e.state.Mode = ModeFree
		offset = e.clampDrag(offset)
	} else {
		offset = e.snap(offset, dt)
	}

	e.state.Offset = offset
	e.recycle()
	e.state.PreviousOffset = offset

	if e.pendingFixed {
		e.pendingFixed = false
		e.notifyFixed()
	}
}

// Scroll starts an animated scroll to the item at total index. It does
// nothing when the view is already fixed on index.
func (e *Engine[T]) Scroll(index int) {
	if e.ring == nil {
		return
	}
	if e.state.Mode == ModeFixed && e.state.TargetIndex == index {
		return
	}
	e.surface.StopMovement()
	e.pendingFixed = false
	e.startAutoScroll(index, e.surface.Offset())
}

// ScrollInInfinite scrolls to the occurrence of the logical item itemIndex
// nearest to the current index.
func (e *Engine[T]) ScrollInInfinite(itemIndex int) {
	if e.ring == nil {
		return
	}
	e.Scroll(e.NearestIndex(itemIndex))
}

// NearestIndex resolves the total index of the logical item itemIndex that
// is closest to the current index, looking at the current loop and the loops
// before and after it. Ties keep the current loop. An unpopulated engine
// returns itemIndex unchanged.
func (e *Engine[T]) NearestIndex(itemIndex int) int {
	if e.store == nil {
		return itemIndex
	}
	n := e.store.Len()
	current := e.CurrentIndex()
	candidate := current - Wrap(current, n) + Wrap(itemIndex, n)
	best := candidate
	for _, other := range [...]int{candidate - n, candidate + n} {
		if distance(other, current) < distance(best, current) {
			best = other
		}
	}
	return best
}

// ForceScroll jumps to the item at total index without animation. The whole
// window is rebound and the fixed notification fires before it returns.
func (e *Engine[T]) ForceScroll(index int) {
	if e.ring == nil {
		return
	}
	offset := e.PositionOf(index)
	e.surface.StopMovement()
	e.surface.SetOffset(offset)
	e.state = ScrollState{
		Offset:         offset,
		PreviousOffset: offset,
		Mode:           ModeFixed,
		TargetIndex:    index,
		AutoStart:      offset,
		AutoTarget:     offset,
	}
	e.ring.initialize(e.store, e.windowStartAt(offset), e.ItemExtent())
	e.pendingFixed = false
	e.dragIndex = index
	e.logger.Debug("force scroll", "index", index, "offset", offset)
	e.notifyFixed()
}

// CurrentIndex returns the total index of the item nearest to the base
// position.
func (e *Engine[T]) CurrentIndex() int {
	return e.indexAt(e.surface.Offset())
}

// CurrentItemIndex returns the wrapped logical index of the current item, or
// -1 before the list is populated.
func (e *Engine[T]) CurrentItemIndex() int {
	if e.store == nil {
		return -1
	}
	return Wrap(e.CurrentIndex(), e.store.Len())
}

// CurrentItem returns the data of the current item. ok is false before the
// list is populated.
func (e *Engine[T]) CurrentItem() (data T, ok bool) {
	if e.store == nil {
		return data, false
	}
	return e.store.At(e.CurrentIndex()).Data, true
}

// Len returns the number of logical items.
func (e *Engine[T]) Len() int {
	if e.store == nil {
		return 0
	}
	return e.store.Len()
}

// Item returns the logical item for an unwrapped index. The list must be
// populated.
func (e *Engine[T]) Item(index int) LogicalItem[T] {
	return e.store.At(index)
}

// Offset returns the current offset of the surface.
func (e *Engine[T]) Offset() float64 {
	return e.surface.Offset()
}

// Mode returns the snap controller's state.
func (e *Engine[T]) Mode() Mode {
	return e.state.Mode
}

// State returns a copy of the scroll bookkeeping.
func (e *Engine[T]) State() ScrollState {
	return e.state
}

// Stats returns the recycling counters.
func (e *Engine[T]) Stats() RecycleStats {
	return e.stats
}

// Slots returns a copy of the slot pool in window order, lowest total index
// first.
func (e *Engine[T]) Slots() []Slot[T] {
	if e.ring == nil {
		return nil
	}
	return e.ring.snapshot()
}

// SlotCount returns the size of the slot pool.
func (e *Engine[T]) SlotCount() int {
	if e.ring == nil {
		return 0
	}
	return e.ring.len()
}

// ViewportExtent returns the current viewport extent.
func (e *Engine[T]) ViewportExtent() float64 {
	return e.viewport
}

// ItemExtent returns the configured item extent, falling back to the
// template's size along the axis.
func (e *Engine[T]) ItemExtent() float64 {
	if e.config.ItemExtent > 0 {
		return e.config.ItemExtent
	}
	if sizer, ok := e.template.(Sizer); ok {
		width, height := sizer.ItemSize()
		if e.config.Axis == AxisHorizontal {
			return width
		}
		return height
	}
	return 0
}

// BasePosition returns the settled offset of total index 0.
func (e *Engine[T]) BasePosition() float64 {
	return BasePosition(e.config.FixPlace, e.viewport, e.ItemExtent())
}

// PositionOf returns the offset at which the item at total index is settled.
func (e *Engine[T]) PositionOf(index int) float64 {
	return e.BasePosition() - e.ItemExtent()*float64(index)
}

func (e *Engine[T]) indexAt(offset float64) int {
	return int(math.Round((e.BasePosition() - offset) / e.ItemExtent()))
}

// windowStartAt returns the first total index of a window for offset: the
// slot that starts at or just before the viewport origin.
func (e *Engine[T]) windowStartAt(offset float64) int {
	return int(math.Floor(-offset / e.ItemExtent()))
}

func (e *Engine[T]) beginDrag() {
	e.state.Mode = ModeFree
	e.pendingFixed = false
	if e.ring != nil {
		e.dragIndex = e.CurrentIndex()
	}
	e.logger.Debug("begin drag", "index", e.dragIndex)
}

func (e *Engine[T]) endDrag() {
	e.logger.Debug("end drag", "velocity", e.surface.Velocity())
}

func (e *Engine[T]) notifyFixed() {
	index := e.state.TargetIndex
	item := e.store.At(index)
	if slot := e.ring.find(index); slot != nil && slot.View != nil {
		slot.View.OnFixedItem(index, item.Index, item.Data)
	}
	if e.fixed != nil {
		e.fixed(index, item.Index, item.Data)
	}
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
