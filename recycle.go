package loopscroll

import "math"

// RecycleStats counts slot rebinds since the list was populated.
type RecycleStats struct {
	// Forward counts slots moved from the low edge of the window to the high
	// edge while the view advanced toward higher indices.
	Forward int
	// Backward counts slots moved from the high edge to the low edge.
	Backward int
	// Reinitialized counts full window rebuilds caused by jumps larger than
	// the pool.
	Reinitialized int
}

// forward rebinds slots whose screen position fell below -extent, the first
// point where a slot is fully past the leading edge, to the high end of the
// window.
func (r *ring[T]) forward(store *Store[T], offset, extent float64) int {
	size := len(r.slots)
	count := 0
	for {
		slot := r.first()
		if offset+slot.Position >= -extent {
			return count
		}
		r.rebind(slot, store, slot.TotalIndex+size, extent)
		r.head = Wrap(r.head+1, size)
		count++
	}
}

// backward rebinds slots whose screen position exceeds viewport+2*extent to
// the low end of the window. A slot recycled by either sweep lands inside the
// other sweep's edge, so reversing direction by less than an item rebinds
// nothing.
func (r *ring[T]) backward(store *Store[T], offset, viewport, extent float64) int {
	size := len(r.slots)
	count := 0
	for {
		slot := r.last()
		if offset+slot.Position <= viewport+2*extent {
			return count
		}
		r.rebind(slot, store, slot.TotalIndex-size, extent)
		r.head = Wrap(r.head-1, size)
		count++
	}
}

// recycle runs the sweep matching the direction the offset moved in since the
// previous tick.
func (e *Engine[T]) recycle() {
	delta := e.state.Offset - e.state.PreviousOffset
	if delta == 0 {
		return
	}
	extent := e.ItemExtent()
	size := e.ring.len()
	if math.Abs(delta) >= extent*float64(size) {
		e.ring.initialize(e.store, e.windowStartAt(e.state.Offset), extent)
		e.stats.Reinitialized++
		return
	}
	if delta < 0 {
		e.stats.Forward += e.ring.forward(e.store, e.state.Offset, extent)
	} else {
		e.stats.Backward += e.ring.backward(e.store, e.state.Offset, e.viewport, extent)
	}
}
