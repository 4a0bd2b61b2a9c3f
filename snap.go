package loopscroll

import (
	"fmt"
	"math"
)

// Mode is the state of the snap controller.
type Mode uint8

const (
	// ModeFree means the surface moves on its own: the user drags it or it
	// coasts faster than the velocity threshold.
	ModeFree Mode = iota
	// ModeAutoScroll means the engine interpolates toward a target item.
	ModeAutoScroll
	// ModeFixed means the view rests exactly on an item boundary.
	ModeFixed
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeAutoScroll:
		return "auto"
	case ModeFixed:
		return "fixed"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ScrollState is the per-list scroll bookkeeping, mutated once per tick.
type ScrollState struct {
	Offset         float64
	PreviousOffset float64
	Mode           Mode
	// TargetIndex is the total index being scrolled to, or the one the view
	// is fixed on.
	TargetIndex int
	AutoStart   float64
	AutoTarget  float64
}

// snap runs one tick of the state machine while the surface is not dragged
// and returns the new offset.
func (e *Engine[T]) snap(offset, dt float64) float64 {
	// Motion the engine did not cause hands control back to the surface.
	if e.released(offset) {
		e.state.Mode = ModeFree
		e.logger.Debug("released", "index", e.state.TargetIndex, "offset", offset)
	}
	if e.state.Mode == ModeFree {
		if math.Abs(e.surface.Velocity()) >= e.config.VelocityThreshold {
			return offset
		}
		e.surface.StopMovement()
		e.startAutoScroll(e.indexAt(offset), offset)
	}
	if e.state.Mode != ModeAutoScroll {
		return offset
	}

	target := e.state.AutoTarget
	step := (target - e.state.AutoStart) * dt * e.config.SpringPower
	if limit := e.stepLimit(); !math.IsInf(limit, 1) {
		step = min(max(step, -limit), limit)
	}

	remaining := target - offset
	crossed := step != 0 && (step > 0) != (remaining > 0)
	if remaining == 0 || crossed || math.Abs(step) >= math.Abs(remaining) {
		e.fix(e.state.TargetIndex, target)
		return target
	}
	next := offset + step
	e.surface.SetOffset(next)
	return next
}

func (e *Engine[T]) released(offset float64) bool {
	switch e.state.Mode {
	case ModeFixed:
		return offset != e.state.AutoTarget || e.surface.Velocity() != 0
	case ModeAutoScroll:
		return e.surface.Velocity() != 0
	default:
		return false
	}
}

func (e *Engine[T]) startAutoScroll(index int, offset float64) {
	e.state.Mode = ModeAutoScroll
	e.state.TargetIndex = index
	e.state.AutoStart = offset
	e.state.AutoTarget = e.PositionOf(index)
	e.logger.Debug("auto scroll", "target", index, "from", offset, "to", e.state.AutoTarget)
}

// fix settles the view on index. The fixed notification is delivered at the
// end of the tick, after recycling has bound the target slot.
func (e *Engine[T]) fix(index int, offset float64) {
	e.surface.SetOffset(offset)
	e.surface.StopMovement()
	e.state.Mode = ModeFixed
	e.state.TargetIndex = index
	e.state.AutoTarget = offset
	e.pendingFixed = true
	e.logger.Debug("fixed", "index", index, "offset", offset)
}

// stepLimit is the largest distance one auto-scroll tick may cover.
func (e *Engine[T]) stepLimit() float64 {
	limit := e.config.StepLimit
	if limit <= 0 {
		limit = e.config.VelocityThreshold
	}
	if e.viewport > 0 && (limit <= 0 || e.viewport < limit) {
		limit = e.viewport
	}
	if limit <= 0 {
		return math.Inf(1)
	}
	return limit
}
