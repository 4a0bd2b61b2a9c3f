package loopscroll

// clampDrag keeps a StepByStep drag within one item of the item the drag
// started on. Residual momentum is dropped whenever the offset is clamped.
func (e *Engine[T]) clampDrag(offset float64) float64 {
	if e.config.DragType != DragStepByStep {
		return offset
	}
	// Higher indices have lower offsets.
	lower := e.PositionOf(e.dragIndex + 1)
	upper := e.PositionOf(e.dragIndex - 1)
	switch {
	case offset < lower:
		offset = lower
	case offset > upper:
		offset = upper
	default:
		return offset
	}
	e.surface.SetOffset(offset)
	e.surface.StopMovement()
	return offset
}
