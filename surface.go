package loopscroll

import "math"

// Surface is the drag/scroll input component the engine reads from and
// writes to. It owns the scroll offset along the configured axis.
type Surface interface {
	Offset() float64
	SetOffset(offset float64)
	// Velocity returns the current scroll speed in offset units per second.
	Velocity() float64
	// Dragging reports whether the user currently holds the surface.
	Dragging() bool
	// StopMovement zeroes residual momentum.
	StopMovement()
	// OnDrag registers the functions called when a drag begins and ends.
	OnDrag(begin, end func())
}

// Stepper is implemented by surfaces that simulate their own motion. The
// engine steps such surfaces at the start of every tick.
type Stepper interface {
	Step(dt float64)
}

const (
	// DefaultDecelerationRate is the fraction of velocity kept after one
	// second of free motion.
	DefaultDecelerationRate = 0.135
	// minKineticVelocity is the speed below which free motion stops.
	minKineticVelocity = 1
	// dragVelocityBlend controls how quickly the drag velocity follows the
	// pointer.
	dragVelocityBlend = 10
)

// Kinetic is a one dimensional [Surface] with drag and inertia. Pointer
// coordinates are given along the scroll axis.
type Kinetic struct {
	offset   float64
	velocity float64

	dragging     bool
	lastPointer  float64
	inertia      bool
	deceleration float64

	begin, end func()
}

// NewKinetic returns a surface at offset 0 with inertia enabled.
func NewKinetic() *Kinetic {
	return &Kinetic{
		inertia:      true,
		deceleration: DefaultDecelerationRate,
	}
}

// SetInertia toggles whether the surface keeps moving after a drag ends.
func (k *Kinetic) SetInertia(inertia bool) *Kinetic {
	k.inertia = inertia
	return k
}

// SetDecelerationRate sets the fraction of velocity kept per second. Values
// are clamped to [0, 1].
func (k *Kinetic) SetDecelerationRate(rate float64) *Kinetic {
	k.deceleration = min(max(rate, 0), 1)
	return k
}

// Offset returns the current offset.
func (k *Kinetic) Offset() float64 {
	return k.offset
}

// SetOffset moves the surface without touching its velocity.
func (k *Kinetic) SetOffset(offset float64) {
	k.offset = offset
}

// Velocity returns the current velocity.
func (k *Kinetic) Velocity() float64 {
	return k.velocity
}

// Dragging reports whether a drag is in progress.
func (k *Kinetic) Dragging() bool {
	return k.dragging
}

// StopMovement zeroes the velocity.
func (k *Kinetic) StopMovement() {
	k.velocity = 0
}

// OnDrag sets the drag notifications. Either function may be nil.
func (k *Kinetic) OnDrag(begin, end func()) {
	k.begin = begin
	k.end = end
}

// BeginDrag starts a drag at the given pointer coordinate.
func (k *Kinetic) BeginDrag(pointer float64) {
	if k.dragging {
		return
	}
	k.dragging = true
	k.lastPointer = pointer
	k.velocity = 0
	if k.begin != nil {
		k.begin()
	}
}

// DragTo moves the surface by the pointer delta since the previous call. dt
// is the time elapsed since then and is used to estimate the velocity.
func (k *Kinetic) DragTo(pointer, dt float64) {
	if !k.dragging {
		return
	}
	delta := pointer - k.lastPointer
	k.lastPointer = pointer
	k.offset += delta
	if dt > 0 {
		target := delta / dt
		blend := min(dt*dragVelocityBlend, 1)
		k.velocity += (target - k.velocity) * blend
	}
}

// EndDrag finishes the current drag. The velocity estimated while dragging is
// kept when inertia is enabled.
func (k *Kinetic) EndDrag() {
	if !k.dragging {
		return
	}
	k.dragging = false
	if !k.inertia {
		k.velocity = 0
	}
	if k.end != nil {
		k.end()
	}
}

// Fling adds velocity, as a mouse wheel or a keyboard repeat would.
func (k *Kinetic) Fling(velocity float64) {
	if k.dragging {
		return
	}
	k.velocity += velocity
}

// Step advances free motion by dt seconds.
func (k *Kinetic) Step(dt float64) {
	if k.dragging || dt <= 0 {
		return
	}
	if !k.inertia {
		k.velocity = 0
		return
	}
	if k.velocity == 0 {
		return
	}
	k.offset += k.velocity * dt
	k.velocity *= math.Pow(k.deceleration, dt)
	if math.Abs(k.velocity) < minKineticVelocity {
		k.velocity = 0
	}
}

var (
	_ Surface = &Kinetic{}
	_ Stepper = &Kinetic{}
)
