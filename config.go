package loopscroll

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidConfig   = errors.New("invalid config")
	ErrUnknownAxis     = errors.New("unknown axis")
	ErrUnknownFixPlace = errors.New("unknown fix place")
	ErrUnknownDragType = errors.New("unknown drag type")
)

// Axis is the direction the list scrolls in.
type Axis uint8

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "vertical", "v":
		*a = AxisVertical
	case "horizontal", "h":
		*a = AxisHorizontal
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAxis, text)
	}
	return nil
}

// FixPlace selects where inside the viewport a settled item rests.
type FixPlace uint8

const (
	FixFront FixPlace = iota
	FixCenter
	FixRear
)

func (f FixPlace) String() string {
	switch f {
	case FixFront:
		return "front"
	case FixCenter:
		return "center"
	case FixRear:
		return "rear"
	default:
		return fmt.Sprintf("FixPlace(%d)", uint8(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f FixPlace) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FixPlace) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "front", "start":
		*f = FixFront
	case "center", "centre", "middle":
		*f = FixCenter
	case "rear", "end":
		*f = FixRear
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFixPlace, text)
	}
	return nil
}

// DragType controls how far a single drag may move the list.
type DragType uint8

const (
	// DragNormal imposes no limit on dragging.
	DragNormal DragType = iota
	// DragStepByStep limits a drag to one item before or after the item the
	// drag started on.
	DragStepByStep
)

func (d DragType) String() string {
	switch d {
	case DragNormal:
		return "normal"
	case DragStepByStep:
		return "step"
	default:
		return fmt.Sprintf("DragType(%d)", uint8(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d DragType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DragType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "normal", "free":
		*d = DragNormal
	case "step", "stepbystep", "step-by-step", "step_by_step":
		*d = DragStepByStep
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDragType, text)
	}
	return nil
}

// Config is the immutable configuration of an [Engine]. Derived geometry
// (base position, pool size) is computed from it and the current viewport
// extent on demand.
type Config struct {
	Axis     Axis     `yaml:"axis"`
	FixPlace FixPlace `yaml:"fix_place"`
	DragType DragType `yaml:"drag_type"`

	// SpringPower scales the per-tick auto-scroll step.
	SpringPower float64 `yaml:"spring_power"`
	// VelocityThreshold is the surface speed below which the list starts
	// settling on the nearest item.
	VelocityThreshold float64 `yaml:"velocity_threshold"`
	// StepLimit caps the distance moved by one auto-scroll tick. Zero means
	// VelocityThreshold is used. The viewport extent always caps it too.
	StepLimit float64 `yaml:"step_limit"`

	// ItemExtent is the size of one item along the axis. When zero, the
	// template's size is used if the template implements [Sizer].
	ItemExtent float64 `yaml:"item_extent"`
	// ViewportExtent is the initial size of the viewport along the axis.
	ViewportExtent float64 `yaml:"viewport_extent"`
}

// DefaultConfig returns the configuration used when nothing else is given.
func DefaultConfig() Config {
	return Config{
		Axis:              AxisVertical,
		FixPlace:          FixCenter,
		DragType:          DragNormal,
		SpringPower:       10,
		VelocityThreshold: 200,
	}
}

// Validate reports configuration values that make the engine's geometry
// degenerate. The engine itself never calls it on the hot path.
func (c Config) Validate() error {
	switch {
	case c.Axis > AxisHorizontal:
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownAxis, c.Axis)
	case c.FixPlace > FixRear:
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownFixPlace, c.FixPlace)
	case c.DragType > DragStepByStep:
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownDragType, c.DragType)
	case c.SpringPower <= 0:
		return fmt.Errorf("%w: spring power must be positive, got %v", ErrInvalidConfig, c.SpringPower)
	case c.VelocityThreshold < 0:
		return fmt.Errorf("%w: velocity threshold must not be negative, got %v", ErrInvalidConfig, c.VelocityThreshold)
	case c.StepLimit < 0:
		return fmt.Errorf("%w: step limit must not be negative, got %v", ErrInvalidConfig, c.StepLimit)
	case c.ItemExtent < 0:
		return fmt.Errorf("%w: item extent must not be negative, got %v", ErrInvalidConfig, c.ItemExtent)
	case c.ViewportExtent < 0:
		return fmt.Errorf("%w: viewport extent must not be negative, got %v", ErrInvalidConfig, c.ViewportExtent)
	}
	return nil
}

// BasePosition returns the offset, relative to the viewport origin, at which
// the item with total index 0 is settled.
func BasePosition(place FixPlace, viewportExtent, itemExtent float64) float64 {
	switch place {
	case FixCenter:
		return viewportExtent/2 - itemExtent/2
	case FixRear:
		return viewportExtent - itemExtent
	default:
		return 0
	}
}

// SlotCount returns the size of the slot pool needed to cover a viewport:
// every item that can be visible plus a margin on each side.
func SlotCount(viewportExtent, itemExtent float64) int {
	return int(math.Ceil(viewportExtent/itemExtent)) + 3
}
