package loopscroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKineticDrag(t *testing.T) {
	var begins, ends int
	k := NewKinetic()
	k.OnDrag(func() { begins++ }, func() { ends++ })

	k.DragTo(10, 0.1)
	assert.Zero(t, k.Offset(), "drag without begin is ignored")

	k.BeginDrag(5)
	k.BeginDrag(5)
	assert.True(t, k.Dragging())
	assert.Equal(t, 1, begins)

	k.DragTo(15, 0.1)
	assert.Equal(t, 10.0, k.Offset())
	assert.InDelta(t, 100, k.Velocity(), 1e-9)

	k.Step(1)
	assert.Equal(t, 10.0, k.Offset(), "dragged surface does not coast")

	k.EndDrag()
	k.EndDrag()
	assert.False(t, k.Dragging())
	assert.Equal(t, 1, ends)
	assert.InDelta(t, 100, k.Velocity(), 1e-9)
}

func TestKineticInertia(t *testing.T) {
	k := NewKinetic().SetDecelerationRate(0.5)
	k.Fling(100)

	k.Step(1)
	assert.InDelta(t, 100, k.Offset(), 1e-9)
	assert.InDelta(t, 50, k.Velocity(), 1e-9)

	for i := 0; i < 20; i++ {
		k.Step(1)
	}
	assert.Zero(t, k.Velocity())
	assert.InDelta(t, 199, k.Offset(), 1)

	offset := k.Offset()
	k.Step(1)
	assert.Equal(t, offset, k.Offset())
}

func TestKineticWithoutInertia(t *testing.T) {
	k := NewKinetic().SetInertia(false)
	k.BeginDrag(0)
	k.DragTo(-40, 0.1)
	require.NotZero(t, k.Velocity())
	k.EndDrag()
	assert.Zero(t, k.Velocity())

	k.Fling(50)
	k.Step(0.1)
	assert.Equal(t, -40.0, k.Offset())
	assert.Zero(t, k.Velocity())
}

func TestKineticFlingIgnoredWhileDragging(t *testing.T) {
	k := NewKinetic()
	k.BeginDrag(0)
	k.Fling(300)
	assert.Zero(t, k.Velocity())

	k.EndDrag()
	k.Fling(300)
	k.StopMovement()
	assert.Zero(t, k.Velocity())
}

func TestKineticDecelerationRateClamped(t *testing.T) {
	k := NewKinetic().SetDecelerationRate(3)
	k.Fling(10)
	k.Step(1)
	assert.Equal(t, 10.0, k.Velocity())

	k.SetDecelerationRate(-1)
	k.Step(1)
	assert.Zero(t, k.Velocity())
}
