package loopscroll

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, AxisVertical, config.Axis)
	assert.Equal(t, FixCenter, config.FixPlace)
	assert.Equal(t, DragNormal, config.DragType)
	assert.Equal(t, 10.0, config.SpringPower)
	assert.Equal(t, 200.0, config.VelocityThreshold)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"axis", func(c *Config) { c.Axis = 7 }, ErrUnknownAxis},
		{"fix place", func(c *Config) { c.FixPlace = 9 }, ErrUnknownFixPlace},
		{"drag type", func(c *Config) { c.DragType = 3 }, ErrUnknownDragType},
		{"spring power", func(c *Config) { c.SpringPower = 0 }, ErrInvalidConfig},
		{"velocity threshold", func(c *Config) { c.VelocityThreshold = -1 }, ErrInvalidConfig},
		{"step limit", func(c *Config) { c.StepLimit = -1 }, ErrInvalidConfig},
		{"item extent", func(c *Config) { c.ItemExtent = -2 }, ErrInvalidConfig},
		{"viewport extent", func(c *Config) { c.ViewportExtent = -2 }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestEnumText(t *testing.T) {
	var axis Axis
	require.NoError(t, axis.UnmarshalText([]byte(" Horizontal ")))
	assert.Equal(t, AxisHorizontal, axis)
	assert.ErrorIs(t, axis.UnmarshalText([]byte("diagonal")), ErrUnknownAxis)

	var place FixPlace
	require.NoError(t, place.UnmarshalText([]byte("end")))
	assert.Equal(t, FixRear, place)
	assert.ErrorIs(t, place.UnmarshalText([]byte("left")), ErrUnknownFixPlace)

	var drag DragType
	require.NoError(t, drag.UnmarshalText([]byte("step-by-step")))
	assert.Equal(t, DragStepByStep, drag)
	assert.ErrorIs(t, drag.UnmarshalText([]byte("fling")), ErrUnknownDragType)

	text, err := FixCenter.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "center", string(text))
	assert.Equal(t, "Mode(9)", Mode(9).String())
	assert.Equal(t, "auto", ModeAutoScroll.String())
}

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig(strings.NewReader(`
axis: horizontal
fix_place: front
drag_type: step
spring_power: 4
step_limit: 12
item_extent: 3
`))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Axis:              AxisHorizontal,
		FixPlace:          FixFront,
		DragType:          DragStepByStep,
		SpringPower:       4,
		VelocityThreshold: 200,
		StepLimit:         12,
		ItemExtent:        3,
	}, config)
}

func TestParseConfigEmptyDocument(t *testing.T) {
	config, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := ParseConfig(strings.NewReader("speed: 3\n"))
	assert.ErrorContains(t, err, "speed")

	_, err = ParseConfig(strings.NewReader("fix_place: sideways\n"))
	assert.ErrorContains(t, err, "unknown fix place")

	_, err = ParseConfig(strings.NewReader("spring_power: -1\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loopscroll.yaml")
	require.NoError(t, os.WriteFile(path, []byte("viewport_extent: 24\nvelocity_threshold: 30\n"), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 24.0, config.ViewportExtent)
	assert.Equal(t, 30.0, config.VelocityThreshold)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
