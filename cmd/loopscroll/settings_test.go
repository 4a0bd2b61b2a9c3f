package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayn2op/loopscroll"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings(t *testing.T) {
	s, err := parseSettings(strings.NewReader(`
axis: horizontal
fix_place: front
spring_power: 4
items: [red, green, blue]
item_width: 8
border: double
indicator: none
keys:
  next: [n]
`))
	require.NoError(t, err)
	require.NoError(t, s.validate())

	assert.Equal(t, loopscroll.AxisHorizontal, s.Axis)
	assert.Equal(t, loopscroll.FixFront, s.FixPlace)
	assert.Equal(t, 4.0, s.SpringPower)
	assert.Equal(t, []string{"red", "green", "blue"}, s.Items)
	assert.Equal(t, 8, s.ItemWidth)
	assert.Equal(t, 1, s.ItemHeight, "defaults are kept")
	assert.Equal(t, "double", s.Border)
	assert.Equal(t, map[string][]string{"next": {"n"}}, s.Keys)
}

func TestParseSettingsEmpty(t *testing.T) {
	s, err := parseSettings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, defaultSettings(), s)
}

func TestParseSettingsUnknownKey(t *testing.T) {
	_, err := parseSettings(strings.NewReader("colour: red\n"))
	assert.ErrorContains(t, err, "colour")
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("count: 3\ntitle: demo\n"), 0o644))

	s, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"item 00", "item 01", "item 02"}, s.labels())
	assert.Equal(t, "demo", s.Title)

	_, err = loadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*settings)
	}{
		{"no items", func(s *settings) { s.Count = 0 }},
		{"item size", func(s *settings) { s.ItemWidth = 0 }},
		{"frame rate", func(s *settings) { s.FrameRate = -1 }},
		{"border", func(s *settings) { s.Border = "dotted" }},
		{"indicator", func(s *settings) { s.Indicator = "fancy" }},
		{"keys", func(s *settings) { s.Keys = map[string][]string{"sideways": {"s"}} }},
		{"engine", func(s *settings) { s.SpringPower = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSettings()
			tt.modify(&s)
			assert.ErrorIs(t, s.validate(), loopscroll.ErrInvalidConfig)
		})
	}

	s := defaultSettings()
	s.Border = "none"
	assert.NoError(t, s.validate())
}

func TestListFlagsApply(t *testing.T) {
	flags := &listFlags{}
	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.register(set)
	require.NoError(t, set.Parse([]string{"--axis", "h", "--drag-type", "step-by-step", "--count", "5", "--inertia=false"}))

	s := defaultSettings()
	s.Items = []string{"a", "b"}
	require.NoError(t, flags.apply(set, &s))

	assert.Equal(t, loopscroll.AxisHorizontal, s.Axis)
	assert.Equal(t, loopscroll.DragStepByStep, s.DragType)
	assert.Equal(t, loopscroll.FixCenter, s.FixPlace, "unset flags keep the file value")
	assert.Equal(t, 5, s.Count)
	assert.Empty(t, s.Items)
	assert.False(t, s.Inertia)
}

func TestListFlagsApplyBadEnum(t *testing.T) {
	flags := &listFlags{}
	set := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.register(set)
	require.NoError(t, set.Parse([]string{"--fix-place", "middle"}))

	s := defaultSettings()
	assert.ErrorIs(t, flags.apply(set, &s), loopscroll.ErrUnknownFixPlace)
}

func TestSettingsNewList(t *testing.T) {
	s := defaultSettings()
	s.Items = []string{"a", "b", "c"}
	s.Indicator = "none"
	s.Keys = map[string][]string{"first": nil}

	list, err := s.newList()
	require.NoError(t, err)
	assert.Equal(t, 3, list.Engine().Len())
	assert.Equal(t, "loopscroll", list.GetTitle())
	assert.False(t, list.KeyMap().First.Enabled())
}
