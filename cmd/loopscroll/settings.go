package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ayn2op/loopscroll"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "~/.config/loopscroll/config.yaml"

// settings is the configuration file of the command. The engine
// configuration sits at the top level next to the presentation keys.
type settings struct {
	loopscroll.Config `yaml:",inline"`

	Items      []string `yaml:"items"`
	Count      int      `yaml:"count"`
	ItemWidth  int      `yaml:"item_width"`
	ItemHeight int      `yaml:"item_height"`

	Title         string  `yaml:"title"`
	Border        string  `yaml:"border"`
	Indicator     string  `yaml:"indicator"`
	WheelVelocity float64 `yaml:"wheel_velocity"`
	FrameRate     int     `yaml:"frame_rate"`

	Inertia          bool    `yaml:"inertia"`
	DecelerationRate float64 `yaml:"deceleration_rate"`

	// Keys overrides list key bindings by name, see
	// [loopscroll.ListKeyMap.Override].
	Keys map[string][]string `yaml:"keys"`
}

func defaultSettings() settings {
	return settings{
		Config:           loopscroll.DefaultConfig(),
		Count:            24,
		ItemWidth:        16,
		ItemHeight:       1,
		Title:            "loopscroll",
		Border:           "round",
		Indicator:        "legacy",
		FrameRate:        loopscroll.DefaultFrameRate,
		Inertia:          true,
		DecelerationRate: loopscroll.DefaultDecelerationRate,
	}
}

func parseSettings(r io.Reader) (settings, error) {
	s := defaultSettings()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// loadSettings reads the settings file at path. A missing file at the
// default path is not an error.
func loadSettings(path string) (settings, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return settings{}, fmt.Errorf("expand %s: %w", path, err)
	}
	f, err := os.Open(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == defaultConfigPath {
			return defaultSettings(), nil
		}
		return settings{}, fmt.Errorf("open settings: %w", err)
	}
	defer f.Close()

	s, err := parseSettings(f)
	if err != nil {
		return settings{}, fmt.Errorf("load settings %s: %w", expanded, err)
	}
	return s, nil
}

// listFlags are the flags shared by run and trace. Flags the user set
// override the settings file.
type listFlags struct {
	axis          string
	fixPlace      string
	dragType      string
	count         int
	items         []string
	itemExtent    float64
	wheelVelocity float64
	inertia       bool
}

func (f *listFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.axis, "axis", "", "scroll axis: vertical or horizontal")
	flags.StringVar(&f.fixPlace, "fix-place", "", "where items settle: front, center or rear")
	flags.StringVar(&f.dragType, "drag-type", "", "drag behavior: normal or step-by-step")
	flags.IntVar(&f.count, "count", 0, "number of generated items")
	flags.StringSliceVar(&f.items, "items", nil, "item labels, overrides --count")
	flags.Float64Var(&f.itemExtent, "item-extent", 0, "item size in cells along the axis, 0 uses item_width or item_height")
	flags.Float64Var(&f.wheelVelocity, "wheel-velocity", 0, "velocity added per wheel notch, 0 steps item by item")
	flags.BoolVar(&f.inertia, "inertia", true, "keep moving after a drag ends")
}

func (f *listFlags) apply(flags *pflag.FlagSet, s *settings) error {
	if flags.Changed("axis") {
		if err := s.Axis.UnmarshalText([]byte(f.axis)); err != nil {
			return err
		}
	}
	if flags.Changed("fix-place") {
		if err := s.FixPlace.UnmarshalText([]byte(f.fixPlace)); err != nil {
			return err
		}
	}
	if flags.Changed("drag-type") {
		if err := s.DragType.UnmarshalText([]byte(f.dragType)); err != nil {
			return err
		}
	}
	if flags.Changed("count") {
		s.Count = f.count
		s.Items = nil
	}
	if flags.Changed("items") {
		s.Items = f.items
	}
	if flags.Changed("item-extent") {
		s.ItemExtent = f.itemExtent
	}
	if flags.Changed("wheel-velocity") {
		s.WheelVelocity = f.wheelVelocity
	}
	if flags.Changed("inertia") {
		s.Inertia = f.inertia
	}
	return nil
}

func (s settings) validate() error {
	if err := s.Config.Validate(); err != nil {
		return err
	}
	switch {
	case len(s.Items) == 0 && s.Count <= 0:
		return fmt.Errorf("%w: no items and count %d", loopscroll.ErrInvalidConfig, s.Count)
	case s.ItemWidth <= 0 || s.ItemHeight <= 0:
		return fmt.Errorf("%w: item size must be positive, got %dx%d", loopscroll.ErrInvalidConfig, s.ItemWidth, s.ItemHeight)
	case s.FrameRate < 0:
		return fmt.Errorf("%w: frame rate must not be negative, got %d", loopscroll.ErrInvalidConfig, s.FrameRate)
	}
	if _, ok := loopscroll.BorderSetByName(s.Border); !ok && s.Border != "none" {
		return fmt.Errorf("%w: unknown border %q", loopscroll.ErrInvalidConfig, s.Border)
	}
	if _, ok := loopscroll.GlyphSetByName(s.Indicator); !ok && s.Indicator != "none" {
		return fmt.Errorf("%w: unknown indicator %q", loopscroll.ErrInvalidConfig, s.Indicator)
	}
	keyMap := loopscroll.DefaultListKeyMap()
	return keyMap.Override(s.Keys)
}

// labels returns the configured items or generated ones.
func (s settings) labels() []string {
	if len(s.Items) > 0 {
		return s.Items
	}
	labels := make([]string, s.Count)
	for i := range labels {
		labels[i] = fmt.Sprintf("item %02d", i)
	}
	return labels
}

// newList builds the list widget described by s.
func (s settings) newList() (*loopscroll.LoopList[string], error) {
	keyMap := loopscroll.DefaultListKeyMap()
	if err := keyMap.Override(s.Keys); err != nil {
		return nil, err
	}

	list := loopscroll.NewLoopList[string](s.Config)
	list.SetKeyMap(keyMap).
		SetItemSize(s.ItemWidth, s.ItemHeight).
		SetWheelVelocity(s.WheelVelocity).
		SetFormatter(func(_ int, label string) string { return label })
	list.Surface().
		SetInertia(s.Inertia).
		SetDecelerationRate(s.DecelerationRate)
	if set, ok := loopscroll.BorderSetByName(s.Border); ok {
		list.SetBorders(loopscroll.BordersAll)
		list.SetBorderSet(set)
	}
	if glyphs, ok := loopscroll.GlyphSetByName(s.Indicator); ok {
		list.Indicator().SetGlyphSet(glyphs)
	} else {
		list.SetShowIndicator(false)
	}
	list.SetTitle(s.Title)
	list.SetItems(s.labels())
	return list, nil
}
