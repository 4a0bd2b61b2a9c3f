// Package keybind maps key names such as "ctrl+n" or "pgdn" to tcell key
// events and carries the help text shown for them.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Help is the text shown for a keybind in help views.
type Help struct {
	Key  string
	Desc string
}

// Keybind is a set of equivalent keys plus the help text shown for them.
type Keybind struct {
	chords   []chord
	help     Help
	disabled bool
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys. Names that do not parse are dropped.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) { k.SetKeys(keys...) }
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) { k.SetHelp(key, desc) }
}

// WithDisabled creates the keybind in the disabled state.
func WithDisabled() Option {
	return func(k *Keybind) { k.disabled = true }
}

// Keys returns the normalized key names.
func (k Keybind) Keys() []string {
	keys := make([]string, len(k.chords))
	for i, c := range k.chords {
		keys[i] = c.String()
	}
	return keys
}

func (k *Keybind) SetKeys(keys ...string) {
	// Keybinds are copied by value, so never reuse the old backing array.
	k.chords = nil
	for _, key := range keys {
		if c, ok := parseChord(key); ok {
			k.chords = append(k.chords, c)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the keybind matches events and shows up in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.chords) > 0
}

// SetEnabled enables or disables the keybind.
func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether the event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	c, ok := eventChord(event)
	if !ok {
		return false
	}
	return slices.ContainsFunc(keybinds, func(k Keybind) bool {
		return k.Enabled() && slices.Contains(k.chords, c)
	})
}

// HelpText renders the enabled keybinds as a single line of "key desc"
// entries joined by separator.
func HelpText(separator string, keybinds ...Keybind) string {
	var b strings.Builder
	for _, k := range keybinds {
		if !k.Enabled() {
			continue
		}
		entry := strings.TrimSpace(k.help.Key + " " + k.help.Desc)
		if entry == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(entry)
	}
	return b.String()
}

// normalizeKey returns the canonical spelling of a key name, or "" when it
// names no key.
func normalizeKey(key string) string {
	c, ok := parseChord(key)
	if !ok {
		return ""
	}
	return c.String()
}

type modifiers uint8

const (
	modCtrl modifiers = 1 << iota
	modAlt
	modShift
	modMeta
)

// modifierOrder is the order modifiers are spelled in. It matches the order
// eventChord reads them from tcell.
var modifierOrder = []struct {
	mod  modifiers
	name string
	mask tcell.ModMask
}{
	{modCtrl, "ctrl", tcell.ModCtrl},
	{modAlt, "alt", tcell.ModAlt},
	{modShift, "shift", tcell.ModShift},
	{modMeta, "meta", tcell.ModMeta},
}

var modifierAliases = map[string]modifiers{
	"ctrl":    modCtrl,
	"control": modCtrl,
	"alt":     modAlt,
	"shift":   modShift,
	"meta":    modMeta,
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
}

// chord is a key plus the modifiers held with it.
type chord struct {
	mods modifiers
	key  string
}

func (c chord) String() string {
	var b strings.Builder
	for _, m := range modifierOrder {
		if c.mods&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(c.key)
	return b.String()
}

// parseChord reads names like "Ctrl+N", "ctrl-c", "PageDown" or "Rune[q]".
// Single character keys keep their case unless a modifier is held.
func parseChord(name string) (chord, bool) {
	var c chord
	for part := range strings.SplitSeq(name, "+") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		if mod, ok := modifierAliases[lower]; ok {
			c.mods |= mod
			continue
		}
		if rest, ok := strings.CutPrefix(lower, "ctrl-"); ok && rest != "" {
			c.mods |= modCtrl
			part = rest
		}
		if part != "" {
			c.key = primaryKey(part)
		}
	}
	if c.key == "" {
		return chord{}, false
	}
	if c.key == "backtab" {
		c.mods |= modShift
		c.key = "tab"
	}
	if c.mods != 0 && len([]rune(c.key)) == 1 {
		c.key = strings.ToLower(c.key)
	}
	return c, true
}

func primaryKey(key string) string {
	if inner, ok := strings.CutPrefix(key, "Rune["); ok && len(inner) > 1 {
		if inner, ok = strings.CutSuffix(inner, "]"); ok {
			return inner
		}
	}
	if len([]rune(key)) == 1 {
		return key
	}
	lower := strings.ToLower(key)
	if alias, ok := keyAliases[lower]; ok {
		return alias
	}
	return lower
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}

func eventChord(event *tcell.EventKey) (chord, bool) {
	key := event.Key()
	var c chord
	// Tab and enter share codes with ctrl+i and ctrl+m, so names come first.
	if name, ok := keyNames[key]; ok {
		c.key = name
	} else {
		switch {
		case key == tcell.KeyBacktab:
			return chord{mods: modShift, key: "tab"}, true
		case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ:
			return chord{mods: modCtrl, key: string(rune('a' + (key - tcell.KeyCtrlA)))}, true
		case key == tcell.KeyRune:
			c.key = event.Str()
		default:
			return parseChord(event.Name())
		}
	}
	for _, m := range modifierOrder {
		if event.Modifiers()&m.mask != 0 {
			c.mods |= m.mod
		}
	}
	return c, c.key != ""
}
