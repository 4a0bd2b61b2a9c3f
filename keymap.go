package loopscroll

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ayn2op/loopscroll/keybind"
)

// ListKeyMap holds the key bindings of a [LoopList].
type ListKeyMap struct {
	Next     keybind.Keybind
	Prev     keybind.Keybind
	PageNext keybind.Keybind
	PagePrev keybind.Keybind
	First    keybind.Keybind
	Last     keybind.Keybind
	Jump     keybind.Keybind
}

// DefaultListKeyMap returns the default bindings. Arrow keys and vi keys of
// both axes are bound so the same map serves vertical and horizontal lists.
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Next: keybind.NewKeybind(
			keybind.WithKeys("down", "j", "right", "l"),
			keybind.WithHelp("↓/j", "next"),
		),
		Prev: keybind.NewKeybind(
			keybind.WithKeys("up", "k", "left", "h"),
			keybind.WithHelp("↑/k", "prev"),
		),
		PageNext: keybind.NewKeybind(
			keybind.WithKeys("pgdn", "ctrl+d"),
			keybind.WithHelp("pgdn", "page next"),
		),
		PagePrev: keybind.NewKeybind(
			keybind.WithKeys("pgup", "ctrl+u"),
			keybind.WithHelp("pgup", "page prev"),
		),
		First: keybind.NewKeybind(
			keybind.WithKeys("home", "g"),
			keybind.WithHelp("g", "first"),
		),
		Last: keybind.NewKeybind(
			keybind.WithKeys("end", "G"),
			keybind.WithHelp("G", "last"),
		),
		Jump: keybind.NewKeybind(
			keybind.WithKeys("0"),
			keybind.WithHelp("0", "jump to first"),
		),
	}
}

// ShortHelp returns the bindings shown in the list footer.
func (k ListKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Next, k.Prev, k.First}
}

// FullHelp returns all bindings grouped into columns.
func (k ListKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Next, k.Prev, k.PageNext, k.PagePrev},
		{k.First, k.Last, k.Jump},
	}
}

// Override replaces the keys of the named bindings. Names are the lower-case
// field names: next, prev, page_next, page_prev, first, last and jump. An
// empty key list disables the binding.
func (k *ListKeyMap) Override(keys map[string][]string) error {
	bindings := map[string]*keybind.Keybind{
		"next":      &k.Next,
		"prev":      &k.Prev,
		"page_next": &k.PageNext,
		"page_prev": &k.PagePrev,
		"first":     &k.First,
		"last":      &k.Last,
		"jump":      &k.Jump,
	}

	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		binding, ok := bindings[name]
		if !ok {
			return fmt.Errorf("%w: unknown key binding %q", ErrInvalidConfig, name)
		}
		binding.SetKeys(keys[name]...)
		binding.SetEnabled(len(binding.Keys()) > 0)
		binding.SetHelp(strings.Join(binding.Keys(), "/"), binding.Help().Desc)
	}
	return nil
}
