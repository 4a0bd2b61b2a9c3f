package help

import (
	"strings"

	"github.com/ayn2op/loopscroll"
	"github.com/ayn2op/loopscroll/keybind"
	"github.com/gdamore/tcell/v3"
)

type segment struct {
	text  string
	style tcell.Style
}

type line []segment

func lineWidth(l line) int {
	width := 0
	for _, s := range l {
		width += loopscroll.TaggedStringWidth(s.text)
	}
	return width
}

// entry renders one binding as "key desc". Disabled bindings and bindings
// without help render nothing.
func (h *Help) entry(kb keybind.Keybind, keyStyle, descStyle tcell.Style) line {
	if !kb.Enabled() {
		return nil
	}
	help := kb.Help()
	var l line
	if help.Key != "" {
		l = append(l, segment{help.Key, keyStyle})
	}
	if help.Key != "" && help.Desc != "" {
		l = append(l, segment{" ", descStyle})
	}
	if help.Desc != "" {
		l = append(l, segment{help.Desc, descStyle})
	}
	return l
}

// summary joins entries until the next one would not fit, then marks the cut
// with an ellipsis if there is room for it.
func (h *Help) summary(bindings []keybind.Keybind, maxWidth int) line {
	var out line
	for _, kb := range bindings {
		item := h.entry(kb, h.Styles.ShortKeyStyle, h.Styles.ShortDescStyle)
		if len(item) == 0 {
			continue
		}

		next := append(line(nil), out...)
		if len(next) > 0 {
			next = append(next, segment{h.separator, h.Styles.ShortSeparatorStyle})
		}
		next = append(next, item...)
		if maxWidth > 0 && lineWidth(next) > maxWidth {
			return h.withEllipsis(out, maxWidth)
		}
		out = next
	}
	return out
}

type column struct {
	keys     []string
	descs    []string
	keyWidth int
	width    int
}

func (h *Help) collect(group []keybind.Keybind) column {
	var c column
	for _, kb := range group {
		if !kb.Enabled() {
			continue
		}
		help := kb.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		c.keys = append(c.keys, help.Key)
		c.descs = append(c.descs, help.Desc)
		c.keyWidth = max(c.keyWidth, loopscroll.TaggedStringWidth(help.Key))
	}
	for i := range c.keys {
		w := c.keyWidth + loopscroll.TaggedStringWidth(c.descs[i])
		if c.keys[i] != "" && c.descs[i] != "" {
			w++
		}
		c.width = max(c.width, w)
	}
	return c
}

// columns lays groups out side by side with keys and descriptions aligned.
// Columns that do not fit in maxWidth are dropped from the right.
func (h *Help) columns(groups [][]keybind.Keybind, maxWidth int) []line {
	var cols []column
	total := 0
	gapWidth := loopscroll.TaggedStringWidth(h.gap)
	truncated := false
	for _, group := range groups {
		c := h.collect(group)
		if len(c.keys) == 0 {
			continue
		}
		w := c.width
		if len(cols) > 0 {
			w += gapWidth
		}
		if maxWidth > 0 && total+w > maxWidth {
			truncated = true
			break
		}
		cols = append(cols, c)
		total += w
	}
	if len(cols) == 0 {
		if truncated {
			return []line{{{loopscroll.Ellipsis, h.Styles.EllipsisStyle}}}
		}
		return nil
	}

	rows := 0
	for _, c := range cols {
		rows = max(rows, len(c.keys))
	}

	lines := make([]line, rows)
	for row := range lines {
		var l line
		for i, c := range cols {
			if i > 0 {
				l = append(l, segment{h.gap, h.Styles.FullSeparatorStyle})
			}
			var cell line
			if row < len(c.keys) {
				key, desc := c.keys[row], c.descs[row]
				cell = append(cell, segment{padRight(key, c.keyWidth), h.Styles.FullKeyStyle})
				if key != "" && desc != "" {
					cell = append(cell, segment{" ", h.Styles.FullDescStyle})
				}
				if desc != "" {
					cell = append(cell, segment{desc, h.Styles.FullDescStyle})
				}
			}
			// Pad inner columns so the gaps line up across rows.
			if i < len(cols)-1 {
				if pad := c.width - lineWidth(cell); pad > 0 {
					cell = append(cell, segment{strings.Repeat(" ", pad), h.Styles.FullDescStyle})
				}
			}
			l = append(l, cell...)
		}
		lines[row] = l
	}

	if truncated {
		lines[0] = h.withEllipsis(lines[0], maxWidth)
	}
	return lines
}

func (h *Help) withEllipsis(l line, maxWidth int) line {
	tail := line{{" " + loopscroll.Ellipsis, h.Styles.EllipsisStyle}}
	if maxWidth > 0 && lineWidth(l)+lineWidth(tail) > maxWidth {
		return l
	}
	return append(l, tail...)
}

func padRight(text string, width int) string {
	if pad := width - loopscroll.TaggedStringWidth(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}
