package help

import (
	"github.com/ayn2op/loopscroll"
	"github.com/gdamore/tcell/v3"
)

type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives the help styles from [loopscroll.Styles].
func DefaultStyles() Styles {
	key := tcell.StyleDefault.Foreground(loopscroll.Styles.TertiaryTextColor)
	desc := tcell.StyleDefault.Foreground(loopscroll.Styles.PrimaryTextColor)
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
