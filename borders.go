package loopscroll

// Glyphs used for borders and truncation.
const (
	Ellipsis = "…" // …

	BoxDrawingsLightHorizontal       = "─" // ─
	BoxDrawingsLightVertical         = "│" // │
	BoxDrawingsLightDownAndRight     = "┌" // ┌
	BoxDrawingsLightDownAndLeft      = "┐" // ┐
	BoxDrawingsLightUpAndRight       = "└" // └
	BoxDrawingsLightUpAndLeft        = "┘" // ┘
	BoxDrawingsLightArcDownAndRight  = "╭" // ╭
	BoxDrawingsLightArcDownAndLeft   = "╮" // ╮
	BoxDrawingsLightArcUpAndLeft     = "╯" // ╯
	BoxDrawingsLightArcUpAndRight    = "╰" // ╰
	BoxDrawingsDoubleHorizontal      = "═" // ═
	BoxDrawingsDoubleVertical        = "║" // ║
	BoxDrawingsDoubleDownAndRight    = "╔" // ╔
	BoxDrawingsDoubleDownAndLeft     = "╗" // ╗
	BoxDrawingsDoubleUpAndRight      = "╚" // ╚
	BoxDrawingsDoubleUpAndLeft       = "╝" // ╝
)

// BorderSet defines the glyphs used when a box border is drawn.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

func BorderSetRound() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightArcDownAndRight,
		TopRight:    BoxDrawingsLightArcDownAndLeft,
		BottomLeft:  BoxDrawingsLightArcUpAndRight,
		BottomRight: BoxDrawingsLightArcUpAndLeft,
	}
}

func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsDoubleHorizontal,
		Bottom:      BoxDrawingsDoubleHorizontal,
		Left:        BoxDrawingsDoubleVertical,
		Right:       BoxDrawingsDoubleVertical,
		TopLeft:     BoxDrawingsDoubleDownAndRight,
		TopRight:    BoxDrawingsDoubleDownAndLeft,
		BottomLeft:  BoxDrawingsDoubleUpAndRight,
		BottomRight: BoxDrawingsDoubleUpAndLeft,
	}
}

// BorderSetByName returns a border set by its configuration name: "plain",
// "round" or "double".
func BorderSetByName(name string) (BorderSet, bool) {
	switch name {
	case "plain", "":
		return BorderSetPlain(), true
	case "round":
		return BorderSetRound(), true
	case "double":
		return BorderSetDouble(), true
	default:
		return BorderSet{}, false
	}
}

type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
