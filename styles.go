package loopscroll

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	ContrastBackgroundColor  tcell.Color // Background of the settled item.
	BorderColor              tcell.Color // Box borders.
	FocusBorderColor         tcell.Color // Box borders while focused.
	TitleColor               tcell.Color // Box titles.
	GraphicsColor            tcell.Color // Indicator thumb.
	PrimaryTextColor         tcell.Color // Item labels.
	SecondaryTextColor       tcell.Color // The item nearest the fix place while moving.
	TertiaryTextColor        tcell.Color // Footers and help.
	InverseTextColor         tcell.Color // Text on ContrastBackgroundColor.
}

// Styles defines the theme for applications. The default is for a black
// background and some basic colors.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	ContrastBackgroundColor:  color.Blue,
	BorderColor:              color.White,
	FocusBorderColor:         color.Yellow,
	TitleColor:               color.White,
	GraphicsColor:            color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,
	TertiaryTextColor:        color.Green,
	InverseTextColor:         color.White,
}
