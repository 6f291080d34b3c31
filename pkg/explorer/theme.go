package explorer

import "github.com/gdamore/tcell/v2"

type theme struct {
	BlurredBorderColor       tcell.Color
	FocusedSelectedTextStyle tcell.Style
	BlurredSelectedTextStyle tcell.Style
	HeaderColor              tcell.Color
	DirColor                 tcell.Color
	ErrorColor               tcell.Color
	StatusColor              tcell.Color
	ModalBackground          tcell.Color
}

var currentTheme = theme{
	BlurredBorderColor:       tcell.ColorGray,
	FocusedSelectedTextStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhiteSmoke),
	BlurredSelectedTextStyle: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray),
	HeaderColor:              tcell.ColorLightBlue,
	DirColor:                 tcell.ColorLightSkyBlue,
	ErrorColor:               tcell.ColorOrangeRed,
	StatusColor:              tcell.ColorSlateGray,
	ModalBackground:          tcell.ColorDarkBlue,
}
