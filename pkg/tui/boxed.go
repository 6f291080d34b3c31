// Package tui holds tview building blocks shared by the explorer views.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	focusedStyle = tcell.StyleDefault.Foreground(tcell.ColorCornflowerBlue).Background(tcell.ColorBlack)
	blurredStyle = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
)

// BoxedContent is a primitive that leaves room for the frame drawn by Boxed.
type BoxedContent interface {
	tview.Primitive
	SetBorderPadding(top, bottom, left, right int) *tview.Box
}

// Boxed draws a frame with a title line on top and a footer line at the bottom
// around its content. The frame uses double lines while the content has focus.
type Boxed struct {
	BoxedContent
	title       string
	footer      string
	leftBorder  bool
	rightBorder bool
}

type BoxOption func(b *Boxed)

func WithLeftBorder() BoxOption {
	return func(b *Boxed) {
		b.leftBorder = true
	}
}

func WithRightBorder() BoxOption {
	return func(b *Boxed) {
		b.rightBorder = true
	}
}

func NewBoxed(inner BoxedContent, o ...BoxOption) *Boxed {
	b := &Boxed{BoxedContent: inner}
	for _, opt := range o {
		opt(b)
	}
	left, right := 0, 0
	if b.leftBorder {
		left = 1
	}
	if b.rightBorder {
		right = 1
	}
	inner.SetBorderPadding(1, 1, left, right)
	return b
}

func (b *Boxed) SetTitle(title string) *Boxed {
	b.title = title
	return b
}

func (b *Boxed) Title() string {
	return b.title
}

// SetFooter sets the text shown in the middle of the bottom line.
func (b *Boxed) SetFooter(footer string) *Boxed {
	b.footer = footer
	return b
}

func (b *Boxed) Footer() string {
	return b.footer
}

func (b *Boxed) Draw(screen tcell.Screen) {
	b.BoxedContent.Draw(screen)
	b.drawFrame(screen)
}

func (b *Boxed) drawFrame(screen tcell.Screen) {
	x, y, width, height := b.GetRect()
	if width <= 0 || height <= 0 {
		return
	}
	style, line := blurredStyle, '─'
	if b.HasFocus() {
		style, line = focusedStyle, '═'
	}
	horizontal := func(y int, text string) {
		for i := 0; i < width; i++ {
			screen.SetContent(x+i, y, line, nil, style)
		}
		if text == "" {
			return
		}
		text = " " + text + " "
		textWidth := tview.TaggedStringWidth(text)
		if textWidth > width-2 {
			textWidth = width - 2
		}
		start := x + (width-textWidth)/2
		tview.Print(screen, text, start, y, textWidth, tview.AlignLeft, tcell.ColorGhostWhite)
	}
	horizontal(y, b.title)
	if height > 1 {
		horizontal(y+height-1, b.footer)
	}
	vertical := func(x int) {
		for i := 1; i < height-1; i++ {
			screen.SetContent(x, y+i, '│', nil, style)
		}
	}
	if b.leftBorder {
		vertical(x)
	}
	if b.rightBorder {
		vertical(x + width - 1)
	}
}
