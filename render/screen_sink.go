package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// labelLightnessThreshold splits CIE L* (0..1) between dark and light backgrounds
const labelLightnessThreshold = 0.6

// ScreenSink paints the whole terminal with the background color and mirrors the
// title both to the terminal window title and as a centered label
type ScreenSink struct {
	screen tcell.Screen

	background string
	title      string
}

// NewScreenSink creates a sink drawing onto an initialized screen
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen}
}

func (s *ScreenSink) SetBackground(hex string) {
	s.background = hex
	s.draw()
}

func (s *ScreenSink) SetTitle(title string) {
	s.title = title
	s.screen.SetTitle(title)
	s.draw()
}

// Redraw repaints after a resize
func (s *ScreenSink) Redraw() {
	s.screen.Sync()
	s.draw()
}

func (s *ScreenSink) draw() {
	style := tcell.StyleDefault.
		Background(tcell.GetColor(s.background)).
		Foreground(LabelColor(s.background))

	s.screen.Fill(' ', style)

	if s.title != "" {
		width, height := s.screen.Size()
		x := (width - len(s.title)) / 2
		y := height / 2
		for i, r := range s.title {
			if x+i >= 0 && x+i < width {
				s.screen.SetContent(x+i, y, r, nil, style)
			}
		}
	}

	s.screen.Show()
}

// LabelColor picks black or white text for readability on the given background
// Unparseable backgrounds get the terminal default
func LabelColor(background string) tcell.Color {
	c, err := colorful.Hex(background)
	if err != nil {
		return tcell.ColorDefault
	}
	l, _, _ := c.Lab()
	if l > labelLightnessThreshold {
		return tcell.ColorBlack
	}
	return tcell.ColorWhite
}
