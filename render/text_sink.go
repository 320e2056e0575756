package render

import (
	"fmt"
	"io"
)

// TextSink writes sink calls as lines, used for headless runs
// Consecutive identical backgrounds are collapsed into one line
type TextSink struct {
	w      io.Writer
	lastBg string
}

// NewTextSink creates a TextSink writing to w
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (s *TextSink) SetBackground(hex string) {
	if hex == s.lastBg {
		return
	}
	s.lastBg = hex
	fmt.Fprintf(s.w, "background %s\n", hex)
}

func (s *TextSink) SetTitle(title string) {
	fmt.Fprintf(s.w, "title %s\n", title)
}
