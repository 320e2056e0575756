package render

// Sink receives the animation's visible output
// Both methods get CSS-style "#rrggbb" strings and are called from the loop task only
type Sink interface {
	// SetBackground is called once per tween tick with the interpolated color
	SetBackground(hex string)
	// SetTitle is called once per completed cycle with the target color
	SetTitle(title string)
}

// MultiSink fans every call out to its members in order
type MultiSink []Sink

func (m MultiSink) SetBackground(hex string) {
	for _, s := range m {
		s.SetBackground(hex)
	}
}

func (m MultiSink) SetTitle(title string) {
	for _, s := range m {
		s.SetTitle(title)
	}
}

// NopSink discards everything
type NopSink struct{}

func (NopSink) SetBackground(string) {}
func (NopSink) SetTitle(string)      {}
