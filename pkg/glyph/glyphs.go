// Package glyph holds the symbols the planner draws for task states, stamps
// and tag markers.
package glyph

type Glyph struct {
	Symbol  string
	Meaning string
}

func DefaultGlyphs() []Glyph {
	return []Glyph{
		{Symbol: "○", Meaning: "open task"},
		{Symbol: "✔", Meaning: "done task"},
		{Symbol: "★", Meaning: "day stamped as achieved"},
		{Symbol: "•", Meaning: "task tag on a day"},
		{Symbol: "🏆", Meaning: "monthly goal"},
		{Symbol: "➜", Meaning: "cursor"},
	}
}

func (g Glyph) String() string {
	return g.Symbol
}

type Bullet int

const (
	Open Bullet = iota
	Done
	Stamp
	Marker
	Goal
	Cursor
)

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

// Check is the bullet for a task's done state.
func Check(done bool) Bullet {
	if done {
		return Done
	}
	return Open
}
