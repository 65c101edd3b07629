package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStroke_SeedsFirstPoint(t *testing.T) {
	t.Parallel()

	tools := Tools{Thickness: 6, Color: "red", Symbol: "o"}
	s := NewStroke(Pt(3, 4), tools)
	s.Drag(Pt(5, 6))
	s.Drag(Pt(7, 8))

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, []Point{{3, 4}, {5, 6}, {7, 8}}, s.Points)
	assert.Equal(t, 6.0, s.Thickness)
	assert.Equal(t, "red", s.Color)
	assert.Equal(t, Pt(7, 8), s.Last())
}

func TestNewStamp_CopiesTools(t *testing.T) {
	t.Parallel()

	tools := Tools{Thickness: 2, Color: "blue", Symbol: "🗿", Rotation: 45, GlyphScale: 5}
	st := NewStamp(Pt(1, 1), tools)
	tools.Symbol = "x"
	tools.Rotation = 90

	assert.Equal(t, "🗿", st.Symbol)
	assert.Equal(t, 45, st.Rotation)
	assert.Equal(t, 10.0, st.Size)

	st.MoveTo(Pt(9, 9))
	assert.Equal(t, Pt(9, 9), st.Pos)
}

func TestIDsAreUnique(t *testing.T) {
	t.Parallel()

	a := NewStroke(Pt(0, 0), DefaultTools())
	b := NewStroke(Pt(0, 0), DefaultTools())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTools_GlyphSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tools Tools
		want  float64
	}{
		{name: "thin marker", tools: Tools{Thickness: 2, GlyphScale: 5}, want: 10},
		{name: "thick marker", tools: Tools{Thickness: 6, GlyphScale: 5}, want: 30},
		{name: "zero scale falls back", tools: Tools{Thickness: 2}, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.tools.GlyphSize())
		})
	}
}

func TestRect_Contains(t *testing.T) {
	t.Parallel()

	r := Rect{Width: 256, Height: 256}
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.True(t, r.Contains(Pt(256, 256)))
	assert.False(t, r.Contains(Pt(-1, 10)))
	assert.False(t, r.Contains(Pt(10, 257)))
}

func TestRect_Union(t *testing.T) {
	t.Parallel()

	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: -5, Width: 10, Height: 5}
	assert.Equal(t, Rect{X: 0, Y: -5, Width: 15, Height: 15}, a.Union(b))
	assert.Equal(t, a, Rect{}.Union(a))
	assert.Equal(t, a, a.Union(Rect{}))
}

func TestPalette_Color(t *testing.T) {
	t.Parallel()

	p := DefaultPalette()
	assert.Equal(t, uint8(255), p.Color("red").R)
	assert.Equal(t, p.Color("black"), p.Color("no-such-color"))
	assert.True(t, p.Has("blue"))
	assert.False(t, p.Has("mauve"))
	assert.Equal(t, []string{"black", "blue", "green", "red", "white", "yellow"}, p.Names())
}
