package state

import (
	"math"
	"slices"
)

type Point struct{ X, Y float64 }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type Circle struct {
	ID     string  `json:"id" yaml:"id"`
	Center Point   `json:"center" yaml:"center"`
	Radius float64 `json:"radius" yaml:"radius"`
	Color  string  `json:"color" yaml:"color"` // "#RRGGBB"
}

// Contains reports whether p lies inside or on the edge of the circle.
func (c Circle) Contains(p Point) bool {
	return c.Center.Dist(p) <= c.Radius
}

// RoundedRadius is the radius as shown to the user.
func (c Circle) RoundedRadius() int {
	return int(math.Round(c.Radius))
}

// Scene is the insertion-ordered list of committed circles. Mutating methods
// return a new Scene and leave the receiver untouched, so a State can be
// copied freely.
type Scene struct {
	circles []Circle
}

func NewScene(circles ...Circle) Scene {
	return Scene{circles: slices.Clone(circles)}
}

func (s Scene) Len() int { return len(s.circles) }

// Circles returns a copy of the circles in paint order.
func (s Scene) Circles() []Circle {
	return slices.Clone(s.circles)
}

func (s Scene) At(i int) (Circle, bool) {
	if i < 0 || i >= len(s.circles) {
		return Circle{}, false
	}
	return s.circles[i], true
}

func (s Scene) Add(c Circle) Scene {
	out := make([]Circle, len(s.circles), len(s.circles)+1)
	copy(out, s.circles)
	return Scene{circles: append(out, c)}
}

// RemoveLast drops the most recently added circle.
func (s Scene) RemoveLast() (Scene, Circle, bool) {
	if len(s.circles) == 0 {
		return s, Circle{}, false
	}
	return s.RemoveAt(len(s.circles) - 1)
}

func (s Scene) RemoveAt(i int) (Scene, Circle, bool) {
	if i < 0 || i >= len(s.circles) {
		return s, Circle{}, false
	}
	removed := s.circles[i]
	out := make([]Circle, 0, len(s.circles)-1)
	out = append(out, s.circles[:i]...)
	out = append(out, s.circles[i+1:]...)
	return Scene{circles: out}, removed, true
}

func (s Scene) Clear() Scene { return Scene{} }

// HitTest returns the topmost circle containing p. Circles are tested in
// reverse insertion order, so the last drawn one wins on overlap.
func (s Scene) HitTest(p Point) (int, Circle, bool) {
	for i := len(s.circles) - 1; i >= 0; i-- {
		if s.circles[i].Contains(p) {
			return i, s.circles[i], true
		}
	}
	return -1, Circle{}, false
}
