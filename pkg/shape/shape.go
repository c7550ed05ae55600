// Package shape supplies the engine's shape geometry: named, ordered point
// outlines with topology flags. The engine treats these as opaque static
// data; nothing here knows about fonts or rendering.
package shape

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/opd-ai/go-softbody/pkg/physics"
)

// Shape is an ordered outline of point offsets around an origin, with a
// loop flag and an optional set of pinned indices.
type Shape struct {
	Name   string             `json:"name"`
	Points []physics.Vector2D `json:"points"`
	Loop   bool               `json:"loop"`
	Pinned []int              `json:"pinned,omitempty"`
}

// Library is a named collection of shapes.
type Library map[string]Shape

// BuiltinLibrary returns the glyph-like outlines shipped with the module.
func BuiltinLibrary() Library {
	lib := Library{
		"ring":   Ring(12, 40),
		"box":    Box(60, 60),
		"chain":  Chain(8, 14, []int{0}),
		"banner": Chain(10, 12, []int{0, 9}),
		"zigzag": Zigzag(7, 16, 12),
	}
	return lib
}

// Ring builds a closed circle of count points with the given radius.
func Ring(count int, radius float64) Shape {
	points := make([]physics.Vector2D, count)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(count)
		points[i] = physics.Vector2D{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
	return Shape{Name: "ring", Points: points, Loop: true}
}

// Box builds a closed rectangle outline with two points per side.
func Box(width, height float64) Shape {
	w, h := width/2, height/2
	points := []physics.Vector2D{
		{X: -w, Y: -h}, {X: 0, Y: -h}, {X: w, Y: -h},
		{X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h},
		{X: -w, Y: h}, {X: -w, Y: 0},
	}
	return Shape{Name: "box", Points: points, Loop: true}
}

// Chain builds an open horizontal chain of count points spaced apart,
// with the given indices pinned.
func Chain(count int, spacing float64, pinned []int) Shape {
	points := make([]physics.Vector2D, count)
	for i := range points {
		points[i] = physics.Vector2D{X: float64(i) * spacing}
	}
	return Shape{Name: "chain", Points: points, Pinned: pinned}
}

// Zigzag builds an open chain alternating above and below its baseline.
func Zigzag(count int, spacing, amplitude float64) Shape {
	points := make([]physics.Vector2D, count)
	for i := range points {
		y := amplitude
		if i%2 == 0 {
			y = -amplitude
		}
		points[i] = physics.Vector2D{X: float64(i) * spacing, Y: y}
	}
	return Shape{Name: "zigzag", Points: points, Pinned: []int{0}}
}

// LoadLibrary reads a JSON array of shapes from a file, validating each
// entry. Shapes with duplicate names overwrite earlier entries.
func LoadLibrary(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shape file: %w", err)
	}

	var shapes []Shape
	if err := json.Unmarshal(data, &shapes); err != nil {
		return nil, fmt.Errorf("failed to parse shape file: %w", err)
	}

	lib := make(Library, len(shapes))
	for _, s := range shapes {
		if err := ValidateShape(s); err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s.Name, err)
		}
		lib[s.Name] = s
	}

	return lib, nil
}
