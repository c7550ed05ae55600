// pkg/render/terminal.go
package render

import (
	"fmt"
	"strings"

	"github.com/opd-ai/go-softbody/pkg/body"
	"github.com/opd-ai/go-softbody/pkg/physics"
)

// TerminalRenderer provides a simple ASCII-based rendering for terminals
type TerminalRenderer struct {
	width     int
	height    int
	buffer    [][]rune
	scale     float64
	centerPos physics.Vector2D
}

// NewTerminalRenderer creates a new terminal renderer with the specified dimensions
func NewTerminalRenderer(width, height int, scale float64) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		scale:  scale,
	}
}

// SetCenter sets the center position of the view
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.centerPos = pos
}

// worldToScreen converts world coordinates to screen coordinates
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	screenX := int((pos.X-r.centerPos.X)/r.scale + float64(r.width)/2)
	screenY := int((pos.Y-r.centerPos.Y)/r.scale + float64(r.height)/2)
	return screenX, screenY
}

// Clear implements Renderer
func (r *TerminalRenderer) Clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

// Present implements Renderer
func (r *TerminalRenderer) Present() {
	// Clear terminal
	fmt.Print("\033[H\033[2J")

	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
	for y := range r.buffer {
		fmt.Print("|")
		for x := range r.buffer[y] {
			fmt.Print(string(r.buffer[y][x]))
		}
		fmt.Println("|")
	}
	fmt.Println("+" + strings.Repeat("-", r.width) + "+")
}

// RenderParticle implements Renderer. Pinned particles draw as '#',
// free particles as 'o'.
func (r *TerminalRenderer) RenderParticle(p *body.Particle) {
	x, y := r.worldToScreen(p.Position)

	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		symbol := 'o'
		if p.Static {
			symbol = '#'
		}
		r.buffer[y][x] = symbol
	}
}

// RenderConstraint implements Renderer. The segment between the two
// endpoints is sampled into '.' cells; particle cells win over segment
// cells because particles render after constraints in the host loop.
func (r *TerminalRenderer) RenderConstraint(c body.Constraint) {
	a := c.ParticleA().Position
	b := c.ParticleB().Position

	steps := int(a.Distance(b)/r.scale) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		point := a.Add(b.Sub(a).Scale(t))
		x, y := r.worldToScreen(point)
		if x >= 0 && x < r.width && y >= 0 && y < r.height && r.buffer[y][x] == ' ' {
			r.buffer[y][x] = '.'
		}
	}
}
