package game

import (
	"math"

	"github.com/vovakirdan/fluppy/internal/config"
)

// Layer is one parallax background layer, tracked as a wrap-around scroll
// offset in world units. Rendering tiles the layer using this offset.
type Layer struct {
	Name   string
	Speed  float64 // units per second
	Offset float64 // in [0, world width)
}

// Backdrop holds the parallax layers plus the ground strip. The layers
// scroll at their own fixed speeds; the ground scrolls at the active pipe
// speed so obstacles appear anchored to it.
type Backdrop struct {
	Layers       []Layer
	GroundOffset float64

	width float64
}

// NewBackdrop creates a backdrop from the configured layers.
func NewBackdrop(cfg *config.Config) *Backdrop {
	layers := make([]Layer, len(cfg.Layers))
	for i, lc := range cfg.Layers {
		layers[i] = Layer{Name: lc.Name, Speed: lc.Speed}
	}
	return &Backdrop{
		Layers: layers,
		width:  cfg.World.Width,
	}
}

// Advance scrolls every layer by elapsed time. groundSpeed is the current
// pipe speed (the ground moves with the obstacles).
func (b *Backdrop) Advance(dt, groundSpeed float64) {
	for i := range b.Layers {
		b.Layers[i].Offset = wrap(b.Layers[i].Offset+b.Layers[i].Speed*dt, b.width)
	}
	b.GroundOffset = wrap(b.GroundOffset+groundSpeed*dt, b.width)
}

// Reset rewinds all layers to their starting offsets.
func (b *Backdrop) Reset() {
	for i := range b.Layers {
		b.Layers[i].Offset = 0
	}
	b.GroundOffset = 0
}

// wrap keeps an offset within [0, width).
func wrap(offset, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return math.Mod(offset, width)
}
