package game

import (
	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
)

// Bird is the player entity. It moves only vertically; its horizontal
// position is fixed for the lifetime of a session. The hitbox is the base
// sprite box scaled by the active preset's bird scale.
type Bird struct {
	X     float64 // fixed horizontal center
	Y     float64 // vertical center
	Vel   float64 // vertical velocity, positive = down
	Alive bool

	FrameIndex int // current animation frame

	scale      float64
	frameTimer float64
	cfg        *config.Config
}

// NewBird creates a bird at the session start position.
func NewBird(cfg *config.Config, scale float64) *Bird {
	return &Bird{
		X:     cfg.World.Width * cfg.Bird.XFraction,
		Y:     cfg.World.Height / 2,
		Alive: true,
		scale: scale,
		cfg:   cfg,
	}
}

// Width returns the scaled hitbox width.
func (b *Bird) Width() float64 {
	return b.cfg.Bird.BaseWidth * b.scale
}

// Height returns the scaled hitbox height.
func (b *Bird) Height() float64 {
	return b.cfg.Bird.BaseHeight * b.scale
}

// ApplyGravity accelerates the bird downward, clamped to terminal velocity.
// Only the downward fall is bounded; upward velocity is unconstrained.
func (b *Bird) ApplyGravity(dt float64) {
	b.Vel += b.cfg.Physics.Gravity * dt
	if b.Vel > b.cfg.Physics.MaxDropSpeed {
		b.Vel = b.cfg.Physics.MaxDropSpeed
	}
}

// Flap sets the velocity to the flap impulse, overriding any prior value.
// A no-op when the bird is dead.
func (b *Bird) Flap() {
	if !b.Alive {
		return
	}
	b.Vel = b.cfg.Physics.FlapVelocity
}

// Integrate advances the vertical position by the current velocity.
func (b *Bird) Integrate(dt float64) {
	b.Y += b.Vel * dt
}

// Animate advances the wing animation while the bird is alive.
// A dead bird holds its death pose (frame 0).
func (b *Bird) Animate(dt float64) {
	if !b.Alive {
		b.FrameIndex = 0
		return
	}
	b.frameTimer += dt
	if b.frameTimer*1000 >= float64(b.cfg.Bird.AnimationMs) {
		b.frameTimer = 0
		b.FrameIndex = (b.FrameIndex + 1) % b.cfg.Bird.FrameCount
	}
}

// Kill marks the bird dead. Further flaps become no-ops.
func (b *Bird) Kill() {
	b.Alive = false
	b.FrameIndex = 0
}

// Bounds returns the axis-aligned hitbox centered on the bird's position.
func (b *Bird) Bounds() core.Rect {
	w, h := b.Width(), b.Height()
	return core.NewRect(b.X-w/2, b.Y-h/2, w, h)
}
