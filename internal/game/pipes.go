package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
)

// PipePair is one top+bottom obstacle with a passable vertical gap.
// Pairs scroll left and are removed once fully off the left edge.
type PipePair struct {
	X          float64 // horizontal center
	GapCenterY float64 // base gap center, without sway
	GapHeight  float64
	SwayPhase  float64
	Passed     bool // set once when scored, never cleared

	width     float64
	swayAmp   float64
	swaySpeed float64
}

// Advance scrolls the pair left and, when swaying, advances the phase.
func (p *PipePair) Advance(dt, speed float64) {
	p.X -= speed * dt
	if p.swayAmp > 0 {
		p.SwayPhase += dt * p.swaySpeed
	}
}

// SwayOffset returns the current sinusoidal gap offset, 0 without sway.
func (p *PipePair) SwayOffset() float64 {
	if p.swayAmp == 0 {
		return 0
	}
	return p.swayAmp * math.Sin(p.SwayPhase)
}

// Center returns the effective gap center including sway.
func (p *PipePair) Center() float64 {
	return p.GapCenterY + p.SwayOffset()
}

// GapTop returns the y-coordinate of the top edge of the gap.
func (p *PipePair) GapTop() float64 {
	return p.Center() - p.GapHeight/2
}

// GapBottom returns the y-coordinate of the bottom edge of the gap.
func (p *PipePair) GapBottom() float64 {
	return p.Center() + p.GapHeight/2
}

// LeftEdge returns the x-coordinate of the pair's left edge.
func (p *PipePair) LeftEdge() float64 {
	return p.X - p.width/2
}

// RightEdge returns the x-coordinate of the pair's right edge.
func (p *PipePair) RightEdge() float64 {
	return p.X + p.width/2
}

// TopRect returns the collision rectangle for the top pipe, extending from
// the top of the world down to the gap.
func (p *PipePair) TopRect() core.Rect {
	return core.NewRect(p.LeftEdge(), 0, p.width, p.GapTop())
}

// BottomRect returns the collision rectangle for the bottom pipe, extending
// from the gap down to the bottom of the world.
func (p *PipePair) BottomRect(worldH float64) core.Rect {
	bottom := p.GapBottom()
	return core.NewRect(p.LeftEdge(), bottom, p.width, worldH-bottom)
}

// Offscreen reports whether the pair has fully crossed the left boundary.
func (p *PipePair) Offscreen(margin float64) bool {
	return p.RightEdge() < -margin
}

// Spawner creates pipe pairs on a countdown timer seeded from the active
// preset's spawn interval. Gap centers are drawn from an injected random
// source so runs are reproducible.
type Spawner struct {
	cfg    *config.Config
	preset config.Preset
	rng    *rand.Rand
	timer  float64
}

// NewSpawner creates a spawner for the given preset. The first pair spawns
// one full interval after the session starts.
func NewSpawner(cfg *config.Config, preset config.Preset, rng *rand.Rand) *Spawner {
	return &Spawner{
		cfg:    cfg,
		preset: preset,
		rng:    rng,
		timer:  preset.SpawnInterval(),
	}
}

// Tick decrements the countdown by elapsed time. When it reaches zero a new
// pair is created at the right edge of the world and the timer resets.
// Returns nil on ticks without a spawn.
func (s *Spawner) Tick(dt float64) *PipePair {
	s.timer -= dt
	if s.timer > 0 {
		return nil
	}
	s.timer += s.preset.SpawnInterval()
	return s.spawn()
}

// spawn builds one pipe pair with a constrained random gap center.
func (s *Spawner) spawn() *PipePair {
	lo, hi := s.gapCenterBounds()
	gapY := lo
	if hi > lo {
		gapY = lo + s.rng.Float64()*(hi-lo)
	}

	return &PipePair{
		X:          s.cfg.World.Width + s.cfg.Pipes.SpawnOffset,
		GapCenterY: gapY,
		GapHeight:  s.preset.PipeGap,
		width:      s.cfg.Pipes.Width,
		swayAmp:    s.preset.SwayAmplitude(),
		swaySpeed:  s.preset.Sway.Speed,
	}
}

// gapCenterBounds returns the valid range for the gap center. The range
// already accounts for the sway amplitude, so the gap edges never reach
// within the margin of the world's top or bottom even at the oscillation
// extremes, and never touch the ground.
func (s *Spawner) gapCenterBounds() (lo, hi float64) {
	halfGap := s.preset.PipeGap / 2
	amp := s.preset.SwayAmplitude()

	lo = s.cfg.Pipes.Margin + halfGap + amp
	hi = math.Min(s.cfg.World.Height-s.cfg.Pipes.Margin, s.cfg.World.GroundY()) - halfGap - amp
	if hi < lo {
		hi = lo // degenerate tiny worlds: pin the gap rather than invert the range
	}
	return lo, hi
}
