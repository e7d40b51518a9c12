// Package game implements the Fluppy core simulation: bird physics, pipe
// spawning and recycling, collision detection, scoring, and the
// menu/playing/game-over state machine. It is pure logic with no UI
// dependencies; the platform layer drives it one tick at a time and renders
// from read-only snapshots.
package game

import (
	"math/rand"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
)

// Phase is the current top-level game state. Exactly one phase is active at
// a time; phase transitions are the only mutator.
type Phase int

const (
	// PhaseMenu is the difficulty selection screen. Initial state and the
	// restart target after a game over.
	PhaseMenu Phase = iota
	// PhasePlaying is a live session: physics, spawning, and scoring run.
	PhasePlaying
	// PhaseGameOver freezes the session. Only the bird's fall and the
	// backdrop keep animating for the render layer.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	Phase     Phase
	Score     int
	BestScore int
	Events    []Event
}

// session holds the entities of one playing session. It exists only while a
// session is live (Playing or GameOver); the menu phase carries no session.
type session struct {
	preset  config.Preset
	bird    *Bird
	pipes   []*PipePair
	spawner *Spawner
	score   int
}

// menuState is the data carried by the menu phase: the highlighted preset
// plus the idle bobbing of the preview bird.
type menuState struct {
	cursor      int
	floatOffset float64
	floatDir    float64
}

// Game is the core state machine. Create one per process with New, call
// Reset once, then Step once per tick.
type Game struct {
	cfg      *config.Config
	rc       core.RuntimeConfig
	dt       float64 // seconds per tick, capped by physics.max_tick_delta
	rng      *rand.Rand
	tick     uint64
	phase    Phase
	menu     menuState
	sess     *session
	backdrop *Backdrop

	// pending holds events raised outside a Step (the forced-preset
	// session start in Reset), delivered with the next Step's result.
	pending []Event

	// bestScore survives session restarts but not the process.
	bestScore int

	// forced is set when the difficulty came from the environment or a
	// flag; the menu is then bypassed at startup and on restart.
	forced *config.Preset
}

// New creates a game with the given configuration.
func New(cfg *config.Config) *Game {
	return &Game{
		cfg:      cfg,
		backdrop: NewBackdrop(cfg),
		menu:     menuState{floatDir: 1},
	}
}

// ForcePreset pins the difficulty, bypassing the menu. Call before Reset.
func (g *Game) ForcePreset(p config.Preset) {
	g.forced = &p
}

// Reset initializes or restarts the whole game. The best score is
// preserved; it resets only with the process.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rc = rc

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)
	if max := g.cfg.Physics.MaxTickDelta; max > 0 && g.dt > max {
		g.dt = max
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.sess = nil
	g.pending = nil
	g.backdrop.Reset()
	g.menu = menuState{cursor: g.defaultCursor(), floatDir: 1}

	if g.forced != nil {
		g.pending = g.startSession(*g.forced)
	} else {
		g.phase = PhaseMenu
	}
}

// defaultCursor returns the menu index of the default preset.
func (g *Game) defaultCursor() int {
	for i, p := range g.cfg.Presets {
		if p.Name == config.DefaultPresetName {
			return i
		}
	}
	return 0
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current session score, 0 outside a session.
func (g *Game) Score() int {
	if g.sess == nil {
		return 0
	}
	return g.sess.score
}

// BestScore returns the best score seen this process.
func (g *Game) BestScore() int {
	return g.bestScore
}

// Step advances the simulation by one tick. Per-tick order: input, state
// transitions, physics integration, spawn check, collision and scoring.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.tick++

	events := g.pending
	g.pending = nil
	switch g.phase {
	case PhaseMenu:
		events = append(events, g.stepMenu(in)...)
	case PhasePlaying:
		events = append(events, g.stepPlaying(in)...)
	case PhaseGameOver:
		events = append(events, g.stepGameOver(in)...)
	}

	return StepResult{
		Phase:     g.phase,
		Score:     g.Score(),
		BestScore: g.bestScore,
		Events:    events,
	}
}

// stepMenu handles preset navigation and the idle preview animation.
// With no configured presets the menu has nothing to select, so only the
// idle animation runs.
func (g *Game) stepMenu(in core.InputFrame) []Event {
	if n := len(g.cfg.Presets); n > 0 {
		if in.Has(core.ActionMenuUp) {
			g.menu.cursor = (g.menu.cursor - 1 + n) % n
		}
		if in.Has(core.ActionMenuDown) {
			g.menu.cursor = (g.menu.cursor + 1) % n
		}

		if in.Has(core.ActionConfirm) {
			return g.startSession(g.cfg.Presets[g.menu.cursor])
		}
	}

	// Idle bobbing of the preview bird
	g.menu.floatOffset += g.cfg.Bird.FloatSpeed * g.dt * g.menu.floatDir
	if g.menu.floatOffset > g.cfg.Bird.FloatAmplitude || g.menu.floatOffset < -g.cfg.Bird.FloatAmplitude {
		g.menu.floatDir = -g.menu.floatDir
	}

	g.backdrop.Advance(g.dt, g.cfg.DefaultPreset().PipeSpeed)
	return nil
}

// startSession begins a fresh playing session with the given preset.
func (g *Game) startSession(p config.Preset) []Event {
	g.sess = &session{
		preset:  p,
		bird:    NewBird(g.cfg, p.BirdScale),
		spawner: NewSpawner(g.cfg, p, g.rng),
	}
	g.phase = PhasePlaying
	return []Event{EventSwoosh}
}

// stepPlaying runs one tick of a live session.
func (g *Game) stepPlaying(in core.InputFrame) []Event {
	s := g.sess
	var events []Event

	if in.Has(core.ActionFlap) && s.bird.Alive {
		s.bird.Flap()
		events = append(events, EventWing)
	}

	s.bird.ApplyGravity(g.dt)
	s.bird.Integrate(g.dt)
	s.bird.Animate(g.dt)

	g.backdrop.Advance(g.dt, s.preset.PipeSpeed)

	// Scroll and recycle pipes. Removal keeps the remaining pairs in spawn
	// order, which the collision scan and pass-scoring below rely on.
	for _, p := range s.pipes {
		p.Advance(g.dt, s.preset.PipeSpeed)
	}
	live := s.pipes[:0]
	for _, p := range s.pipes {
		if !p.Offscreen(g.cfg.Pipes.DespawnMargin) {
			live = append(live, p)
		}
	}
	s.pipes = live

	if pair := s.spawner.Tick(g.dt); pair != nil {
		s.pipes = append(s.pipes, pair)
	}

	if groundHit, hit := g.checkCollision(); hit {
		events = append(events, EventHit)
		if groundHit {
			events = append(events, EventDie)
		}
		g.enterGameOver()
		return events
	}

	// Award one point per pair whose right edge has crossed the bird,
	// at most once per pair.
	for _, p := range s.pipes {
		if !p.Passed && p.RightEdge() < s.bird.X {
			p.Passed = true
			s.score++
			events = append(events, EventPoint)
		}
	}

	return events
}

// checkCollision tests the bird against world bounds and every live pipe
// pair in spawn order. The first overlap wins. Returns (groundHit, hit).
func (g *Game) checkCollision() (bool, bool) {
	s := g.sess
	bounds := s.bird.Bounds()

	if bounds.Y < 0 {
		return false, true
	}
	if bounds.Bottom() >= g.cfg.World.GroundY() {
		return true, true
	}

	worldH := g.cfg.World.Height
	for _, p := range s.pipes {
		if bounds.Intersects(p.TopRect()) || bounds.Intersects(p.BottomRect(worldH)) {
			return false, true
		}
	}
	return false, false
}

// enterGameOver freezes the session and folds the score into the best.
func (g *Game) enterGameOver() {
	g.sess.bird.Kill()
	if g.sess.score > g.bestScore {
		g.bestScore = g.sess.score
	}
	g.phase = PhaseGameOver
}

// stepGameOver keeps the dead bird falling for the render layer and waits
// for a restart. No spawning, scoring, or collision runs here.
func (g *Game) stepGameOver(in core.InputFrame) []Event {
	if in.Has(core.ActionRestart) {
		if g.forced != nil {
			return g.startSession(*g.forced)
		}
		// Back to preset selection, highlighting the preset just played
		for i, p := range g.cfg.Presets {
			if p.Name == g.sess.preset.Name {
				g.menu.cursor = i
				break
			}
		}
		g.sess = nil
		g.phase = PhaseMenu
		return nil
	}

	s := g.sess
	s.bird.ApplyGravity(g.dt)
	s.bird.Integrate(g.dt)

	// Settle on the ground instead of falling through
	groundY := g.cfg.World.GroundY()
	if s.bird.Bounds().Bottom() > groundY {
		s.bird.Y = groundY - s.bird.Height()/2
		s.bird.Vel = 0
	}

	g.backdrop.Advance(g.dt, s.preset.PipeSpeed)
	return nil
}
