package game

// Snapshot is a read-only view of the game state taken after a Step.
// The platform layer renders from snapshots and never touches the
// simulation types directly.
type Snapshot struct {
	Tick  uint64
	Phase Phase

	WorldW  float64
	WorldH  float64
	GroundY float64

	// Menu phase only
	MenuCursor  int
	MenuOptions []string

	// Set while a session is live (Playing or GameOver)
	PresetName string
	Bird       BirdSnapshot
	Pipes      []PipeSnapshot

	Layers       []LayerSnapshot
	GroundOffset float64

	Score     int
	BestScore int
}

// BirdSnapshot captures the bird's position and pose in world units.
type BirdSnapshot struct {
	X          float64
	Y          float64
	Velocity   float64
	Width      float64
	Height     float64
	FrameIndex int
	Alive      bool
}

// PipeSnapshot captures one pipe pair. GapTop and GapBottom already include
// the current sway offset.
type PipeSnapshot struct {
	X         float64 // horizontal center
	Width     float64
	GapTop    float64
	GapBottom float64
	Passed    bool
}

// LayerSnapshot captures one parallax layer's scroll offset.
type LayerSnapshot struct {
	Name   string
	Speed  float64
	Offset float64
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		WorldW:       g.cfg.World.Width,
		WorldH:       g.cfg.World.Height,
		GroundY:      g.cfg.World.GroundY(),
		GroundOffset: g.backdrop.GroundOffset,
		BestScore:    g.bestScore,
	}

	snap.Layers = make([]LayerSnapshot, len(g.backdrop.Layers))
	for i, l := range g.backdrop.Layers {
		snap.Layers[i] = LayerSnapshot{Name: l.Name, Speed: l.Speed, Offset: l.Offset}
	}

	if g.phase == PhaseMenu {
		snap.MenuCursor = g.menu.cursor
		snap.MenuOptions = g.cfg.PresetNames()
		snap.Bird = g.menuBird()
		return snap
	}

	s := g.sess
	snap.PresetName = s.preset.Name
	snap.Score = s.score
	snap.Bird = BirdSnapshot{
		X:          s.bird.X,
		Y:          s.bird.Y,
		Velocity:   s.bird.Vel,
		Width:      s.bird.Width(),
		Height:     s.bird.Height(),
		FrameIndex: s.bird.FrameIndex,
		Alive:      s.bird.Alive,
	}

	snap.Pipes = make([]PipeSnapshot, len(s.pipes))
	for i, p := range s.pipes {
		snap.Pipes[i] = PipeSnapshot{
			X:         p.X,
			Width:     p.width,
			GapTop:    p.GapTop(),
			GapBottom: p.GapBottom(),
			Passed:    p.Passed,
		}
	}
	return snap
}

// menuBird is the idle preview bird shown on the menu screen, bobbing
// around the session start position.
func (g *Game) menuBird() BirdSnapshot {
	preset := g.cfg.DefaultPreset()
	if g.menu.cursor >= 0 && g.menu.cursor < len(g.cfg.Presets) {
		preset = g.cfg.Presets[g.menu.cursor]
	}
	w := g.cfg.Bird.BaseWidth * preset.BirdScale
	h := g.cfg.Bird.BaseHeight * preset.BirdScale
	return BirdSnapshot{
		X:      g.cfg.World.Width * g.cfg.Bird.XFraction,
		Y:      g.cfg.World.Height/2 + g.menu.floatOffset,
		Width:  w,
		Height: h,
		Alive:  true,
	}
}
