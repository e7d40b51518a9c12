package game

import (
	"testing"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
)

func newTestGame(seed int64) (*Game, *config.Config) {
	cfg := config.Default()
	g := New(&cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, &cfg
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hasEvent(events []Event, want Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestStartsInMenu(t *testing.T) {
	g, cfg := newTestGame(1)
	if g.Phase() != PhaseMenu {
		t.Fatalf("initial phase = %v, want menu", g.Phase())
	}

	snap := g.Snapshot()
	if len(snap.MenuOptions) != len(cfg.Presets) {
		t.Errorf("menu shows %d options, want %d", len(snap.MenuOptions), len(cfg.Presets))
	}
	if snap.MenuOptions[snap.MenuCursor] != config.DefaultPresetName {
		t.Errorf("initial cursor on %q, want %q", snap.MenuOptions[snap.MenuCursor], config.DefaultPresetName)
	}
}

func TestMenuWithoutPresets(t *testing.T) {
	cfg := config.Default()
	cfg.Presets = nil

	g := New(&cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	// Navigation and confirm have nothing to act on; the menu must idle
	// instead of panicking.
	for _, f := range []core.InputFrame{
		frame(core.ActionMenuDown),
		frame(core.ActionMenuUp),
		frame(core.ActionConfirm),
	} {
		res := g.Step(f)
		if res.Phase != PhaseMenu {
			t.Fatalf("phase = %v, want menu with no presets", res.Phase)
		}
	}

	snap := g.Snapshot()
	if len(snap.MenuOptions) != 0 {
		t.Errorf("snapshot lists %d options for an empty config", len(snap.MenuOptions))
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	g, cfg := newTestGame(1)
	n := len(cfg.Presets)

	start := g.menu.cursor
	for i := 0; i < n; i++ {
		g.Step(frame(core.ActionMenuDown))
	}
	if g.menu.cursor != start {
		t.Errorf("cursor after full down cycle = %d, want %d", g.menu.cursor, start)
	}

	g.Step(frame(core.ActionMenuUp))
	if g.menu.cursor != (start-1+n)%n {
		t.Errorf("cursor after up = %d, want %d", g.menu.cursor, (start-1+n)%n)
	}
}

func TestConfirmStartsSession(t *testing.T) {
	g, _ := newTestGame(1)

	res := g.Step(frame(core.ActionConfirm))
	if res.Phase != PhasePlaying {
		t.Fatalf("phase after confirm = %v, want playing", res.Phase)
	}
	if !hasEvent(res.Events, EventSwoosh) {
		t.Errorf("session start did not emit swoosh, events = %v", res.Events)
	}
	if g.sess == nil || g.sess.preset.Name != config.DefaultPresetName {
		t.Errorf("session preset = %+v, want %s", g.sess, config.DefaultPresetName)
	}
}

func TestFlapEmitsWing(t *testing.T) {
	g, cfg := newTestGame(1)
	g.Step(frame(core.ActionConfirm))

	res := g.Step(frame(core.ActionFlap))
	if !hasEvent(res.Events, EventWing) {
		t.Errorf("flap did not emit wing, events = %v", res.Events)
	}
	want := cfg.Physics.FlapVelocity + cfg.Physics.Gravity*g.dt
	if g.sess.bird.Vel != want {
		t.Errorf("velocity after flap tick = %v, want %v", g.sess.bird.Vel, want)
	}
}

func TestGroundCollisionEndsGame(t *testing.T) {
	g, _ := newTestGame(1)
	g.Step(frame(core.ActionConfirm))

	var last StepResult
	for i := 0; i < 600; i++ {
		last = g.Step(frame())
		if last.Phase == PhaseGameOver {
			break
		}
	}
	if last.Phase != PhaseGameOver {
		t.Fatalf("bird never hit the ground")
	}
	if !hasEvent(last.Events, EventHit) || !hasEvent(last.Events, EventDie) {
		t.Errorf("ground crash events = %v, want hit and die", last.Events)
	}
	if g.sess.bird.Alive {
		t.Errorf("bird still alive after crash")
	}
}

func TestTopBoundIsFatal(t *testing.T) {
	g, _ := newTestGame(1)
	g.Step(frame(core.ActionConfirm))

	// Park the bird at the ceiling moving upward; the next integration
	// step pushes its hitbox past the top of the world.
	g.sess.bird.Y = g.sess.bird.Height() / 2
	g.sess.bird.Vel = -500

	res := g.Step(frame())
	if res.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game over after leaving the top", res.Phase)
	}
	if !hasEvent(res.Events, EventHit) {
		t.Errorf("top exit events = %v, want hit", res.Events)
	}
	if hasEvent(res.Events, EventDie) {
		t.Errorf("top exit should not emit die, events = %v", res.Events)
	}
}

func TestPipeCollisionEndsGame(t *testing.T) {
	g, _ := newTestGame(1)
	g.Step(frame(core.ActionConfirm))

	// A pair directly on the bird with the gap far above it
	g.sess.pipes = append(g.sess.pipes, &PipePair{
		X:          g.sess.bird.X,
		GapCenterY: 100,
		GapHeight:  50,
		width:      140,
	})

	res := g.Step(frame())
	if res.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game over on pipe overlap", res.Phase)
	}
	if hasEvent(res.Events, EventDie) {
		t.Errorf("pipe hit should not emit die, events = %v", res.Events)
	}
}

func TestScoresOncePerPair(t *testing.T) {
	g, cfg := newTestGame(1)
	g.Step(frame(core.ActionConfirm))

	bird := g.sess.bird
	// A pair about to clear the bird, with a gap wide enough that the
	// bird cannot touch it while it passes.
	pair := &PipePair{
		X:          bird.X - cfg.Pipes.Width/2 + 1,
		GapCenterY: cfg.World.Height / 2,
		GapHeight:  900,
		width:      cfg.Pipes.Width,
	}
	g.sess.pipes = append(g.sess.pipes, pair)

	res := g.Step(frame())
	if res.Score != 1 {
		t.Fatalf("score after pass = %d, want 1", res.Score)
	}
	if !hasEvent(res.Events, EventPoint) {
		t.Errorf("pass did not emit point, events = %v", res.Events)
	}

	res = g.Step(frame(core.ActionFlap))
	if res.Score != 1 {
		t.Errorf("score after second tick = %d, pair scored twice", res.Score)
	}
}

func TestBestScorePersistsAcrossSessions(t *testing.T) {
	g, _ := newTestGame(1)
	g.Step(frame(core.ActionConfirm))

	g.sess.score = 5
	g.enterGameOver()
	if g.BestScore() != 5 {
		t.Fatalf("best after game over = %d, want 5", g.BestScore())
	}

	g.Step(frame(core.ActionRestart))
	if g.Phase() != PhaseMenu {
		t.Fatalf("restart did not return to menu, phase = %v", g.Phase())
	}
	g.Step(frame(core.ActionConfirm))

	g.sess.score = 2
	g.enterGameOver()
	if g.BestScore() != 5 {
		t.Errorf("lower score lowered best to %d", g.BestScore())
	}

	g.Step(frame(core.ActionRestart))
	g.Step(frame(core.ActionConfirm))
	g.sess.score = 9
	g.enterGameOver()
	if g.BestScore() != 9 {
		t.Errorf("higher score did not raise best, got %d", g.BestScore())
	}
}

func TestResetPreservesBestScore(t *testing.T) {
	g, _ := newTestGame(1)
	g.bestScore = 7

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2})
	if g.BestScore() != 7 {
		t.Errorf("reset cleared best score, got %d", g.BestScore())
	}
	if g.Phase() != PhaseMenu {
		t.Errorf("reset phase = %v, want menu", g.Phase())
	}
}

func TestForcedPresetSkipsMenu(t *testing.T) {
	cfg := config.Default()
	hard, err := cfg.Resolve("hard")
	if err != nil {
		t.Fatal(err)
	}

	g := New(&cfg)
	g.ForcePreset(hard)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	if g.Phase() != PhasePlaying {
		t.Fatalf("forced preset did not skip menu, phase = %v", g.Phase())
	}
	if g.sess.preset.Name != "hard" {
		t.Fatalf("forced session preset = %s, want hard", g.sess.preset.Name)
	}

	g.enterGameOver()
	res := g.Step(frame(core.ActionRestart))
	if res.Phase != PhasePlaying {
		t.Errorf("forced restart phase = %v, want playing", res.Phase)
	}
	if !hasEvent(res.Events, EventSwoosh) {
		t.Errorf("forced restart events = %v, want swoosh", res.Events)
	}
	if g.sess.preset.Name != "hard" {
		t.Errorf("forced restart preset = %s, want hard", g.sess.preset.Name)
	}
}

func TestForcedPresetFirstStepEmitsSwoosh(t *testing.T) {
	cfg := config.Default()
	g := New(&cfg)
	g.ForcePreset(cfg.DefaultPreset())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	// The session started inside Reset; its start event must surface on
	// the first tick, like it does on a forced restart.
	res := g.Step(frame())
	if !hasEvent(res.Events, EventSwoosh) {
		t.Errorf("first step after forced reset events = %v, want swoosh", res.Events)
	}

	res = g.Step(frame())
	if hasEvent(res.Events, EventSwoosh) {
		t.Errorf("swoosh delivered twice, events = %v", res.Events)
	}
}

func TestRestartReturnsToPlayedPreset(t *testing.T) {
	g, _ := newTestGame(1)

	g.Step(frame(core.ActionMenuDown)) // normal -> hard
	g.Step(frame(core.ActionConfirm))
	if g.sess.preset.Name != "hard" {
		t.Fatalf("selected preset = %s, want hard", g.sess.preset.Name)
	}

	g.enterGameOver()
	g.Step(frame(core.ActionRestart))

	snap := g.Snapshot()
	if snap.MenuOptions[snap.MenuCursor] != "hard" {
		t.Errorf("cursor after restart on %q, want hard", snap.MenuOptions[snap.MenuCursor])
	}
}

func TestGameOverBirdSettlesOnGround(t *testing.T) {
	g, cfg := newTestGame(1)
	g.Step(frame(core.ActionConfirm))
	g.enterGameOver()

	for i := 0; i < 600; i++ {
		g.Step(frame())
	}

	bird := g.sess.bird
	groundY := cfg.World.GroundY()
	if bottom := bird.Bounds().Bottom(); bottom > groundY+0.001 {
		t.Errorf("dead bird rests at %v, below ground %v", bottom, groundY)
	}
	if bird.Vel != 0 {
		t.Errorf("settled bird still has velocity %v", bird.Vel)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase drifted to %v", g.Phase())
	}
}

func TestGameOverFreezesPipes(t *testing.T) {
	g, _ := newTestGame(1)
	g.Step(frame(core.ActionConfirm))

	g.sess.pipes = append(g.sess.pipes, &PipePair{X: 700, GapCenterY: 500, GapHeight: 900, width: 140})
	g.enterGameOver()

	before := g.sess.pipes[0].X
	g.Step(frame())
	if g.sess.pipes[0].X != before {
		t.Errorf("pipes moved during game over: %v -> %v", before, g.sess.pipes[0].X)
	}
	if len(g.sess.pipes) != 1 {
		t.Errorf("pipes recycled during game over")
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() (Snapshot, StepResult) {
		g, _ := newTestGame(42)
		var last StepResult
		for i := 0; i < 900; i++ {
			f := frame()
			if i == 0 {
				f.Set(core.ActionConfirm)
			} else if i%20 == 0 {
				f.Set(core.ActionFlap)
			}
			last = g.Step(f)
		}
		return g.Snapshot(), last
	}

	snapA, resA := run()
	snapB, resB := run()

	if resA.Phase != resB.Phase || resA.Score != resB.Score {
		t.Fatalf("identical runs diverged: %+v vs %+v", resA, resB)
	}
	if snapA.Bird != snapB.Bird {
		t.Errorf("bird state diverged: %+v vs %+v", snapA.Bird, snapB.Bird)
	}
	if len(snapA.Pipes) != len(snapB.Pipes) {
		t.Fatalf("pipe counts diverged: %d vs %d", len(snapA.Pipes), len(snapB.Pipes))
	}
	for i := range snapA.Pipes {
		if snapA.Pipes[i] != snapB.Pipes[i] {
			t.Errorf("pipe %d diverged: %+v vs %+v", i, snapA.Pipes[i], snapB.Pipes[i])
		}
	}
}

func TestSnapshotDuringPlay(t *testing.T) {
	g, cfg := newTestGame(1)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionFlap))

	snap := g.Snapshot()
	if snap.Phase != PhasePlaying {
		t.Fatalf("snapshot phase = %v", snap.Phase)
	}
	if snap.PresetName != config.DefaultPresetName {
		t.Errorf("snapshot preset = %q", snap.PresetName)
	}
	if snap.WorldW != cfg.World.Width || snap.WorldH != cfg.World.Height {
		t.Errorf("snapshot world = %vx%v", snap.WorldW, snap.WorldH)
	}
	if snap.GroundY != cfg.World.GroundY() {
		t.Errorf("snapshot ground = %v, want %v", snap.GroundY, cfg.World.GroundY())
	}
	if !snap.Bird.Alive {
		t.Errorf("snapshot bird dead during play")
	}
	if len(snap.Layers) != len(cfg.Layers) {
		t.Errorf("snapshot has %d layers, want %d", len(snap.Layers), len(cfg.Layers))
	}
}
