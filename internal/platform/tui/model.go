package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/game"
	"github.com/vovakirdan/fluppy/internal/storage"
)

// Model is the Bubble Tea model driving the game loop.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	lastResult game.StepResult
	quitting   bool
	scoreSaved bool // Whether the current run's score has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Reset(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionFlap)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The simulation runs in fixed world coordinates; a resize only
		// changes the projection, never the game state.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one simulation step and persists finished runs.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.lastResult = m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	switch m.lastResult.Phase {
	case game.PhaseGameOver:
		if !m.scoreSaved {
			if m.store != nil && m.lastResult.Score > 0 {
				//nolint:errcheck // Best-effort save, game continues regardless
				m.store.SaveScore(m.game.Snapshot().PresetName, m.lastResult.Score)
			}
			m.scoreSaved = true
		}
	default:
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Render(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err := p.Run()
	return err
}
