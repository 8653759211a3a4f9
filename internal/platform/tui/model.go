package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/game"
	"github.com/vovakirdan/geometry-fighter/internal/physics"
)

// RoundRecorder keeps the history of finished rounds.
type RoundRecorder interface {
	RecordRound(score int) error
}

// Options wires the collaborators the play screen needs.
type Options struct {
	Runtime core.RuntimeConfig
	Game    config.GameConfig
	Scores  game.ScoreStore // nil keeps the best score in memory
	Rounds  RoundRecorder   // nil skips round history
	Audio   game.Audio      // nil plays nothing
	Logger  *log.Logger
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session  *game.Session
	world    *physics.World
	scene    *Scene
	view     *Viewport
	screen   *core.Screen
	keys     *KeyMapper
	rounds   RoundRecorder
	logger   *log.Logger
	config   core.RuntimeConfig
	input    *core.InputFrame
	cursor   core.Point
	now      float64
	lastTick time.Time
	fps      float64
	quitting bool
}

// NewModel builds the physics world, scene and session for a play screen.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := physics.NewWorld(opts.Game.World)
	scene := NewScene(cfg.Seed)
	view := NewViewport(opts.Game.World, cfg.ScreenW, cfg.ScreenH)
	hits := NewHitTester(scene, view, world, opts.Game.World.HitRadius)

	session, err := game.NewSession(opts.Game, cfg.Seed, game.Deps{
		Physics:   world,
		Hits:      hits,
		Audio:     opts.Audio,
		Presenter: scene,
		Scores:    opts.Scores,
		Logger:    logger,
	})
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	hudID, err := session.AddFixture(game.TagHUD)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	splashID, err := session.AddFixture(game.TagSplash)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	hits.SetFixtures(hudID, splashID)

	input := core.NewInputFrame()
	return Model{
		session: session,
		world:   world,
		scene:   scene,
		view:    view,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(),
		rounds:  opts.Rounds,
		logger:  logger,
		config:  cfg,
		input:   &input,
		cursor:  core.Point{X: cfg.ScreenW / 2, Y: cfg.ScreenH / 2},
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, m.cursor, m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse tracks the cursor and queues clicks as taps.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.cursor = core.Point{X: msg.X, Y: msg.Y}
	if p, ok := m.keys.MapMouse(msg); ok {
		m.input.Tap(p)
	}
	return m, nil
}

// handleResize processes window resize events.
// The world is resolution independent, so only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.view.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick applies queued taps, then advances physics, the session and
// the scene effects.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	dt := 1 / float64(m.config.TickRate)

	if !m.lastTick.IsZero() {
		if elapsed := at.Sub(m.lastTick).Seconds(); elapsed > 0 {
			m.fps = 0.9*m.fps + 0.1/elapsed
		}
	}
	m.lastTick = at

	if m.input.Has(core.ActionStats) {
		m.config.Stats = !m.config.Stats
	}

	for _, p := range m.input.Taps {
		eff := m.session.Tap(p)
		if eff.GameOver {
			m.recordRound()
		}
	}
	m.input.Clear()

	m.now += dt
	m.world.Step(dt)
	m.session.Update(m.now)
	m.scene.Advance(dt)
	m.scene.Trail(m.session.Shapes(), m.world)

	return m, tickCmd(m.config.TickRate)
}

// recordRound appends the finished round to the history once per game over.
func (m *Model) recordRound() {
	if m.rounds == nil {
		return
	}
	score := m.session.State().Score
	if err := m.rounds.RecordRound(score); err != nil {
		m.logger.Warn("cannot record round", "score", score, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var stats *Stats
	if m.config.Stats {
		stats = &Stats{FPS: m.fps, Objects: len(m.session.Shapes()), Bodies: m.world.Len()}
	}
	Draw(m.screen, m.view, m.scene, m.world, m.session.Shapes(), stats)

	return RenderScreen(m.screen, m.scene.ShakeOffset())
}

// Session exposes the running session.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program for a play session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are taps
	)

	_, err = p.Run()
	return err
}
