package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/game"
)

type memoryRounds struct {
	scores []int
}

func (r *memoryRounds) RecordRound(score int) error {
	r.scores = append(r.scores, score)
	return nil
}

func newTestModel(t *testing.T, rounds RoundRecorder) Model {
	t.Helper()
	rt := core.DefaultConfig()
	rt.Seed = 42
	m, err := NewModel(Options{
		Runtime: rt,
		Game:    config.DefaultGameConfig(),
		Scores:  &game.MemoryScores{},
		Rounds:  rounds,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model, n int) Model {
	at := time.Unix(0, 0)
	for i := 0; i < n; i++ {
		at = at.Add(time.Second / 60)
		m = send(m, TickMsg(at))
	}
	return m
}

func TestModelStartsOnTitle(t *testing.T) {
	m := newTestModel(t, nil)
	m = tick(m, 1)

	if m.Session().State().Mode != game.ModeTapToPlay {
		t.Errorf("mode = %v", m.Session().State().Mode)
	}
	if !strings.Contains(m.View(), "GEOMETRY FIGHTER") {
		t.Error("title splash not rendered")
	}
}

func TestModelClickStartsRound(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(m, 1)

	if m.Session().State().Mode != game.ModePlaying {
		t.Fatalf("mode = %v after a click", m.Session().State().Mode)
	}

	// Two simulated seconds are enough for the first spawns
	m = tick(m, 120)
	if len(m.Session().Shapes()) == 0 {
		t.Error("no shapes spawned while playing")
	}
	if m.world.Len() != len(m.Session().Shapes()) {
		t.Errorf("bodies = %d, shapes = %d", m.world.Len(), len(m.Session().Shapes()))
	}
}

func TestModelSpaceTapsAtCursor(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(m, 1)

	if m.Session().State().Mode != game.ModePlaying {
		t.Errorf("mode = %v after space", m.Session().State().Mode)
	}
}

func TestModelFallenShapesAreCleared(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	// Every shape lands below the cleanup line within a few seconds of launch
	m = tick(m, 60*6)
	for _, obj := range m.Session().Shapes() {
		pos, ok := m.world.Position(obj.ID)
		if ok && pos.Y < -2 {
			t.Errorf("shape %d at y=%.2f was not swept", obj.ID, pos.Y)
		}
	}
}

func TestModelRecordsRoundOnce(t *testing.T) {
	rounds := &memoryRounds{}
	m := newTestModel(t, rounds)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m, 1)

	// Lose every life by resolving hazards directly
	for m.Session().State().Mode == game.ModePlaying {
		m = tick(m, 1)
		for _, obj := range m.Session().Shapes() {
			if obj.Tag != game.TagBad {
				continue
			}
			pos, ok := m.world.Position(obj.ID)
			if !ok {
				continue
			}
			p, on := m.view.ToScreen(pos)
			if !on || p.Y == 0 {
				continue
			}
			m = send(m, tea.MouseMsg{X: p.X, Y: p.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
			break
		}
		if m.now > 600 {
			t.Fatal("round never ended")
		}
	}

	m = tick(m, 10)
	if len(rounds.scores) != 1 {
		t.Errorf("rounds recorded = %v, expected exactly one", rounds.scores)
	}
}

func TestModelToggleStatsAndQuit(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = tick(m, 1)
	if !m.config.Stats {
		t.Error("f should enable stats")
	}
	if !strings.Contains(m.View(), "fps") {
		t.Error("stats line not rendered")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.view.Cols != 120 || m.view.Rows != 40 {
		t.Errorf("viewport = %dx%d", m.view.Cols, m.view.Rows)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelTickLeavesTrails(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	for i := 0; i < 600 && len(m.Session().Shapes()) == 0; i++ {
		m = tick(m, 1)
	}
	live := len(m.Session().Shapes())
	if live == 0 {
		t.Fatal("no shape spawned within ten seconds")
	}
	if m.scene.Particles() < live {
		t.Errorf("Particles() = %d, expected a trail mark for each of %d shapes", m.scene.Particles(), live)
	}
}
