package game

import (
	"errors"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
)

// Deps are the collaborators a session drives.
// Physics and Hits are required; the rest default to no-ops.
type Deps struct {
	Physics   Physics
	Hits      HitTester
	Audio     Audio
	Presenter Presenter
	Scores    ScoreStore
	Logger    *log.Logger
}

// Session owns the state of one player's game: the mode machine, the
// spawn timer and the set of live scene entries. It is driven by Update
// once per frame and by Tap for input, and is not safe for concurrent use.
type Session struct {
	cfg     config.GameConfig
	state   State
	timer   SpawnTimer
	spawner *Spawner
	objects map[ObjectID]*GameObject
	lastID  ObjectID
	now     float64

	physics   Physics
	hits      HitTester
	audio     Audio
	presenter Presenter
	scores    ScoreStore
	logger    *log.Logger
}

// NewSession creates a session on the title screen. The best score is
// loaded from deps.Scores; a failed or negative load starts from zero.
func NewSession(cfg config.GameConfig, seed int64, deps Deps) (*Session, error) {
	if deps.Physics == nil {
		return nil, errors.New("game: physics is required")
	}
	if deps.Hits == nil {
		return nil, errors.New("game: hit tester is required")
	}

	spawner, err := NewSpawner(cfg.Spawn, seed)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:       cfg,
		spawner:   spawner,
		objects:   make(map[ObjectID]*GameObject),
		physics:   deps.Physics,
		hits:      deps.Hits,
		audio:     deps.Audio,
		presenter: deps.Presenter,
		scores:    deps.Scores,
		logger:    deps.Logger,
	}
	if s.audio == nil {
		s.audio = nopAudio{}
	}
	if s.presenter == nil {
		s.presenter = nopPresenter{}
	}
	if s.scores == nil {
		s.scores = &MemoryScores{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.state = NewState(s.loadBest())
	s.presenter.ShowSplash(SplashTapToPlay)
	s.presenter.UpdateHUD(s.state.HUD())
	return s, nil
}

func (s *Session) loadBest() int {
	best, err := s.scores.LoadBestScore()
	if err != nil {
		s.logger.Warn("could not load best score, starting from zero", "error", err)
		return 0
	}
	if best < 0 {
		s.logger.Warn("ignoring negative best score", "best", best)
		return 0
	}
	return best
}

// AddFixture registers a HUD or splash entry so the hit tester can report
// taps on it. Spawnable tags are rejected.
func (s *Session) AddFixture(tag Tag) (ObjectID, error) {
	if tag.Spawned() {
		return 0, errors.New("game: fixtures must be HUD or splash entries")
	}
	id := s.nextID()
	s.objects[id] = &GameObject{ID: id, Tag: tag, Alive: true}
	return id, nil
}

// Tap handles a player tap at a screen cell against the current mode.
func (s *Session) Tap(p core.Point) Effect {
	switch s.state.Mode {
	case ModeTapToPlay:
		s.start()
		return Effect{Outcome: OutcomeStart}
	case ModePlaying:
		id, ok := s.hits.HitTest(p)
		return s.ResolveTap(id, ok)
	default:
		// GameOver ignores input until the delay runs out
		return Effect{}
	}
}

// Update runs one frame at time now (seconds): spawning and sweeping while
// playing, the game over countdown otherwise, then a HUD refresh.
func (s *Session) Update(now float64) {
	s.now = now

	switch s.state.Mode {
	case ModePlaying:
		if obj, ok := s.spawner.TrySpawn(now, &s.timer); ok {
			s.spawn(obj)
		}
		s.sweep()
	case ModeGameOver:
		if s.state.DelayElapsed(now) {
			s.state.ReturnToTitle()
			s.presenter.ShowSplash(SplashTapToPlay)
			s.logger.Info("mode changed", "mode", s.state.Mode)
		}
	}

	s.presenter.UpdateHUD(s.state.HUD())
}

// State returns a copy of the scoring and mode state.
func (s *Session) State() State {
	return s.state
}

// Object looks up a scene entry by id.
func (s *Session) Object(id ObjectID) (GameObject, bool) {
	obj, ok := s.objects[id]
	if !ok {
		return GameObject{}, false
	}
	return *obj, true
}

// Shapes returns the live spawned shapes in id order.
func (s *Session) Shapes() []GameObject {
	shapes := make([]GameObject, 0, len(s.objects))
	for _, obj := range s.objects {
		if obj.Alive && obj.Tag.Spawned() {
			shapes = append(shapes, *obj)
		}
	}
	slices.SortFunc(shapes, func(a, b GameObject) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return shapes
}

func (s *Session) nextID() ObjectID {
	s.lastID++
	return s.lastID
}

// start resets scoring, clears the shapes of the previous round and
// enters Playing.
func (s *Session) start() {
	for id, obj := range s.objects {
		if obj.Tag.Spawned() {
			s.remove(id)
		}
	}
	s.state.Start(s.cfg.Rules.StartLives)
	s.timer.Next = s.now
	s.presenter.ShowSplash(SplashNone)
	s.presenter.UpdateHUD(s.state.HUD())
	s.logger.Info("mode changed", "mode", s.state.Mode, "lives", s.state.Lives)
}

// spawn adds a rolled shape to the scene and launches it.
func (s *Session) spawn(obj GameObject) {
	obj.ID = s.nextID()
	s.objects[obj.ID] = &obj

	s.physics.AddBody(obj.ID, obj.Kind, core.Vec3{})
	s.physics.ApplyImpulse(obj.ID, obj.Impulse, obj.ImpulseAt)

	if obj.Tag == TagBad {
		s.audio.Play(SoundSpawnBad)
	} else {
		s.audio.Play(SoundSpawnGood)
	}

	s.logger.Debug("spawned",
		"id", obj.ID,
		"kind", obj.Kind,
		"tag", obj.Tag,
		"next", s.timer.Next,
	)
}

// sweep removes shapes that fell below the cleanup height.
func (s *Session) sweep() []ObjectID {
	fallen := Sweep(s.objects, s.physics.Position, s.cfg.Rules.CleanupY)
	for _, id := range fallen {
		s.remove(id)
	}
	if len(fallen) > 0 {
		s.logger.Debug("swept", "count", len(fallen))
	}
	return fallen
}

// remove deletes an entry and its body. Removing twice is a no-op.
func (s *Session) remove(id ObjectID) {
	obj, ok := s.objects[id]
	if !ok {
		return
	}
	obj.Alive = false
	delete(s.objects, id)
	if obj.Tag.Spawned() {
		s.physics.RemoveBody(id)
	}
}

// endRound moves to GameOver and persists the best score.
func (s *Session) endRound() {
	prevBest := s.state.Best
	if !s.state.End(s.now, s.cfg.Rules.GameOverDelay) {
		return
	}

	if err := s.scores.SaveBestScore(s.state.Best); err != nil {
		s.logger.Warn("could not save best score", "best", s.state.Best, "error", err)
	}

	s.audio.Play(SoundGameOver)
	s.presenter.ShowSplash(SplashGameOver)
	s.logger.Info("mode changed",
		"mode", s.state.Mode,
		"score", s.state.Score,
		"best", s.state.Best,
		"new_best", s.state.Best > prevBest,
	)
}
