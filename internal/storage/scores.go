package storage

// Scores binds a Store to one game id.
// It satisfies the session's best-score port and records round history.
type Scores struct {
	store  *Store
	gameID string
}

// NewScores returns a best-score adapter for gameID.
func NewScores(store *Store, gameID string) *Scores {
	return &Scores{store: store, gameID: gameID}
}

// LoadBestScore returns the persisted best score.
func (s *Scores) LoadBestScore() (int, error) {
	return s.store.BestScore(s.gameID)
}

// SaveBestScore persists best, never lowering a stored value.
func (s *Scores) SaveBestScore(best int) error {
	return s.store.SetBestScore(s.gameID, best)
}

// RecordRound appends a finished round to the history.
func (s *Scores) RecordRound(score int) error {
	_, err := s.store.SaveScore(s.gameID, score)
	return err
}
