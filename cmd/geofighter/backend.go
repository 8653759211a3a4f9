package main

import (
	"fmt"

	"github.com/vovakirdan/geometry-fighter/internal/game"
	"github.com/vovakirdan/geometry-fighter/internal/platform/tui"
	"github.com/vovakirdan/geometry-fighter/internal/storage"
)

const (
	storeSQLite = "sqlite"
	storeGdata  = "gdata"
)

// scoreBackend is the persistence picked by --store.
type scoreBackend struct {
	best   game.ScoreStore
	rounds tui.RoundRecorder // nil when the backend keeps no history
	sqlite *storage.Store
	gdata  *storage.GdataStore
}

func openBackend() (*scoreBackend, error) {
	switch flagStore {
	case storeSQLite:
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return nil, err
		}
		scores := storage.NewScores(store, storage.GameID)
		return &scoreBackend{best: scores, rounds: scores, sqlite: store}, nil
	case storeGdata:
		g, err := storage.OpenGdata(appName)
		if err != nil {
			return nil, err
		}
		return &scoreBackend{best: g, gdata: g}, nil
	default:
		return nil, fmt.Errorf("unknown --store %q (want %s or %s)", flagStore, storeSQLite, storeGdata)
	}
}

func (b *scoreBackend) Close() error {
	if b.sqlite != nil {
		return b.sqlite.Close()
	}
	return nil
}

// reset forgets every stored score in the backend.
func (b *scoreBackend) reset() error {
	if b.sqlite != nil {
		return b.sqlite.ClearScores(storage.GameID)
	}
	return b.gdata.Reset()
}
