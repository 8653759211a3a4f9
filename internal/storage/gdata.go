package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

const (
	gdataObject   = "scores"
	gdataBestProp = "best"
)

// GdataStore keeps only the best score in the platform's app data directory.
// It has no round history.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the data directory for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// LoadBestScore returns the stored best. Missing or malformed values read as 0.
func (g *GdataStore) LoadBestScore() (int, error) {
	if !g.m.ObjectPropExists(gdataObject, gdataBestProp) {
		return 0, nil
	}
	data, err := g.m.LoadObjectProp(gdataObject, gdataBestProp)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	best, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || best < 0 {
		return 0, nil
	}
	return best, nil
}

// SaveBestScore overwrites the stored best.
func (g *GdataStore) SaveBestScore(best int) error {
	if best < 0 {
		return fmt.Errorf("storage: negative best score %d", best)
	}
	if err := g.m.SaveObjectProp(gdataObject, gdataBestProp, []byte(strconv.Itoa(best))); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Reset sets the stored best back to zero.
func (g *GdataStore) Reset() error {
	if !g.m.ObjectPropExists(gdataObject, gdataBestProp) {
		return nil
	}
	return g.SaveBestScore(0)
}
