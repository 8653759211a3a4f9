package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestGdata(t *testing.T, name string) *GdataStore {
	t.Helper()
	appName := fmt.Sprintf("geofighter_test_%s_%d", name, time.Now().UnixNano())
	g, err := OpenGdata(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return g
}

func TestGdataBestScoreRoundTrip(t *testing.T) {
	g := openTestGdata(t, "roundtrip")

	best, err := g.LoadBestScore()
	if err != nil || best != 0 {
		t.Fatalf("LoadBestScore() on empty store = %d, %v", best, err)
	}

	if err := g.SaveBestScore(42); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	best, err = g.LoadBestScore()
	if err != nil || best != 42 {
		t.Errorf("LoadBestScore() = %d, %v; expected 42", best, err)
	}

	if err := g.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	best, _ = g.LoadBestScore()
	if best != 0 {
		t.Errorf("best after Reset() = %d", best)
	}
}

func TestGdataMalformedValueReadsZero(t *testing.T) {
	g := openTestGdata(t, "malformed")

	if err := g.m.SaveObjectProp(gdataObject, gdataBestProp, []byte("not a number")); err != nil {
		t.Fatalf("SaveObjectProp() failed: %v", err)
	}
	best, err := g.LoadBestScore()
	if err != nil || best != 0 {
		t.Errorf("LoadBestScore() = %d, %v; expected 0", best, err)
	}

	if err := g.SaveBestScore(-3); err == nil {
		t.Error("SaveBestScore(-3) should fail")
	}
}
