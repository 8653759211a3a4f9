package tui

import (
	"math"
	"testing"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
)

func testViewport() *Viewport {
	cfg := config.WorldConfig{ViewMinX: -8, ViewMaxX: 8, ViewMinY: -2, ViewMaxY: 14}
	return NewViewport(cfg, 80, 32)
}

func TestViewportToScreen(t *testing.T) {
	v := testViewport()

	tests := []struct {
		name   string
		world  core.Vec3
		want   core.Point
		wantOK bool
	}{
		{"top left", core.Vec3{X: -8, Y: 14}, core.Point{X: 0, Y: 0}, true},
		{"origin", core.Vec3{X: 0, Y: 0}, core.Point{X: 40, Y: 28}, true},
		{"bottom right inside", core.Vec3{X: 7.99, Y: -1.99}, core.Point{X: 79, Y: 31}, true},
		{"below the screen", core.Vec3{X: 0, Y: -3}, core.Point{X: 40, Y: 34}, false},
		{"left of the screen", core.Vec3{X: -9, Y: 0}, core.Point{X: -5, Y: 28}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := v.ToScreen(tc.world)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ToScreen(%+v) = %+v, %v; expected %+v, %v", tc.world, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := testViewport()

	for _, p := range []core.Point{{X: 0, Y: 0}, {X: 40, Y: 16}, {X: 79, Y: 31}} {
		got, ok := v.ToScreen(v.ToWorld(p))
		if !ok || got != p {
			t.Errorf("ToScreen(ToWorld(%+v)) = %+v, %v", p, got, ok)
		}
	}
}

func TestViewportSpan(t *testing.T) {
	v := testViewport()

	cols, rows := v.Span(1, 1)
	if cols != 5 || rows != 2 {
		t.Errorf("Span(1, 1) = %d, %d; expected 5, 2", cols, rows)
	}
	cols, rows = v.Span(0.01, 0.01)
	if cols != 1 || rows != 1 {
		t.Errorf("tiny Span = %d, %d; expected at least one cell", cols, rows)
	}
}

func TestViewportResize(t *testing.T) {
	v := testViewport()
	v.Resize(0, -4)

	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("Resize(0, -4) gave %dx%d", v.Cols, v.Rows)
	}
	if math.IsInf(v.CellWidth(), 0) {
		t.Error("cell width should stay finite")
	}
}
