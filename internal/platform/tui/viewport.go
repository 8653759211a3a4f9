package tui

import (
	"math"

	"github.com/vovakirdan/geometry-fighter/internal/config"
	"github.com/vovakirdan/geometry-fighter/internal/core"
)

// Viewport maps the visible world rectangle onto the terminal grid.
// World Y grows upward, screen rows grow downward.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Cols, Rows int
}

// NewViewport creates a viewport for the world bounds and screen size.
func NewViewport(cfg config.WorldConfig, cols, rows int) *Viewport {
	v := &Viewport{MinX: cfg.ViewMinX, MaxX: cfg.ViewMaxX, MinY: cfg.ViewMinY, MaxY: cfg.ViewMaxY}
	v.Resize(cols, rows)
	return v
}

// Resize updates the screen size, keeping at least one cell.
func (v *Viewport) Resize(cols, rows int) {
	v.Cols = max(cols, 1)
	v.Rows = max(rows, 1)
}

// CellWidth returns the world width of one column.
func (v *Viewport) CellWidth() float64 {
	return (v.MaxX - v.MinX) / float64(v.Cols)
}

// CellHeight returns the world height of one row.
func (v *Viewport) CellHeight() float64 {
	return (v.MaxY - v.MinY) / float64(v.Rows)
}

// ToScreen projects a world position to a cell.
// The bool is false when the position is outside the screen.
func (v *Viewport) ToScreen(p core.Vec3) (core.Point, bool) {
	col := int(math.Floor((p.X - v.MinX) / v.CellWidth()))
	row := int(math.Floor((v.MaxY - p.Y) / v.CellHeight()))
	pt := core.Point{X: col, Y: row}
	return pt, col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// ToWorld returns the world position at the center of a cell.
func (v *Viewport) ToWorld(p core.Point) core.Vec3 {
	return core.Vec3{
		X: v.MinX + (float64(p.X)+0.5)*v.CellWidth(),
		Y: v.MaxY - (float64(p.Y)+0.5)*v.CellHeight(),
	}
}

// Span returns how many columns and rows a world-sized box covers.
func (v *Viewport) Span(w, h float64) (cols, rows int) {
	cols = max(int(math.Round(w/v.CellWidth())), 1)
	rows = max(int(math.Round(h/v.CellHeight())), 1)
	return cols, rows
}
