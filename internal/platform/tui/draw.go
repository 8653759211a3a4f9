package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/geometry-fighter/internal/core"
	"github.com/vovakirdan/geometry-fighter/internal/game"
)

// Bodies reports where simulated shapes are.
type Bodies interface {
	Position(id game.ObjectID) (core.Vec3, bool)
	Rotation(id game.ObjectID) (core.Rotation, bool)
}

// Stats is the optional debug line.
type Stats struct {
	FPS     float64
	Objects int
	Bodies  int
}

// Draw renders shapes, particles and the overlay into the screen buffer.
func Draw(scr *core.Screen, view *Viewport, scene *Scene, bodies Bodies, shapes []game.GameObject, stats *Stats) {
	scr.Clear()

	// Particles go first so a shape covers the trail mark under it.
	for _, p := range scene.particles {
		if pt, ok := view.ToScreen(p.pos); ok {
			scr.Set(pt.X, pt.Y, p.glyph, p.color)
		}
	}

	for _, obj := range shapes {
		pos, ok := bodies.Position(obj.ID)
		if !ok {
			continue
		}
		rot, _ := bodies.Rotation(obj.ID)
		drawShape(scr, view, obj, pos, rot)
	}

	drawHUD(scr, scene.HUD(), stats)
	drawSplash(scr, scene.Splash(), scene.HUD())
}

// drawShape fills the shape's footprint with its glyph. Long shapes lying
// on their side swap their footprint.
func drawShape(scr *core.Screen, view *Viewport, obj game.GameObject, pos core.Vec3, rot core.Rotation) {
	size := obj.Kind.Dimensions()
	w, h := size.Width, size.Height
	if !obj.Kind.Round() && sideways(rot.Angle) {
		w, h = h, w
	}
	cols, rows := view.Span(w, h)

	center, _ := view.ToScreen(pos)
	left := center.X - cols/2
	top := center.Y - rows/2
	glyph := obj.Kind.Glyph()
	for y := top; y < top+rows; y++ {
		for x := left; x < left+cols; x++ {
			scr.Set(x, y, glyph, obj.Color)
		}
	}
}

// sideways reports whether angle is closer to horizontal than vertical.
func sideways(angle float64) bool {
	a := math.Mod(math.Abs(angle), math.Pi)
	return a > math.Pi/4 && a < 3*math.Pi/4
}

func drawHUD(scr *core.Screen, hud game.HUD, stats *Stats) {
	scr.DrawRect(hudRect(scr.Width()), ' ', core.ColorDefault)
	scr.DrawText(1, 0, fmt.Sprintf("Score: %d | Lives: %d | Best: %d", hud.Score, hud.Lives, hud.Best), core.ColorBrightWhite)

	if stats != nil {
		line := fmt.Sprintf("%.0f fps  %d shapes  %d bodies", stats.FPS, stats.Objects, stats.Bodies)
		scr.DrawText(scr.Width()-len(line)-1, 0, line, core.ColorGray)
	}
}

func drawSplash(scr *core.Screen, sp game.Splash, hud game.HUD) {
	var title, line, hint string
	var color core.Color
	switch sp {
	case game.SplashTapToPlay:
		title, line, hint = "GEOMETRY FIGHTER", "tap the colors, dodge the black", "click or press space to play"
		color = core.ColorBrightCyan
	case game.SplashGameOver:
		title, line, hint = "GAME OVER", fmt.Sprintf("score %d  best %d", hud.Score, hud.Best), "get ready..."
		color = core.ColorBrightRed
	default:
		return
	}

	r := splashRect(scr.Width(), scr.Height())
	scr.DrawRect(r, ' ', core.ColorDefault)
	scr.DrawBox(r, color)
	mid := r.Y + r.H/2
	scr.DrawTextCentered(mid-1, title, color)
	scr.DrawTextCentered(mid, line, core.ColorWhite)
	scr.DrawTextCentered(mid+1, hint, core.ColorGray)
}
