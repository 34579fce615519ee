// Package capture rasterises a game snapshot to PNG without a window. It
// draws the same scene as the raylib renderer, minus the time-based pulse,
// so a capture depends only on the snapshot.
package capture

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"neon-snake/game"
	"neon-snake/ui/theme"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

const (
	hudPadding = 10
	// gameOverBlur is the sigma applied to the board behind the game-over text.
	gameOverBlur = 3.5
)

// Render draws snap into a new image of Grid*CellSize pixels.
func Render(snap game.Snapshot, th theme.Theme) image.Image {
	return render(snap, th).Image()
}

// Save writes snap as <session>-<tick>.png under dir and returns the path.
func Save(dir string, snap game.Snapshot, th theme.Theme) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create capture dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%06d.png", snap.SessionID, snap.Tick))
	if err := render(snap, th).SavePNG(path); err != nil {
		return "", fmt.Errorf("save capture: %w", err)
	}
	return path, nil
}

// SaveThumbnail writes a copy of snap scaled to width pixels, keeping the
// aspect ratio, as <session>-<tick>-thumb.png under dir.
func SaveThumbnail(dir string, snap game.Snapshot, th theme.Theme, width int) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("thumbnail width %d must be positive", width)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create capture dir: %w", err)
	}
	thumb := imaging.Resize(Render(snap, th), width, 0, imaging.Lanczos)
	path := filepath.Join(dir, fmt.Sprintf("%s-%06d-thumb.png", snap.SessionID, snap.Tick))
	if err := imaging.Save(thumb, path); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return path, nil
}

func render(snap game.Snapshot, th theme.Theme) *gg.Context {
	cs := snap.CellSize
	width, height := snap.Grid.Width*cs, snap.Grid.Height*cs
	dc := gg.NewContext(width, height)

	dc.SetColor(th.Background)
	dc.Clear()
	renderGrid(dc, width, height, cs, th.GridLine)

	drawTrail(dc, snap, th)
	drawSnake(dc, snap, th)
	drawFood(dc, snap, th)
	drawObstacles(dc, snap, th)
	drawPowerUps(dc, snap, th)
	drawParticles(dc, snap, th)
	drawHUD(dc, snap, th)

	if snap.Phase == game.PhaseGameOver {
		blurred := gg.NewContext(width, height)
		blurred.DrawImage(imaging.Blur(dc.Image(), gameOverBlur), 0, 0)
		drawGameOver(blurred, snap, th)
		return blurred
	}
	return dc
}

func renderGrid(dc *gg.Context, width, height, cs int, c color.Color) {
	dc.SetColor(c)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += cs {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += cs {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

func center(x, y, cs int) (float64, float64) {
	return float64(x*cs + cs/2), float64(y*cs + cs/2)
}

// drawGlow lays three translucent rings under an entity.
func drawGlow(dc *gg.Context, c color.RGBA, cx, cy float64, size int) {
	for i := 3; i > 0; i-- {
		dc.SetColor(theme.WithAlpha(c, float64(30*i)/255))
		dc.DrawCircle(cx, cy, float64(size*i/2))
		dc.Fill()
	}
}

func drawTrail(dc *gg.Context, snap game.Snapshot, th theme.Theme) {
	trail := snap.Snake.Trail
	cs := snap.CellSize
	for i, p := range trail {
		alpha := 50 * float64(i) / float64(len(trail)) / 255
		cx, cy := center(p.X, p.Y, cs)
		dc.SetColor(theme.WithAlpha(th.Snake, alpha))
		dc.DrawCircle(cx, cy, float64(cs/3))
		dc.Fill()
	}
}

func drawSnake(dc *gg.Context, snap game.Snapshot, th theme.Theme) {
	cs := snap.CellSize
	body := th.SnakeBody(snap.Snake.Invincible)
	for i, seg := range snap.Snake.Body {
		cx, cy := center(seg.X, seg.Y, cs)
		size := cs/2 - 2
		if i == 0 {
			drawGlow(dc, body, cx, cy, cs)
			size = cs / 2
		}
		dc.SetColor(body)
		dc.DrawCircle(cx, cy, float64(size))
		dc.Fill()
		dc.SetColor(theme.Highlight(body))
		dc.DrawCircle(cx, cy, float64(size/2))
		dc.Fill()
	}
}

func drawFood(dc *gg.Context, snap game.Snapshot, th theme.Theme) {
	cs := snap.CellSize
	cx, cy := center(snap.Food.X, snap.Food.Y, cs)
	drawGlow(dc, th.Food, cx, cy, cs)
	dc.SetColor(th.Food)
	dc.DrawCircle(cx, cy, float64(cs/2))
	dc.Fill()
	dc.SetColor(color.White)
	dc.DrawCircle(cx, cy, float64(cs/4))
	dc.Fill()
}

func drawObstacles(dc *gg.Context, snap game.Snapshot, th theme.Theme) {
	cs := snap.CellSize
	for _, o := range snap.Obstacles {
		cx, cy := center(o.Pos.X, o.Pos.Y, cs)
		drawGlow(dc, th.Obstacle, cx, cy, cs)
		dc.SetColor(th.Obstacle)
		dc.DrawRectangle(float64(o.Pos.X*cs+2), float64(o.Pos.Y*cs+2), float64(cs-4), float64(cs-4))
		dc.Fill()
	}
}

func drawPowerUps(dc *gg.Context, snap game.Snapshot, th theme.Theme) {
	cs := snap.CellSize
	for _, p := range snap.PowerUps {
		cx, cy := center(p.Pos.X, p.Pos.Y, cs)
		cy += float64(int(5 * math.Sin(p.Angle)))
		dc.SetColor(th.PowerUp(p.Type))
		dc.DrawCircle(cx, cy, float64(cs/3))
		dc.Fill()
		dc.SetColor(color.White)
		dc.DrawCircle(cx, cy, float64(cs/6))
		dc.Fill()
	}
}

func drawParticles(dc *gg.Context, snap game.Snapshot, th theme.Theme) {
	for _, p := range snap.Particles {
		dc.SetColor(th.Particle(p.Color))
		dc.DrawCircle(p.X, p.Y, float64(int(p.Size)))
		dc.Fill()
	}
}

func drawHUD(dc *gg.Context, snap game.Snapshot, th theme.Theme) {
	y := float64(hudPadding)
	line := func(s string, c color.Color) {
		dc.SetColor(c)
		dc.DrawStringAnchored(s, hudPadding, y, 0, 1)
		y += 20
	}
	line(fmt.Sprintf("Score: %d", snap.Score), th.Text)
	line(fmt.Sprintf("Level: %d", snap.Level), th.Text)
	line(fmt.Sprintf("High: %d", snap.HighScore), th.Text)
	if snap.Snake.SpeedBoost {
		line("SPEED BOOST", th.Speed)
	}
	if snap.Snake.Invincible {
		line("INVINCIBLE", th.Invincible)
	}
	if snap.Snake.Multiplier > 1 {
		line(fmt.Sprintf("x%d MULTIPLIER", snap.Snake.Multiplier), th.Multiplier)
	}
}

func drawGameOver(dc *gg.Context, snap game.Snapshot, th theme.Theme) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetRGBA255(0, 0, 0, 180)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()

	dc.SetColor(th.GameOver)
	dc.DrawStringAnchored("GAME OVER", w/2, h/3, 0.5, 0.5)
	dc.SetColor(th.Text)
	dc.DrawStringAnchored(fmt.Sprintf("Final Score: %d", snap.Score), w/2, h/2, 0.5, 0.5)
	dc.DrawStringAnchored("Press SPACE to restart or ESC to quit", w/2, h/2+60, 0.5, 0.5)
}
