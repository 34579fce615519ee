package ui

import (
	"fmt"
	"image/color"
	"math"

	"neon-snake/game"
	"neon-snake/ui/theme"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudPadding   = 10
	hudFontSize  = 20
	hudLineSpace = 24
	titleFont    = 40
)

// Summary is the process-wide session history shown on the game-over screen.
type Summary struct {
	Games        int
	AverageScore float64
}

// Renderer draws snapshots into the raylib window. It keeps no game state.
type Renderer struct {
	theme    theme.Theme
	cellSize int32
	width    int32
	height   int32
}

func NewRenderer(th theme.Theme, snap game.Snapshot) *Renderer {
	r := &Renderer{theme: th}
	r.UpdateDimensions(snap)
	return r
}

// UpdateDimensions sizes the board from the snapshot grid.
func (r *Renderer) UpdateDimensions(snap game.Snapshot) {
	r.cellSize = int32(snap.CellSize)
	r.width = int32(snap.Grid.Width) * r.cellSize
	r.height = int32(snap.Grid.Height) * r.cellSize
}

func (r *Renderer) Draw(snap game.Snapshot, sum Summary) {
	rl.BeginDrawing()
	rl.ClearBackground(r.theme.Background)

	r.drawGrid()
	r.drawTrail(snap)
	r.drawSnake(snap)
	r.drawFood(snap)
	r.drawObstacles(snap)
	r.drawPowerUps(snap)
	r.drawParticles(snap)
	r.drawHUD(snap)

	if snap.Phase == game.PhaseGameOver {
		r.drawGameOver(snap, sum)
	}
	rl.EndDrawing()
}

func (r *Renderer) drawGrid() {
	for x := int32(0); x <= r.width; x += r.cellSize {
		rl.DrawLine(x, 0, x, r.height, r.theme.GridLine)
	}
	for y := int32(0); y <= r.height; y += r.cellSize {
		rl.DrawLine(0, y, r.width, y, r.theme.GridLine)
	}
}

func (r *Renderer) center(x, y int) (int32, int32) {
	return int32(x)*r.cellSize + r.cellSize/2, int32(y)*r.cellSize + r.cellSize/2
}

func (r *Renderer) drawGlow(c color.RGBA, x, y int32) {
	for i := int32(3); i > 0; i-- {
		rl.DrawCircle(x, y, float32(r.cellSize*i/2), rl.Fade(c, float32(30*i)/255))
	}
}

func (r *Renderer) drawTrail(snap game.Snapshot) {
	trail := snap.Snake.Trail
	for i, p := range trail {
		x, y := r.center(p.X, p.Y)
		alpha := 50 * float32(i) / float32(len(trail)) / 255
		rl.DrawCircle(x, y, float32(r.cellSize/3), rl.Fade(r.theme.Snake, alpha))
	}
}

func (r *Renderer) drawSnake(snap game.Snapshot) {
	body := r.theme.SnakeBody(snap.Snake.Invincible)
	for i, seg := range snap.Snake.Body {
		x, y := r.center(seg.X, seg.Y)
		size := r.cellSize/2 - 2
		if i == 0 {
			r.drawGlow(body, x, y)
			size = r.cellSize / 2
		}
		rl.DrawCircle(x, y, float32(size), body)
		rl.DrawCircle(x, y, float32(size/2), theme.Highlight(body))
	}
}

func (r *Renderer) drawFood(snap game.Snapshot) {
	x, y := r.center(snap.Food.X, snap.Food.Y)
	r.drawGlow(r.theme.Food, x, y)
	rl.DrawCircle(x, y, float32(r.cellSize/2), r.theme.Food)
	pulse := int32(5 * math.Sin(rl.GetTime()*10))
	rl.DrawCircle(x, y, float32(r.cellSize/4+pulse), rl.White)
}

func (r *Renderer) drawObstacles(snap game.Snapshot) {
	for _, o := range snap.Obstacles {
		x, y := r.center(o.Pos.X, o.Pos.Y)
		r.drawGlow(r.theme.Obstacle, x, y)
		rl.DrawRectangle(int32(o.Pos.X)*r.cellSize+2, int32(o.Pos.Y)*r.cellSize+2,
			r.cellSize-4, r.cellSize-4, r.theme.Obstacle)
	}
}

func (r *Renderer) drawPowerUps(snap game.Snapshot) {
	for _, p := range snap.PowerUps {
		x, y := r.center(p.Pos.X, p.Pos.Y)
		y += int32(5 * math.Sin(p.Angle))
		rl.DrawCircle(x, y, float32(r.cellSize/3), r.theme.PowerUp(p.Type))
		rl.DrawCircle(x, y, float32(r.cellSize/6), rl.White)
	}
}

func (r *Renderer) drawParticles(snap game.Snapshot) {
	for _, p := range snap.Particles {
		rl.DrawCircle(int32(p.X), int32(p.Y), float32(int(p.Size)), r.theme.Particle(p.Color))
	}
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	y := int32(hudPadding)
	line := func(text string, c color.RGBA) {
		rl.DrawText(text, hudPadding, y, hudFontSize, c)
		y += hudLineSpace
	}
	line(fmt.Sprintf("Score: %d", snap.Score), r.theme.Text)
	line(fmt.Sprintf("Level: %d", snap.Level), r.theme.Text)
	line(fmt.Sprintf("High: %d", snap.HighScore), r.theme.Text)

	if snap.Snake.SpeedBoost {
		line("SPEED BOOST", r.theme.Speed)
	}
	if snap.Snake.Invincible {
		line("INVINCIBLE", r.theme.Invincible)
	}
	if snap.Snake.Multiplier > 1 {
		line(fmt.Sprintf("x%d MULTIPLIER", snap.Snake.Multiplier), r.theme.Multiplier)
	}
}

func (r *Renderer) drawGameOver(snap game.Snapshot, sum Summary) {
	rl.DrawRectangle(0, 0, r.width, r.height, rl.Fade(rl.Black, 180.0/255))
	r.drawCentered("GAME OVER", r.height/3, titleFont, r.theme.GameOver)
	r.drawCentered(fmt.Sprintf("Final Score: %d", snap.Score), r.height/2, titleFont, r.theme.Text)
	r.drawCentered("Press SPACE to restart or ESC to quit", r.height/2+60, hudFontSize, r.theme.Text)
	if sum.Games > 0 {
		r.drawCentered(fmt.Sprintf("Games: %d  Avg: %.1f", sum.Games, sum.AverageScore),
			r.height/2+100, hudFontSize, r.theme.Text)
	}
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, c color.RGBA) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.width-w)/2, y, fontSize, c)
}
