// Package theme holds the neon palette shared by the window renderer and
// the PNG capture. A Theme is a plain value; nothing in it is mutated at
// runtime.
package theme

import (
	"image/color"

	"neon-snake/game/entity"
)

type Theme struct {
	Background color.RGBA
	GridLine   color.RGBA
	Snake      color.RGBA
	SnakeGlow  color.RGBA
	Food       color.RGBA
	FoodGlow   color.RGBA
	Obstacle   color.RGBA
	Text       color.RGBA
	GameOver   color.RGBA

	Speed      color.RGBA
	Invincible color.RGBA
	Multiplier color.RGBA
	Shrink     color.RGBA
}

func Default() Theme {
	return Theme{
		Background: color.RGBA{R: 5, G: 5, B: 20, A: 255},
		GridLine:   color.RGBA{R: 20, G: 20, B: 40, A: 255},
		Snake:      color.RGBA{R: 0, G: 255, B: 200, A: 255},
		SnakeGlow:  color.RGBA{R: 0, G: 200, B: 150, A: 255},
		Food:       color.RGBA{R: 255, G: 50, B: 150, A: 255},
		FoodGlow:   color.RGBA{R: 200, G: 30, B: 120, A: 255},
		Obstacle:   color.RGBA{R: 255, G: 100, B: 0, A: 255},
		Text:       color.RGBA{R: 0, G: 255, B: 255, A: 255},
		GameOver:   color.RGBA{R: 255, G: 50, B: 50, A: 255},
		Speed:      color.RGBA{R: 100, G: 200, B: 255, A: 255},
		Invincible: color.RGBA{R: 255, G: 215, B: 0, A: 255},
		Multiplier: color.RGBA{R: 255, G: 100, B: 255, A: 255},
		Shrink:     color.RGBA{R: 150, G: 255, B: 150, A: 255},
	}
}

func (t Theme) PowerUp(pt entity.PowerUpType) color.RGBA {
	switch pt {
	case entity.PowerUpSpeed:
		return t.Speed
	case entity.PowerUpInvincible:
		return t.Invincible
	case entity.PowerUpMultiplier:
		return t.Multiplier
	case entity.PowerUpShrink:
		return t.Shrink
	}
	return t.Text
}

func (t Theme) Particle(pc entity.ParticleColor) color.RGBA {
	switch pc {
	case entity.ParticleSpeed:
		return t.Speed
	case entity.ParticleInvincible:
		return t.Invincible
	case entity.ParticleMultiplier:
		return t.Multiplier
	case entity.ParticleShrink:
		return t.Shrink
	}
	return t.Food
}

// SnakeBody is the body colour, gold while invincible.
func (t Theme) SnakeBody(invincible bool) color.RGBA {
	if invincible {
		return t.Invincible
	}
	return t.Snake
}

// Highlight brightens c by 50 per channel for inner highlights.
func Highlight(c color.RGBA) color.RGBA {
	return color.RGBA{R: brighten(c.R), G: brighten(c.G), B: brighten(c.B), A: c.A}
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a * 255)}
}

func brighten(v uint8) uint8 {
	if v > 205 {
		return 255
	}
	return v + 50
}
