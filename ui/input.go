package ui

import (
	"neon-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is the player's intent for one frame.
type Input struct {
	Direction    types.Point
	HasDirection bool
	Restart      bool
	Quit         bool // ESC
	Close        bool // window closed
	Capture      bool
}

var directionKeys = []struct {
	key int32
	dir types.Point
}{
	{rl.KeyUp, types.Up},
	{rl.KeyW, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyS, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyA, types.Left},
	{rl.KeyRight, types.Right},
	{rl.KeyD, types.Right},
}

// ReadInput polls the keys pressed since the last frame. When several
// direction keys land in the same frame the last one in table order wins.
func ReadInput() Input {
	var in Input
	for _, k := range directionKeys {
		if rl.IsKeyPressed(k.key) {
			in.Direction = k.dir
			in.HasDirection = true
		}
	}
	in.Restart = rl.IsKeyPressed(rl.KeySpace)
	in.Quit = rl.IsKeyPressed(rl.KeyEscape)
	in.Close = rl.WindowShouldClose()
	in.Capture = rl.IsKeyPressed(rl.KeyF12)
	return in
}
