package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"neon-snake/game"
	"neon-snake/logging"
	"neon-snake/stats"
	"neon-snake/ui"
	"neon-snake/ui/capture"
	"neon-snake/ui/theme"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	seed := flag.Uint64("seed", 0, "RNG seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "Write logs to logs/neon-snake.log")
	captureDir := flag.String("capture-dir", "", "Directory for PNG captures (F12, and every game over)")
	thumbWidth := flag.Int("thumb-width", 0, "Also write a thumbnail of this width with each capture")
	statsReport := flag.String("stats-report", "", "Write the session history as JSON to this path on exit")
	flag.Parse()

	logFile, err := logging.Setup(logging.DefaultDir, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := game.DefaultConfig()
	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting with seed %d", cfg.Seed)

	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot start game: %v\n", err)
		os.Exit(1)
	}

	width := int32(cfg.Grid.Width * cfg.CellSize)
	height := int32(cfg.Grid.Height * cfg.CellSize)
	rl.InitWindow(width, height, "Neon Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))
	// ESC is handled by the game-over screen, not by raylib.
	rl.SetExitKey(rl.KeyNull)

	th := theme.Default()
	history := stats.NewHistory()
	renderer := ui.NewRenderer(th, g.Snapshot())
	saver := captureSaver{dir: *captureDir, thumbWidth: *thumbWidth, theme: th}

	for {
		in := ui.ReadInput()
		if in.Close {
			break
		}

		if !step(g, in, history, saver) {
			break
		}

		snap := g.Snapshot()
		if in.Capture {
			saver.save(snap)
		}
		renderer.Draw(snap, ui.Summary{Games: history.GamesPlayed(), AverageScore: history.AverageScore()})
	}

	g.Quit()
	if *statsReport != "" {
		if err := history.WriteReport(*statsReport); err != nil {
			log.Printf("stats report: %v", err)
		}
	}
}

// step applies one frame of input to the game. It returns false when the
// run should end.
func step(g *game.Game, in ui.Input, history *stats.History, saver captureSaver) bool {
	switch g.Phase() {
	case game.PhaseActive:
		if in.HasDirection {
			if err := g.SubmitDirection(in.Direction); err != nil {
				log.Printf("direction rejected: %v", err)
			}
		}
		res, err := g.Tick()
		if err != nil {
			log.Printf("tick failed: %v", err)
			return false
		}
		if !res.Alive {
			snap := g.Snapshot()
			history.Add(stats.Session{
				ID:        snap.SessionID,
				StartTime: g.StartTime,
				EndTime:   time.Now(),
				Score:     snap.Score,
				Level:     snap.Level,
				Ticks:     snap.Tick,
				Cause:     res.Cause.String(),
			})
			if saver.dir != "" {
				saver.save(snap)
			}
		}

	case game.PhaseGameOver:
		if in.Quit {
			return false
		}
		if in.Restart {
			if err := g.Restart(); err != nil {
				log.Printf("restart failed: %v", err)
				return false
			}
		}

	case game.PhaseQuit:
		return false
	}
	return true
}

type captureSaver struct {
	dir        string
	thumbWidth int
	theme      theme.Theme
}

func (c captureSaver) save(snap game.Snapshot) {
	dir := c.dir
	if dir == "" {
		dir = "captures"
	}
	path, err := capture.Save(dir, snap, c.theme)
	if err != nil {
		log.Printf("capture: %v", err)
		return
	}
	log.Printf("capture written to %s", path)
	if c.thumbWidth > 0 {
		if _, err := capture.SaveThumbnail(dir, snap, c.theme, c.thumbWidth); err != nil {
			log.Printf("thumbnail: %v", err)
		}
	}
}
