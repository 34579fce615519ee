// Package logging routes the standard logger to a rotating file in debug
// mode and discards everything otherwise.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultDir = "logs"
	FileName   = "neon-snake.log"
	MaxSize    = 10 * 1024 * 1024
)

// Setup points the standard logger at dir/FileName when debug is set and
// returns the open file for the caller to close. With debug off output goes
// to io.Discard and the returned file is nil. A log larger than MaxSize is
// renamed with a timestamp suffix before a new one is opened.
func Setup(dir string, debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxSize {
		if err := os.Rename(path, rotatedName(path, time.Now())); err != nil {
			log.SetOutput(io.Discard)
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

func rotatedName(path string, now time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + now.Format("20060102-150405") + ext
}
