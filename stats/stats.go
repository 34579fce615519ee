// Package stats keeps the history of finished sessions for the current
// process. Old records are folded into summary groups so memory stays bounded
// no matter how many games are played.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// GroupSize is the number of records at one compression level folded into a
// single record at the next level.
const GroupSize = 100

// Record is a finished session or, when CompressionIndex > 0, a summary of
// GamesCount sessions.
type Record struct {
	SessionID        string    `json:"sessionId,omitempty"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	Score            int       `json:"score"`
	Level            int       `json:"level"`
	Ticks            int       `json:"ticks"`
	Cause            string    `json:"cause,omitempty"`
	CompressionIndex int       `json:"compressionIndex"`
	GamesCount       int       `json:"gamesCount"`
	AverageScore     float64   `json:"averageScore"`
	MedianScore      float64   `json:"medianScore"`
	MaxScore         int       `json:"maxScore"`
	MinScore         int       `json:"minScore"`
	AverageDuration  float64   `json:"averageDuration"`
}

// Session describes one finished game.
type Session struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Level     int
	Ticks     int
	Cause     string
}

type History struct {
	records []Record
}

func NewHistory() *History {
	return &History{records: make([]Record, 0)}
}

func (h *History) Add(s Session) {
	duration := s.EndTime.Sub(s.StartTime).Seconds()
	h.records = append(h.records, Record{
		SessionID:       s.ID,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Score:           s.Score,
		Level:           s.Level,
		Ticks:           s.Ticks,
		Cause:           s.Cause,
		GamesCount:      1,
		AverageScore:    float64(s.Score),
		MedianScore:     float64(s.Score),
		MaxScore:        s.Score,
		MinScore:        s.Score,
		AverageDuration: duration,
	})
	h.compress()
}

// compress folds every full run of GroupSize records sharing a compression
// level into one record at the next level, cascading upward.
func (h *History) compress() {
	sort.SliceStable(h.records, func(i, j int) bool {
		if h.records[i].CompressionIndex != h.records[j].CompressionIndex {
			return h.records[i].CompressionIndex > h.records[j].CompressionIndex
		}
		return h.records[i].StartTime.Before(h.records[j].StartTime)
	})

	for level := 0; ; level++ {
		var same, rest []Record
		for _, r := range h.records {
			if r.CompressionIndex == level {
				same = append(same, r)
			} else {
				rest = append(rest, r)
			}
		}
		// Higher levels only change when this one folds.
		if len(same) < GroupSize {
			return
		}

		full := len(same) / GroupSize * GroupSize
		for i := 0; i < full; i += GroupSize {
			rest = append(rest, fold(same[i:i+GroupSize], level+1))
		}
		h.records = append(rest, same[full:]...)
	}
}

func fold(group []Record, level int) Record {
	out := Record{
		StartTime:        group[0].StartTime,
		EndTime:          group[0].EndTime,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
	}
	var totalScore, totalDuration float64
	medians := make([]float64, 0, len(group))
	for _, r := range group {
		if r.MaxScore > out.MaxScore {
			out.MaxScore = r.MaxScore
		}
		if r.MinScore < out.MinScore {
			out.MinScore = r.MinScore
		}
		if r.StartTime.Before(out.StartTime) {
			out.StartTime = r.StartTime
		}
		if r.EndTime.After(out.EndTime) {
			out.EndTime = r.EndTime
		}
		if r.Level > out.Level {
			out.Level = r.Level
		}
		out.Ticks += r.Ticks
		out.GamesCount += r.GamesCount
		totalScore += r.AverageScore * float64(r.GamesCount)
		totalDuration += r.AverageDuration * float64(r.GamesCount)
		for i := 0; i < r.GamesCount; i++ {
			medians = append(medians, r.MedianScore)
		}
	}
	out.AverageScore = totalScore / float64(out.GamesCount)
	out.AverageDuration = totalDuration / float64(out.GamesCount)
	out.MedianScore = median(medians)
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	n := len(values)
	if n%2 == 0 {
		return (values[n/2-1] + values[n/2]) / 2
	}
	return values[n/2]
}

// Records returns a copy of the stored records, summaries first.
func (h *History) Records() []Record {
	return append([]Record(nil), h.records...)
}

func (h *History) GamesPlayed() int {
	total := 0
	for _, r := range h.records {
		total += r.GamesCount
	}
	return total
}

func (h *History) AverageScore() float64 {
	games := h.GamesPlayed()
	if games == 0 {
		return 0
	}
	var total float64
	for _, r := range h.records {
		total += r.AverageScore * float64(r.GamesCount)
	}
	return total / float64(games)
}

// MedianScore weights each record's median by its game count.
func (h *History) MedianScore() float64 {
	var values []float64
	for _, r := range h.records {
		for i := 0; i < r.GamesCount; i++ {
			values = append(values, r.MedianScore)
		}
	}
	return median(values)
}

func (h *History) MaxScore() int {
	best := 0
	for _, r := range h.records {
		if r.MaxScore > best {
			best = r.MaxScore
		}
	}
	return best
}

func (h *History) AverageDuration() float64 {
	games := h.GamesPlayed()
	if games == 0 {
		return 0
	}
	var total float64
	for _, r := range h.records {
		total += r.AverageDuration * float64(r.GamesCount)
	}
	return total / float64(games)
}

// WriteReport dumps the history as JSON. The report is output only; nothing
// reads it back on startup.
func (h *History) WriteReport(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	data, err := json.MarshalIndent(h.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}
