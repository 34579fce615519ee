package entity

import "neon-snake/game/types"

// Trail is a fixed-capacity ring of recent head positions. When full, the
// oldest position is overwritten.
type Trail struct {
	buf   []types.Point
	start int
	size  int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]types.Point, capacity)}
}

func (t *Trail) Push(p types.Point) {
	if t.size < len(t.buf) {
		t.buf[(t.start+t.size)%len(t.buf)] = p
		t.size++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % len(t.buf)
}

func (t *Trail) Len() int {
	return t.size
}

func (t *Trail) Cap() int {
	return len(t.buf)
}

func (t *Trail) Clear() {
	t.start = 0
	t.size = 0
}

// Points returns a copy of the trail, oldest first.
func (t *Trail) Points() []types.Point {
	out := make([]types.Point, t.size)
	for i := 0; i < t.size; i++ {
		out[i] = t.buf[(t.start+i)%len(t.buf)]
	}
	return out
}
