package app

import "time"

const (
	frameWindow    = time.Second
	maxFrameSample = 300
)

// FrameStats summarises the recent dispatch cycles.
type FrameStats struct {
	FPS       float64
	FrameTime time.Duration
}

// FrameHistory keeps the start and cost of the frames seen in the last
// second.
type FrameHistory struct {
	starts []time.Time
	costs  []time.Duration
}

// Record adds a frame that started at start and took cost.
func (h *FrameHistory) Record(start time.Time, cost time.Duration) {
	h.starts = append(h.starts, start)
	h.costs = append(h.costs, cost)

	drop := 0
	for drop < len(h.starts)-1 && (start.Sub(h.starts[drop]) > frameWindow || len(h.starts)-drop > maxFrameSample) {
		drop++
	}
	if drop > 0 {
		h.starts = append(h.starts[:0], h.starts[drop:]...)
		h.costs = append(h.costs[:0], h.costs[drop:]...)
	}
}

// Stats returns the frame rate over the window and the mean frame cost.
// The rate needs two frames at different instants.
func (h *FrameHistory) Stats() FrameStats {
	var st FrameStats
	n := len(h.costs)
	if n == 0 {
		return st
	}
	var total time.Duration
	for _, c := range h.costs {
		total += c
	}
	st.FrameTime = total / time.Duration(n)
	if span := h.starts[n-1].Sub(h.starts[0]); n > 1 && span > 0 {
		st.FPS = float64(n-1) / span.Seconds()
	}
	return st
}
