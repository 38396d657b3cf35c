package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		var h FrameHistory
		assert.Equal(t, FrameStats{}, h.Stats())
	})

	t.Run("single frame has no rate", func(t *testing.T) {
		var h FrameHistory
		h.Record(t0, 4*time.Millisecond)
		assert.Equal(t, FrameStats{FrameTime: 4 * time.Millisecond}, h.Stats())
	})

	t.Run("rate and mean cost", func(t *testing.T) {
		var h FrameHistory
		for i := 0; i < 11; i++ {
			h.Record(t0.Add(time.Duration(i)*100*time.Millisecond), time.Duration(i%2+1)*time.Millisecond)
		}
		st := h.Stats()
		assert.InDelta(t, 10.0, st.FPS, 1e-9)
		assert.Equal(t, 16*time.Millisecond/11, st.FrameTime)
	})

	t.Run("old frames leave the window", func(t *testing.T) {
		var h FrameHistory
		h.Record(t0, time.Second)
		h.Record(t0.Add(5*time.Second), time.Millisecond)
		h.Record(t0.Add(5500*time.Millisecond), time.Millisecond)
		assert.Len(t, h.starts, 2)
		st := h.Stats()
		assert.InDelta(t, 2.0, st.FPS, 1e-9)
		assert.Equal(t, time.Millisecond, st.FrameTime)
	})

	t.Run("sample count is capped", func(t *testing.T) {
		var h FrameHistory
		for i := 0; i < maxFrameSample+50; i++ {
			h.Record(t0.Add(time.Duration(i)*time.Millisecond), time.Millisecond)
		}
		assert.Len(t, h.starts, maxFrameSample)
		assert.Equal(t, t0.Add(50*time.Millisecond), h.starts[0])
	})
}
