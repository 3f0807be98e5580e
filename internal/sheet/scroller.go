package sheet

import (
	"math"
	"time"
)

const (
	baseSettleDuration = 256 * time.Millisecond
	maxSettleDuration  = 600 * time.Millisecond
)

// scroller animates a vertical position with a quintic ease out.
type scroller struct {
	startY   int
	finalY   int
	currY    int
	start    time.Duration
	duration time.Duration
	finished bool
}

func (s *scroller) startScroll(startY, dy int, start, duration time.Duration) {
	s.startY = startY
	s.finalY = startY + dy
	s.currY = startY
	s.start = start
	s.duration = duration
	s.finished = false
}

// computeOffset updates currY for time now. It returns false once the
// animation finished on an earlier call.
func (s *scroller) computeOffset(now time.Duration) bool {
	if s.finished {
		return false
	}
	elapsed := max(now-s.start, 0)
	if elapsed < s.duration {
		frac := quinticEaseOut(float64(elapsed) / float64(s.duration))
		s.currY = s.startY + int(math.Round(frac*float64(s.finalY-s.startY)))
		return true
	}
	s.currY = s.finalY
	s.finished = true
	return true
}

func (s *scroller) abort() {
	s.currY = s.finalY
	s.finished = true
}

func quinticEaseOut(t float64) float64 {
	t--
	return t*t*t*t*t + 1
}

// settleDuration returns how long a settle over delta pixels takes. A
// release velocity makes it proportional to the time the pointer would
// need; without one it scales with the share of motionRange covered.
// size is the dimension that sets the feel of distances, normally the
// parent width.
func settleDuration(delta int, velocity float64, motionRange, size int) time.Duration {
	if delta == 0 {
		return 0
	}
	if size <= 0 {
		size = max(motionRange, 1)
	}
	half := float64(size) / 2
	ratio := math.Min(1, math.Abs(float64(delta))/float64(size))
	dist := half + half*distanceInfluence(ratio)

	var d time.Duration
	if v := math.Abs(velocity); v > 0 {
		ms := 4 * math.Round(1000*math.Abs(dist/v))
		d = time.Duration(ms) * time.Millisecond
	} else {
		r := float64(absInt(delta)) / float64(max(motionRange, 1))
		d = time.Duration((r + 1) * float64(baseSettleDuration))
	}
	return min(d, maxSettleDuration)
}

func distanceInfluence(f float64) float64 {
	f -= 0.5
	f *= 0.3 * math.Pi / 2
	return math.Sin(f)
}
