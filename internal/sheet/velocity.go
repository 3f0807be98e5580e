package sheet

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

const (
	// velocityHistory is the number of samples kept.
	velocityHistory = 20
	// velocityHorizon is the oldest sample age used for an estimate.
	velocityHorizon = 100 * time.Millisecond
	// velocityMaxGap is the longest pause between samples that still counts
	// as continuous movement.
	velocityMaxGap = 40 * time.Millisecond
)

type velocitySample struct {
	t time.Duration
	y float64
}

// VelocityTracker estimates the vertical velocity of a pointer from its
// recent positions. The zero value is ready to use.
type VelocityTracker struct {
	samples [velocityHistory]velocitySample
	n       int
	next    int
}

// Add records the pointer position y at time t.
func (v *VelocityTracker) Add(t time.Duration, y float64) {
	v.samples[v.next] = velocitySample{t: t, y: y}
	v.next = (v.next + 1) % velocityHistory
	v.n = min(v.n+1, velocityHistory)
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.n = 0
	v.next = 0
}

// Last returns the time of the newest sample.
func (v *VelocityTracker) Last() (time.Duration, bool) {
	if v.n == 0 {
		return 0, false
	}
	return v.at(0).t, true
}

// at returns the i-th newest sample.
func (v *VelocityTracker) at(i int) velocitySample {
	idx := (v.next - 1 - i + 2*velocityHistory) % velocityHistory
	return v.samples[idx]
}

// Velocity returns the estimated velocity in pixels per second at time now.
// Positive values point downwards. A pointer that has not moved for longer
// than the maximum sample gap has zero velocity.
func (v *VelocityTracker) Velocity(now time.Duration) float64 {
	if v.n == 0 {
		return 0
	}
	newest := v.at(0)
	if now-newest.t > velocityMaxGap {
		return 0
	}

	ts := make([]float64, 0, v.n)
	ys := make([]float64, 0, v.n)
	prev := newest.t
	for i := range v.n {
		s := v.at(i)
		if newest.t-s.t > velocityHorizon || prev-s.t > velocityMaxGap {
			break
		}
		ts = append(ts, (s.t - newest.t).Seconds())
		ys = append(ys, s.y-newest.y)
		prev = s.t
	}

	switch len(ts) {
	case 0, 1:
		return 0
	case 2:
		return slope(ts, ys)
	}
	if vel, ok := quadraticSlope(ts, ys); ok {
		return vel
	}
	return slope(ts, ys)
}

// slope is the average velocity between the newest and the oldest sample.
func slope(ts, ys []float64) float64 {
	last := len(ts) - 1
	dt := ts[0] - ts[last]
	if dt <= 0 {
		return 0
	}
	return (ys[0] - ys[last]) / dt
}

// quadraticSlope fits y = a + b*t + c*t^2 by least squares with t relative to
// the newest sample and returns b, the velocity at the newest sample.
func quadraticSlope(ts, ys []float64) (float64, bool) {
	n := len(ts)
	a := mat.NewDense(n, 3, nil)
	for i, t := range ts {
		a.Set(i, 0, 1)
		a.Set(i, 1, t)
		a.Set(i, 2, t*t)
	}
	b := mat.NewVecDense(n, ys)

	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		return 0, false
	}
	return coef.AtVec(1), true
}

// clampVelocity zeroes velocities below minimum and caps the magnitude at
// maximum.
func clampVelocity(v, minimum, maximum float64) float64 {
	switch {
	case v > -minimum && v < minimum:
		return 0
	case v > maximum:
		return maximum
	case v < -maximum:
		return -maximum
	default:
		return v
	}
}
