package core

import (
	"time"

	"github.com/lumen3d/lumen/engine/math"
)

// AbsoluteTime returns the wall clock in milliseconds. Used as a fallback
// when the platform does not supply a frame timestamp.
func AbsoluteTime() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}

type Clock struct {
	startTime float64
	elapsed   float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.startTime != 0 {
		c.elapsed = AbsoluteTime() - c.startTime
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = AbsoluteTime()
	c.elapsed = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.startTime = 0
}

func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// FrameSample is the per-tick timing record. Ms is the raw interval since
// the previous tick in milliseconds; Dt is the clamped, time-scaled delta
// in seconds. It is not persisted beyond the tick that produced it.
type FrameSample struct {
	Timestamp float64
	Ms        float64
	Dt        float64
}

// FrameClock turns raw platform timestamps into frame samples. The first
// sample after creation (or after Reset) yields a zero interval.
type FrameClock struct {
	// MaxDeltaTime caps the computed delta in seconds, so a stalled timer
	// callback (a backgrounded window, a debugger pause) does not produce a
	// huge simulation step.
	MaxDeltaTime float64
	// TimeScale multiplies the clamped delta. 1 is real time.
	TimeScale float64

	lastTime float64
	started  bool
}

func NewFrameClock() *FrameClock {
	return &FrameClock{
		MaxDeltaTime: 0.1,
		TimeScale:    1,
	}
}

// Sample consumes a platform timestamp in milliseconds and returns the
// timing record for the current tick. A non-positive timestamp falls back
// to the wall clock.
func (c *FrameClock) Sample(timestamp float64) FrameSample {
	if timestamp <= 0 {
		timestamp = AbsoluteTime()
	}
	var ms float64
	if c.started {
		ms = timestamp - c.lastTime
	}
	c.lastTime = timestamp
	c.started = true

	dt := math.Clamp(ms/1000.0, 0, c.MaxDeltaTime) * c.TimeScale

	return FrameSample{
		Timestamp: timestamp,
		Ms:        ms,
		Dt:        dt,
	}
}

// Reset forgets the previous timestamp, so the next sample has a zero
// interval. Used when resuming after a suspension.
func (c *FrameClock) Reset() {
	c.started = false
}
