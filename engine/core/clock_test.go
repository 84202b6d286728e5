package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameClockFirstSampleHasZeroInterval(t *testing.T) {
	clock := NewFrameClock()

	sample := clock.Sample(1000)

	assert.Equal(t, float64(1000), sample.Timestamp)
	assert.Equal(t, float64(0), sample.Ms)
	assert.Equal(t, float64(0), sample.Dt)
}

func TestFrameClockComputesDeltaFromTimestamps(t *testing.T) {
	clock := NewFrameClock()

	clock.Sample(1000)
	sample := clock.Sample(1016)

	assert.InDelta(t, 16.0, sample.Ms, 1e-9)
	assert.InDelta(t, 0.016, sample.Dt, 1e-9)
}

func TestFrameClockClampsLargeDelta(t *testing.T) {
	clock := NewFrameClock()

	clock.Sample(1000)
	// A five second stall must not produce a five second step.
	sample := clock.Sample(6000)

	assert.InDelta(t, 5000.0, sample.Ms, 1e-9)
	assert.Equal(t, 0.1, sample.Dt)
}

func TestFrameClockClampsNegativeDelta(t *testing.T) {
	clock := NewFrameClock()

	clock.Sample(2000)
	sample := clock.Sample(1000)

	assert.Equal(t, float64(0), sample.Dt)
}

func TestFrameClockAppliesTimeScale(t *testing.T) {
	clock := NewFrameClock()
	clock.TimeScale = 2

	clock.Sample(1000)
	doubled := clock.Sample(1016)

	clock.TimeScale = 0.5
	halved := clock.Sample(1032)

	assert.InDelta(t, 0.032, doubled.Dt, 1e-9)
	assert.InDelta(t, 0.008, halved.Dt, 1e-9)
}

func TestFrameClockTimeScaleAppliesAfterClamp(t *testing.T) {
	clock := NewFrameClock()
	clock.TimeScale = 3

	clock.Sample(1000)
	sample := clock.Sample(6000)

	assert.InDelta(t, 0.3, sample.Dt, 1e-9)
}

func TestFrameClockResetForgetsPreviousTimestamp(t *testing.T) {
	clock := NewFrameClock()

	clock.Sample(1000)
	clock.Reset()
	sample := clock.Sample(9000)

	assert.Equal(t, float64(0), sample.Ms)
	assert.Equal(t, float64(0), sample.Dt)
}

func TestFrameClockFallsBackToWallClock(t *testing.T) {
	clock := NewFrameClock()

	sample := clock.Sample(0)

	assert.Greater(t, sample.Timestamp, float64(0))
}

func TestClockElapsed(t *testing.T) {
	clock := NewClock()

	// A non-started clock never accumulates.
	clock.Update()
	assert.Equal(t, float64(0), clock.Elapsed())

	clock.Start()
	clock.Update()
	assert.GreaterOrEqual(t, clock.Elapsed(), float64(0))
}
