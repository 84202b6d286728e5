package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressEmptyBatchIsImmediatelyDone(t *testing.T) {
	p := NewProgress(0)

	assert.True(t, p.Done())
	assert.Equal(t, float64(1), p.Fraction())
}

func TestProgressCountsToCompletion(t *testing.T) {
	p := NewProgress(3)

	assert.False(t, p.Done())
	assert.Equal(t, float64(0), p.Fraction())

	p.Inc()
	assert.False(t, p.Done())
	assert.InDelta(t, 1.0/3.0, p.Fraction(), 1e-9)

	p.Inc()
	p.Inc()
	assert.True(t, p.Done())
	assert.Equal(t, float64(1), p.Fraction())
}

func TestProgressAccessors(t *testing.T) {
	p := NewProgress(5)
	p.Inc()
	p.Inc()

	assert.Equal(t, 2, p.Count())
	assert.Equal(t, 5, p.Length())
}
