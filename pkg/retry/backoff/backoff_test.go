package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConstant(t *testing.T) {
	s := Constant(250 * time.Millisecond)
	for attempt := uint(1); attempt <= 5; attempt++ {
		assert.Equal(t, 250*time.Millisecond, s(attempt))
	}
}

func TestExponential(t *testing.T) {
	s := Exponential(time.Second, 3)

	for attempt, expected := range []time.Duration{
		time.Second,
		3 * time.Second,
		9 * time.Second,
		27 * time.Second,
	} {
		assert.Equal(t, expected, s(uint(attempt+1)))
	}
}

func TestExponential_Saturates(t *testing.T) {
	s := Exponential(time.Second, 10)
	assert.EqualValues(t, math.MaxInt64, s(40))
}

func TestBinaryExponential(t *testing.T) {
	s := BinaryExponential(time.Second)

	assert.Equal(t, time.Second, s(1))
	assert.Equal(t, 2*time.Second, s(2))
	assert.Equal(t, 4*time.Second, s(3))
	assert.Equal(t, 8*time.Second, s(4))
}
