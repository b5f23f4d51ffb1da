package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistanceIdenticalPoints(t *testing.T) {
	assert.Zero(t, CalculateDistance(60.1699, 24.9384, 60.1699, 24.9384))
	assert.Zero(t, CalculateDistance(0, 0, 0, 0))
	assert.Zero(t, CalculateDistance(-33.8688, 151.2093, -33.8688, 151.2093))
}

func TestCalculateDistanceSymmetry(t *testing.T) {
	d1 := CalculateDistance(51.5074, -0.1278, 48.8566, 2.3522)
	d2 := CalculateDistance(48.8566, 2.3522, 51.5074, -0.1278)
	assert.Equal(t, d1, d2)
}

func TestCalculateDistanceKnownValues(t *testing.T) {
	// London to Paris, roughly 344 km
	assert.InDelta(t, 344, CalculateDistance(51.5074, -0.1278, 48.8566, 2.3522), 5)

	// Helsinki to Tampere, roughly 160 km
	assert.InDelta(t, 160, CalculateDistance(60.1699, 24.9384, 61.4978, 23.7610), 10)
}

func TestCalculateDistanceAntipodal(t *testing.T) {
	// Antipodal points sit half the Earth's circumference apart.
	d := CalculateDistance(0, 0, 0, 180)
	assert.InDelta(t, 20015, d, 10)
}
