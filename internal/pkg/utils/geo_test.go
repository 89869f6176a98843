package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineZeroDistance(t *testing.T) {
	d := CalculateHaversineDistance(-6.2088, 106.8456, -6.2088, 106.8456)
	assert.Equal(t, 0.0, d)
}

func TestHaversineSymmetry(t *testing.T) {
	// Jakarta (Monas) and Bandung (Gedung Sate)
	lat1, lon1 := -6.1754, 106.8272
	lat2, lon2 := -6.9025, 107.6186

	d1 := CalculateHaversineDistance(lat1, lon1, lat2, lon2)
	d2 := CalculateHaversineDistance(lat2, lon2, lat1, lon1)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Jakarta to Bandung is roughly 118 km great-circle.
	d := CalculateHaversineDistance(-6.1754, 106.8272, -6.9025, 107.6186)
	assert.InDelta(t, 118000, d, 3000)
}

func TestHaversineShortDistance(t *testing.T) {
	// Two points ~111 m apart (0.001 degree of latitude).
	d := CalculateHaversineDistance(-6.2000, 106.8000, -6.2010, 106.8000)
	assert.InDelta(t, 111.2, d, 1.0)
}
