package rvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	attrs := []float32{0.1, 0.2, 0.3}

	tests := []struct {
		name     string
		i        int
		expected float32
	}{
		{"First", 0, 0.1},
		{"Last", 2, 0.3},
		{"PastEnd", 3, -10},
		{"FarPastEnd", 1000, -10},
		{"NoAssociationMarker", -1, -10},
		{"Negative", -7, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, At(attrs, tt.i, float32(-10)))
		})
	}
}

func TestAtEmpty(t *testing.T) {
	assert.Equal(t, int32(-10), At(nil, 0, int32(-10)))
	assert.Equal(t, int32(-10), At([]int32{}, 0, int32(-10)))
}

func TestAtTypes(t *testing.T) {
	assert.Equal(t, uint8(255), At([]uint8{1, 2}, 5, uint8(255)))
	assert.Equal(t, int32(7), At([]int32{7}, 0, int32(-999)))
}

func TestAtChainComposition(t *testing.T) {
	// Two-hop chain: a -1 at the first hop carries the fallback through
	// the second hop without touching the target array.
	assoc := []int32{-1, 2}
	target := []float32{10, 20, 30}

	idx := At(assoc, 0, int32(-1))
	assert.Equal(t, float32(-10), At(target, int(idx), float32(-10)))

	idx = At(assoc, 1, int32(-1))
	assert.Equal(t, float32(30), At(target, int(idx), float32(-10)))
}
