package lorentz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeltaPhi(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"Zero", 1.0, 1.0, 0},
		{"Simple", 1.5, 0.5, 1.0},
		{"WrapPositive", 3.0, -3.0, 6.0 - 2*math.Pi},
		{"WrapNegative", -3.0, 3.0, 2*math.Pi - 6.0},
		{"HalfTurn", math.Pi, 0, math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaPhi(tt.a, tt.b)
			assert.InDelta(t, tt.expected, got, 1e-12)
			assert.True(t, got > -math.Pi && got <= math.Pi)
		})
	}
}

func TestCalculateMT(t *testing.T) {
	tests := []struct {
		name     string
		a, b     PtEtaPhiM
		expected float64
	}{
		{
			name:     "Formula",
			a:        PtEtaPhiM{Pt: 50, Phi: 0.3},
			b:        PtEtaPhiM{Pt: 40, Phi: 1.8},
			expected: math.Sqrt(2 * 50 * 40 * (1 - math.Cos(1.5))),
		},
		{
			name:     "BackToBack",
			a:        PtEtaPhiM{Pt: 25, Phi: 0},
			b:        PtEtaPhiM{Pt: 25, Phi: math.Pi},
			expected: math.Sqrt(4 * 25 * 25),
		},
		{
			name:     "Aligned",
			a:        PtEtaPhiM{Pt: 25, Phi: 1.2},
			b:        PtEtaPhiM{Pt: 35, Phi: 1.2},
			expected: 0,
		},
		{
			name:     "ZeroPt",
			a:        PtEtaPhiM{Pt: 0, Phi: 1.0},
			b:        PtEtaPhiM{Pt: 40, Phi: 2.0},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMT(tt.a, tt.b)
			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestCalculateMTNeverNaN(t *testing.T) {
	// Sweep dphi across the full range; rounding near dphi=0 must be
	// clamped, never NaN.
	for dphi := -math.Pi; dphi <= math.Pi; dphi += 1e-3 {
		got := CalculateMT(PtEtaPhiM{Pt: 30, Phi: dphi}, PtEtaPhiM{Pt: 20, Phi: 0})
		assert.False(t, math.IsNaN(got))
		assert.GreaterOrEqual(t, got, 0.0)
	}
}
