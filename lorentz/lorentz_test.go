package lorentz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPtEtaPhiMComponents(t *testing.T) {
	p := PtEtaPhiM{Pt: 40, Eta: 1.0, Phi: 0.5, M: 0.1}

	assert.InDelta(t, 40*math.Cos(0.5), p.Px(), 1e-12)
	assert.InDelta(t, 40*math.Sin(0.5), p.Py(), 1e-12)
	assert.InDelta(t, 40*math.Sinh(1.0), p.Pz(), 1e-12)
	assert.InDelta(t, 40*math.Cosh(1.0), p.P(), 1e-12)

	pm := p.P()
	assert.InDelta(t, math.Sqrt(pm*pm+0.01), p.E(), 1e-12)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name     string
		p        PtEtaPhiM
		expected bool
	}{
		{"Valid", PtEtaPhiM{Pt: 40}, false},
		{"ZeroPt", PtEtaPhiM{Pt: 0}, false},
		{"Marker", PtEtaPhiM{Pt: -10}, true},
		{"AnyNegative", PtEtaPhiM{Pt: -0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.Invalid())
		})
	}
}

func TestFromPxPyPzERoundTrip(t *testing.T) {
	orig := PtEtaPhiM{Pt: 30, Eta: -0.5, Phi: 2.0, M: 0.1}

	got := FromPxPyPzE(orig.Px(), orig.Py(), orig.Pz(), orig.E())

	assert.InDelta(t, orig.Pt, got.Pt, 1e-9)
	assert.InDelta(t, orig.Eta, got.Eta, 1e-9)
	assert.InDelta(t, orig.Phi, got.Phi, 1e-9)
	assert.InDelta(t, orig.M, got.M, 1e-6)
}

func TestFromPxPyPzEDegenerate(t *testing.T) {
	t.Run("ZeroMomentum", func(t *testing.T) {
		got := FromPxPyPzE(0, 0, 0, 1)
		assert.Zero(t, got.Pt)
		assert.Zero(t, got.Eta)
		assert.Zero(t, got.Phi)
		assert.InDelta(t, 1.0, got.M, 1e-12)
	})

	t.Run("BeamAxis", func(t *testing.T) {
		got := FromPxPyPzE(0, 0, 5, 5)
		assert.Zero(t, got.Pt)
		assert.False(t, math.IsInf(got.Eta, 0))
		assert.Positive(t, got.Eta)

		got = FromPxPyPzE(0, 0, -5, 5)
		assert.Negative(t, got.Eta)
	})

	t.Run("NegativeMassSquaredClamped", func(t *testing.T) {
		// Energy slightly below momentum from rounding must not give NaN.
		got := FromPxPyPzE(3, 4, 0, 5-1e-13)
		assert.False(t, math.IsNaN(got.M))
		assert.Zero(t, got.M)
	})
}

func TestAddInvariantMass(t *testing.T) {
	p1 := PtEtaPhiM{Pt: 40, Eta: 1.0, Phi: 0.5, M: 0.1}
	p2 := PtEtaPhiM{Pt: 30, Eta: -0.5, Phi: 2.0, M: 0.1}

	sum := p1.Add(p2)

	// Independent energy/momentum reconstruction of the pair mass.
	px := p1.Px() + p2.Px()
	py := p1.Py() + p2.Py()
	pz := p1.Pz() + p2.Pz()
	e := p1.E() + p2.E()
	expected := math.Sqrt(e*e - px*px - py*py - pz*pz)

	assert.InDelta(t, expected, sum.M, 1e-9)
	assert.InDelta(t, math.Hypot(px, py), sum.Pt, 1e-9)
	assert.True(t, sum.Phi > -math.Pi && sum.Phi <= math.Pi)
}

func TestXYZ(t *testing.T) {
	v := XYZ{X: 1, Y: 2, Z: 2}
	w := XYZ{X: -1, Y: 0, Z: 4}

	assert.Equal(t, XYZ{X: 0, Y: 2, Z: 6}, v.Add(w))
	assert.InDelta(t, 7.0, v.Dot(w), 1e-12)
	assert.InDelta(t, 3.0, v.Mag(), 1e-12)

	u := v.Unit()
	assert.InDelta(t, 1.0, u.Mag(), 1e-12)
	assert.InDelta(t, v.X/3, u.X, 1e-12)

	assert.Equal(t, XYZ{X: 1, Y: 2, Z: 0}, v.Transverse())
}

func TestXYZUnitZeroVector(t *testing.T) {
	// The zero vector has no direction; Unit must not divide by zero.
	z := XYZ{}
	assert.Equal(t, z, z.Unit())
}
