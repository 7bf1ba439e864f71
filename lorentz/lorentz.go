// Package lorentz provides the four-vector and transverse-plane vector
// algebra used by the quantity derivations.
//
// Four-vectors use the (pt, eta, phi, mass) parametrization of collider
// reconstruction. A vector with pt < 0 is invalid by convention; the
// negative pt is the invalidity signal itself and is preserved as-is.
// All operations are pure and never produce NaN.
package lorentz

import "math"

// etaMax caps the pseudorapidity of a momentum sum that is degenerate
// along the beam axis (pt == 0, pz != 0), where eta diverges.
const etaMax = 22756.827

// PtEtaPhiM is a four-vector in the (pt, eta, phi, mass) parametrization.
type PtEtaPhiM struct {
	Pt  float64
	Eta float64
	Phi float64
	M   float64
}

// Invalid reports whether the vector carries the invalid marker (pt < 0).
func (p PtEtaPhiM) Invalid() bool {
	return p.Pt < 0
}

// Px returns the x component of the momentum.
func (p PtEtaPhiM) Px() float64 {
	return p.Pt * math.Cos(p.Phi)
}

// Py returns the y component of the momentum.
func (p PtEtaPhiM) Py() float64 {
	return p.Pt * math.Sin(p.Phi)
}

// Pz returns the longitudinal momentum component.
func (p PtEtaPhiM) Pz() float64 {
	return p.Pt * math.Sinh(p.Eta)
}

// P returns the magnitude of the momentum.
func (p PtEtaPhiM) P() float64 {
	return p.Pt * math.Cosh(p.Eta)
}

// E returns the energy, sqrt(p^2 + m^2).
func (p PtEtaPhiM) E() float64 {
	pm := p.P()
	return math.Sqrt(pm*pm + p.M*p.M)
}

// Vect returns the momentum 3-vector.
func (p PtEtaPhiM) Vect() XYZ {
	return XYZ{X: p.Px(), Y: p.Py(), Z: p.Pz()}
}

// Add returns the four-vector sum p + q, re-parametrized to
// (pt, eta, phi, mass). The mass of the sum is computed from the summed
// energy and momentum, clamped at zero against rounding.
func (p PtEtaPhiM) Add(q PtEtaPhiM) PtEtaPhiM {
	return FromPxPyPzE(
		p.Px()+q.Px(),
		p.Py()+q.Py(),
		p.Pz()+q.Pz(),
		p.E()+q.E(),
	)
}

// FromPxPyPzE builds a PtEtaPhiM vector from cartesian components.
// phi lies in (-pi, pi]. A vector degenerate along the beam axis gets
// eta = +-etaMax instead of diverging.
func FromPxPyPzE(px, py, pz, e float64) PtEtaPhiM {
	pt := math.Hypot(px, py)

	var phi float64
	if pt > 0 {
		phi = math.Atan2(py, px)
	}

	var eta float64
	switch {
	case pt > 0:
		eta = math.Asinh(pz / pt)
	case pz != 0:
		eta = math.Copysign(etaMax, pz)
	}

	p2 := pt*pt + pz*pz
	m2 := e*e - p2
	if m2 < 0 {
		m2 = 0
	}

	return PtEtaPhiM{Pt: pt, Eta: eta, Phi: phi, M: math.Sqrt(m2)}
}

// XYZ is a cartesian 3-vector.
type XYZ struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + w.
func (v XYZ) Add(w XYZ) XYZ {
	return XYZ{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Dot returns the scalar product of v and w.
func (v XYZ) Dot(w XYZ) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Mag returns the magnitude of v.
func (v XYZ) Mag() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit magnitude.
// The zero vector is returned unchanged.
func (v XYZ) Unit() XYZ {
	m := v.Mag()
	if m == 0 {
		return v
	}
	return XYZ{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
}

// Transverse returns v with its longitudinal component zeroed.
func (v XYZ) Transverse() XYZ {
	return XYZ{X: v.X, Y: v.Y}
}
