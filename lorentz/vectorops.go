package lorentz

import "math"

// DeltaPhi returns the azimuthal separation a - b wrapped into (-pi, pi].
func DeltaPhi(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// CalculateMT returns the transverse mass of the pair (a, b),
//
//	mT = sqrt(2 * pt_a * pt_b * (1 - cos(dphi)))
//
// The radicand is clamped at zero so rounding can never push the result
// into NaN: either pt at zero yields mT = 0, and dphi = pi yields exactly
// sqrt(4 * pt_a * pt_b).
func CalculateMT(a, b PtEtaPhiM) float64 {
	r := 2 * a.Pt * b.Pt * (1 - math.Cos(DeltaPhi(a.Phi, b.Phi)))
	if r < 0 {
		r = 0
	}
	return math.Sqrt(r)
}
