// Package quantities derives per-event physics quantities and registers
// them as named columns on a frame.
//
// Every function here is a registration wrapper: it binds a pure
// per-event function to an output column name and ordered input column
// names. Unavailable values degrade to the sentinels in package defaults;
// no derivation errors or panics on per-event data. Pair positions
// (0 = leading, 1 = trailing) are caller-level constants, not per-event
// data: an out-of-range position is a programming error.
package quantities

import (
	"github.com/hupe1980/nanoflow"
	"github.com/hupe1980/nanoflow/defaults"
	"github.com/hupe1980/nanoflow/lorentz"
	"github.com/hupe1980/nanoflow/rvec"
)

// pZetaAlpha is the fixed weight of the visible component in the
// pZetaMissVis discriminant (FERMILAB-THESIS-2006-11).
const pZetaAlpha = 0.85

// Pt defines outputname as the transverse momentum of the four-vector
// column. The raw pt is written unconditionally, including the negative
// value of an invalid vector, since negative pt is the invalidity signal
// downstream consumers test against.
func Pt(f *nanoflow.Frame, outputname, inputvector string) error {
	return nanoflow.Define1(f, outputname, func(p4 lorentz.PtEtaPhiM) float32 {
		return float32(p4.Pt)
	}, inputvector)
}

// Eta defines outputname as the pseudorapidity of the four-vector column.
// Unlike Phi and Mass there is no invalidity guard: eta stays meaningful
// for a degenerate-pt vector and the original behavior is preserved.
func Eta(f *nanoflow.Frame, outputname, inputvector string) error {
	return nanoflow.Define1(f, outputname, func(p4 lorentz.PtEtaPhiM) float32 {
		return float32(p4.Eta)
	}, inputvector)
}

// Phi defines outputname as the azimuthal angle of the four-vector
// column, in (-pi, pi]. Invalid vectors yield the float sentinel.
func Phi(f *nanoflow.Frame, outputname, inputvector string) error {
	return nanoflow.Define1(f, outputname, func(p4 lorentz.PtEtaPhiM) float32 {
		if p4.Invalid() {
			return defaults.Float
		}
		return float32(p4.Phi)
	}, inputvector)
}

// Mass defines outputname as the invariant mass of the four-vector
// column, taken from the vector's own mass coordinate. Invalid vectors
// yield the float sentinel.
func Mass(f *nanoflow.Frame, outputname, inputvector string) error {
	return nanoflow.Define1(f, outputname, func(p4 lorentz.PtEtaPhiM) float32 {
		if p4.Invalid() {
			return defaults.Float
		}
		return float32(p4.M)
	}, inputvector)
}

// Dxy defines outputname as the transverse impact parameter of the
// particle selected from the pair column at the given position.
func Dxy(f *nanoflow.Frame, outputname string, position int, pairname, dxycolumn string) error {
	return nanoflow.Define2(f, outputname, func(pair []int32, dxy []float32) float32 {
		index := pair[position]
		return rvec.At(dxy, int(index), defaults.Float)
	}, pairname, dxycolumn)
}

// Dz defines outputname as the longitudinal impact parameter of the
// particle selected from the pair column at the given position.
func Dz(f *nanoflow.Frame, outputname string, position int, pairname, dzcolumn string) error {
	return nanoflow.Define2(f, outputname, func(pair []int32, dz []float32) float32 {
		index := pair[position]
		return rvec.At(dz, int(index), defaults.Float)
	}, pairname, dzcolumn)
}

// Charge defines outputname as the charge of the particle selected from
// the pair column at the given position.
func Charge(f *nanoflow.Frame, outputname string, position int, pairname, chargecolumn string) error {
	return nanoflow.Define2(f, outputname, func(pair []int32, charge []int32) int32 {
		index := pair[position]
		return rvec.At(charge, int(index), defaults.Int)
	}, pairname, chargecolumn)
}

// Isolation defines outputname as the isolation of the particle selected
// from the pair column at the given position.
func Isolation(f *nanoflow.Frame, outputname string, position int, pairname, isolationcolumn string) error {
	return nanoflow.Define2(f, outputname, func(pair []int32, isolation []float32) float32 {
		index := pair[position]
		return rvec.At(isolation, int(index), defaults.Float)
	}, pairname, isolationcolumn)
}

// PdgID defines outputname as the PDG ID of the generator particle
// selected from the pair column at the given position.
func PdgID(f *nanoflow.Frame, outputname string, position int, pairname, pdgidcolumn string) error {
	return nanoflow.Define2(f, outputname, func(pair []int32, pdgid []int32) int32 {
		index := pair[position]
		return rvec.At(pdgid, int(index), defaults.PDGID)
	}, pairname, pdgidcolumn)
}

// VisibleMass defines outputname as the invariant mass of the dilepton
// system built from the two four-vector columns. If either vector is
// invalid the float sentinel is written.
func VisibleMass(f *nanoflow.Frame, outputname, inputvector1, inputvector2 string) error {
	return nanoflow.Define2(f, outputname, func(p41, p42 lorentz.PtEtaPhiM) float32 {
		if p41.Invalid() || p42.Invalid() {
			return defaults.Float
		}
		return float32(p41.Add(p42).M)
	}, inputvector1, inputvector2)
}

// PZetaMissVis defines outputname as the discriminant
//
//	D_zeta = pZetaMiss - 0.85 * pZetaVis
//
// where pZetaMiss projects the missing transverse momentum and pZetaVis
// the transverse dilepton momentum onto the bisector of the two leptons'
// transverse-plane directions. Each lepton direction is normalized,
// projected into the transverse plane and re-normalized, in that order.
// If either lepton vector is invalid the float sentinel is written.
func PZetaMissVis(f *nanoflow.Frame, outputname, particle1, particle2, met string) error {
	return nanoflow.Define3(f, outputname, func(p41, p42, met lorentz.PtEtaPhiM) float32 {
		if p41.Invalid() || p42.Invalid() {
			return defaults.Float
		}

		metVec := met.Vect().Transverse()

		p1Norm := p41.Vect().Unit().Transverse().Unit()
		p2Norm := p42.Vect().Unit().Transverse().Unit()
		zeta := p1Norm.Add(p2Norm).Unit()

		dilepton := p41.Vect().Add(p42.Vect()).Transverse()
		pZetaVis := dilepton.Dot(zeta)

		return float32(metVec.Dot(zeta) - pZetaAlpha*pZetaVis)
	}, particle1, particle2, met)
}

// MTDileptonMET defines outputname as the transverse mass of the dilepton
// system and the missing transverse momentum. If any consumed vector is
// invalid the float sentinel is written.
func MTDileptonMET(f *nanoflow.Frame, outputname, particle1, particle2, met string) error {
	return nanoflow.Define3(f, outputname, func(p41, p42, met lorentz.PtEtaPhiM) float32 {
		if p41.Invalid() || p42.Invalid() || met.Invalid() {
			return defaults.Float
		}
		return float32(lorentz.CalculateMT(p41.Add(p42), met))
	}, particle1, particle2, met)
}

// MT defines outputname as the transverse mass of a particle and the
// missing transverse momentum. If either vector is invalid the float
// sentinel is written.
func MT(f *nanoflow.Frame, outputname, particle, met string) error {
	return nanoflow.Define2(f, outputname, func(p4, met lorentz.PtEtaPhiM) float32 {
		if p4.Invalid() || met.Invalid() {
			return defaults.Float
		}
		return float32(lorentz.CalculateMT(p4, met))
	}, particle, met)
}
