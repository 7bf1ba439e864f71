// Package tau derives tau-specific per-event quantities, including the
// association chains from a tau to its reconstructed jet and onwards to
// the matched generator jet.
//
// Association hops compose by plain application of rvec.At: a break at
// any hop (index out of range, or the -1 "no association" marker) carries
// the final sentinel through the remaining hops without special-cased
// branching.
package tau

import (
	"github.com/hupe1980/nanoflow"
	"github.com/hupe1980/nanoflow/defaults"
	"github.com/hupe1980/nanoflow/rvec"
)

// DecayMode defines outputname as the decay mode of the tau selected from
// the pair column at the given position.
func DecayMode(f *nanoflow.Frame, outputname string, position int, pairname, decaymodecolumn string) error {
	return nanoflow.Define2(f, outputname, func(pair []int32, decaymode []int32) int32 {
		index := pair[position]
		return rvec.At(decaymode, int(index), defaults.Int)
	}, pairname, decaymodecolumn)
}

// GenMatch defines outputname as the generator-match label of the tau
// selected from the pair column at the given position. Labels:
//
//	1 = prompt electron,
//	2 = prompt muon,
//	3 = tau->e decay,
//	4 = tau->mu decay,
//	5 = hadronic tau decay,
//	0 = unknown or unmatched
func GenMatch(f *nanoflow.Frame, outputname string, position int, pairname, genmatchcolumn string) error {
	return nanoflow.Define2(f, outputname, func(pair []int32, genmatch []uint8) uint8 {
		index := pair[position]
		return rvec.At(genmatch, int(index), defaults.UChar)
	}, pairname, genmatchcolumn)
}

// MatchingJetPt defines outputname as the pt of the reconstructed jet
// associated with the tau selected from the pair column at the given
// position. Two hops: tau index -> jet index -> jet pt.
func MatchingJetPt(f *nanoflow.Frame, outputname string, position int, pairname, taujetIndex, jetptColumn string) error {
	return nanoflow.Define3(f, outputname, func(pair []int32, taujets []int32, jetpt []float32) float32 {
		tauindex := pair[position]
		jetindex := rvec.At(taujets, int(tauindex), defaults.NoAssociation)
		return rvec.At(jetpt, int(jetindex), defaults.Float)
	}, pairname, taujetIndex, jetptColumn)
}

// MatchingGenJetPt defines outputname as the pt of the generator jet
// matched to the reconstructed jet associated with the tau selected from
// the pair column at the given position. Three hops:
//
//	Tau --> recoJet --> GenJet
func MatchingGenJetPt(f *nanoflow.Frame, outputname string, position int, pairname, taujetIndex, genjetIndex, genjetptColumn string) error {
	return nanoflow.Define4(f, outputname, func(pair []int32, taujets []int32, genjets []int32, genjetpt []float32) float32 {
		tauindex := pair[position]
		jetindex := rvec.At(taujets, int(tauindex), defaults.NoAssociation)
		genjetindex := rvec.At(genjets, int(jetindex), defaults.NoAssociation)
		return rvec.At(genjetpt, int(genjetindex), defaults.Float)
	}, pairname, taujetIndex, genjetIndex, genjetptColumn)
}
