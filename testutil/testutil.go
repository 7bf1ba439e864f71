package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/nanoflow/defaults"
	"github.com/hupe1980/nanoflow/lorentz"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// FourVectors generates num four-vectors with pt in [ptMin, ptMax),
// eta in [-2.5, 2.5), phi in (-pi, pi] and mass in [0, 2).
// invalidFrac is the probability that a vector carries the invalid
// marker (pt set to the float sentinel) instead.
func (r *RNG) FourVectors(num int, ptMin, ptMax float64, invalidFrac float64) []lorentz.PtEtaPhiM {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]lorentz.PtEtaPhiM, num)
	for i := range out {
		if r.rand.Float64() < invalidFrac {
			out[i] = lorentz.PtEtaPhiM{Pt: float64(defaults.Float), Eta: 0, Phi: 0, M: 0}
			continue
		}
		out[i] = lorentz.PtEtaPhiM{
			Pt:  ptMin + r.rand.Float64()*(ptMax-ptMin),
			Eta: -2.5 + r.rand.Float64()*5,
			Phi: math.Pi - r.rand.Float64()*2*math.Pi,
			M:   r.rand.Float64() * 2,
		}
	}
	return out
}

// Pairs generates num index pairs into a collection of collectionSize
// objects. missingFrac is the probability that a slot holds the
// "no particle" marker (-1) instead of a valid index.
func (r *RNG) Pairs(num, collectionSize int, missingFrac float64) [][]int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]int32, num)
	for i := range out {
		pair := make([]int32, 2)
		for j := range pair {
			if r.rand.Float64() < missingFrac {
				pair[j] = -1
			} else {
				pair[j] = int32(r.rand.Intn(collectionSize))
			}
		}
		out[i] = pair
	}
	return out
}

// FloatAttributes generates num attribute arrays of size perEvent with
// values in [minVal, maxVal).
func (r *RNG) FloatAttributes(num, perEvent int, minVal, maxVal float32) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]float32, num)
	for i := range out {
		attrs := make([]float32, perEvent)
		for j := range attrs {
			attrs[j] = minVal + r.rand.Float32()*(maxVal-minVal)
		}
		out[i] = attrs
	}
	return out
}

// IntAttributes generates num attribute arrays of size perEvent with
// values in [minVal, maxVal).
func (r *RNG) IntAttributes(num, perEvent int, minVal, maxVal int32) [][]int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]int32, num)
	for i := range out {
		attrs := make([]int32, perEvent)
		for j := range attrs {
			attrs[j] = minVal + int32(r.rand.Intn(int(maxVal-minVal)))
		}
		out[i] = attrs
	}
	return out
}

// Associations generates num association arrays mapping fromSize source
// indices to targetSize target indices. missingFrac is the probability
// that an entry holds the "no association" marker (-1).
func (r *RNG) Associations(num, fromSize, targetSize int, missingFrac float64) [][]int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([][]int32, num)
	for i := range out {
		assoc := make([]int32, fromSize)
		for j := range assoc {
			if r.rand.Float64() < missingFrac {
				assoc[j] = -1
			} else {
				assoc[j] = int32(r.rand.Intn(targetSize))
			}
		}
		out[i] = assoc
	}
	return out
}
