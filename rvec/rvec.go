// Package rvec provides bounds-safe indexed access to per-event attribute
// slices.
//
// Indices arrive from pair selectors and association columns and are not
// trusted: anything outside the addressable range, including the -1
// "no association" marker, resolves to the caller's fallback value.
// Multi-hop association chains compose by plain application of At, with a
// break at any hop carrying the fallback through the remaining hops.
package rvec

// At returns v[i] if i is within [0, len(v)), else fallback.
// It is total and never panics on out-of-range indices.
func At[T any](v []T, i int, fallback T) T {
	if i < 0 || i >= len(v) {
		return fallback
	}
	return v[i]
}
