// Package defaults holds the sentinel values that stand in for "not
// available" in derived quantity columns.
//
// Downstream consumers (selection, histogramming) branch on these exact
// literals, so they are part of the output contract: a quantity that cannot
// be computed for an event is written as the sentinel of its category,
// never as an error or NaN.
package defaults

const (
	// Float marks an unavailable floating-point kinematic quantity.
	Float float32 = -10

	// Int marks an unavailable integer attribute (charge, decay mode, ...).
	Int int32 = -10

	// PDGID marks an unavailable particle-ID code. PDG IDs are small
	// signed integers, so the sentinel sits far outside the assigned range.
	PDGID int32 = -999

	// UChar marks an unavailable small unsigned code (gen-match labels).
	// This is the wrap-around of -1 in the on-disk unsigned byte type.
	UChar uint8 = 255

	// NoAssociation is the marker used by association index columns when
	// an object has no associated partner.
	NoAssociation int32 = -1
)
