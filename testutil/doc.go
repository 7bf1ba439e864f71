// Package testutil provides seeded random event generators for tests and
// benchmarks: four-vector columns with a controlled invalid fraction,
// dilepton index pairs, attribute arrays and association arrays.
package testutil
