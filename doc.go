// Package nanoflow provides a columnar per-event frame for deriving
// physics quantities from NanoAOD-style columns.
//
// A Frame holds named, typed columns with one value per event. Derived
// quantities are registered as pure functions over named input columns and
// materialized once per event:
//
//	f := nanoflow.New(len(pairs))
//	_ = nanoflow.AddColumn(f, "dileptonpair", pairs)
//	_ = nanoflow.AddColumn(f, "p4_1", leading)
//	_ = nanoflow.AddColumn(f, "p4_2", trailing)
//	_ = nanoflow.AddColumn(f, "met_p4", met)
//
//	_ = quantities.Pt(f, "pt_1", "p4_1")
//	_ = quantities.VisibleMass(f, "m_vis", "p4_1", "p4_2")
//	_ = quantities.PZetaMissVis(f, "pzetamissvis", "p4_1", "p4_2", "met_p4")
//
// # Sentinel convention
//
// Quantities never fail per event. A value that cannot be computed (an
// invalid four-vector, an index outside its collection, a missing
// association) is written as the sentinel of its attribute category; see
// package defaults. Outputs are never NaN and derivations never panic on
// per-event data.
//
// # Evaluation model
//
// Derivation functions are pure and stateless, so the frame evaluates
// them in parallel over event partitions. Each event writes only its own
// output slot; results are bit-identical regardless of parallelism.
//
// # Selection and snapshots
//
// Filter1/Filter2 evaluate per-event predicates into named roaring
// bitmaps, combinable with MaskAnd/MaskOr. Snapshot writes selected
// columns (optionally restricted to a mask) as a compressed,
// self-describing file; see package codec for the available codecs.
package nanoflow
