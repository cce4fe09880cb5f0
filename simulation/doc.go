// Package simulation turns batches of deals into comparative statistics.
//
// # Comparisons
//
// BestContract: scores a set of candidate contracts on every deal, using
// one double-dummy solve per deal, and reports per-contract make
// percentages and a pairwise IMP matrix.
//
// BestLead: scores every distinct opening lead against a contract from the
// defender's perspective and reports beat percentages and the analogous
// IMP matrix.
//
// # IMP Scale
//
// IMPs maps a raw score difference onto the standard 24-band International
// Match Point scale, preserving sign. IMP matrices are antisymmetric with
// a zero diagonal: gaining by choice A over B is losing by B over A.
//
// # Oracle Calls
//
// Each deal is solved exactly once and solutions are memoized. Solves are
// pure per-deal functions and run on a bounded worker pool (WithWorkers);
// a solver fault aborts the batch and propagates.
package simulation
