// Package dealer generates random bridge deals uniformly distributed over
// the deals consistent with fixed partial hands, filtered by an acceptance
// predicate.
//
// A draw maps one uniform arbitrary-precision index straight to a deal via
// combinatorial unranking, so sampling stays exact without enumerating a
// space of up to ~5.36e28 deals. Rejection sampling over those draws keeps
// the accepted subset uniform too.
package dealer
