// Package bridge implements the contract-bridge domain model: cards, hands,
// deals, and duplicate contract scoring.
//
// # Core Types
//
// Card: a single playing card, parsed from and printed as a two-character
// rank-suit code such as "AS".
//
// Hand: up to 13 unique cards with derived shape and Milton high-card point
// count, parsed from the dotted "spades.hearts.diamonds.clubs" notation.
//
// Deal: the four hands of a board keyed by seat, with the no-duplicate-card
// invariant enforced at construction.
//
// Contract: a bid contract with doubling state and vulnerability, scoring
// any trick result under the duplicate tariff via Score.
//
// # Encodings
//
// The Suit, Strain, Seat and Rank integer values match the double-dummy
// solver's numbering (strains ordered S, H, D, C, NT) and form the stable
// wire encoding at the solver boundary. Deck returns the canonical 52-card
// order that deal generation uses as its index space.
//
// # Shape Helpers
//
// Balanced, SemiBalanced, HasShortage and AllowedShapes support writing
// acceptance predicates over hand shapes, including the "5/4-3-1" pattern
// mini-language.
package bridge
