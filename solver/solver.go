package solver

import (
	"fmt"

	"github.com/pwaldron/bridgesim/bridge"
)

// LeadTricks is one entry of a SolveLeads result: an available opening
// lead and the number of tricks the declarer takes against it. Touching
// cards are collapsed to one entry by the solver.
type LeadTricks struct {
	Card   bridge.Card
	Tricks int
}

// Solver is the double-dummy oracle consumed by the simulation package.
// Implementations bind a native double-dummy solver; they are expected to
// be safe for concurrent use across independent deals.
type Solver interface {
	// SolveStrains returns the maximum tricks available to the declarer
	// in every strain, assuming double-dummy play by all four seats.
	SolveStrains(deal bridge.Deal, declarer bridge.Seat) (map[bridge.Strain]int, error)

	// SolveLeads returns the declarer's tricks for every distinct opening
	// lead available to the seat left of declarer, preserving the native
	// solver's card order.
	SolveLeads(deal bridge.Deal, strain bridge.Strain, declarer bridge.Seat) ([]LeadTricks, error)
}

// StatusOK is the native solver's success status; every other status is a
// fault reported as a StatusError.
const StatusOK = 1

// statusText carries the native solver's fault table. Solver faults mark
// the deal itself as malformed or out of the solver's supported range;
// they are never retried.
var statusText = map[int]string{
	-1:  "unknown fault",
	-2:  "zero cards",
	-3:  "target exceeds tricks left",
	-4:  "duplicated cards",
	-5:  "target below -1",
	-7:  "target above 13",
	-8:  "fewer than 1 solution requested",
	-9:  "more than 3 solutions requested",
	-10: "more than 52 cards",
	-12: "invalid current-trick suit or rank",
	-13: "card played in current trick also remaining",
	-14: "wrong number of remaining cards in a hand",
	-15: "thread index out of range",
}

// StatusText returns the message for a native solver status code.
func StatusText(code int) string {
	if code == StatusOK {
		return "no fault"
	}
	if text, ok := statusText[code]; ok {
		return text
	}
	return "unrecognized status"
}

// StatusError is a non-success status returned by the native solver for a
// given deal, strain and declarer.
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("solve board failed with status %d: %s", e.Code, StatusText(e.Code))
}
