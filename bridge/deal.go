package bridge

import (
	"fmt"
	"strings"
)

// Deal holds the four hands of a board, keyed by seat. The hands are
// pairwise disjoint; NewDeal rejects any card dealt to more than one seat.
type Deal struct {
	hands [4]Hand
}

// NewDeal creates a Deal from four hands, validating that no card appears
// in more than one hand.
func NewDeal(north, east, south, west Hand) (Deal, error) {
	d := Deal{hands: [4]Hand{north, east, south, west}}
	seen := make(map[Card]Seat, 52)
	for _, seat := range Seats {
		for _, c := range d.hands[seat].cards {
			if other, dup := seen[c]; dup {
				return Deal{}, fmt.Errorf("card %s dealt to both %s and %s", c, other, seat)
			}
			seen[c] = seat
		}
	}
	return d, nil
}

// ParseDeal builds a Deal from four dotted hand strings in seat order
// North, East, South, West.
func ParseDeal(hands [4]string) (Deal, error) {
	var parsed [4]Hand
	for i, s := range hands {
		h, err := ParseHand(s)
		if err != nil {
			return Deal{}, fmt.Errorf("%s hand: %w", Seats[i], err)
		}
		parsed[i] = h
	}
	return NewDeal(parsed[0], parsed[1], parsed[2], parsed[3])
}

// Hand returns the hand held by the given seat.
func (d Deal) Hand(seat Seat) Hand {
	return d.hands[seat]
}

// North returns the north hand.
func (d Deal) North() Hand { return d.hands[North] }

// East returns the east hand.
func (d Deal) East() Hand { return d.hands[East] }

// South returns the south hand.
func (d Deal) South() Hand { return d.hands[South] }

// West returns the west hand.
func (d Deal) West() Hand { return d.hands[West] }

// String renders the deal as four lines, one per seat:
//
//	N:♠A732  ♥J984  ♦A9  ♣AK7
func (d Deal) String() string {
	lines := make([]string, 4)
	for i, seat := range Seats {
		lines[i] = seat.String() + ":" + d.hands[seat].String()
	}
	return strings.Join(lines, "\n")
}
