package bridge

import "fmt"

// Suit identifies one of the four suits. The integer values match the
// double-dummy solver's suit numbering and must not be reordered.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists the suits in canonical order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol used in hand and deal rendering.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// ParseSuit parses a one-letter suit code (S, H, D or C).
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "S":
		return Spades, nil
	case "H":
		return Hearts, nil
	case "D":
		return Diamonds, nil
	case "C":
		return Clubs, nil
	default:
		return 0, fmt.Errorf("invalid suit %q", s)
	}
}

// Strain identifies the denomination of a contract: one of the four suits
// or no trumps. The integer values match the double-dummy solver's strain
// numbering and must not be reordered.
type Strain int

const (
	StrainSpades Strain = iota
	StrainHearts
	StrainDiamonds
	StrainClubs
	NoTrump
)

// Strains lists the strains in canonical order.
var Strains = [5]Strain{StrainSpades, StrainHearts, StrainDiamonds, StrainClubs, NoTrump}

func (s Strain) String() string {
	switch s {
	case StrainSpades:
		return "S"
	case StrainHearts:
		return "H"
	case StrainDiamonds:
		return "D"
	case StrainClubs:
		return "C"
	case NoTrump:
		return "NT"
	default:
		return "?"
	}
}

// ParseStrain parses a strain code (S, H, D, C or NT).
func ParseStrain(s string) (Strain, error) {
	switch s {
	case "S":
		return StrainSpades, nil
	case "H":
		return StrainHearts, nil
	case "D":
		return StrainDiamonds, nil
	case "C":
		return StrainClubs, nil
	case "NT":
		return NoTrump, nil
	default:
		return 0, fmt.Errorf("invalid strain %q", s)
	}
}

// Suit returns the trump suit of a suit strain. ok is false for NoTrump.
func (s Strain) Suit() (Suit, bool) {
	if s == NoTrump {
		return 0, false
	}
	return Suit(s), true
}

// Seat identifies a player's position at the table. The integer values
// match the double-dummy solver's seat numbering.
type Seat int

const (
	North Seat = iota
	East
	South
	West
)

// Seats lists the seats in canonical order.
var Seats = [4]Seat{North, East, South, West}

func (s Seat) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// ParseSeat parses a one-letter seat code (N, E, S or W).
func ParseSeat(s string) (Seat, error) {
	switch s {
	case "N":
		return North, nil
	case "E":
		return East, nil
	case "S":
		return South, nil
	case "W":
		return West, nil
	default:
		return 0, fmt.Errorf("invalid seat %q", s)
	}
}

// Left returns the seat to the left of s, the opening leader when s declares.
func (s Seat) Left() Seat {
	return (s + 1) % 4
}

// Rank is a card rank from Two (2) to Ace (14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// ParseRank parses a single rank character (2-9, T, J, Q, K or A).
func ParseRank(s string) (Rank, error) {
	if len(s) == 1 {
		for i := 0; i < len(rankChars); i++ {
			if rankChars[i] == s[0] {
				return Rank(i) + Two, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid rank %q", s)
}

// Points returns the Milton high-card point value of the rank
// (A=4, K=3, Q=2, J=1, all others 0).
func (r Rank) Points() int {
	switch r {
	case Ace:
		return 4
	case King:
		return 3
	case Queen:
		return 2
	case Jack:
		return 1
	default:
		return 0
	}
}
