package bridge

import (
	"fmt"
	"strings"
)

// Hand is an immutable set of up to 13 unique cards. The zero value is an
// empty hand. Shape and point count are derived once at construction.
type Hand struct {
	cards  []Card
	suits  [4][]Card
	shape  [4]int
	points int
}

// NewHand creates a Hand from a card list, rejecting duplicates and hands
// of more than 13 cards. The card order is preserved within each suit.
func NewHand(cards []Card) (Hand, error) {
	if len(cards) > 13 {
		return Hand{}, fmt.Errorf("hand with %d cards not valid", len(cards))
	}
	seen := make(map[Card]bool, len(cards))
	h := Hand{cards: append([]Card(nil), cards...)}
	for _, c := range h.cards {
		if seen[c] {
			return Hand{}, fmt.Errorf("hand holds %s more than once", c)
		}
		seen[c] = true
		h.suits[c.Suit()] = append(h.suits[c.Suit()], c)
		h.shape[c.Suit()]++
		h.points += c.Rank().Points()
	}
	return h, nil
}

// ParseHand parses the dotted hand notation "spades.hearts.diamonds.clubs",
// each segment a run of rank characters. Empty segments denote voids, so
// "AKQJT3.5.Q.A9872" and "..." are both valid.
func ParseHand(s string) (Hand, error) {
	segments := strings.Split(s, ".")
	if len(segments) != 4 {
		return Hand{}, fmt.Errorf("hand %q: want 4 dot-separated suits, got %d", s, len(segments))
	}
	var cards []Card
	for i, segment := range segments {
		for j := 0; j < len(segment); j++ {
			card, err := ParseCard(segment[j:j+1] + Suits[i].String())
			if err != nil {
				return Hand{}, fmt.Errorf("hand %q: %w", s, err)
			}
			cards = append(cards, card)
		}
	}
	return NewHand(cards)
}

// Cards returns a copy of the hand's cards.
func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Len returns the number of cards in the hand.
func (h Hand) Len() int {
	return len(h.cards)
}

// Has reports whether the hand holds the given card.
func (h Hand) Has(card Card) bool {
	for _, c := range h.suits[card.Suit()] {
		if c == card {
			return true
		}
	}
	return false
}

// SuitHolding returns a copy of the hand's cards in the given suit.
func (h Hand) SuitHolding(s Suit) []Card {
	return append([]Card(nil), h.suits[s]...)
}

// Shape returns the suit lengths as (spades, hearts, diamonds, clubs).
func (h Hand) Shape() [4]int {
	return h.shape
}

// Points returns the Milton high-card point count of the hand.
func (h Hand) Points() int {
	return h.points
}

// Keycards counts the keycards held for the given trump strain: the four
// aces plus the king of trumps. For NoTrump only aces count, as in regular
// Blackwood.
func (h Hand) Keycards(trump Strain) int {
	keycards := 0
	for _, c := range h.cards {
		if c.Rank() == Ace {
			keycards++
		}
	}
	if suit, ok := trump.Suit(); ok {
		if h.Has(Card{rank: King, suit: suit}) {
			keycards++
		}
	}
	return keycards
}

// String renders the hand with unicode suit symbols, double-space
// separated, e.g. "♠AKQJT3  ♥5  ♦Q  ♣A9872". Void suits render as a bare
// symbol.
func (h Hand) String() string {
	parts := make([]string, 4)
	for i, suit := range Suits {
		var b strings.Builder
		b.WriteString(suit.Symbol())
		for _, c := range h.suits[suit] {
			b.WriteString(c.Rank().String())
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, "  ")
}
