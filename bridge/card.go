package bridge

import "fmt"

// Card is a single playing card. The zero value is not a valid card;
// construct cards with NewCard or ParseCard.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a Card, validating rank and suit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("invalid card rank %d", rank)
	}
	if suit < Spades || suit > Clubs {
		return Card{}, fmt.Errorf("invalid card suit %d", suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// ParseCard parses a two-character card code in rank-suit order, e.g. "AS"
// for the ace of spades or "7D" for the seven of diamonds.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card %q: want 2 characters", s)
	}
	rank, err := ParseRank(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	suit, err := ParseSuit(s[1:])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	return Card{rank: rank, suit: suit}, nil
}

// Rank returns the rank of the card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the card.
func (c Card) Suit() Suit {
	return c.suit
}

// String returns the two-character card code, the inverse of ParseCard.
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Number returns the card's position in the (suit, rank) encoding used to
// order cards: suit*100 + rank.
func (c Card) Number() int {
	return int(c.suit)*100 + int(c.rank)
}

// CardFromNumber is the inverse of Number.
func CardFromNumber(n int) (Card, error) {
	return NewCard(Rank(n%100), Suit(n/100))
}

// Deck returns the 52-card deck in canonical order: spades two through ace,
// then hearts, diamonds and clubs. The canonical order doubles as the index
// space for deal unranking.
func Deck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			deck = append(deck, Card{rank: rank, suit: suit})
		}
	}
	return deck
}
