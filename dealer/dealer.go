package dealer

import (
	"crypto/cipher"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"

	"go.dedis.ch/kyber/v3/util/random"

	"github.com/pwaldron/bridgesim/bridge"
)

const handSize = 13

var bigOne = big.NewInt(1)

// DefaultMaxAttempts bounds the rejection-sampling loop so an
// unsatisfiable acceptance predicate fails instead of spinning forever.
const DefaultMaxAttempts = 1_000_000

// Accept decides whether a candidate deal belongs to the constrained space.
type Accept func(bridge.Deal) bool

// Dealer draws complete deals uniformly at random from the space of deals
// extending four partial hands, keeping those an acceptance predicate
// admits. Draws are made by unranking uniform arbitrary-precision indexes
// into the combinatorial space, never by enumerating or shuffling it.
type Dealer struct {
	hands       [4]bridge.Hand
	accept      Accept
	count       int
	maxAttempts int64
	workers     int
	rng         cipher.Stream
}

// Option configures a Dealer.
type Option func(Dealer) Dealer

// WithCount sets how many accepted deals FindDeals returns. Default 10.
func WithCount(n int) Option {
	return func(d Dealer) Dealer {
		d.count = n
		return d
	}
}

// WithMaxAttempts caps the total number of candidate draws across all
// workers. Zero removes the cap. Default DefaultMaxAttempts.
func WithMaxAttempts(n int64) Option {
	return func(d Dealer) Dealer {
		d.maxAttempts = n
		return d
	}
}

// WithWorkers sets the number of goroutines drawing candidates, each with
// its own random stream. Default 1 (inline).
func WithWorkers(n int) Option {
	return func(d Dealer) Dealer {
		d.workers = n
		return d
	}
}

// WithRandomStream replaces the default crypto-seeded random stream. Only
// the single-worker dealer uses it; parallel workers always seed their own.
func WithRandomStream(s cipher.Stream) Option {
	return func(d Dealer) Dealer {
		d.rng = s
		return d
	}
}

// New creates a Dealer for the given partial hands. A nil accept admits
// every deal. Overlapping partial hands are reported by FindDeals.
func New(hands [4]bridge.Hand, accept Accept, opts ...Option) Dealer {
	d := Dealer{
		hands:       hands,
		accept:      accept,
		count:       10,
		maxAttempts: DefaultMaxAttempts,
		workers:     1,
	}
	if d.accept == nil {
		d.accept = func(bridge.Deal) bool { return true }
	}
	for _, opt := range opts {
		d = opt(d)
	}
	if d.rng == nil {
		d.rng = random.New()
	}
	return d
}

// FindDeals draws candidates until it has collected the configured number
// of accepted deals. Every returned deal extends the partial hands, covers
// all 52 cards without duplicates, and satisfies the acceptance predicate.
func (d Dealer) FindDeals() ([]bridge.Deal, error) {
	s, err := newSpace(d.hands)
	if err != nil {
		return nil, err
	}
	if d.workers > 1 {
		return d.findParallel(s)
	}
	return d.findSequential(s)
}

func (d Dealer) findSequential(s *space) ([]bridge.Deal, error) {
	deals := make([]bridge.Deal, 0, d.count)
	var attempts int64
	for len(deals) < d.count {
		attempts++
		if d.maxAttempts > 0 && attempts > d.maxAttempts {
			return nil, fmt.Errorf("no %d deals satisfying the acceptance predicate in %d attempts", d.count, d.maxAttempts)
		}
		deal, err := s.unrank(drawIndex(s.total, d.rng))
		if err != nil {
			return nil, err
		}
		if d.accept(deal) {
			deals = append(deals, deal)
		}
	}
	return deals, nil
}

// drawIndex draws a uniform deal index in [0, total). random.Int returns
// values in [1, mod), excluding both zero and a total of one, so the draw
// is taken over [1, total] and shifted down.
func drawIndex(total *big.Int, rng cipher.Stream) *big.Int {
	idx := random.Int(new(big.Int).Add(total, bigOne), rng)
	return idx.Sub(idx, bigOne)
}

// findParallel fans the rejection loop out over d.workers goroutines. The
// draws have no data dependency, so each worker holds its own random
// stream and the workers share only the attempt budget.
func (d Dealer) findParallel(s *space) ([]bridge.Deal, error) {
	found := make(chan bridge.Deal, d.workers)
	done := make(chan struct{})
	exhausted := make(chan struct{})
	var attempts atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := random.New()
			for {
				select {
				case <-done:
					return
				default:
				}
				if d.maxAttempts > 0 && attempts.Add(1) > d.maxAttempts {
					return
				}
				deal, err := s.unrank(drawIndex(s.total, rng))
				if err != nil || !d.accept(deal) {
					continue
				}
				select {
				case found <- deal:
				case <-done:
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(exhausted)
	}()

	deals := make([]bridge.Deal, 0, d.count)
	for len(deals) < d.count {
		select {
		case deal := <-found:
			deals = append(deals, deal)
		case <-exhausted:
			// Workers have stopped, but accepted deals may still sit in
			// the found buffer.
			for len(deals) < d.count {
				select {
				case deal := <-found:
					deals = append(deals, deal)
				default:
					return nil, fmt.Errorf("no %d deals satisfying the acceptance predicate in %d attempts", d.count, d.maxAttempts)
				}
			}
		}
	}
	close(done)
	return deals, nil
}

// AvailableCards returns the undealt cards in canonical deck order: the
// deck minus the union of the partial hands. A card held by more than one
// hand is an invariant violation.
func AvailableCards(hands [4]bridge.Hand) ([]bridge.Card, error) {
	dealt := make(map[bridge.Card]bridge.Seat)
	for _, seat := range bridge.Seats {
		for _, c := range hands[seat].Cards() {
			if other, dup := dealt[c]; dup {
				return nil, fmt.Errorf("card %s dealt to both %s and %s", c, other, seat)
			}
			dealt[c] = seat
		}
	}
	pool := make([]bridge.Card, 0, 52-len(dealt))
	for _, c := range bridge.Deck() {
		if _, taken := dealt[c]; !taken {
			pool = append(pool, c)
		}
	}
	return pool, nil
}

// TotalPossibleDeals counts the complete deals extending the partial
// hands: the multinomial coefficient for distributing the undealt pool
// over the hands' remaining slots. The count does not fit in 64 bits for
// sparse partial hands, reaching about 5.36e28 from an empty start.
func TotalPossibleDeals(hands [4]bridge.Hand) (*big.Int, error) {
	s, err := newSpace(hands)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(s.total), nil
}

// UnrankDeal maps an index in [0, TotalPossibleDeals) to the unique deal
// it denotes under the combinatorial number system, without enumerating
// the space.
func UnrankDeal(idx *big.Int, hands [4]bridge.Hand) (bridge.Deal, error) {
	s, err := newSpace(hands)
	if err != nil {
		return bridge.Deal{}, err
	}
	return s.unrank(idx)
}

// space is a prepared sampling space: the undealt pool, each seat's
// remaining slot count, and the block sizes used to split an index into
// one combination per seat.
type space struct {
	partial [4]bridge.Hand
	pool    []bridge.Card
	needs   [4]int
	subs    [3]*big.Int
	total   *big.Int
}

func newSpace(hands [4]bridge.Hand) (*space, error) {
	pool, err := AvailableCards(hands)
	if err != nil {
		return nil, err
	}
	s := &space{partial: hands, pool: pool}
	for seat, h := range hands {
		s.needs[seat] = handSize - h.Len()
	}

	// subs[i] is the number of ways to distribute what remains after
	// seats 0..i have drawn; the index splits as idx = combIdx*sub + rest.
	remaining := int64(len(pool))
	s.total = big.NewInt(1)
	for seat := 2; seat >= 0; seat-- {
		later := big.NewInt(1)
		rem := remaining
		for i := 0; i <= seat; i++ {
			rem -= int64(s.needs[i])
		}
		for i := seat + 1; i < 3; i++ {
			later.Mul(later, new(big.Int).Binomial(rem, int64(s.needs[i])))
			rem -= int64(s.needs[i])
		}
		s.subs[seat] = later
	}
	rem := remaining
	for seat := 0; seat < 3; seat++ {
		s.total.Mul(s.total, new(big.Int).Binomial(rem, int64(s.needs[seat])))
		rem -= int64(s.needs[seat])
	}
	return s, nil
}

func (s *space) unrank(idx *big.Int) (bridge.Deal, error) {
	if idx.Sign() < 0 || idx.Cmp(s.total) >= 0 {
		return bridge.Deal{}, fmt.Errorf("deal index %s outside [0, %s)", idx, s.total)
	}
	var drawn [4][]bridge.Card
	remaining := s.pool
	rest := new(big.Int).Set(idx)
	for seat := 0; seat < 3; seat++ {
		combIdx, mod := new(big.Int).DivMod(rest, s.subs[seat], new(big.Int))
		rest = mod
		drawn[seat], remaining = unrankCombination(remaining, s.needs[seat], combIdx)
	}
	drawn[3] = remaining

	var full [4]bridge.Hand
	for seat := range full {
		h, err := bridge.NewHand(append(s.partial[seat].Cards(), drawn[seat]...))
		if err != nil {
			return bridge.Deal{}, err
		}
		full[seat] = h
	}
	return bridge.NewDeal(full[0], full[1], full[2], full[3])
}

// unrankCombination maps idx in [0, C(len(pool), k)) to the lexicographic
// k-combination it denotes, returning the chosen cards and the rest of the
// pool in order. At each position the combinations containing that card
// number C(n-1, k-1); the index either falls inside that block or skips it.
func unrankCombination(pool []bridge.Card, k int, idx *big.Int) (chosen, rest []bridge.Card) {
	chosen = make([]bridge.Card, 0, k)
	rest = make([]bridge.Card, 0, len(pool)-k)
	idx = new(big.Int).Set(idx)
	block := new(big.Int)
	for i, card := range pool {
		if k == 0 {
			rest = append(rest, pool[i:]...)
			break
		}
		block.Binomial(int64(len(pool)-i-1), int64(k-1))
		if idx.Cmp(block) < 0 {
			chosen = append(chosen, card)
			k--
		} else {
			idx.Sub(idx, block)
			rest = append(rest, card)
		}
	}
	return chosen, rest
}
