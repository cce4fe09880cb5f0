package simulation

import (
	"errors"
	"fmt"

	"github.com/pwaldron/bridgesim/bridge"
	"github.com/pwaldron/bridgesim/solver"
)

// BestLead compares the opening leads available against a contract over a
// batch of deals. Scores are taken from the leading defender's
// perspective: positive means the contract goes down.
type BestLead struct {
	Simulation
	Hand     bridge.Hand
	Contract bridge.Contract

	dd      solver.Solver
	workers int
	leads   []bridge.Card
	tricks  []map[bridge.Card]int
}

// NewBestLead creates a lead comparison for the opening leader's hand
// against the given contract, solved through dd. The declarer sits to the
// leader's right.
func NewBestLead(deals []bridge.Deal, declarer bridge.Seat, hand bridge.Hand, contract bridge.Contract, dd solver.Solver, opts ...Option) *BestLead {
	cfg := config{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BestLead{
		Simulation: Simulation{Deals: deals, Declarer: declarer},
		Hand:       hand,
		Contract:   contract,
		dd:         dd,
		workers:    cfg.workers,
	}
}

// solve runs the oracle once per deal. The set of distinct leads is taken
// from the first deal's result; a deal whose result names a different lead
// set fails the batch rather than being silently reconciled.
func (b *BestLead) solve() error {
	if b.tricks != nil {
		return nil
	}
	if len(b.Deals) == 0 {
		return errors.New("no deals to solve")
	}
	results := make([][]solver.LeadTricks, len(b.Deals))
	err := forEach(len(b.Deals), b.workers, func(i int) error {
		r, err := b.dd.SolveLeads(b.Deals[i], b.Contract.Strain(), b.Declarer)
		if err != nil {
			return fmt.Errorf("solving deal %d: %w", i, err)
		}
		results[i] = r
		return nil
	})
	if err != nil {
		return err
	}

	leads := make([]bridge.Card, 0, len(results[0]))
	for _, lt := range results[0] {
		leads = append(leads, lt.Card)
	}
	tricks := make([]map[bridge.Card]int, len(results))
	for i, result := range results {
		if len(result) != len(leads) {
			return fmt.Errorf("deal %d offers %d distinct leads, deal 0 offers %d", i, len(result), len(leads))
		}
		byCard := make(map[bridge.Card]int, len(result))
		for _, lt := range result {
			byCard[lt.Card] = lt.Tricks
		}
		for _, lead := range leads {
			if _, ok := byCard[lead]; !ok {
				return fmt.Errorf("deal %d offers no lead of %s", i, lead)
			}
		}
		tricks[i] = byCard
	}
	b.leads = leads
	b.tricks = tricks
	return nil
}

// Leads returns the distinct opening leads being compared, in the native
// solver's order for the first deal.
func (b *BestLead) Leads() ([]bridge.Card, error) {
	if err := b.solve(); err != nil {
		return nil, err
	}
	return append([]bridge.Card(nil), b.leads...), nil
}

// Scores returns one score vector per lead, rows aligned with Leads and
// columns with Deals. The declarer's score is negated, so a positive entry
// means that lead beats the contract on that deal.
func (b *BestLead) Scores() ([][]int, error) {
	if err := b.solve(); err != nil {
		return nil, err
	}
	scores := make([][]int, len(b.leads))
	for li, lead := range b.leads {
		row := make([]int, len(b.Deals))
		for di := range b.Deals {
			row[di] = -b.Contract.Score(b.tricks[di][lead])
		}
		scores[li] = row
	}
	return scores, nil
}

// PercentagesBeaten returns, per lead, the fraction of deals on which the
// lead defeats the contract.
func (b *BestLead) PercentagesBeaten() ([]float64, error) {
	scores, err := b.Scores()
	if err != nil {
		return nil, err
	}
	beaten := make([]float64, len(scores))
	for i, row := range scores {
		beaten[i], err = PercentageMade(row)
		if err != nil {
			return nil, err
		}
	}
	return beaten, nil
}

// IMPMatrix returns the pairwise comparison of the leads: entry [j][i] is
// the mean IMPs gained per deal by leading card j instead of card i.
// Antisymmetric with a zero diagonal.
func (b *BestLead) IMPMatrix() ([][]float64, error) {
	scores, err := b.Scores()
	if err != nil {
		return nil, err
	}
	return impMatrix(scores)
}
