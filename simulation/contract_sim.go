package simulation

import (
	"fmt"

	"github.com/pwaldron/bridgesim/bridge"
	"github.com/pwaldron/bridgesim/solver"
)

// BestContract compares candidate contracts over a batch of deals: each
// deal is solved once for its maximum tricks per strain, and every
// contract is scored against the tricks of its own strain.
type BestContract struct {
	Simulation
	Contracts []bridge.Contract

	dd      solver.Solver
	workers int
	tricks  []map[bridge.Strain]int
}

// NewBestContract creates a contract comparison over the given deals,
// declaring seat and candidate contracts, solved through dd.
func NewBestContract(deals []bridge.Deal, declarer bridge.Seat, contracts []bridge.Contract, dd solver.Solver, opts ...Option) *BestContract {
	cfg := config{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &BestContract{
		Simulation: Simulation{Deals: deals, Declarer: declarer},
		Contracts:  contracts,
		dd:         dd,
		workers:    cfg.workers,
	}
}

// solve runs the oracle once per deal and memoizes the per-strain tricks.
func (b *BestContract) solve() error {
	if b.tricks != nil {
		return nil
	}
	tricks := make([]map[bridge.Strain]int, len(b.Deals))
	err := forEach(len(b.Deals), b.workers, func(i int) error {
		t, err := b.dd.SolveStrains(b.Deals[i], b.Declarer)
		if err != nil {
			return fmt.Errorf("solving deal %d: %w", i, err)
		}
		for _, strain := range bridge.Strains {
			if _, ok := t[strain]; !ok {
				return fmt.Errorf("solving deal %d: result missing strain %s", i, strain)
			}
		}
		tricks[i] = t
		return nil
	})
	if err != nil {
		return err
	}
	b.tricks = tricks
	return nil
}

// Scores returns one score vector per candidate contract, rows aligned
// with Contracts and columns with Deals. Positive entries are made
// contracts.
func (b *BestContract) Scores() ([][]int, error) {
	if err := b.solve(); err != nil {
		return nil, err
	}
	scores := make([][]int, len(b.Contracts))
	for ci, contract := range b.Contracts {
		row := make([]int, len(b.Deals))
		for di := range b.Deals {
			row[di] = contract.Score(b.tricks[di][contract.Strain()])
		}
		scores[ci] = row
	}
	return scores, nil
}

// PercentagesMade returns, per candidate contract, the fraction of deals
// on which it makes.
func (b *BestContract) PercentagesMade() ([]float64, error) {
	scores, err := b.Scores()
	if err != nil {
		return nil, err
	}
	made := make([]float64, len(scores))
	for i, row := range scores {
		made[i], err = PercentageMade(row)
		if err != nil {
			return nil, err
		}
	}
	return made, nil
}

// IMPMatrix returns the pairwise comparison of the candidate contracts:
// entry [j][i] is the mean IMPs gained per deal by bidding contract j
// instead of contract i. Antisymmetric with a zero diagonal.
func (b *BestContract) IMPMatrix() ([][]float64, error) {
	scores, err := b.Scores()
	if err != nil {
		return nil, err
	}
	return impMatrix(scores)
}
