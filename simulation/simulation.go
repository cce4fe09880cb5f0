package simulation

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/pwaldron/bridgesim/bridge"
)

// impBoundaries holds the lower end of each IMP band; the IMP value of a
// score difference is its insertion position in this list. Differences
// beyond the last band cap at 24 IMPs.
var impBoundaries = []int{
	15, 45, 85, 125, 165, 215, 265, 315, 365, 425, 495, 595, 745, 895,
	1095, 1295, 1495, 1745, 1995, 2245, 2495, 2995, 3495, 3995,
}

// IMPs converts a raw score difference to signed International Match
// Points: the magnitude is looked up in the IMP band table and the sign of
// the difference is preserved.
func IMPs(diff int) int {
	abs, sign := diff, 1
	if diff < 0 {
		abs, sign = -diff, -1
	}
	return sign * sort.SearchInts(impBoundaries, abs+1)
}

// Simulation holds what every batch comparison shares: the accepted deals
// and the declaring seat.
type Simulation struct {
	Deals    []bridge.Deal
	Declarer bridge.Seat
}

// PercentageMade returns the fraction of non-negative entries, the deals
// on which the scored action succeeded.
func PercentageMade(scores []int) (float64, error) {
	if len(scores) == 0 {
		return 0, errors.New("no scores to aggregate")
	}
	made := 0
	for _, s := range scores {
		if s >= 0 {
			made++
		}
	}
	return float64(made) / float64(len(scores)), nil
}

// IMPsGained returns the mean IMPs gained per deal by taking the action
// behind current over the action behind comparison. Swapping the arguments
// negates the result.
func IMPsGained(current, comparison []int) (float64, error) {
	if len(current) != len(comparison) {
		return 0, fmt.Errorf("score vectors of length %d and %d cannot be compared", len(current), len(comparison))
	}
	if len(current) == 0 {
		return 0, errors.New("no scores to compare")
	}
	total := 0
	for i := range current {
		total += IMPs(current[i] - comparison[i])
	}
	return float64(total) / float64(len(current)), nil
}

// impMatrix builds the pairwise comparison matrix over the score rows:
// entry [j][i] is the mean IMPs gained by row j's action over row i's.
// The matrix is antisymmetric with a zero diagonal.
func impMatrix(scores [][]int) ([][]float64, error) {
	matrix := make([][]float64, len(scores))
	for j := range scores {
		matrix[j] = make([]float64, len(scores))
		for i := range scores {
			gained, err := IMPsGained(scores[j], scores[i])
			if err != nil {
				return nil, err
			}
			matrix[j][i] = gained
		}
	}
	return matrix, nil
}

// Option configures a batch simulation.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers bounds the pool solving deals concurrently. Values below 1
// select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// forEach runs fn for every index in [0, n) on a bounded worker pool. The
// oracle calls it dispatches are pure per-deal functions, so workers share
// nothing but the index counter; the first error stops the pool.
func forEach(n, workers int, fn func(i int) error) error {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	var next atomic.Int64
	errs := make(chan error, 1)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				if err := fn(i); err != nil {
					select {
					case errs <- err:
					default:
					}
					return
				}
			}
		}()
	}
	wg.Wait()
	select {
	case err := <-errs:
		return err
	default:
		return nil
	}
}
