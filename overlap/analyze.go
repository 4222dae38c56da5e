package overlap

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/diagscan/matrix"
)

// Analyze scans every diagonal of the distance grid of x and y and reduces
// the per-diagonal statistics to the best-match and best-run diagonals.
//
// Steps:
//  1. Validate options, then inputs (empty first, then the Square length check).
//  2. Allocate T = |x|+|y|-1 zeroed DiagonalStats slots.
//  3. For each index in traversal order, derive its edge start
//     (see EdgeCoordinate); skip it when the cutoff applies and its length
//     is <= CutoffLength, otherwise scan it into its own slot.
//  4. Pick the first diagonal with the largest MatchCount and the first with
//     the largest LongestRun, and map both back to grid coordinates.
//
// A nil opts uses DefaultOptions.
//
// Errors:
//   - ErrBadOptions     — invalid tolerance, divisor, worker count or variant.
//   - ErrEmptySequence  — either input is empty.
//   - ErrLengthMismatch — Square variant with |x| != |y|; nothing is scanned.
//
// Complexity: O(|x|·|y|) time, O(|x|+|y|) memory.
func Analyze(x, y []float64, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}

	nx, ny := len(x), len(y)
	if nx == 0 || ny == 0 {
		return nil, ErrEmptySequence
	}
	if o.Variant == Square && nx != ny {
		return nil, fmt.Errorf("|X|=%d, |Y|=%d: %w", nx, ny, ErrLengthMismatch)
	}

	res := &Result{
		NX:     nx,
		NY:     ny,
		Stats:  make([]DiagonalStats, DiagonalCount(nx, ny)),
		Cutoff: -1,
	}
	if o.ApplyCutoff {
		res.Cutoff = CutoffLength(nx, ny, o.CutoffDivisor)
	}

	tol2 := o.Tolerance * o.Tolerance
	if o.Workers > 1 {
		res.Scanned = sweepParallel(x, y, res.Stats, res.Cutoff, tol2, o.Workers)
	} else {
		res.Scanned = sweepRange(x, y, res.Stats, res.Cutoff, tol2, 0, 1)
	}
	res.Skipped = len(res.Stats) - res.Scanned

	res.reduce()

	return res, nil
}

// validateOptions enforces the documented option ranges.
func validateOptions(o Options) error {
	if err := checkTolerance(o.Tolerance); err != nil {
		return err
	}
	if o.ApplyCutoff && o.CutoffDivisor < 1 {
		return fmt.Errorf("cutoff divisor %d: %w", o.CutoffDivisor, ErrBadOptions)
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers %d: %w", o.Workers, ErrBadOptions)
	}
	if o.Variant != Rectangular && o.Variant != Square {
		return fmt.Errorf("%v: %w", o.Variant, ErrBadOptions)
	}

	return nil
}

// sweepRange scans indices first, first+step, ... into stats and returns how
// many diagonals were scanned. Each index owns its slot exclusively.
func sweepRange(x, y []float64, stats []DiagonalStats, cutoff int, tol2 float64, first, step int) int {
	nx, ny := len(x), len(y)
	scanned := 0
	for idx := first; idx < len(stats); idx += step {
		var start Coord
		if idx < nx {
			start = Coord{X: idx}
		} else {
			start = Coord{Y: idx - nx + 1}
		}
		if cutoff >= 0 && DiagonalLength(start, nx, ny) <= cutoff {
			continue
		}
		stats[idx] = scanDiagonal(x, y, start.X, start.Y, tol2)
		scanned++
	}

	return scanned
}

// sweepParallel distributes indices over workers with a stride so that long
// and short diagonals are spread evenly. No locking: slots are disjoint.
func sweepParallel(x, y []float64, stats []DiagonalStats, cutoff int, tol2 float64, workers int) int {
	workers = min(workers, len(stats))
	counts := make([]int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			counts[w] = sweepRange(x, y, stats, cutoff, tol2, w, workers)
		}(w)
	}
	wg.Wait()

	total := 0
	for _, c := range counts {
		total += c
	}

	return total
}

// reduce fills BestMatch and BestRun from Stats.
func (r *Result) reduce() {
	matches := make([]int, len(r.Stats))
	runs := make([]int, len(r.Stats))
	for i, st := range r.Stats {
		matches[i] = st.MatchCount
		runs[i] = st.LongestRun
	}

	r.BestMatch = r.summarize(matches)
	best := r.summarize(runs)
	r.BestRun = RunSummary{Summary: best, Start: r.Stats[best.Index].RunStart}
}

func (r *Result) summarize(values []int) Summary {
	idx := matrix.ArgMax(values)
	edge, _ := EdgeCoordinate(idx, r.NX, r.NY) // idx is always in range: len(values) == T >= 1

	return Summary{
		Index:   idx,
		Edge:    edge,
		Value:   values[idx],
		Percent: PercentMatch(values, r.NX, r.NY),
	}
}

// PercentMatch returns 100 * max(values) / min(nx, ny): the best diagonal's
// metric as a share of the longest possible diagonal. It returns 0 for empty
// values or a degenerate grid.
func PercentMatch(values []int, nx, ny int) float64 {
	idx := matrix.ArgMax(values)
	shorter := min(nx, ny)
	if idx < 0 || shorter <= 0 {
		return 0
	}

	return 100 * float64(values[idx]) / float64(shorter)
}
