package overlap

import (
	"fmt"
	"math"
)

// ScanDiagonal sweeps one diagonal of the distance grid of x and y and
// reports its match statistics.
//
// Algorithm:
//  1. Start at (start.X, start.Y), which must lie on the x=0 or y=0 edge.
//  2. At every step compute d = (x[i]-y[j])². A cell matches when
//     d <= tolerance²; matches bump MatchCount and the active run.
//  3. A non-matching cell closes the active run; if it beats LongestRun
//     it is recorded with its first cell (i-run, j-run).
//  4. Stop after the cell where either index reaches its last position,
//     closing a run that touches the boundary with start (i+1-run, j+1-run).
//
// Errors:
//   - ErrEmptySequence          — if either input is empty.
//   - ErrInvalidStartCoordinate — if start is off the edge or out of bounds.
//   - ErrBadOptions             — if tolerance is negative, NaN or ±Inf.
//
// Complexity: O(min(|x|-start.X, |y|-start.Y)) time, O(1) memory.
func ScanDiagonal(x, y []float64, start Coord, tolerance float64) (DiagonalStats, error) {
	if len(x) == 0 || len(y) == 0 {
		return DiagonalStats{}, ErrEmptySequence
	}
	if err := checkTolerance(tolerance); err != nil {
		return DiagonalStats{}, err
	}
	if err := checkStart(start, len(x), len(y)); err != nil {
		return DiagonalStats{}, err
	}

	return scanDiagonal(x, y, start.X, start.Y, tolerance*tolerance), nil
}

// scanDiagonal is the unchecked sweep; callers guarantee a valid edge start.
func scanDiagonal(x, y []float64, i, j int, tol2 float64) DiagonalStats {
	var st DiagonalStats
	lastX, lastY := len(x)-1, len(y)-1
	run := 0

	for {
		d := x[i] - y[j]
		if d*d <= tol2 {
			st.MatchCount++
			run++
		} else {
			if run > st.LongestRun {
				st.LongestRun = run
				st.RunStart = Coord{X: i - run, Y: j - run}
			}
			run = 0
		}

		if i >= lastX || j >= lastY {
			// the current cell belongs to the run, hence the +1
			if run > st.LongestRun {
				st.LongestRun = run
				st.RunStart = Coord{X: i + 1 - run, Y: j + 1 - run}
			}

			return st
		}
		i++
		j++
	}
}

// checkTolerance rejects negative and non-finite tolerances.
func checkTolerance(tol float64) error {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return fmt.Errorf("tolerance %v: %w", tol, ErrBadOptions)
	}

	return nil
}
