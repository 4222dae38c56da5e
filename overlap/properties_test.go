package overlap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/diagscan/matrix"
	"github.com/katalvlaran/diagscan/overlap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomSeq returns n values drawn from a small alphabet so that matches are common.
func randomSeq(rng *rand.Rand, n, alphabet int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(rng.Intn(alphabet))
	}

	return out
}

// oracleStats recomputes one diagonal from the naive row-major grid.
func oracleStats(t *testing.T, g *matrix.Dense, start overlap.Coord) overlap.DiagonalStats {
	t.Helper()
	cells, err := matrix.DiagonalCells(g, start.X, start.Y)
	require.NoError(t, err)

	var st overlap.DiagonalStats
	run := 0
	for k, d := range cells {
		if d != 0 {
			run = 0
			continue
		}
		st.MatchCount++
		run++
		if run > st.LongestRun {
			st.LongestRun = run
			st.RunStart = overlap.Coord{X: start.X + k - run + 1, Y: start.Y + k - run + 1}
		}
	}

	return st
}

var shapes = []struct{ nx, ny int }{
	{1, 1}, {1, 7}, {7, 1}, {6, 6}, {5, 8}, {8, 5}, {13, 21}, {40, 33},
}

// TestAnalyze_MatchesNaiveGrid cross-checks every diagonal against the full grid.
func TestAnalyze_MatchesNaiveGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	opts := overlap.DefaultOptions()
	opts.ApplyCutoff = false

	for _, sh := range shapes {
		x := randomSeq(rng, sh.nx, 3)
		y := randomSeq(rng, sh.ny, 3)
		g, err := matrix.SquaredDistances(x, y)
		require.NoError(t, err)

		res, err := overlap.Analyze(x, y, &opts)
		require.NoError(t, err)
		for idx, st := range res.Stats {
			start, err := res.EdgeCoordinate(idx)
			require.NoError(t, err)
			assert.Equal(t, oracleStats(t, g, start), st, "%dx%d diagonal %d from %v", sh.nx, sh.ny, idx, start)
		}
	}
}

// TestAnalyze_CoversEveryCellOnce checks the traversal visits nx+ny-1 distinct
// diagonals whose lengths add up to the full grid.
func TestAnalyze_CoversEveryCellOnce(t *testing.T) {
	for _, sh := range shapes {
		total := overlap.DiagonalCount(sh.nx, sh.ny)
		require.Equal(t, sh.nx+sh.ny-1, total)

		seen := make(map[int]bool, total)
		cells := 0
		for idx := 0; idx < total; idx++ {
			start, err := overlap.EdgeCoordinate(idx, sh.nx, sh.ny)
			require.NoError(t, err)
			assert.False(t, seen[start.Offset()], "offset %d visited twice", start.Offset())
			seen[start.Offset()] = true
			cells += overlap.DiagonalLength(start, sh.nx, sh.ny)
		}
		assert.Equal(t, sh.nx*sh.ny, cells, "%dx%d", sh.nx, sh.ny)
	}
}

// TestAnalyze_Invariants checks run bound, run-start validity and percent range.
func TestAnalyze_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, sh := range shapes {
		x := randomSeq(rng, sh.nx, 2)
		y := randomSeq(rng, sh.ny, 2)
		res, err := overlap.Analyze(x, y, nil)
		require.NoError(t, err)

		for idx, st := range res.Stats {
			assert.LessOrEqual(t, st.LongestRun, st.MatchCount)
			if st.LongestRun == 0 {
				continue
			}
			edge, err := res.EdgeCoordinate(idx)
			require.NoError(t, err)
			assert.Equal(t, edge.Offset(), st.RunStart.Offset(), "run start must lie on diagonal %d", idx)
			assert.True(t, st.RunStart.X >= 0 && st.RunStart.X < sh.nx, "x in bounds: %v", st.RunStart)
			assert.True(t, st.RunStart.Y >= 0 && st.RunStart.Y < sh.ny, "y in bounds: %v", st.RunStart)
		}
		for _, p := range []float64{res.BestMatch.Percent, res.BestRun.Percent} {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 100.0)
		}
	}
}

// TestAnalyze_CutoffMonotonic checks a larger cutoff never scans more diagonals.
func TestAnalyze_CutoffMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := randomSeq(rng, 120, 4)
	y := randomSeq(rng, 90, 4)

	prevCutoff, prevScanned := -1, overlap.DiagonalCount(len(x), len(y))
	for _, divisor := range []int{1000, 100, 30, 10, 4, 2, 1} {
		opts := overlap.DefaultOptions()
		opts.CutoffDivisor = divisor
		res, err := overlap.Analyze(x, y, &opts)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, res.Cutoff, prevCutoff)
		assert.LessOrEqual(t, res.Scanned, prevScanned, "divisor %d", divisor)
		assert.Equal(t, len(res.Stats), res.Scanned+res.Skipped)
		prevCutoff, prevScanned = res.Cutoff, res.Scanned
	}
}

// TestAnalyze_ParallelMatchesSequential checks the worker sweep is deterministic.
func TestAnalyze_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	x := randomSeq(rng, 257, 3)
	y := randomSeq(rng, 190, 3)

	seqOpts := overlap.DefaultOptions()
	want, err := overlap.Analyze(x, y, &seqOpts)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 1000} {
		opts := overlap.DefaultOptions()
		opts.Workers = workers
		got, err := overlap.Analyze(x, y, &opts)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestPercentMatch(t *testing.T) {
	assert.InDelta(t, 50.0, overlap.PercentMatch([]int{1, 2, 0}, 4, 9), 1e-9)
	assert.Zero(t, overlap.PercentMatch(nil, 4, 4))
	assert.Zero(t, overlap.PercentMatch([]int{3}, 0, 4))
}
