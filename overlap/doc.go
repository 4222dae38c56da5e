// Package overlap detects approximate positional overlap between two numeric
// sequences by sweeping the anti-diagonals of their squared-distance grid.
//
// 🚀 What does it answer?
//
//	Given two recordings X and Y (e.g. two uploads of the same sensor feed),
//	which time shift lines them up best, and how much of the shorter one
//	agrees with the other at that shift? Every diagonal of the grid
//	(x - y == k) is one candidate shift k.
//
// ✨ Key features:
//   - lazy grid: cells (X[x]-Y[y])² are computed on demand, never stored
//   - two metrics per diagonal: total matches and longest consecutive run
//   - corner cutoff: skip very short diagonals near the grid corners
//   - tolerance-based matching for real-valued, noisy data
//   - optional parallel scan (disjoint output slots, no locking)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/diagscan/overlap"
//
//	opts := overlap.DefaultOptions()
//	opts.Tolerance = 0.5 // |a-b| ≤ 0.5 counts as a match
//
//	res, err := overlap.Analyze(x, y, &opts)
//	if err != nil {
//	  // ErrEmptySequence, ErrLengthMismatch or ErrBadOptions
//	}
//	fmt.Println(res.BestRun.Start, res.BestRun.Percent)
//
// Diagonal order:
//
//	Index 0 is the main diagonal starting at (0,0). Indices 1..|X|-1 start
//	at (i,0) and walk toward the bottom-left corner; indices |X|..T-1 start
//	at (0,1), (0,2), ... toward the top-right corner, T = |X|+|Y|-1.
//
// Performance:
//
//   - Time:   O(|X|·|Y|) worst case (every cell touched once)
//   - Memory: O(|X|+|Y|) for the per-diagonal statistics
package overlap
