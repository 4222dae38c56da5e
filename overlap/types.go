package overlap

import "fmt"

// Coord addresses one grid cell: X indexes the first sequence, Y the second.
type Coord struct {
	X, Y int
}

// Offset returns the diagonal offset k = X - Y shared by every cell of the
// diagonal through c.
func (c Coord) Offset() int { return c.X - c.Y }

// String renders the coordinate as "(x,y)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// DiagonalStats holds the match statistics of one diagonal.
//
// Invariants: LongestRun <= MatchCount, and when LongestRun > 0 RunStart is
// the first cell of that run and lies on the diagonal. Skipped diagonals keep
// the zero value.
type DiagonalStats struct {
	MatchCount int
	LongestRun int
	RunStart   Coord
}

// Variant selects which grid shapes Analyze accepts.
type Variant int

const (
	// Rectangular accepts sequences of any (non-zero) lengths.
	Rectangular Variant = iota

	// Square requires |X| == |Y| and reports ErrLengthMismatch otherwise.
	Square
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Rectangular:
		return "rectangular"
	case Square:
		return "square"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Options configures Analyze.
//
// Fields:
//   - Tolerance     — |a-b| <= Tolerance counts as a match. 0 means exact equality.
//   - ApplyCutoff   — skip diagonals no longer than min(|X|,|Y|)/CutoffDivisor.
//   - CutoffDivisor — divisor of the cutoff; larger values skip fewer diagonals.
//     Must be >= 1 when ApplyCutoff is set.
//   - Variant       — Rectangular or Square.
//   - Workers       — goroutines used for the sweep; 0 or 1 runs sequentially.
type Options struct {
	Tolerance     float64
	ApplyCutoff   bool
	CutoffDivisor int
	Variant       Variant
	Workers       int
}

// DefaultCutoffDivisor keeps the corner cutoff tiny: only diagonals shorter
// than 1% of the longest possible diagonal are skipped.
const DefaultCutoffDivisor = 100

// DefaultOptions returns exact matching, the 1% corner cutoff, the
// rectangular variant and a sequential sweep.
func DefaultOptions() Options {
	return Options{
		Tolerance:     0,
		ApplyCutoff:   true,
		CutoffDivisor: DefaultCutoffDivisor,
		Variant:       Rectangular,
		Workers:       1,
	}
}

// Summary describes the winning diagonal for one metric.
type Summary struct {
	Index   int     // diagonal index in traversal order
	Edge    Coord   // grid-edge cell the diagonal starts from
	Value   int     // metric value on that diagonal
	Percent float64 // 100 * Value / min(|X|,|Y|)
}

// RunSummary extends Summary with the exact cell where the longest run starts.
// Start is meaningful only when Value > 0.
type RunSummary struct {
	Summary
	Start Coord
}

// Result is the outcome of one Analyze call. It is never shared between calls.
type Result struct {
	NX, NY  int
	Stats   []DiagonalStats // one entry per diagonal, traversal order
	Cutoff  int             // diagonals of length <= Cutoff were skipped (-1: no cutoff)
	Scanned int
	Skipped int

	BestMatch Summary    // diagonal with the most matching cells
	BestRun   RunSummary // diagonal with the longest consecutive run
}

// EdgeCoordinate maps a diagonal index of r back to its grid-edge start.
func (r *Result) EdgeCoordinate(index int) (Coord, error) {
	return EdgeCoordinate(index, r.NX, r.NY)
}

// Number is the set of element types ToFloat64 converts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ToFloat64 converts integer (or float32) samples into the float64 form the
// scanner works on.
func ToFloat64[T Number](s []T) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}

	return out
}
