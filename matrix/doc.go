// SPDX-License-Identifier: MIT

// Package matrix provides the small grid toolkit used around the diagonal
// overlap scanner: a row-major Dense matrix, the naive (row-by-row) squared
// distance grid between two sequences, an index-of-maximum helper and a
// plain-text grid printer.
//
// The overlap package never materializes a full grid; SquaredDistances is a
// cross-check artifact for tests, debugging and reporting on small inputs.
//
// Usage:
//
//	import "github.com/katalvlaran/diagscan/matrix"
//
//	g, err := matrix.SquaredDistances(x, y) // rows = len(y), cols = len(x)
//	if err != nil {
//	  // handle ErrEmptyInput
//	}
//	_ = g.Format(os.Stdout)
//
// Complexity:
//
//   - SquaredDistances: O(|X|·|Y|) time and memory
//   - ArgMax:           O(n) time, O(1) memory
package matrix
