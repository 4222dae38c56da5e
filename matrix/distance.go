// SPDX-License-Identifier: MIT

package matrix

// SquaredDistances builds the full distance grid between x and y the naive
// way, row by row: cell (row=j, col=i) holds (x[i] - y[j])².
//
// Rows follow y and columns follow x, so grid.At(y, x) addresses the same
// cell the diagonal scanner calls (x, y).
//
// Errors:
//   - ErrEmptyInput if either sequence is empty.
//
// Complexity: O(|x|·|y|) time and memory.
func SquaredDistances(x, y []float64) (*Dense, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptyInput
	}
	g, err := NewDense(len(y), len(x))
	if err != nil {
		return nil, err
	}
	for j := 0; j < g.r; j++ {
		row := g.data[j*g.c : (j+1)*g.c]
		for i := range row {
			d := x[i] - y[j]
			row[i] = d * d
		}
	}

	return g, nil
}

// DiagonalCells returns the values of g along the diagonal starting at
// column x0, row y0, walking down-right until either edge is reached.
// The start must lie inside the grid.
func DiagonalCells(g *Dense, x0, y0 int) ([]float64, error) {
	if _, err := g.indexOf("DiagonalCells", y0, x0); err != nil {
		return nil, err
	}
	var out []float64
	for x, y := x0, y0; x < g.c && y < g.r; x, y = x+1, y+1 {
		out = append(out, g.data[y*g.c+x])
	}

	return out, nil
}
