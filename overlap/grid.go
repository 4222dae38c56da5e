package overlap

import "fmt"

// DiagonalCount returns the number of diagonals of an nx×ny grid, nx+ny-1.
func DiagonalCount(nx, ny int) int {
	if nx <= 0 || ny <= 0 {
		return 0
	}

	return nx + ny - 1
}

// EdgeCoordinate maps a diagonal index to the grid-edge cell it starts from.
//
// Indices 0..nx-1 start on the y=0 edge at (index, 0); indices nx..nx+ny-2
// start on the x=0 edge at (0, index-nx+1).
//
// Errors:
//   - ErrIndexOutOfRange if index is outside 0..DiagonalCount(nx,ny)-1.
func EdgeCoordinate(index, nx, ny int) (Coord, error) {
	if index < 0 || index >= DiagonalCount(nx, ny) {
		return Coord{}, fmt.Errorf("EdgeCoordinate(%d) on %dx%d grid: %w", index, nx, ny, ErrIndexOutOfRange)
	}
	if index < nx {
		return Coord{X: index, Y: 0}, nil
	}

	return Coord{X: 0, Y: index - nx + 1}, nil
}

// DiagonalIndex is the inverse of EdgeCoordinate: it returns the traversal
// index of the diagonal that starts at edge cell start.
//
// Errors:
//   - ErrInvalidStartCoordinate if start is not an in-bounds edge cell.
func DiagonalIndex(start Coord, nx, ny int) (int, error) {
	if err := checkStart(start, nx, ny); err != nil {
		return 0, err
	}
	if start.Y == 0 {
		return start.X, nil
	}

	return nx - 1 + start.Y, nil
}

// DiagonalLength returns the number of cells on the diagonal starting at
// start, min(nx-start.X, ny-start.Y).
func DiagonalLength(start Coord, nx, ny int) int {
	return min(nx-start.X, ny-start.Y)
}

// CutoffLength returns the corner cutoff min(nx,ny)/divisor.
// Diagonals whose length is <= the cutoff are skipped by Analyze.
// A divisor < 1 is treated as 1.
func CutoffLength(nx, ny, divisor int) int {
	if divisor < 1 {
		divisor = 1
	}

	return min(nx, ny) / divisor
}

// checkStart validates that start lies on the x=0 or y=0 edge of an nx×ny grid.
func checkStart(start Coord, nx, ny int) error {
	inBounds := start.X >= 0 && start.X < nx && start.Y >= 0 && start.Y < ny
	if !inBounds || (start.X != 0 && start.Y != 0) {
		return fmt.Errorf("start %v on %dx%d grid: %w", start, nx, ny, ErrInvalidStartCoordinate)
	}

	return nil
}
