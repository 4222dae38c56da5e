// Package diagscan finds where two numeric recordings overlap by sweeping
// the diagonals of their squared-distance grid.
//
// 🚀 What is it for?
//
//	Two uploads of the same sensor feed often repeat each other shifted in
//	time. diagscan scores every shift (grid diagonal) by its matching
//	cells and by its longest run of consecutive matches.
//
// Packages:
//
//	overlap/      — diagonal scanner and overlap analyzer (the core)
//	matrix/       — Dense grid, naive distance grid, ArgMax, grid printing
//	seqio/        — numeric sequence loading (text, gzip, stdin)
//	cmd/diagscan/ — command-line front end
//
//	go install github.com/katalvlaran/diagscan/cmd/diagscan@latest
package diagscan
