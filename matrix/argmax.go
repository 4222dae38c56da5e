// SPDX-License-Identifier: MIT

package matrix

// ArgMax returns the index of the largest value in values.
// Ties resolve to the first occurrence; an empty slice yields -1.
// Complexity: O(n).
func ArgMax(values []int) int {
	if len(values) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}

	return best
}
