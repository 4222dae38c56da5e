// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"io"
	"strconv"
)

// Format writes g as a pipe-separated table, one grid row per line,
// e.g. "0 | 1 | 4". It is meant for eyeballing small grids.
func (m *Dense) Format(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				bw.WriteString(" | ")
			}
			bw.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
