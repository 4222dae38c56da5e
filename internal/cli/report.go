package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/diagscan/overlap"
)

// WriteReport renders res as the numbered result section.
func WriteReport(w io.Writer, res *overlap.Result) error {
	lines := []string{
		"RESULT SECTION:",
		fmt.Sprintf("1. Diagonal index with the most matches: %d", res.BestMatch.Index),
		fmt.Sprintf("2. Diagonal index with the longest run of matches: %d", res.BestRun.Index),
		fmt.Sprintf("3. Grid-edge start of the longest-run diagonal (x,y): %v value: %d", res.BestRun.Edge, res.BestRun.Value),
		fmt.Sprintf("4. Grid-edge start of the most-matches diagonal (x,y): %v value: %d", res.BestMatch.Edge, res.BestMatch.Value),
		fmt.Sprintf("5. Exact grid start of the longest run (x,y): %s", runStart(res.BestRun)),
		fmt.Sprintf("6. Percent match (most matches): %.2f%%", res.BestMatch.Percent),
		fmt.Sprintf("7. Percent match (longest run): %.2f%%", res.BestRun.Percent),
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	return nil
}

func runStart(r overlap.RunSummary) string {
	if r.Value == 0 {
		return "none"
	}

	return r.Start.String()
}
