package builder

import (
	"fmt"
	"io"
	"strings"
)

// Summary collects the per-target outcomes of one run, in matrix order.
type Summary struct {
	Succeeded []string
	Failed    []string
	Total     int
	OutputDir string
}

func (s *Summary) record(label string, ok bool) {
	if ok {
		s.Succeeded = append(s.Succeeded, label)
	} else {
		s.Failed = append(s.Failed, label)
	}
}

// Print writes the end-of-run report.
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "Build Summary:")
	fmt.Fprintf(w, "  Success: %d/%d\n", len(s.Succeeded), s.Total)
	if len(s.Succeeded) > 0 {
		fmt.Fprintf(w, "    - %s\n", strings.Join(s.Succeeded, "\n    - "))
	}
	if len(s.Failed) > 0 {
		fmt.Fprintf(w, "  Failed: %d/%d\n", len(s.Failed), s.Total)
		fmt.Fprintf(w, "    - %s\n", strings.Join(s.Failed, "\n    - "))
	}
	fmt.Fprintf(w, "\nBinaries are in: %s\n", s.OutputDir)
}
