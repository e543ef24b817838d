package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Veraticus/txscan/pkg/types"
)

// ANSI escape codes
const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorReset = "\033[0m"
)

// TextReporter prints a human readable summary, one section per question
type TextReporter struct {
	writer io.Writer
	color  bool
}

// NewTextReporter creates a new text reporter
func NewTextReporter(w io.Writer, color bool) *TextReporter {
	return &TextReporter{
		writer: w,
		color:  color,
	}
}

// Report prints r
func (tr *TextReporter) Report(r types.Report) error {
	w := bufio.NewWriter(tr.writer)

	fmt.Fprintln(w, "Part 1: Signature search")
	for _, m := range r.Matches {
		fmt.Fprintf(w, "'%s' is contained in '%s': %s", m.Signature, m.Transmission, tr.verdict(m.Found))
		if m.Found {
			fmt.Fprintf(w, " (position %d)", m.Position)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Part 2: Longest palindrome")
	for _, p := range r.Palindromes {
		fmt.Fprintf(w, "The longest palindrome in '%s' is between positions %d and %d: %q\n",
			p.Transmission, p.Span.Start, p.Span.End, p.Text)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Part 3: Longest common substring between transmissions")
	for _, c := range r.Common {
		fmt.Fprintf(w, "Start and end of the longest common substring of '%s' and '%s' (positions in '%s'): %d %d %q\n",
			c.First, c.Second, c.First, c.Span.Start, c.Span.End, c.Text)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (tr *TextReporter) verdict(found bool) string {
	s := fmt.Sprintf("%t", found)
	if !tr.color {
		return s
	}
	if found {
		return colorGreen + s + colorReset
	}
	return colorRed + s + colorReset
}
