// Package report renders analysis results.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Veraticus/txscan/pkg/config"
	"github.com/Veraticus/txscan/pkg/interfaces"
	"github.com/Veraticus/txscan/pkg/types"
)

// New returns the reporter for format writing to w
func New(format string, w io.Writer, color bool) (interfaces.Reporter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextReporter(w, color), nil
	case config.FormatJSON:
		return NewJSONReporter(w), nil
	case config.FormatYAML:
		return NewYAMLReporter(w), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

// JSONReporter writes the report as indented JSON
type JSONReporter struct {
	writer io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{writer: w}
}

// Report encodes r
func (j *JSONReporter) Report(r types.Report) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// YAMLReporter writes the report as YAML
type YAMLReporter struct {
	writer io.Writer
}

// NewYAMLReporter creates a new YAML reporter
func NewYAMLReporter(w io.Writer) *YAMLReporter {
	return &YAMLReporter{writer: w}
}

// Report encodes r
func (y *YAMLReporter) Report(r types.Report) error {
	enc := yaml.NewEncoder(y.writer)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}
