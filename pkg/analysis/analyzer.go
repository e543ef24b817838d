// Package analysis runs the three corpus questions over loaded inputs and
// assembles a report.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/Veraticus/txscan/pkg/common"
	"github.com/Veraticus/txscan/pkg/corpus"
	"github.com/Veraticus/txscan/pkg/interfaces"
	"github.com/Veraticus/txscan/pkg/logging"
	"github.com/Veraticus/txscan/pkg/palindrome"
	"github.com/Veraticus/txscan/pkg/types"
)

// Options selects the inputs of a run
type Options struct {
	Transmissions []string
	Signatures    []string
	Parallelism   int
}

// Analyzer loads a corpus and answers, in order:
// which signatures occur in which transmission, the longest palindrome of
// each transmission, and the longest substring shared by each pair of
// transmissions.
type Analyzer struct {
	loader interfaces.Loader
	opts   Options
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer. A nil logger discards diagnostics.
func NewAnalyzer(loader interfaces.Loader, opts Options, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Analyzer{
		loader: loader,
		opts:   opts,
		logger: logger,
	}
}

// Run loads every input and analyzes it
func (a *Analyzer) Run(ctx context.Context) (types.Report, error) {
	transmissions, err := corpus.LoadAll(ctx, a.loader, a.opts.Transmissions, a.opts.Parallelism)
	if err != nil {
		return types.Report{}, fmt.Errorf("failed to load transmissions: %w", err)
	}

	signatures, err := corpus.LoadAll(ctx, a.loader, a.opts.Signatures, a.opts.Parallelism)
	if err != nil {
		return types.Report{}, fmt.Errorf("failed to load signatures: %w", err)
	}

	return a.Analyze(ctx, transmissions, signatures)
}

// Analyze runs the analysis over already loaded documents. The context is
// checked between algorithm invocations; a single invocation always runs
// to completion.
func (a *Analyzer) Analyze(ctx context.Context, transmissions, signatures []types.Document) (types.Report, error) {
	for _, docs := range [][]types.Document{transmissions, signatures} {
		for _, doc := range docs {
			if !utf8.ValidString(doc.Text) {
				return types.Report{}, fmt.Errorf("%q: %w", doc.Identifier, corpus.ErrInvalidUTF8)
			}
		}
	}

	report := types.Report{}
	for _, doc := range transmissions {
		report.Sources = append(report.Sources, doc.Source())
	}
	for _, doc := range signatures {
		report.Sources = append(report.Sources, doc.Source())
	}

	texts := make([][]rune, len(transmissions))
	for i, doc := range transmissions {
		texts[i] = doc.Runes()
	}

	matcher := NewSignatureMatcher(signatures)
	a.logger.Debug("searching signatures", "signatures", matcher.Signatures(), "transmissions", len(transmissions))
	matches, err := matcher.MatchAll(ctx, transmissions, texts)
	if err != nil {
		return types.Report{}, err
	}
	report.Matches = matches

	a.logger.Debug("finding palindromes")
	for i, doc := range transmissions {
		if err := ctx.Err(); err != nil {
			return types.Report{}, err
		}
		span := palindrome.Longest(texts[i])
		report.Palindromes = append(report.Palindromes, types.PalindromeResult{
			Transmission: doc.Identifier,
			Span:         span,
			Text:         string(types.Slice(texts[i], span)),
		})
	}

	a.logger.Debug("finding common substrings")
	for i := range transmissions {
		for j := i + 1; j < len(transmissions); j++ {
			if err := ctx.Err(); err != nil {
				return types.Report{}, err
			}
			span := common.Longest(texts[i], texts[j])
			report.Common = append(report.Common, types.CommonResult{
				First:  transmissions[i].Identifier,
				Second: transmissions[j].Identifier,
				Span:   span,
				Text:   string(types.Slice(texts[i], span)),
			})
		}
	}

	found := 0
	for _, m := range report.Matches {
		if m.Found {
			found++
		}
	}
	a.logger.Info("analysis complete",
		"transmissions", len(transmissions),
		"signatures", len(signatures),
		"signature_hits", found)

	return report, nil
}
