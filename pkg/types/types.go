// Package types contains shared data structures used across the application.
package types

import (
	"fmt"
	"unicode/utf8"
)

// Span is a pair of 1-based inclusive positions into a sequence.
// A zero-length span is represented as (1, 0).
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// EmptySpan is the span reported when nothing was found.
var EmptySpan = Span{Start: 1, End: 0}

// Len returns the number of elements covered by the span
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}

// IsEmpty reports whether the span covers no elements
func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Slice returns the part of seq covered by the span.
// Out of range spans yield an empty result.
func Slice[T any](seq []T, s Span) []T {
	if s.IsEmpty() || s.Start < 1 || s.End > len(seq) {
		return seq[:0]
	}
	return seq[s.Start-1 : s.End]
}

// SignatureMatch is the outcome of searching one signature in one transmission
type SignatureMatch struct {
	Signature    string `json:"signature" yaml:"signature"`
	Transmission string `json:"transmission" yaml:"transmission"`
	Found        bool   `json:"found" yaml:"found"`
	// Position is the 1-based start of the first occurrence, 0 when not found
	Position int `json:"position" yaml:"position"`
}

// PalindromeResult holds the longest palindrome found in a transmission
type PalindromeResult struct {
	Transmission string `json:"transmission" yaml:"transmission"`
	Span         Span   `json:"span" yaml:"span"`
	Text         string `json:"text" yaml:"text"`
}

// CommonResult holds the longest substring shared by two transmissions.
// Span points into First.
type CommonResult struct {
	First  string `json:"first" yaml:"first"`
	Second string `json:"second" yaml:"second"`
	Span   Span   `json:"span" yaml:"span"`
	Text   string `json:"text" yaml:"text"`
}

// Source describes one loaded input
type Source struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Length     int    `json:"length" yaml:"length"`
	Digest     string `json:"digest" yaml:"digest"`
}

// Report collects the results of a full analysis run
type Report struct {
	Sources     []Source           `json:"sources" yaml:"sources"`
	Matches     []SignatureMatch   `json:"matches" yaml:"matches"`
	Palindromes []PalindromeResult `json:"palindromes" yaml:"palindromes"`
	Common      []CommonResult     `json:"common" yaml:"common"`
}

// Document is a loaded input ready for analysis
type Document struct {
	Identifier string
	Text       string
	// Digest is the xxhash64 of Text
	Digest uint64
}

// Runes returns the document content as a sequence of code points
func (d Document) Runes() []rune {
	return []rune(d.Text)
}

// Source summarizes the document for reports
func (d Document) Source() Source {
	return Source{
		Identifier: d.Identifier,
		Length:     utf8.RuneCountInString(d.Text),
		Digest:     fmt.Sprintf("%016x", d.Digest),
	}
}
