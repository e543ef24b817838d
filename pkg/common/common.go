// Package common finds the longest substring shared by two sequences.
package common

import "github.com/Veraticus/txscan/pkg/types"

// Longest returns the span in s1 of the longest substring that also
// occurs in s2. When several runs share the maximal length, the first one
// met scanning s1 left to right (and s2 left to right within it) wins.
// No common element yields (1, 0).
//
// The table row for x only depends on row x-1, so two rows are kept
// instead of the full (len(s1)+1) x (len(s2)+1) table.
func Longest[T comparable](s1, s2 []T) types.Span {
	if len(s1) == 0 || len(s2) == 0 {
		return types.EmptySpan
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	longest, xLongest := 0, 0

	for x := 1; x <= len(s1); x++ {
		for y := 1; y <= len(s2); y++ {
			if s1[x-1] != s2[y-1] {
				curr[y] = 0
				continue
			}
			curr[y] = prev[y-1] + 1
			if curr[y] > longest {
				longest = curr[y]
				xLongest = x
			}
		}
		prev, curr = curr, prev
	}

	if longest == 0 {
		return types.EmptySpan
	}
	return types.Span{Start: xLongest - longest + 1, End: xLongest}
}

// LongestString is Longest over the code points of two strings
func LongestString(s1, s2 string) types.Span {
	return Longest([]rune(s1), []rune(s2))
}
