// Package kmp implements exact substring search with the Knuth-Morris-Pratt
// failure function.
package kmp

// FailureTable returns, for each prefix pattern[0..i], the length of its
// longest proper prefix that is also a suffix.
func FailureTable[T comparable](pattern []T) []int {
	table := make([]int, len(pattern))
	length := 0
	for i := 1; i < len(pattern); {
		if pattern[i] == pattern[length] {
			length++
			table[i] = length
			i++
			continue
		}
		if length > 0 {
			length = table[length-1]
			continue
		}
		table[i] = 0
		i++
	}
	return table
}

// Search reports whether pattern occurs as a contiguous run inside text.
// An empty pattern occurs in every text.
func Search[T comparable](pattern, text []T) bool {
	return Index(pattern, text) >= 0
}

// Index returns the 0-based start of the first occurrence of pattern in
// text, or -1 if it does not occur. An empty pattern is found at 0.
func Index[T comparable](pattern, text []T) int {
	m, n := len(pattern), len(text)
	if m == 0 {
		return 0
	}
	if n < m {
		return -1
	}

	table := FailureTable(pattern)
	i, j := 0, 0
	for i < n {
		if text[i] == pattern[j] {
			i++
			j++
			if j == m {
				return i - m
			}
			continue
		}
		// i stays put on a fallback
		if j > 0 {
			j = table[j-1]
		} else {
			i++
		}
	}
	return -1
}

// SearchString is Search over the code points of two strings
func SearchString(pattern, text string) bool {
	return Search([]rune(pattern), []rune(text))
}

// IndexString is Index over the code points of two strings. The result
// counts runes, not bytes.
func IndexString(pattern, text string) int {
	return Index([]rune(pattern), []rune(text))
}
