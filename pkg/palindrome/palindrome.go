// Package palindrome finds the longest palindromic substring with
// Manacher's algorithm.
package palindrome

import "github.com/Veraticus/txscan/pkg/types"

// interleaved is text with a separator before, after and between every
// element. Even indices hold the separator, odd index k holds text[(k-1)/2].
// The separator is never stored, so it cannot collide with a real element.
type interleaved[T comparable] struct {
	text []T
}

func (s interleaved[T]) len() int {
	return 2*len(s.text) + 1
}

func (s interleaved[T]) equal(a, b int) bool {
	if a%2 == 0 || b%2 == 0 {
		return a%2 == 0 && b%2 == 0
	}
	return s.text[(a-1)/2] == s.text[(b-1)/2]
}

// Radii returns the palindrome radius around every index of the
// interleaved form of text.
func Radii[T comparable](text []T) []int {
	t := interleaved[T]{text: text}
	n := t.len()
	radius := make([]int, n)
	center, right := 0, 0

	for i := 0; i < n; i++ {
		mirror := 2*center - i
		if i < right {
			radius[i] = min(right-i, radius[mirror])
		}

		for i+radius[i]+1 < n && i-radius[i]-1 >= 0 && t.equal(i+radius[i]+1, i-radius[i]-1) {
			radius[i]++
		}

		if i+radius[i] > right {
			center = i
			right = i + radius[i]
		}
	}
	return radius
}

// Longest returns the span of the longest palindromic substring of text.
// Among equally long candidates the leftmost one wins. An empty text
// yields (1, 0).
func Longest[T comparable](text []T) types.Span {
	if len(text) == 0 {
		return types.EmptySpan
	}

	radius := Radii(text)
	best, maxRadius := 0, radius[0]
	for i, r := range radius {
		if r > maxRadius {
			best, maxRadius = i, r
		}
	}

	return types.Span{
		Start: (best-maxRadius)/2 + 1,
		End:   (best + maxRadius) / 2,
	}
}

// LongestString is Longest over the code points of a string
func LongestString(text string) types.Span {
	return Longest([]rune(text))
}
