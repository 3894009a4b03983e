package suffixdoubling

import (
	"fmt"
	"slices"
	"sort"
	"unicode/utf8"
)

// Search returns every offset of the text where pattern occurs. Offsets come
// in the order of the substrings starting there, not in numeric order.
// An empty pattern matches nothing.
func (x *Index) Search(pattern string) ([]int, error) {
	order, l, r, err := x.findBoundaries(pattern)
	if err != nil || l == r {
		return nil, err
	}
	return slices.Clone(order[l:r]), nil
}

// Count returns the number of occurrences of pattern.
func (x *Index) Count(pattern string) (int, error) {
	_, l, r, err := x.findBoundaries(pattern)
	return r - l, err
}

func (x *Index) Contains(pattern string) (bool, error) {
	n, err := x.Count(pattern)
	return n > 0, err
}

// levelFor picks the order array and substring length for a pattern of m
// symbols: the shortest materialized length that covers it, or else the
// full suffix order, whose substrings run up to the sentinel.
func (x *Index) levelFor(m int) ([]int, int, error) {
	level := sort.SearchInts(x.powers, m)
	if level < len(x.powers) {
		return x.orders[level], x.powers[level], nil
	}
	if m > x.Len() {
		return nil, 0, fmt.Errorf("%w: length %d, text has %d", ErrPatternTooLong, m, x.Len())
	}
	return x.suffixArray, len(x.ext), nil
}

// window is the substring of length power starting at pos, cut short at the
// sentinel. Cutting instead of wrapping keeps the order of the level: two
// wrapped substrings already differ at or before the sentinel.
func (x *Index) window(pos, power int) []int32 {
	return x.ext[pos:min(pos+power, len(x.ext))]
}

// findBoundaries returns the order array searched and the half-open range
// [l, r) of its entries whose substring starts with pattern.
func (x *Index) findBoundaries(pattern string) ([]int, int, int, error) {
	if !utf8.ValidString(pattern) {
		return nil, 0, 0, ErrInvalidUTF8
	}
	pattern = applyTransforms(pattern, x.caseSensitive, x.normalize)
	if len(pattern) == 0 {
		return nil, 0, 0, nil
	}
	pat, err := x.alphabet.encode(pattern)
	if err != nil {
		return nil, 0, 0, err
	}
	order, power, err := x.levelFor(len(pat))
	if err != nil {
		return nil, 0, 0, err
	}
	n := len(order)

	// first index with pattern <= substring; a strict prefix compares smaller
	l := sort.Search(n, func(i int) bool {
		return slices.Compare(pat, x.window(order[i], power)) <= 0
	})

	// first index whose substring, cut to the pattern length, is greater
	r := sort.Search(n, func(i int) bool {
		w := x.window(order[i], power)
		if len(w) > len(pat) {
			w = w[:len(pat)]
		}
		return slices.Compare(w, pat) > 0
	})

	return order, l, r, nil
}
