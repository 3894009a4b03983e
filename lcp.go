package suffixdoubling

import "fmt"

// Kasai's algorithm for building the LCP array in O(n) time.
// lcp[k] is the common prefix length of the suffixes at suffixArray[k] and
// suffixArray[k+1].
func BuildLCPArray(suffixArray []int, text []int32) []int {
	n := len(suffixArray)
	if n == 0 {
		return nil
	}
	rank := make([]int, n)
	for i := range suffixArray {
		rank[suffixArray[i]] = i
	}

	lcp := make([]int, n-1)
	l := 0
	for i := range suffixArray {
		if rank[i]+1 == n {
			l = 0
			continue
		}
		j := suffixArray[rank[i]+1]
		for i+l < len(text) && j+l < len(text) && text[i+l] == text[j+l] {
			l++
		}
		lcp[rank[i]] = l
		if l > 0 {
			l--
		}
	}

	return lcp
}

// LongestCommonPrefix returns the length of the longest common prefix of the
// suffixes of the text starting at i and j.
func (x *Index) LongestCommonPrefix(i, j int) (int, error) {
	if x.rank == nil {
		return 0, ErrNoLCP
	}
	if i < 0 || j < 0 || i >= x.Len() || j >= x.Len() {
		return 0, fmt.Errorf("%w: (%d, %d) for length %d", ErrOutOfRange, i, j, x.Len())
	}
	if i == j {
		return x.Len() - i, nil
	}
	ri, rj := x.rank[i], x.rank[j]
	return x.lcp[x.lcpRMQ.Query(min(ri, rj), max(ri, rj)-1)], nil
}

// LongestRepeat returns a position and the length of the longest substring
// occurring at least twice in the text. length is 0 when no symbol repeats.
func (x *Index) LongestRepeat() (pos, length int, err error) {
	if x.rank == nil {
		return 0, 0, ErrNoLCP
	}
	for k, l := range x.lcp {
		if l > length {
			pos, length = x.suffixArray[k], l
		}
	}
	return pos, length, nil
}
