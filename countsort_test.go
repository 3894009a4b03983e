package suffixdoubling

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerSchedule(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{1, []int{1}},
		{2, []int{1}},
		{3, []int{1, 2}},
		{4, []int{1, 2}},
		{5, []int{1, 2, 4}},
		{8, []int{1, 2, 4}},
		{9, []int{1, 2, 4, 8}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, powerSchedule(tc.n), "n=%d", tc.n)
	}
}

func TestCountSortSymbols(t *testing.T) {
	ext, err := Lowercase.extend("aaba")
	require.NoError(t, err)
	require.Equal(t, []int32{0, 0, 1, 0, 26}, ext)

	assert.Equal(t, []int{0, 0, 1, 0, 2}, countSortSymbols(ext, 27))
	assert.Equal(t, []int{}, countSortSymbols(nil, 27))
}

func TestCountSortPairs(t *testing.T) {
	first := []int{1, 0, 1, 2}
	second := []int{0, 2, 0, 1}
	// pairs (1,0) (0,2) (1,0) (2,1)
	assert.Equal(t, []int{1, 0, 1, 2}, countSortPairs(first, second))

	first = []int{0, 0, 0}
	second = []int{2, 1, 0}
	assert.Equal(t, []int{2, 1, 0}, countSortPairs(first, second))
}

func TestOrderFromClasses(t *testing.T) {
	assert.Equal(t, []int{1, 3, 0, 2}, orderFromClasses([]int{1, 0, 1, 0}))
	assert.Equal(t, []int{0, 1, 2}, orderFromClasses([]int{0, 0, 0}))
}

func TestDoubleClassesMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		text := randomText(r, r.Intn(30), 3)
		ext, err := Lowercase.extend(text)
		require.NoError(t, err)
		n := len(ext)

		classes := countSortSymbols(ext, Lowercase.Size()+1)
		for p := 1; p < 2*n; p *= 2 {
			// compare every pair of positions against their cyclic substrings
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					want := slices.Compare(cyclic(ext, i, p), cyclic(ext, j, p))
					got := compareInts(classes[i], classes[j])
					require.Equal(t, want, got, "text=%q p=%d i=%d j=%d", text, p, i, j)
				}
			}
			classes = doubleClasses(classes, p)
		}
	}
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cyclic(ext []int32, pos, length int) []int32 {
	out := make([]int32, length)
	for k := range out {
		out[k] = ext[(pos+k)%len(ext)]
	}
	return out
}

func randomText(r *rand.Rand, n, letters int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + r.Intn(letters))
	}
	return string(b)
}
