package suffixdoubling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowercase(t *testing.T) {
	assert.Equal(t, 26, Lowercase.Size())
	r, ok := Lowercase.Rank('a')
	assert.True(t, ok)
	assert.Equal(t, 0, r)
	r, ok = Lowercase.Rank('z')
	assert.True(t, ok)
	assert.Equal(t, 25, r)
	_, ok = Lowercase.Rank('{')
	assert.False(t, ok)
	_, ok = Lowercase.Rank('A')
	assert.False(t, ok)
}

func TestNewAlphabet(t *testing.T) {
	_, err := NewAlphabet("")
	require.ErrorIs(t, err, ErrEmptyAlphabet)

	_, err = NewAlphabet("abca")
	require.ErrorIs(t, err, ErrDuplicateSymbol)

	// symbol order, not byte order, decides ranks
	a, err := NewAlphabet("TGCA")
	require.NoError(t, err)
	assert.Equal(t, "TGCA", a.Symbols())
	r, _ := a.Rank('A')
	assert.Equal(t, 3, r)

	ext, err := a.extend("AT")
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 0, 4}, ext)

	_, err = a.extend("AX")
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestSearchFollowsAlphabetOrder(t *testing.T) {
	a, err := NewAlphabet("zyx")
	require.NoError(t, err)
	x, err := NewBuilder("xyzzy").WithAlphabet(a).Build()
	require.NoError(t, err)

	got, err := x.Search("zy")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)

	got, err = x.Search("y")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 4}, got)
}
