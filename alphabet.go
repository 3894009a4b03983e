package suffixdoubling

import "fmt"

// Alphabet maps bytes to dense ranks. The order of the symbols given to
// NewAlphabet is the order used for sorting. The sentinel appended to every
// indexed text takes rank Size(), above every real symbol.
type Alphabet struct {
	symbols string
	ranks   [256]int16
}

// Lowercase is the alphabet of the ASCII letters 'a' through 'z'.
var Lowercase = mustAlphabet("abcdefghijklmnopqrstuvwxyz")

func NewAlphabet(symbols string) (*Alphabet, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{symbols: symbols}
	for i := range a.ranks {
		a.ranks[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.ranks[c] >= 0 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, c)
		}
		a.ranks[c] = int16(i)
	}
	return a, nil
}

func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size is the number of real symbols, not counting the sentinel.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

func (a *Alphabet) Symbols() string {
	return a.symbols
}

// Rank reports the rank of c and whether c belongs to the alphabet.
func (a *Alphabet) Rank(c byte) (int, bool) {
	r := a.ranks[c]
	return int(r), r >= 0
}

// encode converts s to ranks, failing on the first byte outside the alphabet.
func (a *Alphabet) encode(s string) ([]int32, error) {
	out := make([]int32, len(s))
	for i := 0; i < len(s); i++ {
		r, ok := a.Rank(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
		out[i] = int32(r)
	}
	return out, nil
}

// extend encodes text and appends the sentinel, giving the N = len(text)+1
// symbols the index is built over.
func (a *Alphabet) extend(text string) ([]int32, error) {
	enc, err := a.encode(text)
	if err != nil {
		return nil, err
	}
	return append(enc, int32(a.Size())), nil
}
