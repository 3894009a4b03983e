package suffixdoubling

import (
	"errors"
	"slices"
	"unicode/utf8"

	"github.com/viniciusth/rmq"
)

var (
	ErrInvalidUTF8      = errors.New("suffixdoubling: invalid UTF-8 encoding in input")
	ErrInvalidCharacter = errors.New("suffixdoubling: character outside the alphabet")
	ErrPatternTooLong   = errors.New("suffixdoubling: pattern longer than every indexed length")
	ErrEmptyAlphabet    = errors.New("suffixdoubling: alphabet has no symbols")
	ErrDuplicateSymbol  = errors.New("suffixdoubling: alphabet symbol listed twice")
	ErrNoLCP            = errors.New("suffixdoubling: index built without LCP array")
	ErrOutOfRange       = errors.New("suffixdoubling: position out of range")
)

type Builder struct {
	text          string
	alphabet      *Alphabet
	useLCP        bool
	caseSensitive bool
	normalize     bool
}

func NewBuilder(text string) *Builder {
	return &Builder{
		text:          text,
		alphabet:      Lowercase,
		useLCP:        true,
		caseSensitive: false,
		normalize:     true,
	}
}

// Indexes the text over a, instead of the lowercase ASCII letters.
// Alphabets with uppercase symbols usually want CaseSensitive as well.
func (b *Builder) WithAlphabet(a *Alphabet) *Builder {
	b.alphabet = a
	return b
}

// Skips the LCP array and its range-minimum structure.
// Saves O(|S|) memory; LongestCommonPrefix and LongestRepeat then return ErrNoLCP.
func (b *Builder) SkipLCP() *Builder {
	b.useLCP = false
	return b
}

// Stops case folding of the text and of every pattern.
func (b *Builder) CaseSensitive() *Builder {
	b.caseSensitive = true
	return b
}

// Skips the normalization of the text and patterns with NFC.
func (b *Builder) SkipNormalization() *Builder {
	b.normalize = false
	return b
}

func (b *Builder) Build() (*Index, error) {
	if !utf8.ValidString(b.text) {
		return nil, ErrInvalidUTF8
	}
	if b.alphabet == nil {
		return nil, ErrEmptyAlphabet
	}
	text := applyTransforms(b.text, b.caseSensitive, b.normalize)
	ext, err := b.alphabet.extend(text)
	if err != nil {
		return nil, err
	}

	n := len(ext)
	powers := powerSchedule(n)
	orders := make([][]int, len(powers))

	classes := countSortSymbols(ext, b.alphabet.Size()+1)
	orders[0] = orderFromClasses(classes)
	for i := 1; i < len(powers); i++ {
		classes = doubleClasses(classes, powers[i-1])
		orders[i] = orderFromClasses(classes)
	}

	// One more doubling past the schedule covers whole rotations, which are
	// all distinct because the sentinel occurs once.
	for p := powers[len(powers)-1]; slices.Max(classes) < n-1; p *= 2 {
		classes = doubleClasses(classes, p)
	}
	suffixArray := orderFromClasses(classes)

	x := &Index{
		text:          text,
		alphabet:      b.alphabet,
		ext:           ext,
		powers:        powers,
		orders:        orders,
		suffixArray:   suffixArray,
		caseSensitive: b.caseSensitive,
		normalize:     b.normalize,
	}
	if b.useLCP {
		x.rank = classes
		x.lcp = BuildLCPArray(suffixArray, ext)
		if len(x.lcp) > 0 {
			x.lcpRMQ = rmq.NewRMQHybridNaive(x.lcp)
		}
	}
	return x, nil
}

// Build indexes text with the default options.
func Build(text string) (*Index, error) {
	return NewBuilder(text).Build()
}

// Index is an immutable prefix-doubling index over one text. All methods
// are read-only and may be called from several goroutines.
type Index struct {
	text     string
	alphabet *Alphabet
	// ext holds the ranks of text followed by the sentinel.
	ext    []int32
	powers []int
	// orders[l] lists the positions of ext sorted by their cyclic substring
	// of length powers[l].
	orders      [][]int
	suffixArray []int
	rank        []int
	lcp         []int
	lcpRMQ      *rmq.RMQHybridNaive[int]

	caseSensitive bool
	normalize     bool
}

// Len is the length of the indexed text, sentinel excluded.
func (x *Index) Len() int {
	return len(x.ext) - 1
}

// Text returns the indexed text after case folding and normalization.
func (x *Index) Text() string {
	return x.text
}

func (x *Index) Alphabet() *Alphabet {
	return x.alphabet
}

// Powers returns the substring lengths with a materialized order, ascending.
func (x *Index) Powers() []int {
	return slices.Clone(x.powers)
}

// Order returns the positions sorted by the substring of length Powers()[level]
// starting at each one. Position Len() is the sentinel. It returns nil for
// an unknown level.
func (x *Index) Order(level int) []int {
	if level < 0 || level >= len(x.orders) {
		return nil
	}
	return slices.Clone(x.orders[level])
}

// SuffixArray returns the text positions ordered by their suffix. A suffix
// sorts after every longer suffix it is a prefix of, since the sentinel
// ranks above all symbols.
func (x *Index) SuffixArray() []int {
	// The sentinel suffix is always last.
	return slices.Clone(x.suffixArray[:len(x.suffixArray)-1])
}
