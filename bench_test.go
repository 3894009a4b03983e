package suffixdoubling

import (
	"math/rand"
	"testing"
)

func BenchmarkBuild(b *testing.B) {
	text := randomText(rand.New(rand.NewSource(1)), 1<<16, 4)
	for _, skipLCP := range []bool{false, true} {
		name := "lcp"
		if skipLCP {
			name = "no_lcp"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				builder := NewBuilder(text)
				if skipLCP {
					builder.SkipLCP()
				}
				if _, err := builder.Build(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	text := randomText(r, 1<<16, 4)
	x, err := NewBuilder(text).SkipLCP().Build()
	if err != nil {
		b.Fatal(err)
	}
	patterns := make([]string, 256)
	for i := range patterns {
		start := r.Intn(len(text) - 16)
		patterns[i] = text[start : start+1+r.Intn(16)]
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Search(patterns[i%len(patterns)]); err != nil {
			b.Fatal(err)
		}
	}
}
