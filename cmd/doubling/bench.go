package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"runtime/pprof"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/viniciusth/suffixdoubling"
	"golang.org/x/sync/errgroup"
)

type variant struct {
	name   string
	config func(*suffixdoubling.Builder) *suffixdoubling.Builder
}

var variants = map[string]variant{
	"full":         {name: "full", config: func(b *suffixdoubling.Builder) *suffixdoubling.Builder { return b }},
	"no_lcp":       {name: "no_lcp", config: func(b *suffixdoubling.Builder) *suffixdoubling.Builder { return b.SkipLCP() }},
	"no_transform": {name: "no_transform", config: func(b *suffixdoubling.Builder) *suffixdoubling.Builder { return b.CaseSensitive().SkipNormalization() }},
}

type densityType string

const (
	densityLow  densityType = "low"
	densityHigh densityType = "high"
)

var (
	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Measure build and query time and memory over random texts",
		Long: `Builds an index over a random lowercase text of length L and runs Q
searches for patterns of length P, printing one CSV line per run:
variant,L,P,Q,workers,density,build_ns,build_peak,build_alloc,query_ns,query_peak,query_alloc`,
		RunE: runBenchCommand,
	}
	benchVariant string
	benchL       int
	benchP       int
	benchQ       int
	benchRuns    int
	benchWorkers int
	benchDensity string
	cpuProfile   string
)

func init() {
	f := benchCmd.Flags()
	f.StringVar(&benchVariant, "variant", "full", "Variant to benchmark")
	f.IntVarP(&benchL, "length", "l", 0, "Text length L")
	f.IntVarP(&benchP, "pattern", "p", 0, "Pattern length P")
	f.IntVarP(&benchQ, "queries", "q", 0, "Number of queries Q")
	f.IntVar(&benchRuns, "runs", 3, "Number of runs for averaging")
	f.IntVar(&benchWorkers, "workers", 1, "Goroutines sharing the query load")
	f.StringVarP(&benchDensity, "density", "d", "low", "Density: low or high")
	f.StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")
}

type memMonitor struct {
	maxAlloc uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{stop: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(mm.done)
		for {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			if m.Alloc > mm.maxAlloc {
				mm.maxAlloc = m.Alloc
			}
			select {
			case <-mm.stop:
				return
			default:
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
	return mm
}

func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	return mm.maxAlloc
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(text string, config func(*suffixdoubling.Builder) *suffixdoubling.Builder) (time.Duration, uint64, uint64, *suffixdoubling.Index, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	index, err := config(suffixdoubling.NewBuilder(text)).Build()
	dur := time.Since(start)
	peak := mm.Stop()
	if err != nil {
		return 0, 0, 0, nil, err
	}
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, index, nil
}

// measureQuery splits the patterns between workers; the index is shared
// without locking.
func measureQuery(index *suffixdoubling.Index, patterns []string, workers int) (time.Duration, uint64, uint64, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()

	var g errgroup.Group
	for chunk := range slices.Chunk(patterns, max(1, (len(patterns)+workers-1)/workers)) {
		g.Go(func() error {
			for _, p := range chunk {
				if _, err := index.Search(p); err != nil {
					return err
				}
			}
			return nil
		})
	}
	err := g.Wait()

	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, err
}

func randomLowercase(r *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.Intn(26) + 'a')
	}
	return b
}

func runBenchmark(v variant, L, P, Q, runs, workers int, density densityType) error {
	for run := 0; run < runs; run++ {
		r := rand.New(rand.NewSource(int64(run)))
		text := randomLowercase(r, L)
		var common []byte
		if density == densityHigh {
			// plant one pattern every 4P symbols so queries hit many times
			common = randomLowercase(r, P)
			for at := 0; at+P <= L; at += 4 * P {
				copy(text[at:], common)
			}
		}

		bt, bp, ba, index, err := measureBuild(string(text), v.config)
		if err != nil {
			return err
		}
		logger.Debug("built", "run", run, "powers", index.Powers())

		patterns := make([]string, Q)
		for i := range patterns {
			if density == densityHigh {
				patterns[i] = string(common)
			} else {
				start := r.Intn(L - P + 1)
				patterns[i] = string(text[start : start+P])
			}
		}
		qt, qp, qa, err := measureQuery(index, patterns, workers)
		if err != nil {
			return err
		}
		fmt.Printf("%s,%d,%d,%d,%d,%s,%.0f,%d,%d,%.0f,%d,%d\n",
			v.name, L, P, Q, workers, density,
			float64(bt.Nanoseconds()), bp, ba,
			float64(qt.Nanoseconds()), qp, qa)
	}
	return nil
}

func runBenchCommand(cmd *cobra.Command, args []string) error {
	if benchL <= 0 || benchP <= 0 || benchQ <= 0 || benchWorkers <= 0 || benchP > benchL {
		return errors.New("need --length, --pattern, --queries and --workers > 0 with pattern <= length")
	}
	density := densityType(benchDensity)
	if density != densityLow && density != densityHigh {
		return fmt.Errorf("invalid density %q", benchDensity)
	}
	v, ok := variants[benchVariant]
	if !ok {
		return fmt.Errorf("invalid variant %q", benchVariant)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	logger.Info("benchmark", "variant", v.name, "length", benchL, "pattern", benchP, "queries", benchQ, "workers", benchWorkers)
	return runBenchmark(v, benchL, benchP, benchQ, benchRuns, benchWorkers, density)
}
