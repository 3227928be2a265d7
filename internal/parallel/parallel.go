// Package parallel provides bounded fan-out helpers for the convolution engine.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of goroutines running at once.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4, // Output rows; each row is already several windows.
	}
}

// Sequential returns a Config that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
// f must only write to state owned by index i.
func For(n int, f func(i int), cfg Config) {
	chunk := max(cfg.MinChunkSize, 1)
	if !cfg.Enabled || cfg.NumWorkers < 2 || n <= chunk {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, chunk)

	for start := 0; start < n; start += chunkSize {
		start := start // per-iteration copy (go.mod targets go 1.21)
		end := min(start+chunkSize, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				f(i)
			}
			return nil
		})
	}
	_ = g.Wait() // f cannot fail
}
