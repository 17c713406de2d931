package check

import (
	"time"

	"github.com/samthor/seqstore/seq"
)

// BenchResult is the timing of one Strategy over a random workload.
type BenchResult struct {
	Strategy seq.Strategy
	Ops      int
	FinalLen int
	Elapsed  time.Duration
}

// PerOp returns the mean time per operation.
func (b BenchResult) PerOp() time.Duration {
	if b.Ops == 0 {
		return 0
	}
	return b.Elapsed / time.Duration(b.Ops)
}

// Bench times cfg.Ops valid random operations against each configured Strategy.
// Every Strategy sees the same operations. No model is kept.
func Bench(cfg Config) []BenchResult {
	out := make([]BenchResult, 0, len(cfg.Strategies))

	for _, strategy := range cfg.Strategies {
		gen := NewGenerator(cfg.Seed)
		if cfg.MaxLen > 0 {
			gen.MaxLen = cfg.MaxLen
		}
		s := seq.New[int64](strategy, seq.WithSeed(uint32(cfg.Seed)))

		start := time.Now()
		for range cfg.Ops {
			Apply(s, gen.Next(s.Len()))
		}

		out = append(out, BenchResult{
			Strategy: strategy,
			Ops:      cfg.Ops,
			FinalLen: s.Len(),
			Elapsed:  time.Since(start),
		})
	}
	return out
}
