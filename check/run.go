package check

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/samthor/seqstore/seq"
)

// Config describes a differential run.
type Config struct {
	Ops          int            // operations per worker
	Seed         uint64         // worker i uses Seed+i
	Workers      int            // independent op streams run in parallel
	Strategies   []seq.Strategy // all driven with the same stream
	MaxLen       int
	MaxValue     int64
	InvalidRatio float64
	VerifyEvery  int           // compare full contents every this many ops, zero for only at the end
	Progress     time.Duration // log progress at most this often, zero for never
}

// Report summarizes one worker's run of one Strategy.
type Report struct {
	Worker   int
	Strategy seq.Strategy
	Ops      int
	Invalid  int // ops rejected with seq.ErrInvalidRange
	Queries  int
	FinalLen int
	Elapsed  time.Duration
}

// Mismatch is returned when a Sequence disagrees with the model.
type Mismatch struct {
	Worker   int
	Step     int
	Strategy seq.Strategy
	Op       Op
	Detail   string
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("worker %d step %d: %v %v: %s", m.Worker, m.Step, m.Strategy, m.Op, m.Detail)
}

// Run drives every configured Strategy with random operations, checking each result against a Model.
// It returns one Report per worker and Strategy, or the first *Mismatch found.
func Run(ctx context.Context, cfg Config) ([]Report, error) {
	if len(cfg.Strategies) == 0 {
		return nil, errors.New("no strategies")
	}
	workers := max(cfg.Workers, 1)

	var done atomic.Int64
	progress := rate.Sometimes{Interval: cfg.Progress}
	logProgress := func() {
		if cfg.Progress <= 0 {
			return
		}
		progress.Do(func() {
			log.Printf("check: %d/%d ops", done.Load(), int64(cfg.Ops)*int64(workers))
		})
	}

	reports := make([][]Report, workers)
	eg, ctx := errgroup.WithContext(ctx)

	for w := range workers {
		eg.Go(func() error {
			out, err := runWorker(ctx, cfg, w, func() {
				done.Add(1)
				logProgress()
			})
			reports[w] = out
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(reports...), nil
}

func runWorker(ctx context.Context, cfg Config, worker int, tick func()) ([]Report, error) {
	gen := NewGenerator(cfg.Seed + uint64(worker))
	if cfg.MaxLen > 0 {
		gen.MaxLen = cfg.MaxLen
	}
	if cfg.MaxValue > 0 {
		gen.MaxValue = cfg.MaxValue
	}
	gen.InvalidRatio = cfg.InvalidRatio

	stores := make([]seq.Sequence[int64], len(cfg.Strategies))
	reports := make([]Report, len(cfg.Strategies))
	for i, s := range cfg.Strategies {
		stores[i] = seq.New[int64](s, seq.WithSeed(uint32(cfg.Seed)+uint32(worker)))
		reports[i] = Report{Worker: worker, Strategy: s}
	}
	var model Model

	mismatch := func(step, i int, op Op, format string, args ...any) error {
		return &Mismatch{
			Worker:   worker,
			Step:     step,
			Strategy: cfg.Strategies[i],
			Op:       op,
			Detail:   fmt.Sprintf(format, args...),
		}
	}

	for step := range cfg.Ops {
		if step%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		op := gen.Next(len(model))
		want, wantErr := model.Apply(op)

		for i, s := range stores {
			start := time.Now()
			got, err := Apply(s, op)
			reports[i].Elapsed += time.Since(start)
			reports[i].Ops++

			switch {
			case wantErr != nil:
				if !errors.Is(err, seq.ErrInvalidRange) {
					return nil, mismatch(step, i, op, "expected invalid range, was err=%v", err)
				}
				reports[i].Invalid++
			case err != nil:
				return nil, mismatch(step, i, op, "unexpected err=%v", err)
			case op.Kind.IsQuery():
				reports[i].Queries++
				if got != want {
					return nil, mismatch(step, i, op, "expected=%d, was=%d", want, got)
				}
			}

			if s.Len() != len(model) {
				return nil, mismatch(step, i, op, "expected len=%d, was=%d", len(model), s.Len())
			}
		}

		last := step == cfg.Ops-1
		if last || (cfg.VerifyEvery > 0 && step%cfg.VerifyEvery == 0) {
			for i, s := range stores {
				if !slices.Equal(s.Values(), []int64(model)) {
					return nil, mismatch(step, i, op, "contents differ from model")
				}
			}
		}

		tick()
	}

	for i, s := range stores {
		reports[i].FinalLen = s.Len()
	}
	return reports, nil
}
