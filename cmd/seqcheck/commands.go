package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/samthor/seqstore/check"
	"github.com/samthor/seqstore/seq"
)

func newFuzzCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Run random operations against every strategy and a reference model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(*configPath, flagKeys(cmd, map[string]string{
				"fuzz.ops":           "ops",
				"fuzz.workers":       "workers",
				"fuzz.max_len":       "max-len",
				"fuzz.invalid_ratio": "invalid-ratio",
				"fuzz.verify_every":  "verify-every",
			}))
			if err != nil {
				return err
			}

			cc := cfg.FuzzCheck()
			log.Printf("fuzz: seed=%d workers=%d ops=%d strategies=%v", cc.Seed, cc.Workers, cc.Ops, cc.Strategies)

			reports, err := check.Run(cmd.Context(), cc)
			if err != nil {
				var mismatch *check.Mismatch
				if errors.As(err, &mismatch) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", failLabel("FAIL"), mismatch)
				}
				return fmt.Errorf("fuzz: %w", err)
			}

			renderFuzz(cmd.OutOrStdout(), reports)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("ops", DefaultFuzzOps, "operations per worker")
	flags.Int("workers", DefaultFuzzWorkers, "parallel workers, each with its own operation stream")
	flags.Int("max-len", DefaultMaxLen, "maximum sequence length")
	flags.Float64("invalid-ratio", DefaultInvalidRatio, "fraction of operations with out-of-range bounds")
	flags.Int("verify-every", DefaultVerifyEvery, "compare full contents every this many operations")
	return cmd
}

func newBenchCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a random workload per strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(*configPath, flagKeys(cmd, map[string]string{
				"bench.ops":     "ops",
				"bench.max_len": "max-len",
			}))
			if err != nil {
				return err
			}

			renderBench(cmd.OutOrStdout(), check.Bench(cfg.BenchCheck()))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("ops", DefaultBenchOps, "operations per strategy")
	flags.Int("max-len", DefaultMaxLen, "maximum sequence length")
	return cmd
}

func newReplayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE...",
		Short: "Run YAML scenarios and check their expectations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			only, err := cmd.Flags().GetStringSlice("strategy")
			if err != nil {
				return err
			}
			seed, err := cmd.Flags().GetUint64("seed")
			if err != nil {
				return err
			}

			var failed int
			for _, path := range args {
				sc, err := check.LoadScenario(path)
				if err != nil {
					return fmt.Errorf("replay: %w", err)
				}
				name := sc.Name
				if name == "" {
					name = filepath.Base(path)
				}

				for _, strategy := range sc.Selected() {
					if len(only) != 0 && !slices.Contains(only, strategy.String()) {
						continue
					}
					s := seq.New[int64](strategy, seq.WithSeed(uint32(seed)))
					err := sc.Replay(s)
					if err != nil {
						failed++
					}
					renderReplay(cmd.OutOrStdout(), name, strategy.String(), s.Values(), err)
				}
			}

			if failed != 0 {
				return fmt.Errorf("replay: %d failed", failed)
			}
			return nil
		},
	}
}
