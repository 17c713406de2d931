// Command seqcheck exercises the seq package: differential fuzzing, scripted scenarios and benchmarks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "seqcheck",
		Short: "Check and benchmark balanced sequence stores",
		Long: `seqcheck drives the treap and splay sequence stores against a plain slice.

Commands:
  fuzz      random differential run against a reference model
  replay    run YAML scenarios with expected results
  bench     time a random workload per strategy`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default .seqcheck.yaml in . or $HOME)")
	root.PersistentFlags().Uint64("seed", DefaultSeed, "random seed")
	root.PersistentFlags().StringSlice("strategy", nil, "strategies to run (treap, splay)")

	root.AddCommand(newFuzzCommand(&configPath))
	root.AddCommand(newReplayCommand())
	root.AddCommand(newBenchCommand(&configPath))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seqcheck %s\n", Version)
		},
	})
	return root
}

// flagKeys maps config keys to the named flags of cmd, including those inherited from the root.
func flagKeys(cmd *cobra.Command, keys map[string]string) map[string]*pflag.Flag {
	out := map[string]*pflag.Flag{
		"seed":       cmd.Flag("seed"),
		"strategies": cmd.Flag("strategy"),
	}
	for key, name := range keys {
		out[key] = cmd.Flag(name)
	}
	return out
}
