// rtreectl builds R-tree spatial indexes from point and box files, GeoJSON
// feature collections or random data, and inspects them.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/geoindex"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// settings holds the global flags shared by all sub-commands.
type settings struct {
	maxElements int
	minElements int
	split       string
	choose      string
	trace       string
	dump        bool
	dot         string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	rootCmd := &cobra.Command{
		Use:     "rtreectl",
		Short:   "Build and inspect R-tree spatial indexes",
		Version: Version,
		Long: `rtreectl loads spatial data into an in-memory R-tree, checks the tree
invariants and runs window queries against it. Node capacity and the
insertion policies are selected with global flags.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := traceLevel(s.trace)
			if err != nil {
				return err
			}
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(level)
			color.NoColor = !isTerminal(cmd)
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&s.maxElements, "max", 16, "maximum number of elements per node")
	flags.IntVar(&s.minElements, "min", 4, "minimum number of elements per non-root node")
	flags.StringVar(&s.split, "split", "quadratic", "split policy: linear, quadratic or rstar")
	flags.StringVar(&s.choose, "choose", "content", "subtree choice policy: content or overlap")
	flags.StringVar(&s.trace, "trace", "error", "trace level: debug, info or error")
	flags.BoolVar(&s.dump, "dump", false, "print the tree structure")
	flags.StringVar(&s.dot, "dot", "", "write the tree structure in Graphviz DOT format to a file")

	rootCmd.AddCommand(newRandomCmd(s), newLoadCmd(s), newQueryCmd(s))
	return rootCmd
}

// isTerminal reports whether the command writes to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s *settings) newIndex() (*geoindex.Index, error) {
	opts, err := s.options()
	if err != nil {
		return nil, err
	}
	idx, err := geoindex.NewIndex(opts)
	if err != nil {
		return nil, fmt.Errorf("cannot create index: %w", err)
	}
	return idx, nil
}
