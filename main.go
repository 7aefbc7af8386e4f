package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lsynth/gofactor/factor"
	"github.com/lsynth/gofactor/sop"
)

var nodeColor = color.New(color.FgCyan, color.Bold)

func main() {
	opts := factor.DefaultOptions()
	var (
		anyProfit  bool
		noRefactor bool
		strict     bool
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   `gofactor "expression"`,
		Short: "factor a sum-of-products boolean expression into a multi-level network",
		Long: `gofactor rewrites a two-level sum-of-products expression, such as
"adf + aef + bdf + h", into a network of smaller expressions linked by
intermediate nodes, minimizing the total literal count.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.RequirePositiveProfit = !anyProfit
			opts.FactorDefs = !noRefactor
			if strict {
				opts.Coverage = factor.CoverStrict
			}
			opts.Logger = log.StandardLogger()
			return run(args[0], opts)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&opts.Prefix, "prefix", opts.Prefix, "node name prefix")
	cmd.Flags().IntVar(&opts.StartID, "start", opts.StartID, "first node id")
	cmd.Flags().IntVar(&opts.MaxIters, "max-iters", opts.MaxIters, "maximum rewriting iterations")
	cmd.Flags().IntVar(&opts.MinRows, "min-rows", opts.MinRows, "minimum rectangle rows")
	cmd.Flags().IntVar(&opts.MinCols, "min-cols", opts.MinCols, "minimum rectangle columns")
	cmd.Flags().IntVar(&opts.MaxRectangles, "max-rects", opts.MaxRectangles, "rectangle cap per iteration (0: no cap)")
	cmd.Flags().IntVar(&opts.MaxDefDepth, "depth", opts.MaxDefDepth, "maximum definition re-factoring depth")
	cmd.Flags().BoolVar(&anyProfit, "any-profit", false, "accept rectangles with non-positive profit")
	cmd.Flags().BoolVar(&noRefactor, "no-refactor", false, "do not re-factor node definitions")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on partial rectangle coverage")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(input string, opts factor.Options) error {
	f := sop.Parse(input)
	res, err := factor.Synthesize(f, opts)
	if err != nil {
		return err
	}

	fmt.Printf("input:  %s   (%d literals)\n", f, f.NumLiterals())
	fmt.Printf("output: F = %s\n", res.Expr)
	for _, node := range sortedNodes(res.Defs) {
		fmt.Printf("        %s = %s\n", nodeColor.Sprint(node), res.Defs[node])
	}
	fmt.Printf("%d literals total (stop: %s)\n", res.TotalLiterals(), res.Stop)
	return nil
}

func sortedNodes(defs map[string]sop.Expr) []string {
	nodes := make([]string, 0, len(defs))
	for node := range defs {
		nodes = append(nodes, node)
	}
	// Length first, so t2 sorts before t10.
	sort.Slice(nodes, func(i, j int) bool {
		if len(nodes[i]) != len(nodes[j]) {
			return len(nodes[i]) < len(nodes[j])
		}
		return nodes[i] < nodes[j]
	})
	return nodes
}
