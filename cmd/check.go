package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	sources
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the targets and holdings files" }
func (*checkCmd) Usage() string {
	return `rbl check [-t <targets>] [-p <holdings>]

  Reads both files and reports what a rebalancing would silently work around:
  targets not summing to 100%, holdings without a target, and targets without
  holdings. Use -p "" to check the targets alone.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) { c.sources.SetFlags(f) }

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	targets, err := c.decodeTargets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading targets %q: %v\n", c.targets, err)
		return subcommands.ExitFailure
	}

	var holdings []rebalance.Holding
	if c.holdings != "" {
		holdings, err = c.decodeHoldings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading holdings %q: %v\n", c.holdings, err)
			return subcommands.ExitFailure
		}
	}

	assets, dropped, err := rebalance.NewPortfolio(holdings, targets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	ok := true
	if sum := rebalance.TargetsSum(targets); !sum.Equal(rebalance.F(100)) {
		ok = false
		fmt.Fprintf(stdout, "targets sum to %s%%, not 100%%\n", sum.StringFixed(3))
	}
	for _, name := range dropped {
		ok = false
		fmt.Fprintf(stdout, "holding %q has no target and is ignored\n", name)
	}
	if c.holdings != "" {
		held := make(map[string]bool, len(holdings))
		for _, h := range holdings {
			held[h.Name] = true
		}
		for _, a := range assets {
			if !held[a.Name()] {
				fmt.Fprintf(stdout, "target %q has no holding, it starts from 0\n", a.Name())
			}
		}
	}

	if !ok {
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%d assets, targets sum to 100%%\n", len(assets))
	return subcommands.ExitSuccess
}
