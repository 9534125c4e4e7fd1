package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/logger"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	sources
	output   string
	currency string
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "split a contribution or a withdrawal across the portfolio" }
func (*rebalanceCmd) Usage() string {
	return `rbl rebalance [-t <targets>] [-p <holdings>] [-o md|text|json|raw] [-c <currency>] [-allow-oversell] <amount>

  Computes how much to buy of each asset to bring the portfolio closer to its
  targets, without selling anything. A negative amount is a withdrawal: it is
  taken from the most overweight assets first.

Usage Examples:
# Deposit 10,000 and show the allocation table.
$ rbl rebalance -t targets.csv -p portfolio.csv 10000

# Withdraw 2,500 from a broker export.
$ rbl rebalance -p export.json -select '$.positions' -name-key symbol -value-key marketValue -2500

`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	c.sources.SetFlags(f)
	f.StringVar(&c.output, "o", "md", "Output format: md (rendered markdown), raw (markdown source), text or json")
	f.StringVar(&c.currency, "c", *defaultCurrency, "Currency of the amounts")
}

func (c *rebalanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch c.output {
	case "md", "raw", "text", "json":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", c.output)
		return subcommands.ExitUsageError
	}

	report, status := c.rebalance(f, logger.FromContext(ctx), c.currency)
	if status != subcommands.ExitSuccess {
		return status
	}

	switch c.output {
	case "md":
		printMarkdown(renderer.Markdown(report))
	case "raw":
		fmt.Fprint(stdout, renderer.Markdown(report))
	case "text":
		if err := renderer.Table(stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing table: %v\n", err)
			return subcommands.ExitFailure
		}
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
