package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rebalance/date"
	"github.com/etnz/rebalance/logger"
	"github.com/etnz/rebalance/renderer"
	"github.com/google/subcommands"
)

// ledgerCmd holds the flags for the 'ledger' subcommand.
type ledgerCmd struct {
	sources
	date     date.Date
	dest     string
	src      string
	currency string
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "print the rebalancing as plain-text accounting transactions" }
func (*ledgerCmd) Usage() string {
	return `rbl ledger [-t <targets>] [-p <holdings>] [-d <date>] [-dest <account>] [-src <account>] <amount>

  Rebalances like 'rbl rebalance' and prints one ledger transaction per asset
  to buy or sell, ready to be appended to a ledger-cli or hledger journal.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	c.sources.SetFlags(f)
	c.date = date.Today()
	f.Var(&c.date, "d", "Date of the transactions")
	f.StringVar(&c.dest, "dest", "Assets:Investments", "Account receiving the contributions")
	f.StringVar(&c.src, "src", "Assets:Cash", "Account the contributions are taken from")
	f.StringVar(&c.currency, "c", *defaultCurrency, "Currency of the amounts")
}

func (c *ledgerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, status := c.rebalance(f, logger.FromContext(ctx), c.currency)
	if status != subcommands.ExitSuccess {
		return status
	}

	err := renderer.Ledger(stdout, report, renderer.LedgerOptions{
		Date:        c.date,
		Destination: c.dest,
		Source:      c.src,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
