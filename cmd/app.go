// Package cmd implements the rbl command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&rebalanceCmd{}, "rebalancing")
	c.Register(&ledgerCmd{}, "rebalancing")
	c.Register(&checkCmd{}, "rebalancing")

	c.Register(&topicCmd{}, "documentation")
}

// Registered reports whether name is a command of c.
func Registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var defaultCurrency = flag.String("default-currency", envOr(EnvDefaultCurrency, "CAD"), "Currency of the amounts, used when -c is not set")

// Verbose traces the rebalancing steps on stderr.
var Verbose = flag.Bool("v", false, "verbose: log every rebalancing step")

// stdout is where commands write their output.
var stdout io.Writer = os.Stdout

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// QuoteNegativeAmount moves the first negative amount after a "--", so that
// "rbl rebalance -10000 -t t.csv" is not read as an unknown flag. Arguments already
// after a "--" are left alone.
func QuoteNegativeAmount(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if !strings.HasPrefix(a, "-") {
			continue
		}
		if _, err := rebalance.ParseAmount(a); err != nil {
			continue
		}
		res := make([]string, 0, len(args)+1)
		res = append(res, args[:i]...)
		res = append(res, args[i+1:]...)
		return append(res, "--", a)
	}
	return args
}

// sources holds the flags locating the targets and the holdings.
type sources struct {
	targets  string
	holdings string
	jsonPath string
	nameKey  string
	valueKey string
	oversell bool // allow withdrawals larger than the portfolio
}

func (s *sources) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.targets, "t", "targets.csv", "Targets file: one 'name,percent' line per asset")
	f.StringVar(&s.holdings, "p", "portfolio.csv", "Holdings file: 'name,value' lines, or a JSON export when it ends with .json")
	f.StringVar(&s.jsonPath, "select", "$", "JSONPath to the positions in a JSON holdings file")
	f.StringVar(&s.nameKey, "name-key", "name", "Field holding the asset name in a JSON holdings file")
	f.StringVar(&s.valueKey, "value-key", "value", "Field holding the asset value in a JSON holdings file")
	f.BoolVar(&s.oversell, "allow-oversell", false, "Allow withdrawing more than the portfolio is worth")
}

// decodeTargets reads the targets file.
func (s *sources) decodeTargets() ([]rebalance.Target, error) {
	f, err := os.Open(s.targets)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rebalance.DecodeTargets(f)
}

// decodeHoldings reads the holdings file, CSV or JSON depending on its extension.
func (s *sources) decodeHoldings() ([]rebalance.Holding, error) {
	f, err := os.Open(s.holdings)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(s.holdings), ".json") {
		return rebalance.DecodeHoldingsJSON(f, rebalance.HoldingsQuery{
			Path:     s.jsonPath,
			NameKey:  s.nameKey,
			ValueKey: s.valueKey,
		})
	}
	return rebalance.DecodeHoldings(f)
}

// load reads both files and joins them into the assets to rebalance.
func (s *sources) load(log *zap.SugaredLogger) ([]rebalance.Asset, error) {
	targets, err := s.decodeTargets()
	if err != nil {
		return nil, fmt.Errorf("reading targets %q: %w", s.targets, err)
	}
	holdings, err := s.decodeHoldings()
	if err != nil {
		return nil, fmt.Errorf("reading holdings %q: %w", s.holdings, err)
	}

	if sum := rebalance.TargetsSum(targets); !sum.Equal(rebalance.F(100)) {
		log.Warnw("targets do not sum to 100%", "sum", sum.StringFixed(3))
	}

	assets, dropped, err := rebalance.NewPortfolio(holdings, targets)
	if err != nil {
		return nil, err
	}
	for _, name := range dropped {
		log.Warnw("holding without target is ignored", "asset", name)
	}
	return assets, nil
}

// rebalance runs the engine on the sources for the contribution passed as the only argument.
func (s *sources) rebalance(f *flag.FlagSet, log *zap.SugaredLogger, cur string) (*rebalance.Report, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one amount to contribute, got %d arguments\n", f.NArg())
		return nil, subcommands.ExitUsageError
	}
	amount, err := rebalance.ParseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return nil, subcommands.ExitUsageError
	}

	assets, err := s.load(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	opts := []rebalance.Option{rebalance.WithLogger(log)}
	if !s.oversell {
		opts = append(opts, rebalance.RejectOverWithdrawal())
	}
	a, err := rebalance.Rebalance(amount, assets, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rebalancing: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return rebalance.NewReport(a, cur), subcommands.ExitSuccess
}
