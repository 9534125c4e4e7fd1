package cmd

import (
	"flag"
	"io"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var currencies = predict.Set{"CAD", "USD", "EUR", "GBP", "CHF", "JPY", "AUD"}

// flagPredictors suggests values for the flags shared by the commands.
var flagPredictors = map[string]complete.Predictor{
	"t":                predict.Files("*.csv"),
	"p":                predict.Or(predict.Files("*.csv"), predict.Files("*.json")),
	"o":                predict.Set{"md", "raw", "text", "json"},
	"c":                currencies,
	"default-currency": currencies,
	"allow-oversell":   predict.Nothing,
	"v":                predict.Nothing,
}

// Completion returns the shell completion of the commands registered in c,
// built from their own flag sets.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"v":                flagPredictors["v"],
			"default-currency": flagPredictors["default-currency"],
		},
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		cmd.SetFlags(fs)

		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			p, ok := flagPredictors[f.Name]
			if !ok {
				p = predict.Something
			}
			sub.Flags[f.Name] = p
		})
		root.Sub[cmd.Name()] = sub
	})
	return root
}
