// Command rbl splits a contribution across a portfolio without selling anything.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/rebalance/cmd"
	"github.com/etnz/rebalance/logger"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// handles the COMP_LINE protocol of shell completion, and exits.
	cmd.Completion(commander).Complete("rbl")

	flag.CommandLine.Parse(cmd.QuoteNegativeAmount(os.Args[1:]))

	if name := flag.Arg(0); name != "" && !cmd.Registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	log := logger.New(*cmd.Verbose)
	status := commander.Execute(logger.WithContext(context.Background(), log))
	_ = log.Sync()
	os.Exit(int(status))
}
