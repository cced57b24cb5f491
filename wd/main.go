package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/calibre47/watchdesk/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("wd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion. It returns
// early inside Complete when not invoked by a shell completion hook.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{
			"d": predict.Something,
			"f": predict.Files("*.json"),
		}}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"inventory-file": predict.Files("*.jsonl"),
			"contacts-file":  predict.Files("*.jsonl"),
			"currency":       predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
			"target":         predict.Something,
			"user":           predict.Something,
		},
	}
}
