package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/bancaday/banca/cmd"
)

func main() {
	// Optional .env file for BANCA_CURRENCY and friends.
	_ = godotenv.Load()

	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"day": {Flags: map[string]complete.Predictor{
				"p": predict.Something,
			}},
			"plan": {Flags: map[string]complete.Predictor{
				"path": predict.Something,
				"c":    predict.Set{"BRL", "USD", "EUR"},
			}},
			"scenario": {},
			"topic":    {Args: predict.Set{"readme", "day", "settlement", "exit", "plan"}},
		},
	}
	completion.Complete("banca")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
