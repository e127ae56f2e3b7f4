package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/household/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env file in the household directory feeds the HHB_* defaults.
	// Missing file is the normal case.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion for the binary. It only acts when the
// shell invokes the binary in completion mode, and is a no-op otherwise.
func completion() {
	files := predict.Files("*.jsonl")
	months := predict.Nothing
	global := map[string]complete.Predictor{
		"accounts-file":  files,
		"ledger-file":    files,
		"trades-file":    files,
		"prices-file":    files,
		"recurring-file": files,
		"presets-file":   predict.Files("*.json"),
		"currency":       predict.Set{"EUR", "USD", "GBP", "CHF"},
	}

	(&complete.Command{
		Flags: global,
		Sub: map[string]*complete.Command{
			"balances": {},
			"holdings": {Flags: map[string]complete.Predictor{"cost": predict.Nothing}},
			"history":  {Flags: map[string]complete.Predictor{"tail": predict.Something}},
			"review":   {Flags: map[string]complete.Predictor{"m": months}},
			"add": {Flags: map[string]complete.Predictor{
				"k": predict.Set{"income", "expense", "transfer"},
			}},
			"trade": {Flags: map[string]complete.Predictor{
				"side": predict.Set{"buy", "sell"},
			}},
			"recur":  {Flags: map[string]complete.Predictor{"m": months, "apply": predict.Nothing}},
			"prices": {Flags: map[string]complete.Predictor{"file": predict.Files("*.json")}},
			"fmt":    {},
			"assist": {Flags: map[string]complete.Predictor{"m": months}},
			"topic":  {Args: predict.Set{"readme", "files", "recurring", "trading", "*"}},
		},
	}).Complete("hhb")
}
