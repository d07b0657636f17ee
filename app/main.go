package main

import (
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/lysyi3m/ai-digest/app/cfg"
	"github.com/lysyi3m/ai-digest/app/commands"
	"github.com/lysyi3m/ai-digest/app/logging"
)

func main() {
	var opts cfg.Options

	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		logging.Setup(opts.Debug)

		if _, err := cfg.Load(&opts); err != nil {
			return err
		}
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	if err := commands.Register(parser); err != nil {
		slog.Error("Failed to register commands", "error", err)
		os.Exit(1)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return
			}
		}
		os.Exit(1)
	}
}
