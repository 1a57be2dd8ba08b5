package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli"
)

func Main(args []string, journal, output io.Writer) {
	// All progress and diagnostics go to "journal" (typically stderr);
	// result records go to "output" (typically stdout) so they can be
	// piped and parsed mechanically.
	log := log15.New()
	log.SetHandler(log15.LvlFilterHandler(
		log15.LvlInfo,
		log15.StreamHandler(journal, log15.TerminalFormat()),
	))

	App := cli.NewApp()

	App.Name = "quant"
	App.Usage = "Convert it. Describe it. Solve it."
	App.Version = "0.0.1"

	App.Writer = journal

	App.Commands = []cli.Command{
		EvalCommandPattern(log, output),
		ConvertCommandPattern(log, output),
		StatsCommandPattern(log, output),
		ConstCommandPattern(log, output),
		DiluteCommandPattern(log, output),
		MolarityCommandPattern(log, output),
	}

	// Reporting "no help topic for 'zyx'" and exiting with a *zero* is... silly.
	// A failure to hit a command should be an error.
	App.CommandNotFound = func(ctx *cli.Context, command string) {
		fmt.Fprintf(ctx.App.Writer, "'%s %v' is not a quant subcommand\n", ctx.App.Name, command)
		os.Exit(int(EXIT_BADARGS))
	}

	App.Run(args)
}
