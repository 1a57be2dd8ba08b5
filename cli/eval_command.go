package cli

import (
	"io"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli"
)

func EvalCommandPattern(log log15.Logger, output io.Writer) cli.Command {
	return cli.Command{
		Name:  "eval",
		Usage: "Evaluate a raw tagged request (json format)",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "input, i",
				Value: "-",
				Usage: "Location of request (json format); '-' reads stdin",
			},
		},
		Action: func(ctx *cli.Context) {
			req := LoadRequestFromFile(ctx.String("input"))
			evaluateAndEmit(log, output, req)
		},
	}
}
