package cli

import (
	"io"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli"

	"github.com/benchwork/quant/api/def"
)

func ConstCommandPattern(log log15.Logger, output io.Writer) cli.Command {
	return cli.Command{
		Name:      "const",
		Usage:     "Look up a physical/chemical constant by name or alias",
		ArgsUsage: "name",
		Action: func(ctx *cli.Context) {
			evaluateAndEmit(log, output, &def.Request{
				Operation: def.OpConstants,
				Constant:  ctx.Args().First(),
			})
		},
	}
}
