package cli

import (
	"io"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli"

	"github.com/benchwork/quant/api/def"
)

func ConvertCommandPattern(log log15.Logger, output io.Writer) cli.Command {
	return cli.Command{
		Name:  "convert",
		Usage: "Convert a value between two units of the same category",
		Flags: []cli.Flag{
			cli.Float64Flag{
				Name:  "value, v",
				Usage: "Numeric value to convert",
			},
			cli.StringFlag{
				Name:  "from, f",
				Usage: "Source unit spelling (case-insensitive)",
			},
			cli.StringFlag{
				Name:  "to, t",
				Usage: "Target unit spelling (case-insensitive)",
			},
		},
		Action: func(ctx *cli.Context) {
			req := &def.Request{
				Operation: def.OpUnitConvert,
				FromUnit:  ctx.String("from"),
				ToUnit:    ctx.String("to"),
			}
			if ctx.IsSet("value") {
				value := ctx.Float64("value")
				req.Value = &value
			}
			evaluateAndEmit(log, output, req)
		},
	}
}
