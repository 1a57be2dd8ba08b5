package cli

import (
	"io"
	"strconv"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli"

	"github.com/benchwork/quant/api/def"
)

func StatsCommandPattern(log log15.Logger, output io.Writer) cli.Command {
	return cli.Command{
		Name:      "stats",
		Usage:     "Describe a numeric sample (mean, median, std devs, percentiles, ...)",
		ArgsUsage: "value [value ...]",
		Action: func(ctx *cli.Context) {
			// Arguments that don't parse as numbers are forwarded as-is;
			// the engine drops non-numeric entries during extraction
			// rather than aborting on them.
			args := ctx.Args()
			data := make([]interface{}, len(args))
			for i, arg := range args {
				if v, err := strconv.ParseFloat(arg, 64); err == nil {
					data[i] = v
				} else {
					data[i] = arg
				}
			}
			evaluateAndEmit(log, output, &def.Request{
				Operation: def.OpStatistics,
				Data:      data,
			})
		},
	}
}
