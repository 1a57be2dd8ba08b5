package cli

import (
	"io"

	"github.com/inconshreveable/log15"
	"github.com/urfave/cli"

	"github.com/benchwork/quant/api/def"
)

func DiluteCommandPattern(log log15.Logger, output io.Writer) cli.Command {
	return cli.Command{
		Name:  "dilute",
		Usage: "Solve C1×V1 = C2×V2 for the one field left unset",
		Flags: []cli.Flag{
			cli.Float64Flag{Name: "c1", Usage: "Initial concentration"},
			cli.Float64Flag{Name: "v1", Usage: "Initial volume"},
			cli.Float64Flag{Name: "c2", Usage: "Final concentration"},
			cli.Float64Flag{Name: "v2", Usage: "Final volume"},
		},
		Action: func(ctx *cli.Context) {
			req := &def.Request{Operation: def.OpDilution}
			// Which flags were *set* decides which variable gets solved,
			// so zero values must not be conflated with absent ones.
			if ctx.IsSet("c1") {
				v := ctx.Float64("c1")
				req.C1 = &v
			}
			if ctx.IsSet("v1") {
				v := ctx.Float64("v1")
				req.V1 = &v
			}
			if ctx.IsSet("c2") {
				v := ctx.Float64("c2")
				req.C2 = &v
			}
			if ctx.IsSet("v2") {
				v := ctx.Float64("v2")
				req.V2 = &v
			}
			evaluateAndEmit(log, output, req)
		},
	}
}

func MolarityCommandPattern(log log15.Logger, output io.Writer) cli.Command {
	return cli.Command{
		Name:  "molarity",
		Usage: "Compute molarity from mass, molecular weight, and volume",
		Flags: []cli.Flag{
			cli.Float64Flag{Name: "mass, m", Usage: "Mass in grams"},
			cli.Float64Flag{Name: "mw, w", Usage: "Molecular weight in g/mol"},
			cli.Float64Flag{Name: "volume, l", Usage: "Volume in liters"},
		},
		Action: func(ctx *cli.Context) {
			req := &def.Request{Operation: def.OpMolarity}
			if ctx.IsSet("mass") {
				v := ctx.Float64("mass")
				req.MassGrams = &v
			}
			if ctx.IsSet("mw") {
				v := ctx.Float64("mw")
				req.MolecularWeight = &v
			}
			if ctx.IsSet("volume") {
				v := ctx.Float64("volume")
				req.VolumeLiters = &v
			}
			evaluateAndEmit(log, output, req)
		},
	}
}
