package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/ugorji/go/codec"

	"github.com/benchwork/quant/api/def"
	"github.com/benchwork/quant/engine"
)

/*
evaluateAndEmit runs one request through the engine and writes the
result record to output.

Every error the engine returns describes something the user can fix
about their request (wrong unit spelling, missing field, and so on),
so they all surface as `cli.Error` with EXIT_USER and the engine's own
message -- the typed errors already name the offending field/unit/tag.
*/
func evaluateAndEmit(log log15.Logger, output io.Writer, req *def.Request) {
	log.Info("evaluating", "operation", req.Operation)
	rec, err := engine.Evaluate(req)
	if err != nil {
		panic(Error.NewWith(err.Error(), SetExitCode(EXIT_USER)))
	}
	emitRecord(output, rec)
}

func emitRecord(output io.Writer, rec def.Record) {
	err := codec.NewEncoder(output, &codec.JsonHandle{Indent: -1}).Encode(rec)
	if err != nil {
		panic(err)
	}
	output.Write([]byte{'\n'})
}

/*
LoadRequestFromFile reads a tagged request in json format.
"-" reads stdin.  Unknown fields in the document are ignored.
*/
func LoadRequestFromFile(path string) *def.Request {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			panic(Error.NewWith(
				fmt.Sprintf("could not read request file %q: %s", path, err),
				SetExitCode(EXIT_BADARGS)))
		}
		defer file.Close()
		reader = file
	}
	req := &def.Request{}
	err := codec.NewDecoder(reader, &codec.JsonHandle{}).Decode(req)
	if err != nil {
		panic(Error.NewWith(
			fmt.Sprintf("request could not be parsed: %s", err),
			SetExitCode(EXIT_BADARGS)))
	}
	return req
}
