package cli

import (
	"github.com/spacemonkeygo/errors"
)

type ExitCode byte

const (
	EXIT_BADARGS      = ExitCode(1)
	EXIT_UNKNOWNPANIC = ExitCode(2) // same code as golang uses when the process dies naturally on an unhandled panic.
	EXIT_USER         = ExitCode(3) // grab bag for general user input errors (try to make a more specific code if possible/useful)
)

var ExitCodeKey = errors.GenSym()

/*
CLI errors are the last line: they should be formatted to be user-facing.
The main method will convert a CLIError into a short and well-formatted
message, and will *not* include stack traces unless the user is running
with debug mode enabled.

Every typed error the engine returns maps onto a CLIError -- they are
all expected, recoverable conditions describing something the user can
fix about their request.  Errors that indicate a quant bug should *not*
be mapped into a CLIError.
*/
var Error *errors.ErrorClass = errors.NewClass("CLIError")

/*
Use this to set a specific error code the process should exit with
when producing a `cli.Error`.

Example: `cli.Error.New("something terrible!", SetExitCode(EXIT_BADARGS))`
*/
func SetExitCode(code ExitCode) errors.ErrorOption {
	return errors.SetData(ExitCodeKey, code)
}
