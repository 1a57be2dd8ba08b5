/*
The `def` package outlines the definitions shared by all quant components:
the tagged request that enters the engine, the result records that come
back out, and the full set of typed errors a computation can fail with.

Shortlist:

  - `Request`s carry an operation tag plus the named fields for
    that operation.  Fields for other operations are simply unused;
    unknown fields in a serialized request are ignored entirely.

  - `Record`s describe the outcome of one successful computation.
    There is exactly one record type per operation.

  - The `Err*` types enumerate every way a request can be refused.
    All of them are expected, recoverable conditions: a failed
    request produces no partial result, and nothing here is fatal.

Everything in this package is plain data.  The verbs live in the
`engine` package and its delegates.
*/
package def
