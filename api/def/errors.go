package def

import (
	"fmt"
	"strings"
)

/*
Error raised when the dispatch tag isn't one of the engine's operations.

`Valid` carries the full tag set so the caller can render a usable
message without re-deriving it.
*/
type ErrUnknownOperation struct {
	Tag   string
	Valid []OperationTag
}

func (e ErrUnknownOperation) Error() string {
	valid := make([]string, len(e.Valid))
	for i, t := range e.Valid {
		valid[i] = string(t)
	}
	return fmt.Sprintf("unknown operation %q; valid operations are: %s",
		e.Tag, strings.Join(valid, ", "))
}

/*
Error raised when a unit spelling isn't in the conversion table.

`Supported` is an optional summary of recognized spellings (typically
grouped per category); when present it's included in the message.
*/
type ErrUnknownUnit struct {
	Unit      string
	Supported string
}

func (e ErrUnknownUnit) Error() string {
	if e.Supported == "" {
		return fmt.Sprintf("unknown unit %q", e.Unit)
	}
	return fmt.Sprintf("unknown unit %q; supported: %s", e.Unit, e.Supported)
}

/*
Error raised when the source and target units of a conversion belong
to different physical categories.  No cross-category coercion is ever
attempted.
*/
type ErrIncompatibleCategories struct {
	FromUnit     string
	ToUnit       string
	FromCategory string
	ToCategory   string
}

func (e ErrIncompatibleCategories) Error() string {
	return fmt.Sprintf("cannot convert %q (%s) to %q (%s); units must be in the same category",
		e.FromUnit, e.FromCategory, e.ToUnit, e.ToCategory)
}

// Error raised when a constant name matches neither a canonical name nor an alias.
type ErrUnknownConstant struct {
	Name  string
	Known []string
}

func (e ErrUnknownConstant) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown constant %q", e.Name)
	}
	return fmt.Sprintf("unknown constant %q; available: %s",
		e.Name, strings.Join(e.Known, ", "))
}

/*
Error raised when a statistics request has zero usable numeric values
left after non-numeric and non-finite entries are dropped.
*/
type ErrEmptySample struct{}

func (e ErrEmptySample) Error() string {
	return "sample must contain at least one finite numeric value"
}

// Error raised when a required field for an operation is absent.
type ErrMissingField struct {
	Field     string
	Operation OperationTag
}

func (e ErrMissingField) Error() string {
	return fmt.Sprintf("field %q is required for %q", e.Field, e.Operation)
}

/*
Error raised when a solver receives the wrong count of its optional
fields -- e.g. dilution needs exactly three of c1, v1, c2, v2 so the
fourth can be solved; two or four supplied values leave nothing
well-determined.
*/
type ErrInvalidCombination struct {
	Operation OperationTag
	Supplied  int
	Expect    string
}

func (e ErrInvalidCombination) Error() string {
	return fmt.Sprintf("%s: %s (got %d)", e.Operation, e.Expect, e.Supplied)
}

// Error raised when a value that must be strictly positive is zero or negative.
type ErrNonPositive struct {
	Field string
	Value float64
}

func (e ErrNonPositive) Error() string {
	return fmt.Sprintf("%s must be > 0 (was %v)", e.Field, e.Value)
}

/*
Error raised when a solver would divide by a supplied value that is
zero or negative.  Distinct from ErrNonPositive so the caller can say
*why* the field needed to be positive.
*/
type ErrNonPositiveDivisor struct {
	Field      string
	Value      float64
	SolvingFor string
}

func (e ErrNonPositiveDivisor) Error() string {
	return fmt.Sprintf("%s must be > 0 to solve for %s (was %v)",
		e.Field, e.SolvingFor, e.Value)
}
