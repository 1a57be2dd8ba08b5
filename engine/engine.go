/*
The `engine` package is the single entry point for quantitative
computation: one `Evaluate` call routes a tagged request to the unit
converter, the statistics describer, the constants registry, or one of
the formula solvers, and returns one result record or one typed error.

The engine performs no computation of its own -- it checks that the
operation-specific required fields are present and forwards.  Detailed
validation belongs to the delegates.

Everything here is a pure function over the request: no I/O, no
logging, no shared state.  Requests may run on any goroutine the
caller likes, fully in parallel; there is nothing to race on.
*/
package engine

import (
	"math"

	"github.com/benchwork/quant/api/def"
	"github.com/benchwork/quant/constants"
	"github.com/benchwork/quant/formula"
	"github.com/benchwork/quant/stats"
	"github.com/benchwork/quant/units"
)

var operations = map[def.OperationTag]func(*def.Request) (def.Record, error){
	def.OpStatistics:  evalStatistics,
	def.OpUnitConvert: evalUnitConvert,
	def.OpConstants:   evalConstants,
	def.OpDilution:    evalDilution,
	def.OpMolarity:    evalMolarity,
}

/*
Evaluate dispatches one request to the operation its tag names.

A tag outside the fixed operation set fails with
`def.ErrUnknownOperation`; request fields irrelevant to the tagged
operation are ignored.  A failed request produces no partial result.
*/
func Evaluate(req *def.Request) (def.Record, error) {
	op, ok := operations[req.Operation]
	if !ok {
		return nil, def.ErrUnknownOperation{
			Tag:   string(req.Operation),
			Valid: def.OperationTags(),
		}
	}
	return op(req)
}

func evalStatistics(req *def.Request) (def.Record, error) {
	if req.Data == nil {
		return nil, def.ErrMissingField{Field: "data", Operation: def.OpStatistics}
	}
	rec, err := stats.Describe(extractNumbers(req.Data))
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

func evalUnitConvert(req *def.Request) (def.Record, error) {
	if req.Value == nil {
		return nil, def.ErrMissingField{Field: "value", Operation: def.OpUnitConvert}
	}
	if req.FromUnit == "" {
		return nil, def.ErrMissingField{Field: "from_unit", Operation: def.OpUnitConvert}
	}
	if req.ToUnit == "" {
		return nil, def.ErrMissingField{Field: "to_unit", Operation: def.OpUnitConvert}
	}
	result, err := units.Convert(*req.Value, req.FromUnit, req.ToUnit)
	if err != nil {
		return nil, err
	}
	return def.ConversionRecord{
		Input:    *req.Value,
		FromUnit: req.FromUnit,
		ToUnit:   req.ToUnit,
		Result:   result,
	}, nil
}

func evalConstants(req *def.Request) (def.Record, error) {
	if req.Constant == "" {
		return nil, def.ErrMissingField{Field: "constant", Operation: def.OpConstants}
	}
	rec, err := constants.Lookup(req.Constant)
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

func evalDilution(req *def.Request) (def.Record, error) {
	rec, err := formula.Dilution(req.C1, req.V1, req.C2, req.V2)
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

func evalMolarity(req *def.Request) (def.Record, error) {
	rec, err := formula.Molarity(req.MassGrams, req.MolecularWeight, req.VolumeLiters)
	if err != nil {
		return nil, err
	}
	return *rec, nil
}

/*
extractNumbers pulls the usable numbers out of a loosely-typed sample.
Non-numeric entries are dropped silently -- they never abort the
computation -- as are non-finite values.  Decoders hand us numbers in
several concrete types depending on how the wire value was spelled, so
this switch is wider than it first appears to need to be.
*/
func extractNumbers(data []interface{}) []float64 {
	values := make([]float64, 0, len(data))
	for _, entry := range data {
		var v float64
		switch n := entry.(type) {
		case float64:
			v = n
		case float32:
			v = float64(n)
		case int:
			v = float64(n)
		case int64:
			v = float64(n)
		case uint64:
			v = float64(n)
		default:
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)
	}
	return values
}
