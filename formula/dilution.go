/*
The `formula` package holds closed-form solvers for bench formulas:
serial dilution (C1*V1 = C2*V2) and molarity (M = (mass / MW) / volume).

Both are pure rearrangements with domain validation; there is no
iteration, no symbolic algebra, and no state.
*/
package formula

import (
	"github.com/benchwork/quant/api/def"
)

// DilutionFormula is the rendering carried on every dilution record.
const DilutionFormula = "C1×V1 = C2×V2"

/*
Dilution solves C1*V1 = C2*V2 for whichever single field is absent.

Exactly three of the four fields must be supplied -- two leave the
system underdetermined, four leave nothing to solve -- otherwise
`def.ErrInvalidCombination` is returned.  The supplied field that ends
up in the divisor position must be strictly positive, else
`def.ErrNonPositiveDivisor`.
*/
func Dilution(c1, v1, c2, v2 *float64) (*def.DilutionRecord, error) {
	supplied := 0
	for _, p := range []*float64{c1, v1, c2, v2} {
		if p != nil {
			supplied++
		}
	}
	if supplied != 3 {
		return nil, def.ErrInvalidCombination{
			Operation: def.OpDilution,
			Supplied:  supplied,
			Expect:    "supply exactly three of c1, v1, c2, v2; the fourth is solved",
		}
	}

	rec := &def.DilutionRecord{Formula: DilutionFormula}
	switch {
	case v2 == nil:
		if *c2 <= 0 {
			return nil, def.ErrNonPositiveDivisor{Field: "c2", Value: *c2, SolvingFor: "v2"}
		}
		rec.C1, rec.V1, rec.C2 = *c1, *v1, *c2
		rec.V2 = (*c1 * *v1) / *c2
		rec.SolvedFor = "v2"
	case c2 == nil:
		if *v2 <= 0 {
			return nil, def.ErrNonPositiveDivisor{Field: "v2", Value: *v2, SolvingFor: "c2"}
		}
		rec.C1, rec.V1, rec.V2 = *c1, *v1, *v2
		rec.C2 = (*c1 * *v1) / *v2
		rec.SolvedFor = "c2"
	case v1 == nil:
		if *c1 <= 0 {
			return nil, def.ErrNonPositiveDivisor{Field: "c1", Value: *c1, SolvingFor: "v1"}
		}
		rec.C1, rec.C2, rec.V2 = *c1, *c2, *v2
		rec.V1 = (*c2 * *v2) / *c1
		rec.SolvedFor = "v1"
	default: // c1 == nil
		if *v1 <= 0 {
			return nil, def.ErrNonPositiveDivisor{Field: "v1", Value: *v1, SolvingFor: "c1"}
		}
		rec.V1, rec.C2, rec.V2 = *v1, *c2, *v2
		rec.C1 = (*c2 * *v2) / *v1
		rec.SolvedFor = "c1"
	}
	return rec, nil
}
