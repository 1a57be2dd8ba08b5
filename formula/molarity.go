package formula

import (
	"github.com/benchwork/quant/api/def"
)

// MolarityFormula is the rendering carried on every molarity record.
const MolarityFormula = "M = (mass / MW) / volume"

/*
Molarity computes M = (mass / MW) / volume.  There is no partial-solve
mode: all three fields are mandatory, and an absent one is
`def.ErrMissingField`.

Molecular weight and volume must be strictly positive.  Mass may be
zero (yielding zero molarity) but not negative; a negative mass is
rejected as `def.ErrNonPositive` like the others.
*/
func Molarity(massGrams, molecularWeight, volumeLiters *float64) (*def.MolarityRecord, error) {
	if massGrams == nil {
		return nil, def.ErrMissingField{Field: "mass_grams", Operation: def.OpMolarity}
	}
	if molecularWeight == nil {
		return nil, def.ErrMissingField{Field: "molecular_weight", Operation: def.OpMolarity}
	}
	if volumeLiters == nil {
		return nil, def.ErrMissingField{Field: "volume_liters", Operation: def.OpMolarity}
	}
	if *molecularWeight <= 0 {
		return nil, def.ErrNonPositive{Field: "molecular_weight", Value: *molecularWeight}
	}
	if *volumeLiters <= 0 {
		return nil, def.ErrNonPositive{Field: "volume_liters", Value: *volumeLiters}
	}
	if *massGrams < 0 {
		return nil, def.ErrNonPositive{Field: "mass_grams", Value: *massGrams}
	}

	moles := *massGrams / *molecularWeight
	molarity := moles / *volumeLiters
	return &def.MolarityRecord{
		MassGrams:        *massGrams,
		MolecularWeight:  *molecularWeight,
		VolumeLiters:     *volumeLiters,
		Moles:            moles,
		MolarityMolPerL:  molarity,
		MolarityMmolPerL: molarity * 1000,
		Formula:          MolarityFormula,
	}, nil
}
