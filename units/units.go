/*
The `units` package converts scalar values between unit spellings
within one physical category.

Every recognized spelling (symbol, long form, plural, alias) maps to
exactly one (category, scale, offset) triple, and every category pivots
through a single base unit (meter, kilogram, liter, kelvin, second,
pascal, mol/L, joule).  Conversion is always two-phase: source to base,
base to target.  That keeps the table O(spellings) instead of
O(spellings squared), and makes A->base->B and B->base->A exact
inverses wherever the factors are reciprocal.

One affine representation serves all categories: `base = value*scale +
offset`.  Offset is zero everywhere except temperature, the one
category whose conversions are not pure scalings.
*/
package units

import (
	"strings"

	"github.com/benchwork/quant/api/def"
)

// Category is one physical-quantity category.  A spelling belongs to
// exactly one category; membership is enforced by the table, never inferred.
type Category int

const (
	Length Category = iota
	Mass
	Volume
	Temperature
	Time
	Pressure
	MolarConcentration
	Energy
)

func (c Category) String() string {
	switch c {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Volume:
		return "volume"
	case Temperature:
		return "temperature"
	case Time:
		return "time"
	case Pressure:
		return "pressure"
	case MolarConcentration:
		return "molar-concentration"
	case Energy:
		return "energy"
	default:
		return "invalid"
	}
}

// BaseUnit names the canonical unit all conversions in the category pivot through.
func (c Category) BaseUnit() string {
	switch c {
	case Length:
		return "m"
	case Mass:
		return "kg"
	case Volume:
		return "l"
	case Temperature:
		return "k"
	case Time:
		return "s"
	case Pressure:
		return "pa"
	case MolarConcentration:
		return "mol/l"
	case Energy:
		return "j"
	default:
		return ""
	}
}

// factor canonicalizes one spelling: base = value*scale + offset.
type factor struct {
	category Category
	scale    float64
	offset   float64
}

var table = map[string]factor{}

func reg(cat Category, scale float64, spellings ...string) {
	regAffine(cat, scale, 0, spellings...)
}

func regAffine(cat Category, scale, offset float64, spellings ...string) {
	for _, s := range spellings {
		table[s] = factor{cat, scale, offset}
	}
}

func init() {
	// Length -> meters
	reg(Length, 1, "m", "meter", "meters")
	reg(Length, 1000, "km", "kilometer", "kilometers")
	reg(Length, 0.01, "cm", "centimeter", "centimeters")
	reg(Length, 0.001, "mm", "millimeter", "millimeters")
	reg(Length, 1e-6, "um", "micrometer", "micrometers", "micron", "microns")
	reg(Length, 1e-9, "nm", "nanometer", "nanometers")
	reg(Length, 1e-12, "pm", "picometer", "picometers")
	reg(Length, 1e-10, "angstrom", "angstroms", "å")
	reg(Length, 0.0254, "in", "inch", "inches")
	reg(Length, 0.3048, "ft", "foot", "feet")
	reg(Length, 1609.344, "mi", "mile", "miles")

	// Mass -> kilograms
	reg(Mass, 1, "kg", "kilogram", "kilograms")
	reg(Mass, 0.001, "g", "gram", "grams")
	reg(Mass, 1e-6, "mg", "milligram", "milligrams")
	reg(Mass, 1e-9, "ug", "microgram", "micrograms")
	reg(Mass, 1e-12, "ng", "nanogram", "nanograms")
	reg(Mass, 0.453592, "lb", "pound", "pounds")
	reg(Mass, 0.0283495, "oz", "ounce", "ounces")
	reg(Mass, 1.66053906660e-27, "dalton", "daltons", "da", "amu")

	// Volume -> liters
	reg(Volume, 1, "l", "liter", "liters", "litre", "litres")
	reg(Volume, 0.001, "ml", "milliliter", "milliliters")
	reg(Volume, 1e-6, "ul", "microliter", "microliters")
	reg(Volume, 1e-9, "nl", "nanoliter", "nanoliters")
	reg(Volume, 3.78541, "gal", "gallon", "gallons")

	// Temperature -> kelvin (the one affine category)
	regAffine(Temperature, 1, 0, "k", "kelvin")
	regAffine(Temperature, 1, 273.15, "c", "celsius")
	regAffine(Temperature, 5.0/9.0, 273.15-32.0*5.0/9.0, "f", "fahrenheit")

	// Time -> seconds
	reg(Time, 1, "s", "sec", "second", "seconds")
	reg(Time, 0.001, "ms", "millisecond", "milliseconds")
	reg(Time, 1e-6, "us", "microsecond", "microseconds")
	reg(Time, 1e-9, "ns", "nanosecond", "nanoseconds")
	reg(Time, 60, "min", "minute", "minutes")
	reg(Time, 3600, "h", "hr", "hour", "hours")
	reg(Time, 86400, "day", "days")

	// Pressure -> pascals
	reg(Pressure, 1, "pa", "pascal", "pascals")
	reg(Pressure, 1000, "kpa", "kilopascal", "kilopascals")
	reg(Pressure, 100000, "bar")
	reg(Pressure, 101325, "atm", "atmosphere", "atmospheres")
	reg(Pressure, 133.322, "mmhg", "torr")
	reg(Pressure, 6894.76, "psi")

	// Molar concentration -> mol/L
	reg(MolarConcentration, 1, "mol/l", "molar", "mol/liter")
	reg(MolarConcentration, 0.001, "mmol/l", "millimolar")
	reg(MolarConcentration, 1e-6, "umol/l", "micromolar")
	reg(MolarConcentration, 1e-9, "nmol/l", "nanomolar")

	// Energy -> joules
	reg(Energy, 1, "j", "joule", "joules")
	reg(Energy, 1000, "kj", "kilojoule", "kilojoules")
	reg(Energy, 4.184, "cal", "calorie", "calories")
	reg(Energy, 4184, "kcal", "kilocalorie", "kilocalories")
	reg(Energy, 1.602176634e-19, "ev", "electronvolt", "electronvolts")
}

// supportedSummary is included in unknown-unit errors so the caller can
// render an actionable message without consulting the table themselves.
const supportedSummary = "length (m, km, cm, mm, um, nm, pm, angstrom, in, ft, mi), " +
	"mass (kg, g, mg, ug, ng, lb, oz, dalton), " +
	"volume (l, ml, ul, nl, gal), " +
	"temperature (k, c, f), " +
	"time (s, ms, us, ns, min, h, day), " +
	"pressure (pa, kpa, bar, atm, mmhg, psi), " +
	"molar-concentration (mol/l, mmol/l, umol/l, nmol/l), " +
	"energy (j, kj, cal, kcal, ev)"

func lookup(unit string) (factor, error) {
	f, ok := table[strings.ToLower(unit)]
	if !ok {
		return factor{}, def.ErrUnknownUnit{Unit: unit, Supported: supportedSummary}
	}
	return f, nil
}

/*
ToBase canonicalizes a value: converts it to the base unit of the
spelling's category and reports which category that was.
*/
func ToBase(value float64, unit string) (float64, Category, error) {
	f, err := lookup(unit)
	if err != nil {
		return 0, 0, err
	}
	return value*f.scale + f.offset, f.category, nil
}

/*
FromBase converts a base-unit value of the given category into the
target spelling.  Fails if the target doesn't belong to the category.
*/
func FromBase(value float64, cat Category, unit string) (float64, error) {
	f, err := lookup(unit)
	if err != nil {
		return 0, err
	}
	if f.category != cat {
		return 0, def.ErrIncompatibleCategories{
			FromUnit:     cat.BaseUnit(),
			ToUnit:       unit,
			FromCategory: cat.String(),
			ToCategory:   f.category.String(),
		}
	}
	return (value - f.offset) / f.scale, nil
}

/*
Convert takes a value from one spelling to another within a single
category, via the category's base unit.

May fail with:

  - `def.ErrUnknownUnit` -- either spelling isn't in the table.
  - `def.ErrIncompatibleCategories` -- the spellings resolve to
    different categories.
*/
func Convert(value float64, from, to string) (float64, error) {
	ff, err := lookup(from)
	if err != nil {
		return 0, err
	}
	ft, err := lookup(to)
	if err != nil {
		return 0, err
	}
	if ff.category != ft.category {
		return 0, def.ErrIncompatibleCategories{
			FromUnit:     from,
			ToUnit:       to,
			FromCategory: ff.category.String(),
			ToCategory:   ft.category.String(),
		}
	}
	base := value*ff.scale + ff.offset
	return (base - ft.offset) / ft.scale, nil
}

// Categories returns every category, in declaration order.
func Categories() []Category {
	return []Category{
		Length, Mass, Volume, Temperature,
		Time, Pressure, MolarConcentration, Energy,
	}
}

// Spellings returns every recognized spelling of one category, unordered.
func Spellings(cat Category) []string {
	var out []string
	for s, f := range table {
		if f.category == cat {
			out = append(out, s)
		}
	}
	return out
}
