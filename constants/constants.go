/*
The `constants` package is a fixed, read-only registry of physical and
chemical constants, keyed by canonical name and common aliases.

Values are CODATA; unit strings are display-only and are returned
verbatim rather than being fed into unit conversion.  The registry is
exhaustive at build time -- there is no runtime registration.
*/
package constants

import (
	"strings"

	"github.com/benchwork/quant/api/def"
)

type constant struct {
	name    string
	aliases []string
	value   float64
	unit    string
	label   string
}

var registry = []constant{
	{"avogadro", []string{"na"}, 6.02214076e23, "mol⁻¹", "Avogadro's number"},
	{"boltzmann", []string{"kb"}, 1.380649e-23, "J/K", "Boltzmann constant"},
	{"planck", []string{"h"}, 6.62607015e-34, "J·s", "Planck constant"},
	{"hbar", []string{"reduced_planck"}, 1.054571817e-34, "J·s", "Reduced Planck constant (ℏ)"},
	{"gas_constant", []string{"r"}, 8.314462618, "J/(mol·K)", "Universal gas constant"},
	{"speed_of_light", []string{"c"}, 2.99792458e8, "m/s", "Speed of light in vacuum"},
	{"faraday", []string{"f"}, 96485.33212, "C/mol", "Faraday constant"},
	{"electron_mass", []string{"me"}, 9.1093837015e-31, "kg", "Electron mass"},
	{"proton_mass", []string{"mp"}, 1.67262192369e-27, "kg", "Proton mass"},
	{"neutron_mass", []string{"mn"}, 1.67492749804e-27, "kg", "Neutron mass"},
	{"elementary_charge", []string{"e"}, 1.602176634e-19, "C", "Elementary charge"},
	{"gravitational", []string{"g"}, 6.67430e-11, "m³/(kg·s²)", "Gravitational constant"},
	{"standard_gravity", []string{"g0"}, 9.80665, "m/s²", "Standard acceleration of gravity"},
	{"vacuum_permittivity", []string{"epsilon0"}, 8.8541878128e-12, "F/m", "Vacuum permittivity (ε₀)"},
	{"vacuum_permeability", []string{"mu0"}, 1.25663706212e-6, "H/m", "Vacuum permeability (μ₀)"},
	{"stefan_boltzmann", []string{"sigma"}, 5.670374419e-8, "W/(m²·K⁴)", "Stefan–Boltzmann constant"},
	{"water_molar_mass", nil, 18.01528, "g/mol", "Molar mass of water"},
}

var index = map[string]*constant{}

func init() {
	for i := range registry {
		c := &registry[i]
		index[c.name] = c
		for _, a := range c.aliases {
			index[a] = c
		}
	}
}

/*
Lookup resolves a constant by canonical name or alias,
case-insensitively.  Two spellings of the same constant yield
identical records.  May fail with `def.ErrUnknownConstant`.
*/
func Lookup(name string) (*def.ConstantRecord, error) {
	c, ok := index[strings.ToLower(name)]
	if !ok {
		return nil, def.ErrUnknownConstant{Name: name, Known: Names()}
	}
	return &def.ConstantRecord{
		Name:  c.name,
		Label: c.label,
		Value: c.value,
		Unit:  c.unit,
	}, nil
}

// Names returns the canonical names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i := range registry {
		names[i] = registry[i].name
	}
	return names
}
