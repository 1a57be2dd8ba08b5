package def

/*
OperationTag names one of the computations the engine can perform.

The set is closed: a tag outside this list is refused with
`ErrUnknownOperation` rather than being treated as extensible.
*/
type OperationTag string

const (
	OpStatistics  OperationTag = "statistics"
	OpUnitConvert OperationTag = "unit_convert"
	OpConstants   OperationTag = "constants"
	OpDilution    OperationTag = "dilution"
	OpMolarity    OperationTag = "molarity"
)

/*
OperationTags returns every recognized tag, in a fixed order suitable
for help text and error messages.
*/
func OperationTags() []OperationTag {
	return []OperationTag{
		OpStatistics,
		OpUnitConvert,
		OpConstants,
		OpDilution,
		OpMolarity,
	}
}

/*
Request is the single entry format for the engine: an operation tag
plus that operation's named fields.

Optional numeric fields are pointers so that "absent" and "zero" remain
distinguishable -- the dilution solver in particular decides which
variable to solve for by which fields are present.

`Data` is deliberately loose (`[]interface{}`): a statistics sample may
arrive with junk entries mixed in, and those are dropped during
extraction rather than aborting the computation.

Decoding a serialized request tolerates unknown extra fields; they are
ignored for forward compatibility.
*/
type Request struct {
	Operation OperationTag `json:"operation"`

	// statistics
	Data []interface{} `json:"data,omitempty"`

	// unit_convert
	Value    *float64 `json:"value,omitempty"`
	FromUnit string   `json:"from_unit,omitempty"`
	ToUnit   string   `json:"to_unit,omitempty"`

	// constants
	Constant string `json:"constant,omitempty"`

	// dilution
	C1 *float64 `json:"c1,omitempty"`
	V1 *float64 `json:"v1,omitempty"`
	C2 *float64 `json:"c2,omitempty"`
	V2 *float64 `json:"v2,omitempty"`

	// molarity
	MassGrams       *float64 `json:"mass_grams,omitempty"`
	MolecularWeight *float64 `json:"molecular_weight,omitempty"`
	VolumeLiters    *float64 `json:"volume_liters,omitempty"`
}
