package def

/*
Record is the closed set of result shapes the engine can return.
Exactly one concrete type implements it per operation; callers switch
on the concrete type the same way they switch on error types.
*/
type Record interface {
	isRecord()
}

func (StatisticsRecord) isRecord() {}
func (ConversionRecord) isRecord() {}
func (ConstantRecord) isRecord()   {}
func (DilutionRecord) isRecord()   {}
func (MolarityRecord) isRecord()   {}

/*
StatisticsRecord describes a numeric sample: size, central tendency,
dispersion, extremes, and interpolated percentiles.

`StdDev`/`Variance` are the population figures (divide by n);
`SampleStdDev`/`SampleVariance` carry Bessel's correction (divide by
n-1, or 0 when n == 1).
*/
type StatisticsRecord struct {
	N              int             `json:"n"`
	Mean           float64         `json:"mean"`
	Median         float64         `json:"median"`
	StdDev         float64         `json:"std_dev"`
	SampleStdDev   float64         `json:"sample_std_dev"`
	SEM            float64         `json:"sem"`
	Variance       float64         `json:"variance"`
	SampleVariance float64         `json:"sample_variance"`
	Min            float64         `json:"min"`
	Max            float64         `json:"max"`
	Range          float64         `json:"range"`
	Sum            float64         `json:"sum"`
	Percentiles    PercentileGroup `json:"percentiles"`
	IQR            float64         `json:"iqr"`
}

// PercentileGroup holds the fixed percentile set every statistics result reports.
type PercentileGroup struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

/*
ConversionRecord echoes the conversion inputs alongside the converted
value, so the output is self-describing when piped onward.
*/
type ConversionRecord struct {
	Input    float64 `json:"input"`
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
	Result   float64 `json:"result"`
}

/*
ConstantRecord is one entry from the constants registry.

`Name` is the canonical registry name, regardless of which alias the
lookup used -- two aliases of the same constant yield identical records.
`Unit` is a display string only; it is never fed back into conversion.
*/
type ConstantRecord struct {
	Name  string  `json:"name"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

/*
DilutionRecord reports a solved C1*V1 = C2*V2 state: all four values,
plus which one was solved for.
*/
type DilutionRecord struct {
	C1        float64 `json:"c1"`
	V1        float64 `json:"v1"`
	C2        float64 `json:"c2"`
	V2        float64 `json:"v2"`
	SolvedFor string  `json:"solved_for"`
	Formula   string  `json:"formula"`
}

// MolarityRecord reports M = (mass / MW) / volume, in both mol/L and mmol/L.
type MolarityRecord struct {
	MassGrams        float64 `json:"mass_grams"`
	MolecularWeight  float64 `json:"molecular_weight"`
	VolumeLiters     float64 `json:"volume_liters"`
	Moles            float64 `json:"moles"`
	MolarityMolPerL  float64 `json:"molarity_mol_per_l"`
	MolarityMmolPerL float64 `json:"molarity_mmol_per_l"`
	Formula          string  `json:"formula"`
}
