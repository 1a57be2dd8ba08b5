/*
The `stats` package computes descriptive statistics over a numeric
sample: count, central tendency, dispersion, extremes, and
linearly-interpolated percentiles.

Percentiles follow the "R type-7" convention: rank = p/100 * (n-1),
interpolating between neighboring order statistics by the fractional
part of the rank.  Reproduce-exactly matters here; downstream report
generators compare these values bit-for-bit across runs.
*/
package stats

import (
	"math"
	"sort"

	"github.com/benchwork/quant/api/def"
)

/*
Describe computes the full statistics record for a sample.

Non-finite values (NaN, ±Inf) are dropped before any computation, so
the sort below always has a total order to work with.  May fail with
`def.ErrEmptySample` if nothing usable remains.

The input slice is never mutated; sorting happens on a copy.
*/
func Describe(sample []float64) (*def.StatisticsRecord, error) {
	values := make([]float64, 0, len(sample))
	for _, v := range sample {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, def.ErrEmptySample{}
	}

	n := float64(len(values))
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / n

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sqDev float64
	for _, v := range values {
		d := v - mean
		sqDev += d * d
	}
	variance := sqDev / n

	// Bessel's correction; defined as 0 for a single observation rather
	// than dividing by zero.
	sampleVariance := 0.0
	if len(values) > 1 {
		sampleVariance = sqDev / (n - 1)
	}
	sampleStdDev := math.Sqrt(sampleVariance)

	min := sorted[0]
	max := sorted[len(sorted)-1]

	rec := &def.StatisticsRecord{
		N:              len(values),
		Mean:           mean,
		Median:         median(sorted),
		StdDev:         math.Sqrt(variance),
		SampleStdDev:   sampleStdDev,
		SEM:            sampleStdDev / math.Sqrt(n),
		Variance:       variance,
		SampleVariance: sampleVariance,
		Min:            min,
		Max:            max,
		Range:          max - min,
		Sum:            sum,
		Percentiles: def.PercentileGroup{
			P25: percentile(sorted, 25),
			P50: percentile(sorted, 50),
			P75: percentile(sorted, 75),
			P90: percentile(sorted, 90),
			P95: percentile(sorted, 95),
			P99: percentile(sorted, 99),
		},
	}
	rec.IQR = rec.Percentiles.P75 - rec.Percentiles.P25
	return rec, nil
}

// median expects sorted input: the middle order statistic for odd n,
// the average of the two middle ones for even n.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// percentile expects sorted input.  Linear interpolation between order
// statistics (R type-7): integral ranks return the order statistic itself.
func percentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lower := math.Floor(rank)
	upper := math.Ceil(rank)
	if lower == upper {
		return sorted[int(rank)]
	}
	return sorted[int(lower)]*(upper-rank) + sorted[int(upper)]*(rank-lower)
}
