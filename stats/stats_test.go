package stats_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/benchwork/quant/api/def"
	"github.com/benchwork/quant/stats"
)

func TestDescribe(t *testing.T) {
	Convey("Given the sample [1 2 3 4 5]", t, func() {
		rec, err := stats.Describe([]float64{1, 2, 3, 4, 5})
		So(err, ShouldBeNil)

		Convey("Counts and sums should be exact", func() {
			So(rec.N, ShouldEqual, 5)
			So(rec.Sum, ShouldAlmostEqual, 15)
			So(rec.Mean, ShouldAlmostEqual, 3)
			So(rec.Min, ShouldAlmostEqual, 1)
			So(rec.Max, ShouldAlmostEqual, 5)
			So(rec.Range, ShouldAlmostEqual, 4)
		})

		Convey("Median of an odd sample is the middle order statistic", func() {
			So(rec.Median, ShouldAlmostEqual, 3)
			So(rec.Percentiles.P50, ShouldAlmostEqual, 3)
		})

		Convey("Dispersion should carry both population and sample figures", func() {
			So(rec.Variance, ShouldAlmostEqual, 2)
			So(rec.StdDev, ShouldAlmostEqual, math.Sqrt(2))
			So(rec.SampleVariance, ShouldAlmostEqual, 2.5)
			So(rec.SampleStdDev, ShouldAlmostEqual, math.Sqrt(2.5))
			So(rec.SEM, ShouldAlmostEqual, math.Sqrt(2.5)/math.Sqrt(5))
		})

		Convey("Percentiles should interpolate between order statistics", func() {
			So(rec.Percentiles.P25, ShouldAlmostEqual, 2)
			So(rec.Percentiles.P75, ShouldAlmostEqual, 4)
			So(rec.Percentiles.P90, ShouldAlmostEqual, 4.6)
			So(rec.Percentiles.P95, ShouldAlmostEqual, 4.8)
			So(rec.Percentiles.P99, ShouldAlmostEqual, 4.96)
			So(rec.IQR, ShouldAlmostEqual, 2)
		})
	})

	Convey("Given the sample [1 2 3 4]", t, func() {
		rec, err := stats.Describe([]float64{1, 2, 3, 4})
		So(err, ShouldBeNil)

		Convey("Median of an even sample averages the two middle elements", func() {
			So(rec.Median, ShouldAlmostEqual, 2.5)
		})

		Convey("Fractional ranks interpolate linearly", func() {
			// p25: rank = 0.25*3 = 0.75, so 1*(0.25) + 2*(0.75).
			So(rec.Percentiles.P25, ShouldAlmostEqual, 1.75)
			So(rec.Percentiles.P75, ShouldAlmostEqual, 3.25)
		})
	})

	Convey("Given a single-element sample", t, func() {
		rec, err := stats.Describe([]float64{42})
		So(err, ShouldBeNil)

		Convey("Sample variance is defined as zero rather than dividing by zero", func() {
			So(rec.N, ShouldEqual, 1)
			So(rec.SampleVariance, ShouldEqual, 0)
			So(rec.SampleStdDev, ShouldEqual, 0)
			So(rec.SEM, ShouldEqual, 0)
			So(rec.Range, ShouldEqual, 0)
		})
	})

	Convey("Given input ordering", t, func() {
		Convey("Order should not matter", func() {
			a, err := stats.Describe([]float64{5, 1, 4, 2, 3})
			So(err, ShouldBeNil)
			b, err := stats.Describe([]float64{1, 2, 3, 4, 5})
			So(err, ShouldBeNil)
			So(a, ShouldResemble, b)
		})

		Convey("The input slice should not be mutated", func() {
			sample := []float64{5, 1, 4}
			_, err := stats.Describe(sample)
			So(err, ShouldBeNil)
			So(sample, ShouldResemble, []float64{5, 1, 4})
		})
	})
}

func TestDescribeFiltering(t *testing.T) {
	Convey("Non-finite values should be dropped before computing", t, func() {
		rec, err := stats.Describe([]float64{1, math.NaN(), 3, math.Inf(1), math.Inf(-1)})
		So(err, ShouldBeNil)
		So(rec.N, ShouldEqual, 2)
		So(rec.Mean, ShouldAlmostEqual, 2)
	})

	Convey("An empty sample should be refused", t, func() {
		_, err := stats.Describe(nil)
		So(err, ShouldHaveSameTypeAs, def.ErrEmptySample{})
	})

	Convey("A sample with only non-finite values should be refused", t, func() {
		_, err := stats.Describe([]float64{math.NaN(), math.Inf(1)})
		So(err, ShouldHaveSameTypeAs, def.ErrEmptySample{})
	})
}
