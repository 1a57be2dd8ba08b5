package engine_test

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/benchwork/quant/api/def"
	"github.com/benchwork/quant/engine"
)

func f(v float64) *float64 { return &v }

func TestDispatch(t *testing.T) {
	Convey("Given a tagged request", t, func() {
		Convey("statistics should route to the describer", func() {
			rec, err := engine.Evaluate(&def.Request{
				Operation: def.OpStatistics,
				Data:      []interface{}{1.0, 2.0, 3.0, 4.0, 5.0},
			})
			So(err, ShouldBeNil)
			stats := rec.(def.StatisticsRecord)
			So(stats.N, ShouldEqual, 5)
			So(stats.Mean, ShouldAlmostEqual, 3)
		})

		Convey("unit_convert should route to the converter", func() {
			rec, err := engine.Evaluate(&def.Request{
				Operation: def.OpUnitConvert,
				Value:     f(100),
				FromUnit:  "c",
				ToUnit:    "f",
			})
			So(err, ShouldBeNil)
			conv := rec.(def.ConversionRecord)
			So(conv.Result, ShouldAlmostEqual, 212, 0.01)
			So(conv.Input, ShouldAlmostEqual, 100)
			So(conv.FromUnit, ShouldEqual, "c")
		})

		Convey("constants should route to the registry", func() {
			rec, err := engine.Evaluate(&def.Request{
				Operation: def.OpConstants,
				Constant:  "boltzmann",
			})
			So(err, ShouldBeNil)
			So(rec.(def.ConstantRecord).Value, ShouldEqual, 1.380649e-23)
		})

		Convey("dilution should route to the solver", func() {
			rec, err := engine.Evaluate(&def.Request{
				Operation: def.OpDilution,
				C1:        f(10), V1: f(5), C2: f(2),
			})
			So(err, ShouldBeNil)
			So(rec.(def.DilutionRecord).V2, ShouldAlmostEqual, 25)
		})

		Convey("molarity should route to the solver", func() {
			rec, err := engine.Evaluate(&def.Request{
				Operation:       def.OpMolarity,
				MassGrams:       f(58.44),
				MolecularWeight: f(58.44),
				VolumeLiters:    f(1),
			})
			So(err, ShouldBeNil)
			So(rec.(def.MolarityRecord).MolarityMolPerL, ShouldAlmostEqual, 1.0, 1e-10)
		})

		Convey("An unrecognized tag should be refused with the valid set attached", func() {
			_, err := engine.Evaluate(&def.Request{Operation: "transmogrify"})
			So(err, ShouldHaveSameTypeAs, def.ErrUnknownOperation{})
			e := err.(def.ErrUnknownOperation)
			So(e.Tag, ShouldEqual, "transmogrify")
			So(e.Valid, ShouldContain, def.OpStatistics)
		})

		Convey("Fields irrelevant to the tagged operation should be ignored", func() {
			rec, err := engine.Evaluate(&def.Request{
				Operation: def.OpConstants,
				Constant:  "planck",
				FromUnit:  "km", // not a constants field; must not disturb the lookup
				C1:        f(1),
			})
			So(err, ShouldBeNil)
			So(rec.(def.ConstantRecord).Name, ShouldEqual, "planck")
		})
	})
}

func TestRequiredFieldValidation(t *testing.T) {
	Convey("The facade should refuse requests missing required fields", t, func() {
		Convey("statistics without data", func() {
			_, err := engine.Evaluate(&def.Request{Operation: def.OpStatistics})
			So(err, ShouldHaveSameTypeAs, def.ErrMissingField{})
			So(err.(def.ErrMissingField).Field, ShouldEqual, "data")
		})

		Convey("unit_convert without each of its fields", func() {
			_, err := engine.Evaluate(&def.Request{
				Operation: def.OpUnitConvert, FromUnit: "km", ToUnit: "m",
			})
			So(err.(def.ErrMissingField).Field, ShouldEqual, "value")

			_, err = engine.Evaluate(&def.Request{
				Operation: def.OpUnitConvert, Value: f(1), ToUnit: "m",
			})
			So(err.(def.ErrMissingField).Field, ShouldEqual, "from_unit")

			_, err = engine.Evaluate(&def.Request{
				Operation: def.OpUnitConvert, Value: f(1), FromUnit: "km",
			})
			So(err.(def.ErrMissingField).Field, ShouldEqual, "to_unit")
		})

		Convey("constants without a name", func() {
			_, err := engine.Evaluate(&def.Request{Operation: def.OpConstants})
			So(err.(def.ErrMissingField).Field, ShouldEqual, "constant")
		})
	})
}

func TestSampleExtraction(t *testing.T) {
	Convey("Given a loosely-typed sample", t, func() {
		Convey("Non-numeric entries should be dropped, never aborting", func() {
			rec, err := engine.Evaluate(&def.Request{
				Operation: def.OpStatistics,
				Data:      []interface{}{1.0, "banana", int64(3), nil, true, uint64(5)},
			})
			So(err, ShouldBeNil)
			stats := rec.(def.StatisticsRecord)
			So(stats.N, ShouldEqual, 3)
			So(stats.Sum, ShouldAlmostEqual, 9)
		})

		Convey("Non-finite numbers should be dropped too", func() {
			rec, err := engine.Evaluate(&def.Request{
				Operation: def.OpStatistics,
				Data:      []interface{}{2.0, math.NaN(), math.Inf(1)},
			})
			So(err, ShouldBeNil)
			So(rec.(def.StatisticsRecord).N, ShouldEqual, 1)
		})

		Convey("A sample with nothing usable should be an empty-sample error", func() {
			_, err := engine.Evaluate(&def.Request{
				Operation: def.OpStatistics,
				Data:      []interface{}{"x", "y"},
			})
			So(err, ShouldHaveSameTypeAs, def.ErrEmptySample{})
		})

		Convey("An empty sample should be an empty-sample error, not a missing field", func() {
			_, err := engine.Evaluate(&def.Request{
				Operation: def.OpStatistics,
				Data:      []interface{}{},
			})
			So(err, ShouldHaveSameTypeAs, def.ErrEmptySample{})
		})
	})
}
