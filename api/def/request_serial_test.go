package def_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/ugorji/go/codec"

	"github.com/benchwork/quant/api/def"
)

func decodeFromJson(raw []byte, target interface{}) {
	err := codec.NewDecoderBytes(raw, &codec.JsonHandle{}).Decode(target)
	So(err, ShouldBeNil)
}

func TestRequestDecoding(t *testing.T) {
	Convey("Given a serialized request", t, func() {
		Convey("Named fields should land, absent ones should stay nil", func() {
			var req def.Request
			decodeFromJson([]byte(`{
				"operation": "unit_convert",
				"value": 1,
				"from_unit": "km",
				"to_unit": "m"
			}`), &req)
			So(req.Operation, ShouldEqual, def.OpUnitConvert)
			So(req.Value, ShouldNotBeNil)
			So(*req.Value, ShouldAlmostEqual, 1)
			So(req.C1, ShouldBeNil)
			So(req.MassGrams, ShouldBeNil)
		})

		Convey("Zero-valued fields should stay distinguishable from absent ones", func() {
			var req def.Request
			decodeFromJson([]byte(`{"operation": "dilution", "c1": 0, "v1": 5, "c2": 2}`), &req)
			So(req.C1, ShouldNotBeNil)
			So(*req.C1, ShouldEqual, 0)
			So(req.V2, ShouldBeNil)
		})

		Convey("Unknown extra fields should be ignored silently", func() {
			var req def.Request
			decodeFromJson([]byte(`{
				"operation": "constants",
				"constant": "avogadro",
				"some_future_field": "whatever",
				"another": [1, 2, 3]
			}`), &req)
			So(req.Operation, ShouldEqual, def.OpConstants)
			So(req.Constant, ShouldEqual, "avogadro")
		})

		Convey("A statistics sample should tolerate junk entries at decode time", func() {
			var req def.Request
			decodeFromJson([]byte(`{"operation": "statistics", "data": [1, "two", 3.5, null]}`), &req)
			So(len(req.Data), ShouldEqual, 4)
		})
	})
}
