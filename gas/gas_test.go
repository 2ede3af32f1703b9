package gas

import (
	"testing"

	"github.com/iov-one/msig/errors"
	"github.com/iov-one/msig/msigtest/fixture"
	"github.com/iov-one/msig/registry"
	"github.com/iov-one/msig/x/bank"
	"github.com/iov-one/msig/x/gov"
	"github.com/iov-one/msig/x/staking"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCostOf(t *testing.T) {
	Convey("Given the cost table", t, func() {
		Convey("Every known message type has a positive cost", func() {
			for _, u := range registry.TypeURLs() {
				n, err := CostOf(u)
				So(err, ShouldBeNil)
				So(n, ShouldBeGreaterThan, uint64(0))
			}
			So(len(Costs()), ShouldEqual, len(registry.TypeURLs()))
		})

		Convey("Costs follow the table", func() {
			n, _ := CostOf(bank.PathMsgSend)
			So(n, ShouldEqual, uint64(100000))
			n, _ = CostOf(bank.PathMsgMultiSend)
			So(n, ShouldEqual, uint64(4200000))
			n, _ = CostOf(staking.PathMsgBeginRedelegate)
			So(n, ShouldEqual, uint64(400000))
		})

		Convey("An unknown message type is an error", func() {
			_, err := CostOf("/cosmos.bank.v1beta1.MsgBurn")
			So(errors.ErrUnknownMsgType.Is(err), ShouldBeTrue)
		})

		Convey("Modifying a copy does not alter the table", func() {
			cp := Costs()
			cp[bank.PathMsgSend] = 1
			n, _ := CostOf(bank.PathMsgSend)
			So(n, ShouldEqual, uint64(100000))
		})
	})
}

func TestTotalCost(t *testing.T) {
	Convey("Given a transaction estimate", t, func() {
		Convey("An empty transaction costs the flat overhead", func() {
			n, err := TotalCost(nil)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, TxFlatGas)
		})

		Convey("Duplicated types are charged for every occurrence", func() {
			n, err := TotalCost([]string{bank.PathMsgSend, bank.PathMsgSend})
			So(err, ShouldBeNil)
			So(n, ShouldEqual, TxFlatGas+2*uint64(100000))
		})

		Convey("The order of messages does not matter", func() {
			a, err := TotalCost([]string{gov.PathMsgVote, bank.PathMsgMultiSend, staking.PathMsgDelegate})
			So(err, ShouldBeNil)
			b, err := TotalCost([]string{staking.PathMsgDelegate, gov.PathMsgVote, bank.PathMsgMultiSend})
			So(err, ShouldBeNil)
			So(a, ShouldEqual, b)
			So(a, ShouldEqual, uint64(100000+100000+4200000+400000))
		})

		Convey("A single unknown type fails the whole estimate", func() {
			n, err := TotalCost([]string{bank.PathMsgSend, "/foo.MsgBar", gov.PathMsgVote})
			So(errors.ErrUnknownMsgType.Is(err), ShouldBeTrue)
			So(n, ShouldEqual, uint64(0))
		})

		Convey("Message types are taken in order", func() {
			msgs := fixture.All()
			types := MsgTypes(msgs)
			So(len(types), ShouldEqual, len(msgs))
			for i, m := range msgs {
				So(types[i], ShouldEqual, m.Path())
			}

			var want uint64 = TxFlatGas
			for _, u := range types {
				n, _ := CostOf(u)
				want += n
			}
			got, err := TotalCost(types)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		})
	})
}
