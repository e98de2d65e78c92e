package qshor

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValidatePeriod(t *testing.T) {
	Convey("Given pooled period candidates for a=2, N=15", t, func() {
		Convey("The first validating candidate in sorted order is accepted", func() {
			result := ValidatePeriod(2, 15, []uint64{4, 3, 2, 1, 4})

			So(result.Status, ShouldEqual, StatusSuccess)
			So(result.Period, ShouldEqual, 4)
		})

		Convey("Factor recovery yields the ordered pair (3, 5)", func() {
			result := ValidatePeriod(2, 15, []uint64{1, 2, 4})

			So(result.Status, ShouldEqual, StatusSuccess)
			So(result.P, ShouldEqual, 3)
			So(result.Q, ShouldEqual, 5)
			So(result.P*result.Q, ShouldEqual, 15)
		})

		Convey("No validating candidate asks for a resample", func() {
			result := ValidatePeriod(2, 15, []uint64{1, 2, 3})
			So(result.Status, ShouldEqual, StatusNeedsResample)
		})

		Convey("An empty candidate pool asks for a resample", func() {
			result := ValidatePeriod(2, 15, nil)
			So(result.Status, ShouldEqual, StatusNeedsResample)
		})
	})

	Convey("Given a base with an odd order", t, func() {
		Convey("The bad-base condition is signaled", func() {
			// 4^3 = 64 ≡ 1 (mod 21)
			result := ValidatePeriod(4, 21, []uint64{3})

			So(result.Status, ShouldEqual, StatusInvalidBase)
			So(result.Period, ShouldEqual, 3)
		})
	})

	Convey("Given a base where a^(r/2) ≡ -1 (mod N)", t, func() {
		Convey("The trivial pair (1, N) is reported as success", func() {
			// 14^2 ≡ 1 (mod 15) and 14 ≡ -1, so recovery degenerates.
			// The routine deliberately does not reject trivial factors.
			result := ValidatePeriod(14, 15, []uint64{2})
			spew.Dump(result)

			So(result.Status, ShouldEqual, StatusSuccess)
			So(result.P, ShouldEqual, 1)
			So(result.Q, ShouldEqual, 15)
		})
	})
}

func TestClassicalFactor(t *testing.T) {
	Convey("Given even inputs", t, func() {
		Convey("The pair (2, N/2) comes back without touching the random loop", func() {
			result := ClassicalFactor(12, 64, nil)

			So(result.Status, ShouldEqual, StatusSuccess)
			So(result.P, ShouldEqual, 2)
			So(result.Q, ShouldEqual, 6)
			So(result.Attempts, ShouldEqual, 0)
		})
	})

	Convey("Given prime inputs", t, func() {
		Convey("The degenerate pair (1, N) signals no nontrivial factorization", func() {
			result := ClassicalFactor(13, 64, nil)

			So(result.Status, ShouldEqual, StatusPrime)
			So(result.P, ShouldEqual, 1)
			So(result.Q, ShouldEqual, 13)
		})
	})

	Convey("Given odd composite inputs", t, func() {
		rng := rand.New(rand.NewSource(42))

		for _, n := range []uint64{15, 21, 35, 91} {
			result := ClassicalFactor(n, 256, rng)

			So(result.Status, ShouldEqual, StatusSuccess)
			So(result.P*result.Q, ShouldEqual, n)
			So(result.P, ShouldBeGreaterThan, 1)
			So(result.Q, ShouldBeLessThan, n)
		}
	})

	Convey("Given no attempt budget", t, func() {
		Convey("The loop reports exhaustion instead of spinning", func() {
			result := ClassicalFactor(15, 0, nil)
			So(result.Status, ShouldEqual, StatusExhausted)
		})
	})

	Convey("Given an input below 2", t, func() {
		result := ClassicalFactor(1, 64, nil)
		So(result.Status, ShouldEqual, StatusExhausted)
		So(result.Err, ShouldNotBeNil)
	})
}

func TestStatusString(t *testing.T) {
	Convey("Given every status variant", t, func() {
		So(StatusSuccess.String(), ShouldEqual, "success")
		So(StatusNeedsResample.String(), ShouldEqual, "needs-resample")
		So(StatusInvalidBase.String(), ShouldEqual, "invalid-base")
		So(StatusExhausted.String(), ShouldEqual, "exhausted")
		So(StatusPrime.String(), ShouldEqual, "prime")
	})
}
