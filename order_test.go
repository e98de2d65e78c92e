package qshor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGCD(t *testing.T) {
	Convey("Given pairs of integers", t, func() {
		So(GCD(12, 18), ShouldEqual, 6)
		So(GCD(5, 15), ShouldEqual, 5)
		So(GCD(7, 15), ShouldEqual, 1)
		So(GCD(0, 9), ShouldEqual, 9)
	})
}

func TestPowMod(t *testing.T) {
	Convey("Given modular exponentiations", t, func() {
		So(PowMod(2, 4, 15), ShouldEqual, 1)
		So(PowMod(2, 2, 15), ShouldEqual, 4)
		So(PowMod(14, 2, 15), ShouldEqual, 1)
		So(PowMod(3, 0, 7), ShouldEqual, 1)
		So(PowMod(10, 100, 1), ShouldEqual, 0)

		Convey("Large operands do not overflow", func() {
			// 2^64-59 is prime; Fermat gives a^(p-1) ≡ 1.
			p := uint64(18446744073709551557)
			So(PowMod(2, p-1, p), ShouldEqual, 1)
		})
	})
}

func TestMultiplicativeOrder(t *testing.T) {
	Convey("Given coprime bases", t, func() {
		Convey("The order of 2 modulo 15 is 4", func() {
			r, err := MultiplicativeOrder(2, 15)
			So(err, ShouldBeNil)
			So(r, ShouldEqual, 4)
		})

		Convey("The order of 4 modulo 15 is 2", func() {
			r, err := MultiplicativeOrder(4, 15)
			So(err, ShouldBeNil)
			So(r, ShouldEqual, 2)
		})

		Convey("The order of 4 modulo 21 is odd", func() {
			r, err := MultiplicativeOrder(4, 21)
			So(err, ShouldBeNil)
			So(r, ShouldEqual, 3)
		})
	})

	Convey("Given a base sharing a factor with the modulus", t, func() {
		Convey("The non-terminating case is rejected up front", func() {
			_, err := MultiplicativeOrder(6, 15)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestIsPrime(t *testing.T) {
	Convey("Given small integers", t, func() {
		primes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 97, 101}
		for _, p := range primes {
			So(IsPrime(p), ShouldBeTrue)
		}

		composites := []uint64{0, 1, 4, 9, 15, 21, 25, 35, 49, 91, 100}
		for _, c := range composites {
			So(IsPrime(c), ShouldBeFalse)
		}
	})
}
