package qshor

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNoiseModel(t *testing.T) {
	Convey("Given the named presets", t, func() {
		for _, name := range []string{"ideal", "light", "realistic", "heavy"} {
			nm := NoiseModelPreset(name)

			So(nm.Name, ShouldEqual, name)
			So(nm.Validate(), ShouldBeNil)
		}

		Convey("Unknown names fall back to ideal", func() {
			So(NoiseModelPreset("bogus").Name, ShouldEqual, "ideal")
		})
	})

	Convey("Given out-of-range parameters", t, func() {
		base := NoiseModelPreset("light")

		Convey("An even distance is rejected", func() {
			nm := *base
			nm.Distance = 4
			So(nm.Validate(), ShouldNotBeNil)
		})

		Convey("A non-positive photon number is rejected", func() {
			nm := *base
			nm.PhotonNumber = 0
			So(nm.Validate(), ShouldNotBeNil)
		})

		Convey("Decay rates in the wrong order are rejected", func() {
			nm := *base
			nm.KappaOne = nm.KappaTwo * 2
			So(nm.Validate(), ShouldNotBeNil)
		})

		Convey("A non-positive idle time is rejected", func() {
			nm := *base
			nm.IdleTime = -1
			So(nm.Validate(), ShouldNotBeNil)
		})

		Convey("A disabled model is always valid", func() {
			nm := *base
			nm.Enabled = false
			nm.Distance = 0
			So(nm.Validate(), ShouldBeNil)
		})
	})

	Convey("Given the scramble reduction", t, func() {
		Convey("Disabled and nil models contribute no noise", func() {
			So(NoiseModelPreset("ideal").ScrambleProbability(), ShouldEqual, 0)

			var nm *NoiseModel
			So(nm.ScrambleProbability(), ShouldEqual, 0)
		})

		Convey("The probability is clamped to [0, 0.5]", func() {
			for _, name := range []string{"light", "realistic", "heavy"} {
				p := NoiseModelPreset(name).ScrambleProbability()

				So(p, ShouldBeGreaterThan, 0)
				So(p, ShouldBeLessThanOrEqualTo, 0.5)
			}
		})

		Convey("Heavier presets scramble at least as much", func() {
			light := NoiseModelPreset("light").ScrambleProbability()
			heavy := NoiseModelPreset("heavy").ScrambleProbability()
			So(heavy, ShouldBeGreaterThanOrEqualTo, light)
		})
	})
}
