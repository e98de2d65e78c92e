package qshor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConfig(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg := NewConfig()

		So(cfg.Validate(), ShouldBeNil)
		So(cfg.Shots, ShouldEqual, 1024)
		So(cfg.Noise.Name, ShouldEqual, "ideal")
	})

	Convey("Given invalid tunables", t, func() {
		Convey("Zero shots are rejected", func() {
			cfg := NewConfig()
			cfg.Shots = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("A zero attempt budget is rejected", func() {
			cfg := NewConfig()
			cfg.MaxBaseAttempts = 0
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("Negative resample budgets are rejected", func() {
			cfg := NewConfig()
			cfg.MaxResamples = -1
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("An invalid noise model is rejected", func() {
			cfg := NewConfig()
			cfg.Noise = &NoiseModel{Name: "bad", Enabled: true, Distance: 2}
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})
}

func TestLoadConfig(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "qshor.yaml")

		yaml := []byte(`
shots: 2048
max_resamples: 5
scheduling_timeout: 30s
noise:
  name: light
  enabled: true
  distance: 3
  photon_number: 4
  kappa_one: 100
  kappa_two: 1.0e+7
  idle_time: 1.0e-4
`)
		So(os.WriteFile(path, yaml, 0o644), ShouldBeNil)

		Convey("Values layer over the defaults", func() {
			cfg, err := LoadConfig(path)

			So(err, ShouldBeNil)
			So(cfg.Shots, ShouldEqual, 2048)
			So(cfg.MaxResamples, ShouldEqual, 5)
			So(cfg.SchedulingTimeout, ShouldEqual, Duration(30*time.Second))
			So(cfg.Noise.Name, ShouldEqual, "light")
			// Untouched keys keep their defaults.
			So(cfg.MaxBaseAttempts, ShouldEqual, 8)
		})
	})

	Convey("Given a missing file", t, func() {
		_, err := LoadConfig("/nonexistent/qshor.yaml")
		So(err, ShouldNotBeNil)
	})

	Convey("Given a file that fails validation", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		So(os.WriteFile(path, []byte("shots: -1\n"), 0o644), ShouldBeNil)

		_, err := LoadConfig(path)
		So(err, ShouldNotBeNil)
	})
}
