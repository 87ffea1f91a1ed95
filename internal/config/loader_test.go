package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"talentlens/internal/config"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given a clean environment", t, func() {
		unset := []string{
			"TALENTLENS_CONFIG", "TALENTLENS_ADDR", "TALENTLENS_ENVIRONMENT",
			"TALENTLENS_UPSTREAM_BASE_URL", "TALENTLENS_USE_MOCK_DATA",
		}
		for _, key := range unset {
			So(os.Unsetenv(key), ShouldBeNil)
		}

		Convey("When loading with no overrides", func() {
			cfg, err := config.Load(ctx)

			Convey("Then the defaults come back validated", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.UpstreamBaseURL, ShouldEqual, "https://torre.ai/api")
			})
		})

		Convey("When environment variables override defaults", func() {
			t.Setenv("TALENTLENS_ADDR", ":9090")
			t.Setenv("TALENTLENS_USE_MOCK_DATA", "true")
			t.Setenv("TALENTLENS_UPSTREAM_BASE_URL", "http://127.0.0.1:4000")

			cfg, err := config.Load(ctx)

			Convey("Then the overrides apply", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.UseMockData, ShouldBeTrue)
				So(cfg.UpstreamBaseURL, ShouldEqual, "http://127.0.0.1:4000")
			})
		})

		Convey("When a YAML file provides values and env overrides one", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			So(os.WriteFile(path, []byte("addr: \":7070\"\nlog_level: debug\n"), 0o600), ShouldBeNil)
			t.Setenv("TALENTLENS_CONFIG", path)
			t.Setenv("TALENTLENS_LOG_LEVEL", "warn")

			cfg, err := config.Load(ctx)

			Convey("Then env wins over file, file over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "warn")
			})
		})

		Convey("When the upstream URL is not absolute", func() {
			t.Setenv("TALENTLENS_UPSTREAM_BASE_URL", "not-a-url")

			_, err := config.Load(ctx)

			Convey("Then validation rejects the config", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When the environment name is unknown", func() {
			t.Setenv("TALENTLENS_ENVIRONMENT", "staging")

			_, err := config.Load(ctx)

			Convey("Then validation rejects the config", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When the config file does not exist", func() {
			t.Setenv("TALENTLENS_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(ctx)

			Convey("Then loading fails with the load kind", func() {
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})
	})
}
