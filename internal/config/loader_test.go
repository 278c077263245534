package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/playmetrics/podium/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"PODIUM_CONFIG",
		"PODIUM_ADDR",
		"PODIUM_FEED_URL",
		"PODIUM_PAGE_SIZE",
		"PODIUM_HEAD_SIZE",
		"PODIUM_XP_RATIO",
		"PODIUM_REFRESH_INTERVAL_MS",
		"PODIUM_LOG_LEVEL",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.PageSize, convey.ShouldEqual, 10)
				convey.So(cfg.HeadSize, convey.ShouldEqual, 10)
				convey.So(cfg.PodiumSize, convey.ShouldEqual, 3)
				convey.So(cfg.XPRatio, convey.ShouldEqual, 10)
				convey.So(cfg.RefreshIntervalMS, convey.ShouldEqual, 15_000)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_PAGE_SIZE", "25")
			_ = os.Setenv("PODIUM_XP_RATIO", "100")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.PageSize, convey.ShouldEqual, 25)
				convey.So(cfg.XPRatio, convey.ShouldEqual, 100)
				convey.So(cfg.HeadSize, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "podium.yaml")
			yaml := "addr: \":7070\"\npage_size: 5\ntiers:\n  - name: Legend\n    min_xp: 100\n  - name: Newcomer\n    min_xp: 0\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("PODIUM_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values layer over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.PageSize, convey.ShouldEqual, 5)
				convey.So(cfg.Tiers, convey.ShouldHaveLength, 2)
				convey.So(cfg.Tiers[0].Name, convey.ShouldEqual, "Legend")
				convey.So(cfg.Tiers[0].MinXP, convey.ShouldEqual, 100)
			})

			convey.Convey("And env vars still win over the file", func() {
				_ = os.Setenv("PODIUM_PAGE_SIZE", "50")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.PageSize, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When configuration values are invalid", func() {
			clearConfigEnvVars()
			defer clearConfigEnvVars()

			convey.Convey("Then an empty addr is rejected", func() {
				_ = os.Setenv("PODIUM_ADDR", "")
				// koanf env provider skips empty values, so force it
				// through a file instead.
				dir := t.TempDir()
				path := filepath.Join(dir, "podium.yaml")
				convey.So(os.WriteFile(path, []byte("addr: \"\"\n"), 0o600), convey.ShouldBeNil)
				_ = os.Setenv("PODIUM_CONFIG", path)

				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr")
			})

			convey.Convey("Then a non-positive page size is rejected", func() {
				_ = os.Setenv("PODIUM_PAGE_SIZE", "0")
				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "page_size")
			})

			convey.Convey("Then a missing config file is reported", func() {
				_ = os.Setenv("PODIUM_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
				_, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
