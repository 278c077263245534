package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/playmetrics/podium/internal/adapters/http/api"
	app "github.com/playmetrics/podium/internal/app"
	"github.com/playmetrics/podium/internal/config"
	"github.com/playmetrics/podium/internal/domain/tier"
	"github.com/playmetrics/podium/pkg/logger"
	"github.com/playmetrics/podium/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_PAGE_SIZE", "20")
			_ = os.Setenv("PODIUM_XP_RATIO", "5")
			defer func() {
				_ = os.Unsetenv("PODIUM_ADDR")
				_ = os.Unsetenv("PODIUM_PAGE_SIZE")
				_ = os.Unsetenv("PODIUM_XP_RATIO")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.PageSize, convey.ShouldEqual, 20)
				convey.So(cfg.XPRatio, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithPageSize(20),
					app.WithHeadSize(5),
					app.WithXPRatio(5),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestLadderFromConfig(t *testing.T) {
	convey.Convey("Given ladder construction from configuration", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)
		ctx := context.Background()
		log := logger.Get()

		convey.Convey("When no tiers are configured", func() {
			ladder := ladderFromConfig(ctx, log, &config.Config{})

			convey.Convey("Then the default ladder is used", func() {
				convey.So(ladder.Len(), convey.ShouldEqual, tier.Default().Len())
			})
		})

		convey.Convey("When valid tiers are configured", func() {
			cfg := &config.Config{Tiers: []config.TierConfig{
				{Name: "Legend", MinXP: 2000},
				{Name: "Rookie", MinXP: 0},
			}}
			ladder := ladderFromConfig(ctx, log, cfg)

			convey.Convey("Then they form the ladder", func() {
				convey.So(ladder.Len(), convey.ShouldEqual, 2)
				convey.So(ladder.Contains("Legend"), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When configured tiers are invalid", func() {
			cfg := &config.Config{Tiers: []config.TierConfig{
				{Name: "NoFloor", MinXP: 100},
			}}
			ladder := ladderFromConfig(ctx, log, cfg)

			convey.Convey("Then the default ladder is used instead", func() {
				convey.So(ladder.Len(), convey.ShouldEqual, tier.Default().Len())
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should run until its context expires", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When testing full application setup", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			defer func() { _ = os.Unsetenv("PODIUM_ADDR") }()

			convey.Convey("Then all components should work together", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)

				svc := app.New(
					app.WithPageSize(cfg.PageSize),
					app.WithHeadSize(cfg.HeadSize),
					app.WithXPRatio(cfg.XPRatio),
				)
				convey.So(svc, convey.ShouldNotBeNil)

				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)

				mux := http.NewServeMux()
				server.Register(ctx, mux)

				svc.Stop()
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("PODIUM_ADDR", "")
			defer func() { _ = os.Unsetenv("PODIUM_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When testing service creation with out-of-range options", func() {
			convey.Convey("Then service should keep its defaults", func() {
				svc := app.New(
					app.WithPageSize(0),
					app.WithXPRatio(0),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})
	})
}
