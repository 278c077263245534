package metrics_test

import (
	"testing"

	"github.com/playmetrics/podium/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGlobalMetrics(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording across every metric family", func() {
			metrics.RecordPayloadFetch()
			metrics.RecordPayloadFetchError()
			metrics.RecordRowDefects(3)
			metrics.RecordRowDefects(0)
			metrics.RecordSnapshotPublished()
			metrics.RecordSnapshotDiscarded()
			metrics.UpdateEntrantsTotal(42)
			metrics.UpdateSnapshotGeneration(7)
			metrics.UpdateSnapshotLastUnix(1756720800)
			metrics.RecordPipelineRun(1.5)
			metrics.RecordEmptyResult()
			metrics.RecordHTTPRequest("board", "GET", "200")
			metrics.RecordHTTPRequestDuration("board", "GET", "200", 2.5)
			metrics.RecordEndpointError("board", "GET", "client_error")
			metrics.UpdateSystemMemoryUsage(1 << 20)
			metrics.UpdateSystemGoroutineCount(12)
			metrics.RecordSystemGCPauseTime(0.3)

			Convey("Then the registry exposes the recorded families", func() {
				families, err := metrics.GetRegistry().Gather()
				So(err, ShouldBeNil)

				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["podium_board_payload_fetches_total"], ShouldBeTrue)
				So(names["podium_board_entrants_total"], ShouldBeTrue)
				So(names["podium_board_pipeline_runs_total"], ShouldBeTrue)
				So(names["podium_board_http_requests_total"], ShouldBeTrue)
			})
		})
	})
}

func TestManagerOptions(t *testing.T) {
	Convey("Given a manager on its own registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When constructed with custom naming", func() {
			m := metrics.NewManager(
				metrics.WithRegistry(registry),
				metrics.WithNamespace("testns"),
				metrics.WithSubsystem("testsub"),
				metrics.WithHistogramBuckets([]float64{1, 2, 4}),
			)

			Convey("Then its metrics register under that naming", func() {
				So(m, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				found := false
				for _, f := range families {
					if f.GetName() == "testns_testsub_entrants_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When metrics are disabled", func() {
			m := metrics.NewManager(
				metrics.WithRegistry(prometheus.NewRegistry()),
				metrics.WithMetricsEnabled(false),
			)

			Convey("Then construction still succeeds", func() {
				So(m, ShouldNotBeNil)
			})
		})
	})
}
