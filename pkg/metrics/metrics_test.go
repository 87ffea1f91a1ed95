package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"talentlens/pkg/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on an isolated registry", t, func() {
		registry := prometheus.NewRegistry()
		manager := metrics.NewManager(metrics.WithRegistry(registry), metrics.WithNamespace("test"))
		So(manager, ShouldNotBeNil)

		Convey("Then all instruments are registered and gatherable", func() {
			families, err := registry.Gather()
			So(err, ShouldBeNil)
			// Counters without observations gather empty; gauges always show.
			So(families, ShouldNotBeNil)
		})
	})

	Convey("Given the global helpers", t, func() {
		Convey("When recording traffic and cache activity", func() {
			metrics.RecordHTTPRequest("search", "POST", "200")
			metrics.RecordHTTPRequestDuration("search", "POST", 12.5)
			metrics.RecordUpstreamRequest("genome", "ok")
			metrics.RecordUpstreamLatency("genome", 80)
			metrics.RecordMockFallback("search")
			metrics.RecordCacheHit()
			metrics.RecordCacheMiss()
			metrics.UpdateCacheSize(3)

			Convey("Then the shared registry gathers them", func() {
				families, err := metrics.GetRegistry().Gather()
				So(err, ShouldBeNil)

				names := make(map[string]bool, len(families))
				for _, family := range families {
					names[family.GetName()] = true
				}
				So(names["talentlens_http_requests_total"], ShouldBeTrue)
				So(names["talentlens_upstream_requests_total"], ShouldBeTrue)
				So(names["talentlens_mock_fallbacks_total"], ShouldBeTrue)
				So(names["talentlens_profile_cache_entries"], ShouldBeTrue)
			})
		})
	})
}
