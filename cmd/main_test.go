package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	app "github.com/okian/stylemate/internal/app"
	"github.com/okian/stylemate/internal/config"
	"github.com/okian/stylemate/pkg/logger"
	"github.com/okian/stylemate/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		_ = os.Setenv("STYLEMATE_QUEUE_SIZE", "16")
		_ = os.Setenv("STYLEMATE_WORKER_COUNT", "2")
		_ = os.Setenv("STYLEMATE_STRICT_RULES", "true")
		defer func() {
			_ = os.Unsetenv("STYLEMATE_QUEUE_SIZE")
			_ = os.Unsetenv("STYLEMATE_WORKER_COUNT")
			_ = os.Unsetenv("STYLEMATE_STRICT_RULES")
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		cfg, err := config.Load(ctx)
		convey.So(err, convey.ShouldBeNil)

		svc := newService(cfg, logger.Get())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer func() { _ = svc.Stop(context.Background()) }()

		mux := newMux(ctx, cfg, svc)

		convey.Convey("When the stats are requested", func() {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

			convey.Convey("Then the configured values are reported", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `"workerCount":2`)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `"strictRules":true`)
			})
		})

		convey.Convey("When a recommendation is requested", func() {
			body := `{"occasion":"Beach Wear","gender":"Woman","age_bracket":"Teen","body_type":"Hourglass","skin_tone":"Tan"}`
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/recommendations", strings.NewReader(body)))

			convey.Convey("Then it is served through the full stack", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "https://www.myntra.com/women+")
			})
		})

		convey.Convey("When the docs are requested", func() {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

			convey.Convey("Then the OpenAPI document is served", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When the metrics updaters run until their context ends", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			convey.So(func() { startServiceMetricsUpdater(ctx, app.New()) }, convey.ShouldNotPanic)
		})

		convey.Convey("When metrics are updated directly", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			convey.So(func() { updateServiceMetrics(app.New()) }, convey.ShouldNotPanic)
		})

		convey.Convey("When a metrics manager is built on its own registry", func() {
			manager := metrics.NewManager(metrics.WithPrometheusRegistry(prometheus.NewRegistry()))
			convey.So(manager, convey.ShouldNotBeNil)
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given an empty listen address", t, func() {
		_ = os.Setenv("STYLEMATE_ADDR", "")
		defer func() { _ = os.Unsetenv("STYLEMATE_ADDR") }()

		convey.Convey("Then configuration loading should fail", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}
