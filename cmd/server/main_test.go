package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"presenca/internal/adapters/http/api"
	"presenca/internal/adapters/repository"
	"presenca/internal/config"
	"presenca/pkg/logger"

	"github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestServerWiring(t *testing.T) {
	convey.Convey("Given the server application", t, func() {
		convey.Convey("When loading configuration from the environment", func() {
			_ = os.Setenv("PRESENCA_ADDR", ":9000")
			_ = os.Setenv("PRESENCA_STORE_PATH", "custom.json")
			defer func() {
				_ = os.Unsetenv("PRESENCA_ADDR")
				_ = os.Unsetenv("PRESENCA_STORE_PATH")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9000")
				convey.So(cfg.StorePath, convey.ShouldEqual, "custom.json")
			})
		})

		convey.Convey("When wiring the store and routes", func() {
			store, err := repository.Open(filepath.Join(t.TempDir(), "database.json"))
			convey.So(err, convey.ShouldBeNil)

			mux := http.NewServeMux()
			api.NewServer(store).Register(context.Background(), mux)

			convey.Convey("Then the status probe answers through the mux", func() {
				req := httptest.NewRequest("GET", "/", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "online")
			})

			convey.Convey("And the metrics endpoint is scrapeable", func() {
				req := httptest.NewRequest("GET", "/healthz", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})
		})
	})
}
