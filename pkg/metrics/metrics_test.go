package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When creating a manager with options", func() {
			m := NewManager(
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithRegistry(reg),
			)

			Convey("Then the manager should be configured", func() {
				So(m, ShouldNotBeNil)
				So(m.namespace, ShouldEqual, "testns")
				So(m.subsystem, ShouldEqual, "testsub")
				So(m.histogramBuckets, ShouldResemble, []float64{1, 5, 10})
			})
		})

		Convey("When creating a manager with defaults", func() {
			m := NewManager(WithRegistry(reg))

			Convey("Then defaults should apply", func() {
				So(m.namespace, ShouldEqual, "presenca")
				So(m.subsystem, ShouldEqual, "server")
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording business metrics", func() {
			So(func() {
				RecordAbsenceCreated()
				RecordAbsenceDeleted()
				RecordAbsenceDuplicate()
				RecordProfileUpsert()
			}, ShouldNotPanic)
		})

		Convey("When updating store gauges", func() {
			So(func() {
				UpdateStoreUsers(3)
				UpdateStoreAbsences(12)
				RecordStorePersistLatency(1.5)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("ranking", "GET", "200")
				RecordHTTPRequestDuration("ranking", "GET", "200", 3.2)
				RecordErrorByEndpoint("absences", "POST", "client_error")
				RecordErrorByType("client_error", "medium")
			}, ShouldNotPanic)
		})

		Convey("When updating system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)
		})

		Convey("Then the registry should be available", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
