package cli

import (
	"bytes"
	"os"
	"testing"
	"time"

	"presenca/internal/domain/catalog"
	"presenca/internal/domain/quota"
	"presenca/internal/domain/types"
	"presenca/pkg/logger"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestParseDate(t *testing.T) {
	Convey("Given the optional date argument", t, func() {
		Convey("When no argument is passed", func() {
			d, err := parseDate(nil)

			Convey("Then today at midnight is used", func() {
				So(err, ShouldBeNil)
				now := time.Now()
				So(d.Year(), ShouldEqual, now.Year())
				So(d.Month(), ShouldEqual, now.Month())
				So(d.Day(), ShouldEqual, now.Day())
				So(d.Hour(), ShouldEqual, 0)
			})
		})

		Convey("When a valid date is passed", func() {
			d, err := parseDate([]string{"2026-02-04"})

			Convey("Then it parses exactly", func() {
				So(err, ShouldBeNil)
				So(d.Format("2006-01-02"), ShouldEqual, "2026-02-04")
				So(d.Weekday(), ShouldEqual, time.Wednesday)
			})
		})

		Convey("When the format is wrong", func() {
			_, err := parseDate([]string{"04/02/2026"})

			Convey("Then the error names the expected layout", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "YYYY-MM-DD")
			})
		})
	})
}

func TestValidateSessionID(t *testing.T) {
	Convey("Given the default session catalog", t, func() {
		cat := catalog.Default()

		Convey("Then a scheduled session id passes", func() {
			So(validateSessionID(cat, "76B3-19:10"), ShouldBeNil)
		})

		Convey("And an unknown id fails listing the alternatives", func() {
			err := validateSessionID(cat, "XXXX-00:00")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "76B3-19:10")
		})
	})
}

func TestRenderRanking(t *testing.T) {
	Convey("Given ranking entries", t, func() {
		entries := []types.RankingEntry{
			{UserID: "user_a", DisplayName: "Ana", TotalPresents: 85},
			{UserID: "user_b", DisplayName: "", TotalPresents: 80},
		}

		Convey("When rendering for user_a", func() {
			var buf bytes.Buffer
			renderRanking(&buf, entries, "user_a")
			out := buf.String()

			Convey("Then the local row is marked and blank names fall back to ids", func() {
				So(out, ShouldContainSubstring, "Ana")
				So(out, ShouldContainSubstring, "(you)")
				So(out, ShouldContainSubstring, "user_b")
			})
		})

		Convey("When the snapshot is empty", func() {
			var buf bytes.Buffer
			renderRanking(&buf, nil, "user_a")

			Convey("Then a placeholder is printed", func() {
				So(buf.String(), ShouldContainSubstring, "no ranking data yet")
			})
		})
	})
}

func TestRenderStats(t *testing.T) {
	Convey("Given quota stats at the danger threshold", t, func() {
		stats := []quota.Stat{
			{
				Subject:            catalog.Subject{ID: "76B3", Name: "Algorithms", TotalHours: 30},
				Absences:           6,
				Presents:           24,
				AbsencePercent:     20.0,
				MaxHoursAllowed:    7.5,
				RemainingAllowance: 1.5,
			},
		}

		Convey("When rendering", func() {
			var buf bytes.Buffer
			renderStats(&buf, stats)

			Convey("Then the warning marker appears", func() {
				So(buf.String(), ShouldContainSubstring, "quota almost spent")
				So(buf.String(), ShouldContainSubstring, "76B3")
			})
		})
	})
}
