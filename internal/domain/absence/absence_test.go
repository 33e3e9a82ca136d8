package absence_test

import (
	"errors"
	"testing"
	"time"

	"presenca/internal/domain/absence"

	. "github.com/smartystreets/goconvey/convey"
)

func TestKeyDerivation(t *testing.T) {
	Convey("Given a user, a date, and a session id", t, func() {
		date := time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)

		Convey("When deriving the key", func() {
			k := absence.NewKey("user_abc123", date, "76B3-19:10")

			Convey("Then the canonical id should match the documented form", func() {
				So(k.String(), ShouldEqual, "user_abc123_2026-02-04_76B3-19:10")
			})

			Convey("And the subject should be split off the session id", func() {
				So(k.SubjectID, ShouldEqual, "76B3")
				So(k.Time, ShouldEqual, "19:10")
				So(k.SessionID(), ShouldEqual, "76B3-19:10")
			})
		})

		Convey("When deriving the same key twice", func() {
			a := absence.NewKey("user_abc123", date, "76B3-19:10")
			b := absence.NewKey("user_abc123", date, "76B3-19:10")

			Convey("Then the ids must be identical", func() {
				So(a.String(), ShouldEqual, b.String())
				So(a, ShouldResemble, b)
			})
		})
	})
}

func TestParseID(t *testing.T) {
	Convey("Given canonical absence ids", t, func() {
		Convey("When parsing a well-formed id", func() {
			k, err := absence.ParseID("user_abc123_2026-02-04_76B3-19:10")

			Convey("Then all fields should be recovered", func() {
				So(err, ShouldBeNil)
				So(k.UserID, ShouldEqual, "user_abc123")
				So(k.Date, ShouldEqual, "2026-02-04")
				So(k.SubjectID, ShouldEqual, "76B3")
				So(k.Time, ShouldEqual, "19:10")
			})
		})

		Convey("When round-tripping through String", func() {
			id := "user_xy_9z8_2026-03-15_J964-20:45"
			k, err := absence.ParseID(id)
			So(err, ShouldBeNil)
			So(k.String(), ShouldEqual, id)
		})

		Convey("When parsing malformed ids", func() {
			for _, id := range []string{
				"",
				"user_abc123",
				"user_abc123_2026-02-04",
				"user_abc123_notadate_76B3-19:10",
				"user_abc123_2026-02-04_nosession",
			} {
				_, err := absence.ParseID(id)
				So(err, ShouldNotBeNil)
				So(errors.Is(err, absence.ErrMalformedID), ShouldBeTrue)
			}
		})
	})
}

func TestSubjectFromSession(t *testing.T) {
	Convey("Given session identifiers", t, func() {
		Convey("Then the subject is everything before the first dash", func() {
			So(absence.SubjectFromSession("76B3-19:10"), ShouldEqual, "76B3")
			So(absence.SubjectFromSession("D36B-18:20"), ShouldEqual, "D36B")
			So(absence.SubjectFromSession("nodash"), ShouldEqual, "nodash")
		})
	})
}

func TestNewLog(t *testing.T) {
	Convey("Given a key", t, func() {
		date := time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)
		k := absence.NewKey("user_abc123", date, "76B3-19:10")

		Convey("When building the log record", func() {
			l := absence.NewLog(k)

			Convey("Then the record mirrors the key", func() {
				So(l.ID, ShouldEqual, "user_abc123_2026-02-04_76B3-19:10")
				So(l.UserID, ShouldEqual, "user_abc123")
				So(l.SubjectID, ShouldEqual, "76B3")
				So(l.Date, ShouldEqual, "2026-02-04")
			})
		})
	})
}
