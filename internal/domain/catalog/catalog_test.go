package catalog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"presenca/internal/domain/catalog"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		c := catalog.Default()

		Convey("Then it should list all subjects in order", func() {
			subjects := c.Subjects()
			So(len(subjects), ShouldEqual, 7)
			So(subjects[0].ID, ShouldEqual, "76B3")
			So(subjects[0].TotalHours, ShouldEqual, 30)
			So(subjects[4].ID, ShouldEqual, "J964")
			So(subjects[4].TotalHours, ShouldEqual, 60)
		})

		Convey("Then subject lookup should work", func() {
			s, ok := c.Subject("76B5")
			So(ok, ShouldBeTrue)
			So(s.Name, ShouldEqual, "Sistemas Distribuídos")

			_, ok = c.Subject("XXXX")
			So(ok, ShouldBeFalse)
		})

		Convey("When listing sessions for a weekday", func() {
			thursday := c.SessionsOn(time.Thursday)

			Convey("Then only that day's sessions appear, in catalog order", func() {
				So(len(thursday), ShouldEqual, 3)
				So(thursday[0].ID(), ShouldEqual, "J964-19:10")
				So(thursday[1].ID(), ShouldEqual, "J964-20:45")
				So(thursday[2].ID(), ShouldEqual, "D36B-18:20")
			})
		})

		Convey("When listing sessions for a free day", func() {
			So(c.SessionsOn(time.Sunday), ShouldBeEmpty)
		})
	})
}

func TestSessionID(t *testing.T) {
	Convey("Given a session", t, func() {
		s := catalog.Session{SubjectID: "76B3", Weekday: "Wednesday", Time: "19:10"}

		Convey("Then its id composes subject and time", func() {
			So(s.ID(), ShouldEqual, "76B3-19:10")
		})
	})
}

func TestNewValidation(t *testing.T) {
	Convey("Given invalid catalog data", t, func() {
		Convey("When a subject has no id", func() {
			_, err := catalog.New([]catalog.Subject{{Name: "x", TotalHours: 10}}, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("When a subject has non-positive hours", func() {
			_, err := catalog.New([]catalog.Subject{{ID: "A", Name: "x", TotalHours: 0}}, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("When subject ids collide", func() {
			_, err := catalog.New([]catalog.Subject{
				{ID: "A", Name: "x", TotalHours: 10},
				{ID: "A", Name: "y", TotalHours: 20},
			}, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("When a session references an unknown subject", func() {
			_, err := catalog.New(
				[]catalog.Subject{{ID: "A", Name: "x", TotalHours: 10}},
				[]catalog.Session{{SubjectID: "B", Weekday: "Monday", Time: "10:00"}},
			)
			So(err, ShouldNotBeNil)
		})

		Convey("When a session has a bad weekday or time", func() {
			_, err := catalog.New(
				[]catalog.Subject{{ID: "A", Name: "x", TotalHours: 10}},
				[]catalog.Session{{SubjectID: "A", Weekday: "Funday", Time: "10:00"}},
			)
			So(err, ShouldNotBeNil)

			_, err = catalog.New(
				[]catalog.Subject{{ID: "A", Name: "x", TotalHours: 10}},
				[]catalog.Session{{SubjectID: "A", Weekday: "Monday", Time: "25:61"}},
			)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLoadFromYAML(t *testing.T) {
	Convey("Given a catalog override file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "catalog.yaml")
		data := `subjects:
  - id: MA01
    name: Mathematics
    total_hours: 40
sessions:
  - subject_id: MA01
    weekday: Monday
    time: "08:00"
`
		So(os.WriteFile(path, []byte(data), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			c, err := catalog.Load(path)

			Convey("Then the catalog should reflect the file", func() {
				So(err, ShouldBeNil)
				So(len(c.Subjects()), ShouldEqual, 1)
				So(c.Subjects()[0].TotalHours, ShouldEqual, 40)
				So(len(c.SessionsOn(time.Monday)), ShouldEqual, 1)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := catalog.Load(filepath.Join(dir, "missing.yaml"))
			So(err, ShouldNotBeNil)
		})
	})
}
