package identity_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"presenca/internal/identity"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBootstrap(t *testing.T) {
	Convey("Given an empty state directory", t, func() {
		dir := filepath.Join(t.TempDir(), "state")

		Convey("When bootstrapping the identity", func() {
			id, err := identity.Bootstrap(dir)

			Convey("Then a user_ id with a 9-char base-36 suffix is created", func() {
				So(err, ShouldBeNil)
				So(strings.HasPrefix(id, "user_"), ShouldBeTrue)
				So(len(id), ShouldEqual, len("user_")+9)
				for _, r := range id[len("user_"):] {
					So(strings.ContainsRune("0123456789abcdefghijklmnopqrstuvwxyz", r), ShouldBeTrue)
				}
			})

			Convey("And a second bootstrap returns the same id", func() {
				again, err := identity.Bootstrap(dir)
				So(err, ShouldBeNil)
				So(again, ShouldEqual, id)
			})
		})
	})

	Convey("Given a corrupt identity file", t, func() {
		dir := t.TempDir()
		So(os.WriteFile(filepath.Join(dir, "user_id"), []byte("garbage\n"), 0o600), ShouldBeNil)

		Convey("When bootstrapping", func() {
			id, err := identity.Bootstrap(dir)

			Convey("Then a fresh id replaces it", func() {
				So(err, ShouldBeNil)
				So(strings.HasPrefix(id, "user_"), ShouldBeTrue)

				raw, err := os.ReadFile(filepath.Join(dir, "user_id"))
				So(err, ShouldBeNil)
				So(strings.TrimSpace(string(raw)), ShouldEqual, id)
			})
		})
	})

	Convey("Given two distinct installations", t, func() {
		a, err := identity.Bootstrap(filepath.Join(t.TempDir(), "a"))
		So(err, ShouldBeNil)
		b, err := identity.Bootstrap(filepath.Join(t.TempDir(), "b"))
		So(err, ShouldBeNil)

		Convey("Then their ids differ", func() {
			So(a, ShouldNotEqual, b)
		})
	})
}
