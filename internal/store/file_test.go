package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFileStore(t *testing.T) {
	Convey("Given a preference file that does not exist yet", t, func() {
		path := filepath.Join(t.TempDir(), DefaultFileName)
		s := NewFileStore(path)

		Convey("Get reports the key as absent without creating the file", func() {
			_, ok, err := s.Get(KeyToken)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)

			_, statErr := os.Stat(path)
			So(os.IsNotExist(statErr), ShouldBeTrue)
		})

		Convey("Set creates the file and a new store instance reads it back", func() {
			So(s.Set(KeyToken, String("abc")), ShouldBeNil)

			reopened := NewFileStore(path)
			v, ok, err := reopened.Get(KeyToken)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			token, isString := v.AsString()
			So(isString, ShouldBeTrue)
			So(token, ShouldEqual, "abc")
		})

		Convey("Set keeps the other keys of the document", func() {
			So(s.Set(KeyCities, List("Berlin", "Paris")), ShouldBeNil)
			So(s.Set(KeyLanguage, String("de")), ShouldBeNil)
			So(s.Set(KeyToken, String("t0")), ShouldBeNil)

			v, ok, err := s.Get(KeyCities)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			cities, isList := v.AsList()
			So(isList, ShouldBeTrue)
			So(cities, ShouldResemble, []string{"Berlin", "Paris"})

			lang, _, err := s.Get(KeyLanguage)
			So(err, ShouldBeNil)
			l, _ := lang.AsString()
			So(l, ShouldEqual, "de")
		})

		Convey("Set overwrites an existing key", func() {
			So(s.Set(KeyToken, String("first")), ShouldBeNil)
			So(s.Set(KeyToken, String("second")), ShouldBeNil)

			v, _, err := s.Get(KeyToken)
			So(err, ShouldBeNil)
			token, _ := v.AsString()
			So(token, ShouldEqual, "second")
		})

		Convey("An empty list survives a round trip as an empty list", func() {
			So(s.Set(KeyCities, List()), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"cities": []`)

			v, ok, err := s.Get(KeyCities)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(v.IsList(), ShouldBeTrue)
		})
	})

	Convey("Given a preference file with a malformed document", t, func() {
		dir := t.TempDir()

		cases := []struct {
			name    string
			content string
		}{
			{"not json", "this is not json"},
			{"empty file", ""},
			{"top-level array", `["Berlin"]`},
			{"top-level null", "null"},
			{"number value", `{"token": 5}`},
			{"object value", `{"token": {"a": "b"}}`},
			{"list of numbers", `{"cities": ["Berlin", 3]}`},
			{"nested list", `{"cities": [["Berlin"]]}`},
			{"null value", `{"token": null}`},
			{"trailing garbage", `{"token": "abc"} {}`},
			{"truncated content", `{"cities": ["Berlin", "Par`},
		}

		for _, tc := range cases {
			name, content := tc.name, tc.content
			path := filepath.Join(dir, name+".json")
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			s := NewFileStore(path)

			Convey("Get fails loudly for "+name, func() {
				_, _, err := s.Get(KeyToken)
				var corrupt *CorruptStoreError
				So(errors.As(err, &corrupt), ShouldBeTrue)
				So(corrupt.Path, ShouldEqual, path)
			})

			Convey("Set refuses to repair "+name, func() {
				err := s.Set(KeyToken, String("abc"))
				var corrupt *CorruptStoreError
				So(errors.As(err, &corrupt), ShouldBeTrue)

				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldEqual, content)
			})
		}
	})

	Convey("Given a preference file in a directory that does not exist", t, func() {
		path := filepath.Join(t.TempDir(), "missing", DefaultFileName)
		s := NewFileStore(path)

		Convey("Set returns a StoreWriteError", func() {
			err := s.Set(KeyToken, String("abc"))
			var writeErr *StoreWriteError
			So(errors.As(err, &writeErr), ShouldBeTrue)
			So(writeErr.Path, ShouldEqual, path)
		})
	})
}

func TestMemoryStore(t *testing.T) {
	Convey("MemoryStore", t, func() {
		s := NewMemoryStore(Document{KeyCities: List("Oslo")})

		Convey("returns copies so callers cannot mutate stored lists", func() {
			v, ok, err := s.Get(KeyCities)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			cities, _ := v.AsList()
			cities[0] = "Bergen"

			again, _, _ := s.Get(KeyCities)
			stored, _ := again.AsList()
			So(stored, ShouldResemble, []string{"Oslo"})
		})

		Convey("counts writes", func() {
			So(s.Writes(), ShouldEqual, 0)
			So(s.Set(KeyToken, String("abc")), ShouldBeNil)
			So(s.Writes(), ShouldEqual, 1)
			So(s.Snapshot(), ShouldContainKey, KeyToken)
		})
	})
}
