package tokenizer_test

import (
	"errors"
	"testing"

	"github.com/okian/fiprank/internal/domain/tokenizer"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTokenizer_Split(t *testing.T) {
	Convey("Given a tokenizer with the default separator", t, func() {
		tok := tokenizer.New()
		So(tok.SeparatorWidth(), ShouldEqual, 2)

		Convey("When the line has three trailing tokens", func() {
			line, err := tok.Split("John Doe  ESP 1200 3")

			Convey("Then name and fields come back unchanged", func() {
				So(err, ShouldBeNil)
				So(line.Name, ShouldEqual, "John Doe")
				So(line.Fields, ShouldResemble, []string{"ESP", "1200", "3"})
			})
		})

		Convey("When the country is missing", func() {
			line, err := tok.Split("Jane Roe  980 7")

			Convey("Then an empty country is injected", func() {
				So(err, ShouldBeNil)
				So(line.Name, ShouldEqual, "Jane Roe")
				So(line.Fields, ShouldResemble, []string{"", "980", "7"})
			})
		})

		Convey("When the data is spread over wide whitespace", func() {
			line, err := tok.Split("Ale Galan        ESP    13325\t1")

			Convey("Then any whitespace run separates tokens", func() {
				So(err, ShouldBeNil)
				So(line.Name, ShouldEqual, "Ale Galan")
				So(line.Fields, ShouldResemble, []string{"ESP", "13325", "1"})
			})
		})

		Convey("When the line has an unexpected token count", func() {
			one, err1 := tok.Split("Solo  1")
			four, err4 := tok.Split("Extra  ESP ARG 10 2")

			Convey("Then it is tokenized without repair", func() {
				So(err1, ShouldBeNil)
				So(one.Fields, ShouldResemble, []string{"1"})
				So(err4, ShouldBeNil)
				So(four.Fields, ShouldResemble, []string{"ESP", "ARG", "10", "2"})
			})
		})

		Convey("When the line has no separator run", func() {
			_, err := tok.Split("John Doe ESP 1200 3")

			Convey("Then it fails as malformed", func() {
				So(errors.Is(err, tokenizer.ErrMalformedLine), ShouldBeTrue)
			})
		})

		Convey("When the line is empty", func() {
			_, err := tok.Split("")

			Convey("Then it fails as malformed", func() {
				So(errors.Is(err, tokenizer.ErrMalformedLine), ShouldBeTrue)
			})
		})
	})

	Convey("Given a tokenizer with a three-space separator", t, func() {
		tok := tokenizer.New(tokenizer.WithSeparatorWidth(3))

		Convey("When a name itself contains a double space", func() {
			line, err := tok.Split("Maria  Jose   ESP 500 20")

			Convey("Then the double space stays in the name", func() {
				So(err, ShouldBeNil)
				So(line.Name, ShouldEqual, "Maria  Jose")
				So(line.Fields, ShouldResemble, []string{"ESP", "500", "20"})
			})
		})

		Convey("When only a double space is present", func() {
			_, err := tok.Split("John Doe  ESP 1200 3")

			Convey("Then the line is malformed", func() {
				So(errors.Is(err, tokenizer.ErrMalformedLine), ShouldBeTrue)
			})
		})
	})

	Convey("Given an invalid separator width", t, func() {
		tok := tokenizer.New(tokenizer.WithSeparatorWidth(0))

		Convey("Then the default is kept", func() {
			So(tok.SeparatorWidth(), ShouldEqual, tokenizer.DefaultSeparatorWidth)
		})
	})
}

func TestLineError(t *testing.T) {
	err := &tokenizer.LineError{Line: 4, Text: "bad", Err: tokenizer.ErrMalformedLine}
	if !errors.Is(err, tokenizer.ErrMalformedLine) {
		t.Fatalf("expected errors.Is to match ErrMalformedLine")
	}
	if got, want := err.Error(), `line 4: malformed line: "bad"`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
