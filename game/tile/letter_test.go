package tile

import (
	"testing"
)

func TestNewLetter(t *testing.T) {
	newLetterTests := []struct {
		ch     rune
		want   Letter
		wantOk bool
	}{
		{},
		{
			ch: '_',
		},
		{
			ch: '7',
		},
		{
			ch:     'a',
			want:   'a',
			wantOk: true,
		},
		{
			ch:     'Z',
			want:   'z',
			wantOk: true,
		},
		{
			ch:     'Ł',
			want:   'ł',
			wantOk: true,
		},
	}
	for i, test := range newLetterTests {
		got, err := NewLetter(test.ch)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error", i)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != got:
			t.Errorf("Test %v: new letters not equal: wanted %v, got %v", i, test.want, got)
		}
	}
}

func TestParseLetter(t *testing.T) {
	parseLetterTests := []struct {
		s      string
		want   Letter
		wantOk bool
	}{
		{},
		{
			s: "ab",
		},
		{
			s: "?",
		},
		{
			s:      "Q",
			want:   'q',
			wantOk: true,
		},
		{
			s:      "ż",
			want:   'ż',
			wantOk: true,
		},
	}
	for i, test := range parseLetterTests {
		got, err := ParseLetter(test.s)
		switch {
		case !test.wantOk:
			if err == nil {
				t.Errorf("Test %v: wanted error parsing %q", i, test.s)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case test.want != got:
			t.Errorf("Test %v: wanted %v, got %v", i, test.want, got)
		}
	}
}

func TestLetterString(t *testing.T) {
	if want, got := "q", Letter('q').String(); want != got {
		t.Errorf("wanted %q, got %q", want, got)
	}
}
