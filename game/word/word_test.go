package word

import (
	"reflect"
	"testing"
)

func TestCompare(t *testing.T) {
	compareTests := []struct {
		a, b Word
		want int
	}{
		{
			a:    Word{Letters: "a", Score: 1},
			b:    Word{Letters: "b", Score: 0},
			want: -1,
		},
		{
			a:    Word{Letters: "b", Score: 0},
			b:    Word{Letters: "a", Score: 1},
			want: 1,
		},
		{
			a:    Word{Letters: "a", Score: 1},
			b:    Word{Letters: "a", Score: 2},
			want: -1,
		},
		{
			a:    Word{Letters: "a", Score: 2},
			b:    Word{Letters: "a", Score: 1},
			want: 1,
		},
		{
			a: Word{Letters: "adam", Score: 5},
			b: Word{Letters: "adam", Score: 5},
		},
		{
			a:    Word{Letters: "ab", Score: 9},
			b:    Word{Letters: "abcd", Score: 1},
			want: -1,
		},
	}
	for i, test := range compareTests {
		got := Compare(test.a, test.b)
		switch {
		case test.want < 0 && got >= 0,
			test.want > 0 && got <= 0,
			test.want == 0 && got != 0:
			t.Errorf("Test %v: wanted sign of %v when comparing %v to %v, got %v", i, test.want, test.a, test.b, got)
		}
		if wantEqual, gotEqual := test.want == 0, test.a.Equal(test.b); wantEqual != gotEqual {
			t.Errorf("Test %v: wanted Equal to be %v for %v and %v", i, wantEqual, test.a, test.b)
		}
	}
}

func TestSort(t *testing.T) {
	words := []Word{
		{"cd", 2},
		{"abcd", 4},
		{"bc", 2},
		{"ab", 7},
		{"ab", 2},
	}
	want := []Word{
		{"ab", 2},
		{"ab", 7},
		{"abcd", 4},
		{"bc", 2},
		{"cd", 2},
	}
	Sort(words)
	if !reflect.DeepEqual(want, words) {
		t.Errorf("words not sorted:\nwanted: %v\ngot:    %v", want, words)
	}
}

func TestWordString(t *testing.T) {
	w := Word{Letters: "abc", Score: 18}
	if want, got := "abc (18)", w.String(); want != got {
		t.Errorf("wanted %q, got %q", want, got)
	}
}
