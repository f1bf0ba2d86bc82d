package word

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestNewValidator(t *testing.T) {
	newValidatorTests := []struct {
		words     string
		wantWords []string
	}{
		{},
		{
			words: "   ",
		},
		{
			words:     "a bad cat",
			wantWords: []string{"a", "bad", "cat"},
		},
		{
			words:     "A man, a plan, a canal, panama!",
			wantWords: []string{"a"},
		},
		{
			words: "Abc 'words' they're top-secret not.",
		},
		{
			words:     "żółw\tźrebię\nÉcole",
			wantWords: []string{"żółw", "źrebię"},
		},
	}
	for i, test := range newValidatorTests {
		want := Validator(make(map[string]struct{}, len(test.wantWords)))
		for _, w := range test.wantWords {
			want[w] = struct{}{}
		}
		r := strings.NewReader(test.words)
		v, err := NewValidator(r)
		switch {
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case !reflect.DeepEqual(want, *v):
			t.Errorf("Test %v:\nwanted: %v\ngot:    %v", i, want, *v)
		}
	}
}

func TestNewValidatorErrors(t *testing.T) {
	if _, err := NewValidator(nil); err == nil {
		t.Errorf("wanted error creating validator without reader")
	}
	r := iotest.ErrReader(errors.New("disk failure"))
	if _, err := NewValidator(r); err == nil {
		t.Errorf("wanted error creating validator from failing reader")
	}
}

func TestReadWordsSmallReads(t *testing.T) {
	r := iotest.OneByteReader(strings.NewReader("qi Zax źdźbło za"))
	got, err := ReadWords(r)
	want := []string{"qi", "źdźbło", "za"}
	switch {
	case err != nil:
		t.Errorf("unwanted error: %v", err)
	case !reflect.DeepEqual(want, got):
		t.Errorf("words not equal:\nwanted: %q\ngot:    %q", want, got)
	}
}

func TestValidatorContains(t *testing.T) {
	containsTests := []struct {
		word string
		want bool
	}{
		{},
		{
			word: "bat",
			want: true,
		},
		{
			word: "BAT",
			want: true,
		},
		{
			word: "BAT ",
		},
		{
			word: "'BAT'",
		},
		{
			word: "care",
		},
		{
			word: "ŻÓŁW",
			want: true,
		},
	}
	r := strings.NewReader("apple bat car żółw")
	v, err := NewValidator(r)
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	for i, test := range containsTests {
		got := v.Contains(test.word)
		if test.want != got {
			t.Errorf("Test %v: wanted %v, but got %v for word %q - valid words are %v", i, test.want, got, test.word, v)
		}
	}
}

func TestNormalize(t *testing.T) {
	normalizeTests := []struct {
		word string
		want string
	}{
		{},
		{"Apple", "apple"},
		{"ZO\u0301LTY", "zólty"}, // combining acute accent is composed
	}
	for i, test := range normalizeTests {
		if got := Normalize(test.word); test.want != got {
			t.Errorf("Test %v: wanted %q, got %q", i, test.want, got)
		}
	}
}
