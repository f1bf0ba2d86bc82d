package word

import (
	"bufio"
	"errors"
	"io"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Validator determines if words are valid.
type Validator map[string]struct{}

// NewValidator consumes the lower case words in the reader to use for validating.
func NewValidator(r io.Reader) (*Validator, error) {
	words, err := ReadWords(r)
	if err != nil {
		return nil, err
	}
	v := make(Validator, len(words))
	for _, w := range words {
		v[w] = struct{}{}
	}
	return &v, nil
}

// ReadWords scans the reader for words that are entirely lower case letters.
// Words with upper case letters or symbols, such as proper nouns and contractions, are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, errors.New("reader required to read words from")
	}
	var words []string
	scanner := bufio.NewScanner(norm.NFC.Reader(r))
	scanner.Split(scanLowerWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Normalize converts the word to the lower case, composed form that word lists are stored in.
func Normalize(word string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(word))
}

// Contains determines whether or not the word is valid.
// Words are normalized before checking.
func (v Validator) Contains(word string) bool {
	_, ok := v[Normalize(word)]
	return ok
}

// scanLowerWords is a bufio.SplitFunc that returns the next only-lowercase word.
// Derived from bufio.ScanWords.
func scanLowerWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start, end := 0, 0
	skipUntilSpace := false
	for end < len(data) {
		r, width := utf8.DecodeRune(data[end:])
		if r == utf8.RuneError && width == 1 && !atEOF && !utf8.FullRune(data[end:]) {
			break // request more data to finish the rune
		}
		end += width
		switch {
		case unicode.IsSpace(r):
			if !skipUntilSpace && end-width > start {
				return end, data[start : end-width], nil
			}
			start = end
			skipUntilSpace = false
		case !unicode.IsLower(r) && !skipUntilSpace: // uppercase/symbol
			skipUntilSpace = true
		}
	}
	if atEOF && len(data) > start {
		if skipUntilSpace {
			return len(data), nil, nil
		}
		return len(data), data[start:], nil
	}
	return start, nil, nil
}
