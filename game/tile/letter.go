// Package tile contains the letters placed on the board and the points they score.
package tile

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Letter is the value of a tile on the board.
type Letter rune

// NewLetter creates a lower case letter from the rune, returning an error if the rune is not alphabetic.
func NewLetter(r rune) (Letter, error) {
	if !unicode.IsLetter(r) {
		return 0, errors.New("letter must be alphabetic: " + string(r))
	}
	return Letter(unicode.ToLower(r)), nil
}

// ParseLetter creates a letter from a string holding exactly one alphabetic character.
func ParseLetter(s string) (Letter, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, errors.New("letter must be a single character: " + s)
	}
	return NewLetter(r)
}

// String returns the letter as a string.
func (l Letter) String() string {
	return string(l)
}
