package tile

import "unicode"

// Points maps letters to the number of points they are worth.
type Points map[Letter]int

// EnglishPoints creates the point table for the standard English tile set.
func EnglishPoints() Points {
	return Points{
		'a': 1, 'e': 1, 'i': 1, 'l': 1, 'n': 1, 'o': 1, 'r': 1, 's': 1, 't': 1, 'u': 1,
		'd': 2, 'g': 2,
		'b': 3, 'c': 3, 'm': 3, 'p': 3,
		'f': 4, 'h': 4, 'v': 4, 'w': 4, 'y': 4,
		'k': 5,
		'j': 8, 'x': 8,
		'q': 10, 'z': 10,
	}
}

// ScoreLetter returns the points for the letter, ignoring case.
// Letters missing from the table are worth nothing.
func (p Points) ScoreLetter(l Letter) int {
	return p[Letter(unicode.ToLower(rune(l)))]
}
