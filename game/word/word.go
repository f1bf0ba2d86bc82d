// Package word handles the words formed on the board and checking them against word lists.
package word

import (
	"sort"
	"strconv"
	"strings"
)

// Word is a run of at least two letters on the board and the points it scored.
type Word struct {
	Letters string
	Score   int
}

// Compare orders words by their letters, then by score.
// It returns a negative number when a sorts before b, zero when they are equal, and a positive number otherwise.
func Compare(a, b Word) int {
	if c := strings.Compare(a.Letters, b.Letters); c != 0 {
		return c
	}
	switch {
	case a.Score < b.Score:
		return -1
	case a.Score > b.Score:
		return 1
	}
	return 0
}

// Equal reports whether the words have the same letters and score.
func (w Word) Equal(other Word) bool {
	return Compare(w, other) == 0
}

// String formats the word with its score.
func (w Word) String() string {
	return w.Letters + " (" + strconv.Itoa(w.Score) + ")"
}

// Sort orders the words in place by Compare.
func Sort(words []Word) {
	sort.SliceStable(words, func(i, j int) bool {
		return Compare(words[i], words[j]) < 0
	})
}
