package board

import (
	"strings"

	"github.com/jacobpatterson1549/selene-scrabble/game/word"
)

// direction is the step between consecutive letters of a word.
type direction struct {
	dRow, dCol int
}

var (
	across = direction{dCol: 1}
	down   = direction{dRow: 1}
)

// NewWords computes the words formed by the staged letters, including committed words they extend.
// Only runs of at least two letters that include a staged letter are words.
// The words are sorted by letters, then score.
func (b *Board) NewWords() []word.Word {
	var words []word.Word
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if !b.cells[row][col].occupied() {
				continue
			}
			for _, d := range []direction{across, down} {
				if b.occupied(row-d.dRow, col-d.dCol) {
					continue // not the start of the run
				}
				if w, ok := b.newWord(row, col, d); ok {
					words = append(words, w)
				}
			}
		}
	}
	word.Sort(words)
	return words
}

// occupied reports whether the position is on the board and has a letter.
func (b *Board) occupied(row, col int) bool {
	return inBounds(row, col) && b.cells[row][col].occupied()
}

// newWord scores the run of letters starting at the position.
// Staged letters have their points multiplied by the letter multiplier of their position
// and the sum of points is multiplied by the word multipliers of the positions of staged letters.
func (b *Board) newWord(row, col int, d direction) (word.Word, bool) {
	var sb strings.Builder
	numLetters, points, multiplier := 0, 0, 1
	hasPending := false
	for r, c := row, col; inBounds(r, c); r, c = r+d.dRow, c+d.dCol {
		cl := b.cells[r][c]
		l, ok := cl.letter()
		if !ok {
			break
		}
		letterPoints := b.scorer.ScoreLetter(l)
		if cl.hasPending {
			hasPending = true
			letterPoints *= b.letterMultipliers[r][c]
			multiplier *= b.wordMultipliers[r][c]
		}
		points += letterPoints
		numLetters++
		sb.WriteRune(rune(l))
	}
	if !hasPending || numLetters < 2 {
		return word.Word{}, false
	}
	w := word.Word{
		Letters: sb.String(),
		Score:   points * multiplier,
	}
	return w, true
}
