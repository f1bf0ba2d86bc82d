// Package board stores the letters on a game board and validates, scores, and commits moves.
package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jacobpatterson1549/selene-scrabble/game/tile"
	"github.com/jacobpatterson1549/selene-scrabble/game/word"
	"github.com/jacobpatterson1549/selene-scrabble/log"
)

type (
	// Board is the grid of letters for a game.
	// Letters are staged during a turn and committed once the move is allowed.
	// A Board is not safe for concurrent use.
	Board struct {
		cells             [Size][Size]cell
		wordMultipliers   [Size][Size]int
		letterMultipliers [Size][Size]int
		scorer            LetterScorer
		dictionary        Dictionary
		log               log.Logger
		debug             bool
	}

	// Config stores fields for creating a board.
	Config struct {
		// Scorer provides the points for each letter.
		Scorer LetterScorer
		// Dictionary is used to check words when moves are committed with verification.
		Dictionary Dictionary
		// Log is used to log committed moves when debugging.
		Log log.Logger
		// Debug causes staged letters and committed moves to be logged.
		Debug bool
	}

	// LetterScorer provides the points a letter is worth.
	LetterScorer interface {
		ScoreLetter(l tile.Letter) int
	}

	// Dictionary checks if words are valid.
	Dictionary interface {
		Contains(word string) bool
	}

	// Placement is a letter staged at a position.
	Placement struct {
		Row    int
		Col    int
		Letter tile.Letter
	}
)

const (
	// Size is the number of rows and columns on the board.
	Size = 15
	// center is the row and column of the square the first move must cover.
	center = Size / 2
	// bingoLetterCount is the number of letters that must be placed in a single move to earn the bingo bonus.
	bingoLetterCount = 7
	// bingoBonus is the number of extra points for placing many letters in one move.
	bingoBonus = 50
)

var (
	// ErrOutOfBounds is returned when a position is not on the board or a letter that is not staged is deleted.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrMoveNotAllowed is returned when the staged letters cannot be committed.
	ErrMoveNotAllowed = errors.New("move not allowed")
)

// New creates an empty board with all multipliers set to 1.
func (cfg Config) New() (*Board, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating board: validation: %w", err)
	}
	b := Board{
		scorer:     cfg.Scorer,
		dictionary: cfg.Dictionary,
		log:        cfg.Log,
		debug:      cfg.Debug,
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.wordMultipliers[row][col] = 1
			b.letterMultipliers[row][col] = 1
		}
	}
	return &b, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.Scorer == nil:
		return fmt.Errorf("letter scorer required")
	case cfg.Dictionary == nil:
		return fmt.Errorf("dictionary required")
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	}
	return nil
}

// inBounds reports whether the position is on the board.
func inBounds(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}

// checkBounds returns ErrOutOfBounds if the position is not on the board.
func checkBounds(row, col int) error {
	if !inBounds(row, col) {
		return fmt.Errorf("row %v, column %v: %w", row, col, ErrOutOfBounds)
	}
	return nil
}

// AddLetter stages a letter, replacing any letter previously staged at the position.
func (b *Board) AddLetter(row, col int, l tile.Letter) error {
	if err := checkBounds(row, col); err != nil {
		return fmt.Errorf("adding letter: %w", err)
	}
	b.cells[row][col].stage(l)
	if b.debug {
		b.log.Printf("staged %q at row %v, column %v", l, row, col)
	}
	return nil
}

// Letter returns the staged or committed letter at the position.
// The boolean is false if the position is empty.
func (b *Board) Letter(row, col int) (tile.Letter, bool, error) {
	if err := checkBounds(row, col); err != nil {
		return 0, false, fmt.Errorf("getting letter: %w", err)
	}
	l, ok := b.cells[row][col].letter()
	return l, ok, nil
}

// DeleteLetter removes a staged letter.
// Committed letters cannot be removed: trying to delete one, or an empty position, is treated as an out of bounds position.
func (b *Board) DeleteLetter(row, col int) error {
	if err := checkBounds(row, col); err != nil {
		return fmt.Errorf("deleting letter: %w", err)
	}
	if !b.cells[row][col].unstage() {
		return fmt.Errorf("deleting letter: no staged letter at row %v, column %v: %w", row, col, ErrOutOfBounds)
	}
	return nil
}

// WordMultiplier returns the number the score of a word is multiplied by when a letter is staged at the position.
func (b *Board) WordMultiplier(row, col int) (int, error) {
	if err := checkBounds(row, col); err != nil {
		return 0, fmt.Errorf("getting word multiplier: %w", err)
	}
	return b.wordMultipliers[row][col], nil
}

// SetWordMultiplier changes the word multiplier at the position.
// Multipliers are a permanent part of the board and are used by every move that stages a letter on the position.
func (b *Board) SetWordMultiplier(row, col, multiplier int) error {
	if err := checkBounds(row, col); err != nil {
		return fmt.Errorf("setting word multiplier: %w", err)
	}
	b.wordMultipliers[row][col] = multiplier
	return nil
}

// LetterMultiplier returns the number the points of a letter staged at the position are multiplied by.
func (b *Board) LetterMultiplier(row, col int) (int, error) {
	if err := checkBounds(row, col); err != nil {
		return 0, fmt.Errorf("getting letter multiplier: %w", err)
	}
	return b.letterMultipliers[row][col], nil
}

// SetLetterMultiplier changes the letter multiplier at the position.
func (b *Board) SetLetterMultiplier(row, col, multiplier int) error {
	if err := checkBounds(row, col); err != nil {
		return fmt.Errorf("setting letter multiplier: %w", err)
	}
	b.letterMultipliers[row][col] = multiplier
	return nil
}

// Pending returns the staged letters, ordered by row, then column.
func (b *Board) Pending() []Placement {
	var placements []Placement
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if c := b.cells[row][col]; c.hasPending {
				p := Placement{
					Row:    row,
					Col:    col,
					Letter: c.pending,
				}
				placements = append(placements, p)
			}
		}
	}
	return placements
}

// ClearPending removes all staged letters.
func (b *Board) ClearPending() {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.cells[row][col].unstage()
		}
	}
}

// CommitMove validates the staged letters, scores the words they form, and commits them.
// When verify is true, every new word must be in the dictionary.
// Nothing on the board changes if an error is returned.
func (b *Board) CommitMove(verify bool) (int, error) {
	if err := b.checkMove(); err != nil {
		return 0, fmt.Errorf("committing move: %w", err)
	}
	words := b.NewWords()
	if verify {
		if err := b.verifyWords(words); err != nil {
			return 0, fmt.Errorf("committing move: %w", err)
		}
	}
	score := 0
	for _, w := range words {
		score += w.Score
	}
	numPending := b.countPending()
	if numPending >= bingoLetterCount {
		score += bingoBonus
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			b.cells[row][col].settle()
		}
	}
	if b.debug {
		b.log.Printf("committed %v letters forming %v for %v points", numPending, words, score)
	}
	return score, nil
}

// verifyWords checks each word in the dictionary once, returning an error naming all of the words that are not found.
func (b *Board) verifyWords(words []word.Word) error {
	var invalidWords []string
	for _, w := range words {
		if !b.dictionary.Contains(w.Letters) {
			invalidWords = append(invalidWords, w.Letters)
		}
	}
	if len(invalidWords) != 0 {
		return fmt.Errorf("invalid words %q: %w", invalidWords, ErrMoveNotAllowed)
	}
	return nil
}

// countPending returns the number of staged letters.
func (b *Board) countPending() int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col].hasPending {
				n++
			}
		}
	}
	return n
}

// countSettled returns the number of committed letters.
func (b *Board) countSettled() int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col].hasSettled {
				n++
			}
		}
	}
	return n
}

// String draws the board as rows of text.
// Empty positions are dots, committed letters are lower case, and staged letters are upper case.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			c := b.cells[row][col]
			switch {
			case c.hasPending:
				sb.WriteRune(unicode.ToUpper(rune(c.pending)))
			case c.hasSettled:
				sb.WriteRune(unicode.ToLower(rune(c.settled)))
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
