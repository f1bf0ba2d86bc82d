package board

import "fmt"

// MoveAllowed determines if the staged letters can be committed.
// The board is not changed.
func (b *Board) MoveAllowed() bool {
	return b.checkMove() == nil
}

// checkMove returns an error describing why the staged letters cannot be committed, if they cannot be.
//
// Staged letters must be in a single row or column with no empty positions between them.
// The first move must cover the center with at least two letters.
// Later moves must stage a letter next to a committed letter.
func (b *Board) checkMove() error {
	pending := b.Pending()
	if len(pending) == 0 {
		return nil
	}
	minRow, maxRow, minCol, maxCol := Size, -1, Size, -1
	for _, p := range pending {
		minRow = min(minRow, p.Row)
		maxRow = max(maxRow, p.Row)
		minCol = min(minCol, p.Col)
		maxCol = max(maxCol, p.Col)
	}
	if minRow != maxRow && minCol != maxCol {
		return fmt.Errorf("letters must be in a single row or column: %w", ErrMoveNotAllowed)
	}
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !b.cells[row][col].occupied() {
				return fmt.Errorf("gap at row %v, column %v: %w", row, col, ErrMoveNotAllowed)
			}
		}
	}
	if b.countSettled() == 0 {
		switch {
		case !b.cells[center][center].occupied():
			return fmt.Errorf("first move must cover the center: %w", ErrMoveNotAllowed)
		case len(pending) == 1:
			return fmt.Errorf("first move must place more than one letter: %w", ErrMoveNotAllowed)
		}
		return nil
	}
	for _, p := range pending {
		if b.touchesSettled(p.Row, p.Col) {
			return nil
		}
	}
	return fmt.Errorf("letters must touch a letter already on the board: %w", ErrMoveNotAllowed)
}

// touchesSettled reports whether a committed letter is directly above, below, left of, or right of the position.
// Neighbors off the board are never committed.
func (b *Board) touchesSettled(row, col int) bool {
	deltas := [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	for _, d := range deltas {
		r, c := row+d[0], col+d[1]
		if inBounds(r, c) && b.cells[r][c].hasSettled {
			return true
		}
	}
	return false
}
