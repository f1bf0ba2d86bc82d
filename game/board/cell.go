package board

import "github.com/jacobpatterson1549/selene-scrabble/game/tile"

// cell is a square on the board.
// It may hold a letter staged this turn and a letter committed on an earlier turn,
// but commits move the staged letter, so both are never present at once.
type cell struct {
	pending    tile.Letter
	settled    tile.Letter
	hasPending bool
	hasSettled bool
}

// letter returns the staged letter if there is one, otherwise the committed letter.
func (c cell) letter() (tile.Letter, bool) {
	switch {
	case c.hasPending:
		return c.pending, true
	case c.hasSettled:
		return c.settled, true
	}
	return 0, false
}

// occupied reports whether the cell has a staged or committed letter.
func (c cell) occupied() bool {
	return c.hasPending || c.hasSettled
}

// stage sets the pending letter, replacing any previous one.
func (c *cell) stage(l tile.Letter) {
	c.pending = l
	c.hasPending = true
}

// unstage removes the pending letter, returning false if there was none.
func (c *cell) unstage() bool {
	if !c.hasPending {
		return false
	}
	c.pending = 0
	c.hasPending = false
	return true
}

// settle commits the pending letter.
func (c *cell) settle() {
	if !c.hasPending {
		return
	}
	c.settled = c.pending
	c.hasSettled = true
	c.unstage()
}
