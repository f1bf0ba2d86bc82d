package controller

// player stores the running score of the person making moves on the board.
type player struct {
	score int
	moves int
}

// recordMove adds the points of a committed move.
func (p *player) recordMove(points int) {
	p.score += points
	p.moves++
}
