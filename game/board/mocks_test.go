package board

import "github.com/jacobpatterson1549/selene-scrabble/game/tile"

type mockScorer struct {
	ScoreLetterFunc func(l tile.Letter) int
}

func (m mockScorer) ScoreLetter(l tile.Letter) int {
	return m.ScoreLetterFunc(l)
}

type mockDictionary struct {
	ContainsFunc func(word string) bool
}

func (m mockDictionary) Contains(word string) bool {
	return m.ContainsFunc(word)
}
