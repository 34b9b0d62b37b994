package game

import (
	"fmt"

	"github.com/domino14/connectsquare/board"
)

// A Turn records one piece dropped during the game.
type Turn struct {
	Piece  board.Piece
	Column int
	Row    int
	Won    bool
}

func (t Turn) String() string {
	s := fmt.Sprintf("%v -> col %d (row %d)", t.Piece, t.Column, t.Row)
	if t.Won {
		s += " wins"
	}
	return s
}

// History returns a copy of the turns played so far.
func (g *Game) History() []Turn {
	h := make([]Turn, len(g.history))
	copy(h, g.history)
	return h
}

// LastTurn returns the most recent turn, if any.
func (g *Game) LastTurn() (Turn, bool) {
	if len(g.history) == 0 {
		return Turn{}, false
	}
	return g.history[len(g.history)-1], true
}
