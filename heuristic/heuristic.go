// Package heuristic holds the static evaluation used when a search is cut
// off before the game ends.
package heuristic

import "github.com/domino14/connectsquare/board"

const (
	FourScore          = 200
	ThreeScore         = 5
	TwoScore           = 1
	OpponentThreeScore = -4
)

// EvaluateWindow scores a window of four cells for piece. Only the first
// matching case applies.
func EvaluateWindow(window []board.Piece, piece board.Piece) int {
	opp := piece.Opponent()
	var own, theirs, empty int
	for _, p := range window {
		switch p {
		case piece:
			own++
		case opp:
			theirs++
		case board.Empty:
			empty++
		}
	}
	switch {
	case own == 4:
		return FourScore
	case own == 3 && empty == 1:
		return ThreeScore
	case own == 2 && empty == 2:
		return TwoScore
	case theirs == 3 && empty == 1:
		return OpponentThreeScore
	}
	return 0
}

// ScorePosition sums EvaluateWindow over 2x2 windows whose lower-left
// corner sits in columns 0..cols-3 and rows 0..rows-2, so the rightmost
// column is never looked at. The AI's play was tuned against this window
// set.
func ScorePosition(b *board.Board, piece board.Piece) int {
	score := 0
	window := make([]board.Piece, 4)
	for c := 0; c < b.Cols()-2; c++ {
		for r := 0; r < b.Rows()-1; r++ {
			window[0] = b.At(r, c)
			window[1] = b.At(r, c+1)
			window[2] = b.At(r+1, c)
			window[3] = b.At(r+1, c+1)
			score += EvaluateWindow(window, piece)
		}
	}
	return score
}
