// Package alphabeta implements the computer opponent's move search using
// depth-limited minimax with alpha-beta pruning.
package alphabeta

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/connectsquare/board"
	"github.com/domino14/connectsquare/heuristic"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

const (
	// WinScore and LossScore are the values of finished games from the AI's
	// point of view. They are deliberately not symmetric.
	WinScore  = int64(100000000000000)
	LossScore = int64(-10000000000000)
	DrawScore = int64(0)
	// Infinity bounds every reachable score.
	Infinity = int64(1<<63 - 1)
)

// PVLine is the principal variation: the sequence of columns both sides
// are expected to play.
type PVLine struct {
	Moves []int
	score int64
	// side that plays Moves[0]
	side board.Piece
}

// Clear the principal variation line.
func (pvLine *PVLine) Clear() {
	pvLine.Moves = nil
}

// Update the principal variation line with a new best move, and a new
// line of best play after the best move.
func (pvLine *PVLine) Update(col int, newPVLine PVLine, score int64) {
	pvLine.Clear()
	pvLine.Moves = append(pvLine.Moves, col)
	pvLine.Moves = append(pvLine.Moves, newPVLine.Moves...)
	pvLine.score = score
}

func (pvLine PVLine) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("PV; val %d\n", pvLine.score))
	for i, col := range pvLine.Moves {
		side := pvLine.side
		if side == board.Empty {
			side = board.AIPiece
		}
		if i%2 == 1 {
			side = side.Opponent()
		}
		sb.WriteString(fmt.Sprintf("%d: %v col %d\n", i+1, side, col))
	}
	return sb.String()
}

// Solver runs the search. It keeps no state between calls other than the
// statistics of the last one, so a Solver must not be shared between
// goroutines, but separate Solvers can search the same position at once.
type Solver struct {
	disablePruning bool

	totalNodes         int
	principalVariation PVLine
}

func NewSolver() *Solver {
	return &Solver{}
}

// SetPruning turns alpha-beta cut-offs on or off. With pruning off the
// search is plain minimax; results are the same but many more nodes are
// visited.
func (s *Solver) SetPruning(on bool) {
	s.disablePruning = !on
}

// TotalNodes is the number of positions visited by the last Solve.
func (s *Solver) TotalNodes() int {
	return s.totalNodes
}

// PrincipalVariation returns the expected line of play found by the last
// Solve.
func (s *Solver) PrincipalVariation() PVLine {
	return s.principalVariation
}

// Solve searches depth plies ahead and returns the best column for side
// along with its score. Scores are always from the AI's point of view,
// so the AI maximizes and the player minimizes. The board is not
// modified. There must be at least one valid move.
func (s *Solver) Solve(b *board.Board, depth int, side board.Piece) (int, int64) {
	s.totalNodes = 0
	pv := PVLine{}
	col, score := s.minimax(b, depth, -Infinity, Infinity, side == board.AIPiece, &pv)
	pv.side = side
	s.principalVariation = pv

	log.Debug().
		Int("depth", depth).
		Stringer("side", side).
		Int("column", col).
		Int64("score", score).
		Int("nodes", s.totalNodes).
		Ints("pv", pv.Moves).
		Msg("search-complete")
	return col, score
}

// evaluate is called on leaf nodes.
func evaluate(b *board.Board, terminal bool) int64 {
	if terminal {
		if b.WinningMove(board.AIPiece) {
			return WinScore
		} else if b.WinningMove(board.PlayerPiece) {
			return LossScore
		}
		// Game is over, no more valid moves.
		return DrawScore
	}
	return int64(heuristic.ScorePosition(b, board.AIPiece))
}

func (s *Solver) minimax(b *board.Board, depth int, α, β int64, maximizingPlayer bool,
	pv *PVLine) (int, int64) {

	s.totalNodes++
	terminal := b.IsTerminal()
	if depth <= 0 || terminal {
		pv.Clear()
		return board.NoColumn, evaluate(b, terminal)
	}

	validLocations := b.ValidMoves()
	// Any finite child score replaces the fallback, so it only matters if
	// the loop below never runs.
	column := validLocations[frand.Intn(len(validLocations))]
	childPV := PVLine{}
	child := board.NewBoard(b.Rows(), b.Cols())

	if maximizingPlayer {
		value := -Infinity
		for _, col := range validLocations {
			child.CopyFrom(b)
			child.DropPiece(child.NextOpenRow(col), col, board.AIPiece)
			_, newScore := s.minimax(child, depth-1, α, β, false, &childPV)
			if newScore > value {
				value = newScore
				column = col
				pv.Update(col, childPV, value)
			}
			α = max(α, value)
			if α >= β && !s.disablePruning {
				break
			}
		}
		return column, value
	}

	value := Infinity
	for _, col := range validLocations {
		child.CopyFrom(b)
		child.DropPiece(child.NextOpenRow(col), col, board.PlayerPiece)
		_, newScore := s.minimax(child, depth-1, α, β, true, &childPV)
		if newScore < value {
			value = newScore
			column = col
			pv.Update(col, childPV, value)
		}
		β = min(β, value)
		if α >= β && !s.disablePruning {
			break
		}
	}
	return column, value
}

// ChooseMove returns the column the AI should play on b when searching
// depth plies ahead.
func ChooseMove(b *board.Board, depth int) int {
	col, _ := NewSolver().Solve(b, depth, board.AIPiece)
	return col
}
