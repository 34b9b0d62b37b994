// Package game is the interface the user interface talks to: it owns the
// live board, whose turn it is, and asks the search for the computer's
// moves.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/connectsquare/alphabeta"
	"github.com/domino14/connectsquare/board"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
)

type PlayState int

const (
	Playing PlayState = iota
	GameOver
)

func (p PlayState) String() string {
	if p == GameOver {
		return "game over"
	}
	return "playing"
}

// Game holds a single game between a human and the computer. It is not
// safe for concurrent use.
type Game struct {
	uid      string
	board    *board.Board
	settings Settings
	solver   *alphabeta.Solver

	onturn  board.Piece
	playing PlayState
	winner  board.Piece
	history []Turn
}

// NewGame starts an empty game with the given settings.
func NewGame(settings Settings) *Game {
	g := &Game{
		board:    board.NewDefaultBoard(),
		settings: settings,
		solver:   alphabeta.NewSolver(),
	}
	g.Reset()
	return g
}

// Reset empties the board and starts over with the same settings.
func (g *Game) Reset() {
	g.uid = uuid.NewString()
	g.board.Reset()
	g.onturn = g.settings.StartingPlayer
	if g.onturn != board.AIPiece {
		g.onturn = board.PlayerPiece
	}
	g.playing = Playing
	g.winner = board.Empty
	g.history = nil
	log.Debug().Str("uid", g.uid).Int("depth", g.settings.Depth).
		Stringer("first", g.onturn).Msg("new-game")
}

func (g *Game) Uid() string { return g.uid }
func (g *Game) Settings() Settings { return g.settings }
func (g *Game) Board() *board.Board { return g.board }
func (g *Game) PlayerOnTurn() board.Piece { return g.onturn }
func (g *Game) Playing() PlayState { return g.playing }

// Winner returns the piece that won, or Empty for a draw or an
// unfinished game.
func (g *Game) Winner() board.Piece {
	return g.winner
}

// IsBoardFull tells whether the game ended in a draw after the last move.
func (g *Game) IsBoardFull() bool {
	return g.board.IsFull()
}

// IsValidMove is the legality check a UI runs before submitting a move.
func (g *Game) IsValidMove(col int) bool {
	return g.board.IsValidMove(col)
}

func (g *Game) play(col int, piece board.Piece) (bool, error) {
	if g.playing == GameOver {
		return false, ErrGameOver
	}
	if g.onturn != piece {
		return false, ErrNotYourTurn
	}
	if !g.board.IsValidMove(col) {
		return false, fmt.Errorf("%w: column %d", ErrInvalidMove, col)
	}
	row := g.board.NextOpenRow(col)
	g.board.DropPiece(row, col, piece)
	won := g.board.WinningMove(piece)
	g.history = append(g.history, Turn{Piece: piece, Column: col, Row: row, Won: won})

	switch {
	case won:
		g.playing = GameOver
		g.winner = piece
		log.Info().Str("uid", g.uid).Stringer("winner", piece).
			Int("turns", len(g.history)).Msg("game-won")
	case g.board.IsFull():
		g.playing = GameOver
		log.Info().Str("uid", g.uid).Int("turns", len(g.history)).Msg("game-drawn")
	default:
		g.onturn = piece.Opponent()
	}
	return won, nil
}

// ApplyHumanMove drops the human's piece in col and reports whether it won
// the game. An invalid column returns ErrInvalidMove and leaves the game
// unchanged.
func (g *Game) ApplyHumanMove(col int) (bool, error) {
	return g.play(col, board.PlayerPiece)
}

// ChooseAiMove searches the current position at the configured depth and
// returns the computer's column without playing it.
func (g *Game) ChooseAiMove() (int, error) {
	if g.playing == GameOver || g.board.IsTerminal() {
		return board.NoColumn, ErrGameOver
	}
	col, _ := g.solver.Solve(g.board, g.settings.Depth, board.AIPiece)
	return col, nil
}

// PlayAiMove chooses and plays the computer's move.
func (g *Game) PlayAiMove() (int, bool, error) {
	if g.playing == GameOver {
		return board.NoColumn, false, ErrGameOver
	}
	if g.onturn != board.AIPiece {
		return board.NoColumn, false, ErrNotYourTurn
	}
	col, err := g.ChooseAiMove()
	if err != nil {
		return board.NoColumn, false, err
	}
	won, err := g.play(col, board.AIPiece)
	if err != nil {
		return board.NoColumn, false, err
	}
	log.Debug().Int("column", col).Int("nodes", g.solver.TotalNodes()).Msg("ai-played")
	return col, won, nil
}

// LastSearch returns the solver used for the computer's moves, for
// inspecting statistics of its last search.
func (g *Game) LastSearch() *alphabeta.Solver {
	return g.solver
}

// ChooseAiMove is the stateless form of Game.ChooseAiMove. The board must
// not be terminal.
func ChooseAiMove(b *board.Board, depth int) int {
	return alphabeta.ChooseMove(b, depth)
}

func (g *Game) nameOf(p board.Piece) string {
	if p == board.PlayerPiece {
		return g.settings.PlayerName
	}
	return "Computer"
}

// ToDisplayText shows the board along with whose turn it is or how the
// game ended.
func (g *Game) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString(g.board.ToDisplayText())
	sb.WriteString(fmt.Sprintf("%s (%v) vs Computer (%v), depth %d\n",
		g.settings.PlayerName, board.PlayerPiece, board.AIPiece, g.settings.Depth))
	switch {
	case g.playing == Playing:
		sb.WriteString(fmt.Sprintf("%s to move\n", g.nameOf(g.onturn)))
	case g.winner != board.Empty:
		sb.WriteString(fmt.Sprintf("%s wins!!\n", g.nameOf(g.winner)))
	default:
		sb.WriteString("Draw: the board is full\n")
	}
	return sb.String()
}
