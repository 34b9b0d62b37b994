package game

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/connectsquare/board"
	"github.com/domino14/connectsquare/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := NewGame(DefaultSettings())
	is.Equal(g.Playing(), Playing)
	is.Equal(g.PlayerOnTurn(), board.PlayerPiece)
	is.Equal(g.Board().PiecesPlayed(), 0)
	is.Equal(g.Board().Rows(), 7)
	is.Equal(g.Board().Cols(), 7)
	is.True(g.Uid() != "")
	is.Equal(len(g.History()), 0)
}

func TestHumanThenAI(t *testing.T) {
	is := is.New(t)
	g := NewGame(DefaultSettings())

	won, err := g.ApplyHumanMove(3)
	is.NoErr(err)
	is.True(!won)
	is.Equal(g.Board().At(0, 3), board.PlayerPiece)
	is.Equal(g.PlayerOnTurn(), board.AIPiece)

	_, err = g.ApplyHumanMove(3)
	is.True(errors.Is(err, ErrNotYourTurn))

	col, won, err := g.PlayAiMove()
	is.NoErr(err)
	is.True(!won)
	is.True(col >= 0 && col < 7)
	is.Equal(g.PlayerOnTurn(), board.PlayerPiece)
	is.Equal(g.Board().PiecesPlayed(), 2)

	_, _, err = g.PlayAiMove()
	is.True(errors.Is(err, ErrNotYourTurn))

	h := g.History()
	is.Equal(len(h), 2)
	is.Equal(h[0], Turn{Piece: board.PlayerPiece, Column: 3, Row: 0})
	is.Equal(h[1].Piece, board.AIPiece)
	is.Equal(h[1].Column, col)
}

func TestInvalidHumanMove(t *testing.T) {
	is := is.New(t)
	g := NewGame(DefaultSettings())
	g.board = board.MustFromRows(
		"X......",
		"O......",
		"X......",
		"O......",
		"X......",
		"O......",
		"X......",
	)
	for _, col := range []int{0, -1, 7, board.NoColumn} {
		won, err := g.ApplyHumanMove(col)
		is.True(errors.Is(err, ErrInvalidMove))
		is.True(!won)
	}
	is.Equal(g.Board().PiecesPlayed(), 7)
	is.Equal(g.PlayerOnTurn(), board.PlayerPiece)
	is.Equal(len(g.History()), 0)
}

func TestHumanWins(t *testing.T) {
	is := is.New(t)
	g := NewGame(DefaultSettings())
	g.board = board.MustFromRows(
		".......",
		".......",
		".......",
		".......",
		".......",
		"X......",
		"XXOO...",
	)
	won, err := g.ApplyHumanMove(1)
	is.NoErr(err)
	is.True(won)
	is.Equal(g.Playing(), GameOver)
	is.Equal(g.Winner(), board.PlayerPiece)

	_, err = g.ApplyHumanMove(4)
	is.True(errors.Is(err, ErrGameOver))
	_, err = g.ChooseAiMove()
	is.True(errors.Is(err, ErrGameOver))
	_, _, err = g.PlayAiMove()
	is.True(errors.Is(err, ErrGameOver))

	last, ok := g.LastTurn()
	is.True(ok)
	is.True(last.Won)
}

func TestAIWins(t *testing.T) {
	is := is.New(t)
	s := DefaultSettings()
	s.StartingPlayer = board.AIPiece
	g := NewGame(s)
	g.board = board.MustFromRows(
		".......",
		".......",
		".......",
		".......",
		".......",
		"X.O....",
		"XXOO...",
	)
	col, won, err := g.PlayAiMove()
	is.NoErr(err)
	is.Equal(col, 3)
	is.True(won)
	is.Equal(g.Winner(), board.AIPiece)
	is.Equal(g.Playing(), GameOver)
}

func TestDrawWhenBoardFills(t *testing.T) {
	is := is.New(t)
	g := NewGame(DefaultSettings())
	g.board = board.MustFromRows(
		".OXOXOX",
		"OXOXOXO",
		"XOXOXOX",
		"OXOXOXO",
		"XOXOXOX",
		"OXOXOXO",
		"XOXOXOX",
	)
	is.True(!g.IsBoardFull())
	won, err := g.ApplyHumanMove(0)
	is.NoErr(err)
	is.True(!won)
	is.True(g.IsBoardFull())
	is.Equal(g.Playing(), GameOver)
	is.Equal(g.Winner(), board.Empty)
}

func TestAIStarts(t *testing.T) {
	is := is.New(t)
	s := DefaultSettings()
	s.StartingPlayer = board.AIPiece
	s.Depth = 3
	g := NewGame(s)
	is.Equal(g.PlayerOnTurn(), board.AIPiece)
	_, err := g.ApplyHumanMove(0)
	is.True(errors.Is(err, ErrNotYourTurn))

	col, err := g.ChooseAiMove()
	is.NoErr(err)
	is.Equal(g.Board().PiecesPlayed(), 0)

	played, _, err := g.PlayAiMove()
	is.NoErr(err)
	is.Equal(played, col)
	is.True(g.LastSearch().TotalNodes() > 0)
}

func TestReset(t *testing.T) {
	is := is.New(t)
	s := DefaultSettings()
	s.StartingPlayer = board.AIPiece
	g := NewGame(s)
	uid := g.Uid()
	_, _, err := g.PlayAiMove()
	is.NoErr(err)
	g.Reset()
	is.True(g.Uid() != uid)
	is.Equal(g.Board().PiecesPlayed(), 0)
	is.Equal(g.PlayerOnTurn(), board.AIPiece)
	is.Equal(g.Playing(), Playing)
	is.Equal(len(g.History()), 0)
}

func TestFullGameEnds(t *testing.T) {
	is := is.New(t)
	s := DefaultSettings()
	s.Depth = 2
	g := NewGame(s)
	for g.Playing() == Playing {
		if g.PlayerOnTurn() == board.PlayerPiece {
			moves := g.Board().ValidMoves()
			_, err := g.ApplyHumanMove(moves[0])
			is.NoErr(err)
		} else {
			_, _, err := g.PlayAiMove()
			is.NoErr(err)
		}
	}
	is.True(g.Board().IsTerminal())
	is.True(len(g.History()) <= 49)
}

func TestChooseAiMoveStateless(t *testing.T) {
	is := is.New(t)
	b := board.NewDefaultBoard()
	col := ChooseAiMove(b, 2)
	is.True(b.IsValidMove(col))
	is.Equal(b.PiecesPlayed(), 0)
}

func TestSettingsFromConfig(t *testing.T) {
	is := is.New(t)
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigDepth, 4)
	cfg.Set(config.ConfigStartingPlayer, "ai")
	cfg.Set(config.ConfigPlayerName, "Remedios")
	cfg.Set(config.ConfigBoardColor, "Latte")

	s, err := SettingsFromConfig(cfg)
	is.NoErr(err)
	is.Equal(s.Depth, 4)
	is.Equal(s.StartingPlayer, board.AIPiece)
	is.Equal(s.PlayerName, "Remedios")
	is.Equal(s.BoardColor.Name, "Latte")

	cfg.Set(config.ConfigDepth, 9)
	_, err = SettingsFromConfig(cfg)
	is.True(errors.Is(err, config.ErrDepthOutOfRange))
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	g := NewGame(DefaultSettings())
	is.True(len(g.ToDisplayText()) > 0)
	g.board = board.MustFromRows(
		".......",
		".......",
		".......",
		".......",
		".......",
		"X......",
		"XXOO...",
	)
	_, err := g.ApplyHumanMove(1)
	is.NoErr(err)
	text := g.ToDisplayText()
	is.True(len(text) > 0)
	is.Equal(text[len(text)-len("Seth wins!!\n"):], "Seth wins!!\n")
}
