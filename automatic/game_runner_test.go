package automatic

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/connectsquare/board"
	"github.com/domino14/connectsquare/config"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestNewBot(t *testing.T) {
	for _, tc := range []struct {
		desc     string
		expected string
		err      error
	}{
		{"random", "random", nil},
		{" Random ", "random", nil},
		{"minimax", "minimax:1", nil},
		{"minimax:4", "minimax:4", nil},
		{"minimax:0", "", config.ErrDepthOutOfRange},
		{"minimax:6", "", config.ErrDepthOutOfRange},
		{"minimax:x", "", ErrUnknownBot},
		{"random:2", "", ErrUnknownBot},
		{"montecarlo", "", ErrUnknownBot},
	} {
		bot, err := NewBot(tc.desc)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.desc)
			continue
		}
		assert.NoError(t, err, tc.desc)
		assert.Equal(t, tc.expected, bot.String())
	}
}

func TestPlayGame(t *testing.T) {
	is := is.New(t)
	logchan := make(chan string, 1)
	r, err := NewGameRunner(logchan, "random", "minimax:2")
	is.NoErr(err)

	res, err := r.PlayGame(context.Background(), board.PlayerPiece)
	is.NoErr(err)
	is.True(res.Turns() > 0)
	is.True(res.Turns() <= 49)
	is.Equal(res.First, board.PlayerPiece)

	line := <-logchan
	is.True(strings.HasPrefix(line, "random,minimax:2,X,"))
	is.True(strings.HasSuffix(line, "\n"))

	// Replaying the moves gives the same final position.
	b := board.NewDefaultBoard()
	side := res.First
	for _, m := range res.Moves {
		is.True(b.IsValidMove(m))
		b.DropPiece(b.NextOpenRow(m), m, side)
		side = side.Opponent()
	}
	is.Equal(b.Hash(), res.FinalHash)
	if res.Winner != board.Empty {
		is.True(b.WinningMove(res.Winner))
	} else {
		is.True(b.IsFull())
	}
}

func TestPlayGameCancelled(t *testing.T) {
	is := is.New(t)
	r, err := NewGameRunner(nil, "random", "random")
	is.NoErr(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.PlayGame(ctx, board.AIPiece)
	is.True(errors.Is(err, context.Canceled))
}

func TestPlayGamesCountsEveryGame(t *testing.T) {
	is := is.New(t)
	summary, err := PlayGames(context.Background(), Options{
		Bot1:           "random",
		Bot2:           "random",
		Games:          40,
		Threads:        4,
		AlternateFirst: true,
	})
	is.NoErr(err)
	is.Equal(summary.Games, 40)
	is.Equal(summary.Bot1Wins+summary.Bot2Wins+summary.Draws, 40)
	is.True(summary.MeanTurns > 0)
	is.True(summary.DistinctPositions > 1)
	is.Equal(CVCCounter.Value(), int64(40))
	is.Equal(IsPlaying.Value(), int64(0))
}

func TestMinimaxBeatsRandom(t *testing.T) {
	is := is.New(t)
	summary, err := PlayGames(context.Background(), Options{
		Bot1:           "random",
		Bot2:           "minimax:3",
		Games:          20,
		Threads:        2,
		AlternateFirst: true,
	})
	is.NoErr(err)
	is.True(summary.Bot2Wins > summary.Bot1Wins)
}

func TestPlayGamesErrors(t *testing.T) {
	is := is.New(t)
	_, err := PlayGames(context.Background(), Options{Bot1: "random", Bot2: "chess", Games: 1})
	is.True(errors.Is(err, ErrUnknownBot))
	_, err = PlayGames(context.Background(), Options{Bot1: "random", Bot2: "random"})
	is.True(err != nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = PlayGames(ctx, Options{Bot1: "random", Bot2: "random", Games: 10, Threads: 2})
	is.True(errors.Is(err, context.Canceled))
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	results := []*GameResult{
		{Winner: board.PlayerPiece, Moves: []int{0, 1, 0, 1, 2}, FinalHash: 1},
		{Winner: board.AIPiece, Moves: []int{0, 1, 0}, FinalHash: 2},
		{Winner: board.Empty, Moves: []int{3, 3, 3, 3}, FinalHash: 2},
		nil,
	}
	s := Summarize("a", "b", results)
	is.Equal(s.Games, 3)
	is.Equal(s.Bot1Wins, 1)
	is.Equal(s.Bot2Wins, 1)
	is.Equal(s.Draws, 1)
	is.Equal(s.MeanTurns, 4.0)
	is.Equal(s.StdDevTurns, 1.0)
	is.Equal(s.DistinctPositions, 2)

	out, err := s.YAML()
	is.NoErr(err)
	is.True(strings.Contains(out, "games: 3\n"))
	is.True(strings.Contains(out, "distinct_final_positions: 2\n"))

	var buf bytes.Buffer
	is.NoErr(s.WriteLengthHistogram(&buf))
	is.True(strings.HasPrefix(buf.String(), "game length (turns):\n"))
	is.True(len(buf.String()) > len("game length (turns):\n"))

	buf.Reset()
	is.NoErr(Summarize("a", "b", nil).WriteLengthHistogram(&buf))
	is.Equal(buf.Len(), 0)
}
