// Package automatic plays computer vs computer games and collects
// statistics about them.
package automatic

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/connectsquare/board"
)

// GameRunner plays games between two bots. bots[0] plays the player's
// pieces (X) and bots[1] the AI's pieces (O).
type GameRunner struct {
	bots    [2]Bot
	board   *board.Board
	logchan chan string
}

// GameResult describes a finished game.
type GameResult struct {
	First     board.Piece
	Winner    board.Piece
	Moves     []int
	FinalHash uint64
}

func (r *GameResult) Turns() int {
	return len(r.Moves)
}

// NewGameRunner makes a runner for the two bot descriptions. See NewBot.
func NewGameRunner(logchan chan string, bot1, bot2 string) (*GameRunner, error) {
	b1, err := NewBot(bot1)
	if err != nil {
		return nil, err
	}
	b2, err := NewBot(bot2)
	if err != nil {
		return nil, err
	}
	return &GameRunner{
		bots:    [2]Bot{b1, b2},
		board:   board.NewDefaultBoard(),
		logchan: logchan,
	}, nil
}

func (r *GameRunner) botFor(side board.Piece) Bot {
	if side == board.PlayerPiece {
		return r.bots[0]
	}
	return r.bots[1]
}

// PlayGame plays one game to the end, starting with side first.
func (r *GameRunner) PlayGame(ctx context.Context, first board.Piece) (*GameResult, error) {
	r.board.Reset()
	res := &GameResult{First: first, Winner: board.Empty}
	side := first
	for !r.board.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		col := r.botFor(side).ChooseMove(r.board, side)
		if !r.board.IsValidMove(col) {
			return nil, fmt.Errorf("bot %v chose invalid column %d", r.botFor(side), col)
		}
		r.board.DropPiece(r.board.NextOpenRow(col), col, side)
		res.Moves = append(res.Moves, col)
		if r.board.WinningMove(side) {
			res.Winner = side
			break
		}
		side = side.Opponent()
	}
	res.FinalHash = r.board.Hash()

	if r.logchan != nil {
		r.logchan <- fmt.Sprintf("%v,%v,%v,%v,%v,%v\n",
			r.bots[0], r.bots[1], first, res.Winner, res.Turns(),
			strings.Join(lo.Map(res.Moves, func(m int, _ int) string {
				return strconv.Itoa(m)
			}), " "))
	}
	log.Debug().Stringer("winner", res.Winner).Int("turns", res.Turns()).Msg("game-over")
	return res, nil
}
