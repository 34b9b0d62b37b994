package automatic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/frand"

	"github.com/domino14/connectsquare/alphabeta"
	"github.com/domino14/connectsquare/board"
	"github.com/domino14/connectsquare/config"
)

const (
	RandomBotName  = "random"
	MinimaxBotName = "minimax"
)

var ErrUnknownBot = errors.New("unknown bot")

// A Bot picks a column for side on a non-terminal board.
type Bot interface {
	ChooseMove(b *board.Board, side board.Piece) int
	String() string
}

// RandomBot plays a uniformly random valid column.
type RandomBot struct{}

func (RandomBot) ChooseMove(b *board.Board, side board.Piece) int {
	moves := b.ValidMoves()
	return moves[frand.Intn(len(moves))]
}

func (RandomBot) String() string { return RandomBotName }

// MinimaxBot searches with alphabeta at a fixed depth.
type MinimaxBot struct {
	depth  int
	solver *alphabeta.Solver
}

func NewMinimaxBot(depth int) *MinimaxBot {
	return &MinimaxBot{depth: depth, solver: alphabeta.NewSolver()}
}

func (m *MinimaxBot) ChooseMove(b *board.Board, side board.Piece) int {
	col, _ := m.solver.Solve(b, m.depth, side)
	return col
}

func (m *MinimaxBot) String() string {
	return fmt.Sprintf("%s:%d", MinimaxBotName, m.depth)
}

// NewBot parses a bot description: "random", "minimax" (depth 1) or
// "minimax:<depth>".
func NewBot(desc string) (Bot, error) {
	name, arg, hasArg := strings.Cut(strings.ToLower(strings.TrimSpace(desc)), ":")
	switch name {
	case RandomBotName:
		if hasArg {
			return nil, fmt.Errorf("%w: random bot takes no depth", ErrUnknownBot)
		}
		return RandomBot{}, nil
	case MinimaxBotName:
		depth := config.MinDepth
		if hasArg {
			d, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: bad depth %q", ErrUnknownBot, arg)
			}
			depth = d
		}
		if depth < config.MinDepth || depth > config.MaxDepth {
			return nil, fmt.Errorf("%w: %d", config.ErrDepthOutOfRange, depth)
		}
		return NewMinimaxBot(depth), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBot, desc)
}
