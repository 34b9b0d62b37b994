package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/connectsquare/board"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// Options configure a batch of automatic games.
type Options struct {
	Bot1    string
	Bot2    string
	Games   int
	Threads int
	// First is the side that starts every game, or every even-numbered
	// game when AlternateFirst is set.
	First          board.Piece
	AlternateFirst bool
	// LogChan, if set, receives one CSV line per game. The caller must
	// drain it.
	LogChan chan string
}

func (o Options) firstFor(gameIdx int) board.Piece {
	first := o.First
	if first != board.AIPiece {
		first = board.PlayerPiece
	}
	if o.AlternateFirst && gameIdx%2 == 1 {
		return first.Opponent()
	}
	return first
}

// PlayGames plays opts.Games games on opts.Threads goroutines and
// summarizes them. Cancelling ctx stops the batch and returns the
// context's error.
func PlayGames(ctx context.Context, opts Options) (*Summary, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	if opts.Games <= 0 {
		return nil, errors.New("number of games must be positive")
	}
	threads := max(1, opts.Threads)
	// Validate the bots before starting any workers.
	if _, err := NewGameRunner(nil, opts.Bot1, opts.Bot2); err != nil {
		return nil, err
	}
	log.Info().Int("games", opts.Games).Int("threads", threads).
		Str("bot1", opts.Bot1).Str("bot2", opts.Bot2).Msg("starting-autoplay")

	CVCCounter.Set(0)
	results := make([]*GameResult, opts.Games)
	jobs := make(chan int, 100)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < opts.Games; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for t := 0; t < threads; t++ {
		g.Go(func() error {
			r, err := NewGameRunner(opts.LogChan, opts.Bot1, opts.Bot2)
			if err != nil {
				return err
			}
			IsPlaying.Add(1)
			defer IsPlaying.Add(-1)
			for idx := range jobs {
				res, err := r.PlayGame(gctx, opts.firstFor(idx))
				if err != nil {
					return err
				}
				results[idx] = res
				CVCCounter.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	summary := Summarize(opts.Bot1, opts.Bot2, results)
	log.Info().Int("bot1Wins", summary.Bot1Wins).Int("bot2Wins", summary.Bot2Wins).
		Int("draws", summary.Draws).Msg("autoplay-done")
	return summary, nil
}
