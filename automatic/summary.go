package automatic

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"

	"github.com/domino14/connectsquare/board"
)

// Summary aggregates a batch of automatic games. Bot1 plays X, Bot2
// plays O.
type Summary struct {
	Bot1              string  `yaml:"bot1"`
	Bot2              string  `yaml:"bot2"`
	Games             int     `yaml:"games"`
	Bot1Wins          int     `yaml:"bot1_wins"`
	Bot2Wins          int     `yaml:"bot2_wins"`
	Draws             int     `yaml:"draws"`
	MeanTurns         float64 `yaml:"mean_turns"`
	StdDevTurns       float64 `yaml:"stddev_turns"`
	DistinctPositions int     `yaml:"distinct_final_positions"`

	turns []float64
}

// Summarize counts wins and draws and computes game length statistics.
// nil results are skipped.
func Summarize(bot1, bot2 string, results []*GameResult) *Summary {
	results = lo.Compact(results)
	s := &Summary{Bot1: bot1, Bot2: bot2, Games: len(results)}
	s.Bot1Wins = lo.CountBy(results, func(r *GameResult) bool {
		return r.Winner == board.PlayerPiece
	})
	s.Bot2Wins = lo.CountBy(results, func(r *GameResult) bool {
		return r.Winner == board.AIPiece
	})
	s.Draws = s.Games - s.Bot1Wins - s.Bot2Wins
	if len(results) > 0 {
		s.turns = lo.Map(results, func(r *GameResult, _ int) float64 {
			return float64(r.Turns())
		})
		s.MeanTurns, s.StdDevTurns = stat.MeanStdDev(s.turns, nil)
		if len(results) == 1 {
			s.StdDevTurns = 0
		}
	}
	s.DistinctPositions = len(lo.UniqBy(results, func(r *GameResult) uint64 {
		return r.FinalHash
	}))
	return s
}

// YAML renders the summary for display.
func (s *Summary) YAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// WriteLengthHistogram draws the distribution of game lengths to w.
func (s *Summary) WriteLengthHistogram(w io.Writer) error {
	if len(s.turns) == 0 {
		return nil
	}
	io.WriteString(w, "game length (turns):\n")
	shortest, longest := lo.Min(s.turns), lo.Max(s.turns)
	if shortest == longest {
		// Hist needs a non-empty range.
		_, err := fmt.Fprintf(w, "all %d games took %v turns\n", len(s.turns), shortest)
		return err
	}
	return histogram.Fprint(w, histogram.Hist(10, s.turns), histogram.Linear(40))
}
