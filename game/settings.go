package game

import (
	"strings"

	"github.com/domino14/connectsquare/board"
	"github.com/domino14/connectsquare/config"
)

// Settings are fixed for the lifetime of a game. They are chosen before
// play starts and passed to NewGame.
type Settings struct {
	Depth          int
	StartingPlayer board.Piece
	PlayerName     string
	BoardColor     config.BoardColor
}

// DefaultSettings are depth 1, human to move first.
func DefaultSettings() Settings {
	return Settings{
		Depth:          config.MinDepth,
		StartingPlayer: board.PlayerPiece,
		PlayerName:     "Seth",
	}
}

// SettingsFromConfig validates cfg and turns it into game settings. A
// "random" board color is resolved here, once per call.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	color, err := config.ResolveColor(cfg.GetString(config.ConfigBoardColor))
	if err != nil {
		return Settings{}, err
	}
	s := Settings{
		Depth:          cfg.GetInt(config.ConfigDepth),
		StartingPlayer: board.PlayerPiece,
		PlayerName:     cfg.GetString(config.ConfigPlayerName),
		BoardColor:     color,
	}
	if strings.ToLower(cfg.GetString(config.ConfigStartingPlayer)) == config.StartingPlayerAI {
		s.StartingPlayer = board.AIPiece
	}
	return s, nil
}
