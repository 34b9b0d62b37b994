package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDepth          = "depth"
	ConfigStartingPlayer = "starting-player"
	ConfigPlayerName     = "player-name"
	ConfigBoardColor     = "board-color"
	ConfigDebug          = "debug"
	ConfigCPUProfile     = "cpu-profile"

	MinDepth = 1
	MaxDepth = 5

	StartingPlayerHuman = "human"
	StartingPlayerAI    = "ai"
)

var (
	ErrDepthOutOfRange       = errors.New("search depth out of range")
	ErrUnknownStartingPlayer = errors.New("starting player must be human or ai")
	ErrUnknownColor          = errors.New("unknown board color")
	errConfigFileNotReadable = errors.New("config file could not be read")
)

// Config wraps a viper instance. Values come from (lowest to highest
// priority) defaults, an optional connectsquare.yaml file, CONNECTSQUARE_*
// environment variables and command-line flags.
type Config struct {
	*viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDepth, 1)
	v.SetDefault(ConfigStartingPlayer, StartingPlayerHuman)
	v.SetDefault(ConfigPlayerName, "Seth")
	v.SetDefault(ConfigBoardColor, RandomColor)
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig returns a config holding only the defaults. Useful for
// tests.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

// Load reads the config file, environment and the given command-line
// arguments. Arguments that are not flags are left for the caller in
// Args().
func (c *Config) Load(args []string) error {
	v := viper.New()
	setDefaults(v)

	fs := pflag.NewFlagSet("connectsquare", pflag.ContinueOnError)
	fs.Int(ConfigDepth, 1, "search depth of the computer player (1-5)")
	fs.String(ConfigStartingPlayer, StartingPlayerHuman, "who moves first: human or ai")
	fs.String(ConfigPlayerName, "Seth", "the human player's name")
	fs.String(ConfigBoardColor, RandomColor, "board color name, or random")
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	v.SetEnvPrefix("connectsquare")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("connectsquare")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.connectsquare")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("%w: %w", errConfigFileNotReadable, err)
		}
	}
	c.Viper = v
	c.args = fs.Args()
	return nil
}

// Args returns the positional arguments left over after Load.
func (c *Config) Args() []string {
	return c.args
}

// Validate range-checks the settings the game consumes.
func (c *Config) Validate() error {
	depth := c.GetInt(ConfigDepth)
	if depth < MinDepth || depth > MaxDepth {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrDepthOutOfRange, depth, MinDepth, MaxDepth)
	}
	switch strings.ToLower(c.GetString(ConfigStartingPlayer)) {
	case StartingPlayerHuman, StartingPlayerAI:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStartingPlayer, c.GetString(ConfigStartingPlayer))
	}
	if _, err := LookupColor(c.GetString(ConfigBoardColor)); err != nil {
		return err
	}
	return nil
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
