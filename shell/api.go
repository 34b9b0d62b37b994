package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/connectsquare/automatic"
	"github.com/domino14/connectsquare/board"
	"github.com/domino14/connectsquare/config"
	"github.com/domino14/connectsquare/game"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v := c[key]
	if len(v) == 0 {
		return defaultI, nil
	}
	return strconv.Atoi(v[0])
}

func (c CmdOptions) Bool(key string) bool {
	v := c[key]
	if len(v) == 0 {
		return false
	}
	return strings.ToLower(v[0]) == "true"
}

func msg(message string) *Response {
	return &Response{message: message}
}

var settableKeys = []string{
	config.ConfigDepth,
	config.ConfigStartingPlayer,
	config.ConfigPlayerName,
	config.ConfigBoardColor,
}

func (sc *ShellController) settingsText() string {
	out := strings.Builder{}
	out.WriteString("Settings:\n")
	for _, key := range settableKeys {
		out.WriteString("  " + key + ": ")
		out.WriteString(sc.config.GetString(key) + "\n")
	}
	return out.String()
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(sc.settingsText()), nil
	}
	key := cmd.args[0]
	found := false
	for _, k := range settableKeys {
		if k == key {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New("no such setting: " + key)
	}
	if len(cmd.args) == 1 {
		return msg(sc.config.GetString(key)), nil
	}
	value := strings.Join(cmd.args[1:], " ")
	old := sc.config.Get(key)
	sc.config.Set(key, value)
	if err := sc.config.Validate(); err != nil {
		sc.config.Set(key, old)
		return nil, err
	}
	return msg("set " + key + " to " + value + " (applies to the next new game)"), nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	settings, err := game.SettingsFromConfig(sc.config)
	if err != nil {
		return nil, err
	}
	sc.game = game.NewGame(settings)
	out := strings.Builder{}
	out.WriteString(fmt.Sprintf("New game %s, board color %s (%v)\n",
		sc.game.Uid(), settings.BoardColor.Name, settings.BoardColor.Color))
	if sc.game.PlayerOnTurn() == board.AIPiece {
		col, _, err := sc.game.PlayAiMove()
		if err != nil {
			return nil, err
		}
		out.WriteString(fmt.Sprintf("Computer plays column %d\n", col))
	}
	out.WriteString(sc.game.ToDisplayText())
	return msg(out.String()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <col>")
	}
	col, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a column", game.ErrInvalidMove, cmd.args[0])
	}
	if _, err := sc.game.ApplyHumanMove(col); err != nil {
		return nil, err
	}
	out := strings.Builder{}
	if sc.game.Playing() == game.Playing && sc.game.PlayerOnTurn() == board.AIPiece {
		aicol, _, err := sc.game.PlayAiMove()
		if err != nil {
			return nil, err
		}
		out.WriteString(fmt.Sprintf("Computer plays column %d\n", aicol))
	}
	out.WriteString(sc.game.ToDisplayText())
	return msg(out.String()), nil
}

func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	col, _, err := sc.game.PlayAiMove()
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Computer plays column %d\n%s", col, sc.game.ToDisplayText())), nil
}

func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	col, err := sc.game.ChooseAiMove()
	if err != nil {
		return nil, err
	}
	s := sc.game.LastSearch()
	return msg(fmt.Sprintf("Computer would play column %d (%d nodes)\n%s",
		col, s.TotalNodes(), s.PrincipalVariation())), nil
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	out := strings.Builder{}
	for i, t := range sc.game.History() {
		out.WriteString(fmt.Sprintf("%3d: %v\n", i+1, t))
	}
	return msg(out.String()), nil
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	bot1, bot2 := automatic.MinimaxBotName, automatic.MinimaxBotName
	if len(cmd.args) > 0 {
		bot1 = cmd.args[0]
	}
	if len(cmd.args) > 1 {
		bot2 = cmd.args[1]
	}
	games, err := cmd.options.IntDefault("games", 100)
	if err != nil {
		return nil, err
	}
	threads, err := cmd.options.IntDefault("threads", 1)
	if err != nil {
		return nil, err
	}
	summary, err := automatic.PlayGames(context.Background(), automatic.Options{
		Bot1:           bot1,
		Bot2:           bot2,
		Games:          games,
		Threads:        threads,
		First:          board.PlayerPiece,
		AlternateFirst: cmd.options.Bool("alternate"),
	})
	if err != nil {
		return nil, err
	}
	out, err := summary.YAML()
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(out)
	if err := summary.WriteLengthHistogram(&sb); err != nil {
		return nil, err
	}
	return msg(sb.String()), nil
}
