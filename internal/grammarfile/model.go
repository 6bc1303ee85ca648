package grammarfile

import (
	"fmt"

	"github.com/flarebyte/switchline/internal/cmdline"
)

// fileSet is the shared shape of CUE and YAML grammar files.
type fileSet struct {
	Commands []fileCommand `json:"commands" yaml:"commands"`
}

type fileCommand struct {
	Keyword         string       `json:"keyword" yaml:"keyword"`
	Summary         string       `json:"summary,omitempty" yaml:"summary"`
	Argument        string       `json:"argument,omitempty" yaml:"argument"`
	ArgName         string       `json:"argName,omitempty" yaml:"argName"`
	EmptyArgMessage string       `json:"emptyArgMessage,omitempty" yaml:"emptyArgMessage"`
	Run             string       `json:"run,omitempty" yaml:"run"`
	Switches        []fileSwitch `json:"switches,omitempty" yaml:"switches"`
}

type fileSwitch struct {
	Name    string `json:"name" yaml:"name"`
	Level   string `json:"level,omitempty" yaml:"level"`
	Alias   string `json:"alias,omitempty" yaml:"alias"`
	Summary string `json:"summary,omitempty" yaml:"summary"`
}

func (c fileCommand) grammar() (cmdline.Grammar, error) {
	arg, err := cmdline.ParseArgLevel(c.Argument)
	if err != nil {
		return cmdline.Grammar{}, fmt.Errorf("command '%s': %w", c.Keyword, err)
	}
	g := cmdline.Grammar{
		Keyword:         c.Keyword,
		Summary:         c.Summary,
		Arg:             arg,
		ArgName:         c.ArgName,
		EmptyArgMessage: c.EmptyArgMessage,
		Script:          c.Run,
	}
	for _, s := range c.Switches {
		lvl, err := cmdline.ParseArgLevel(s.Level)
		if err != nil {
			return cmdline.Grammar{}, fmt.Errorf("command '%s', switch '%s': %w", c.Keyword, s.Name, err)
		}
		g.Switches = append(g.Switches, cmdline.SwitchDefinition{
			Name:    s.Name,
			Level:   lvl,
			Alias:   s.Alias,
			Summary: s.Summary,
		})
	}
	return g, nil
}

func toGrammars(cmds []fileCommand) ([]cmdline.Grammar, error) {
	out := make([]cmdline.Grammar, 0, len(cmds))
	for _, c := range cmds {
		g, err := c.grammar()
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}
