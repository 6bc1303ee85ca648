package cmdline

import (
	"sort"
	"strings"
)

// SwitchDefinition declares one named option of a command.
type SwitchDefinition struct {
	Name    string
	Level   ArgLevel
	Alias   string
	Summary string
}

// Grammar is the static description of one command keyword: whether it
// takes a positional argument and which switches it accepts.
type Grammar struct {
	Keyword  string
	Summary  string
	Arg      ArgLevel
	ArgName  string
	Switches []SwitchDefinition
	// EmptyArgMessage is reported when a required argument is missing.
	EmptyArgMessage string
	// Script is an optional Lua snippet run by the script executor.
	Script string

	byName map[string]int
}

const defaultEmptyArgMessage = "You need to give an argument to the command!"

// index builds the name and alias lookup used during parsing.
func (g *Grammar) index() {
	g.byName = make(map[string]int, len(g.Switches)*2)
	for i, sw := range g.Switches {
		g.byName[sw.Name] = i
	}
	for i, sw := range g.Switches {
		if sw.Alias == "" {
			continue
		}
		if _, taken := g.byName[sw.Alias]; !taken {
			g.byName[sw.Alias] = i
		}
	}
}

// Switch resolves a switch name or alias to its definition.
func (g *Grammar) Switch(name string) (SwitchDefinition, bool) {
	if g.byName == nil {
		for _, sw := range g.Switches {
			if sw.Name == name {
				return sw, true
			}
		}
		for _, sw := range g.Switches {
			if sw.Alias != "" && sw.Alias == name {
				return sw, true
			}
		}
		return SwitchDefinition{}, false
	}
	i, ok := g.byName[name]
	if !ok {
		return SwitchDefinition{}, false
	}
	return g.Switches[i], true
}

func (g *Grammar) emptyArgMessage() string {
	if g.EmptyArgMessage != "" {
		return g.EmptyArgMessage
	}
	return defaultEmptyArgMessage
}

func (g *Grammar) argName() string {
	if g.ArgName != "" {
		return g.ArgName
	}
	return "ARG"
}

// Usage renders a one-line synopsis followed by the summary and one line
// per switch that has an alias or a summary.
func (g *Grammar) Usage() string {
	var b strings.Builder
	b.WriteString(g.Keyword)
	switch g.Arg {
	case Optional:
		b.WriteString(" [" + g.argName() + "]")
	case Required:
		b.WriteString(" " + g.argName())
	}
	for _, sw := range g.sortedSwitches() {
		b.WriteString(" ")
		b.WriteString(switchSynopsis(sw))
	}
	if g.Summary != "" {
		b.WriteString("\n  " + g.Summary)
	}
	for _, sw := range g.sortedSwitches() {
		if sw.Alias == "" && sw.Summary == "" {
			continue
		}
		b.WriteString("\n  -" + sw.Name)
		if sw.Alias != "" {
			b.WriteString(", -" + sw.Alias)
		}
		if sw.Summary != "" {
			b.WriteString("\t" + sw.Summary)
		}
	}
	return b.String()
}

func switchSynopsis(sw SwitchDefinition) string {
	s := "-" + sw.Name
	switch sw.Level {
	case Optional:
		s += " [VALUE]"
	case Required:
		return s + " VALUE"
	}
	return "[" + s + "]"
}

func (g *Grammar) sortedSwitches() []SwitchDefinition {
	out := append([]SwitchDefinition(nil), g.Switches...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
