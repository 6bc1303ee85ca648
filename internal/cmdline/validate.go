package cmdline

// validate checks a tokenized result against the grammar: a required
// argument must be present, and every required switch must carry a value.
func validate(g *Grammar, arg *string, switches map[string]*string) error {
	if g.Arg == Required && arg == nil {
		return newGrammarError(g, MissingArgument, "")
	}
	for _, sw := range g.Switches {
		if sw.Level != Required {
			continue
		}
		if v, ok := switches[sw.Name]; !ok || v == nil {
			return newGrammarError(g, MissingSwitch, sw.Name)
		}
	}
	return nil
}
