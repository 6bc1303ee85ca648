package cmdline

import "strings"

// Parse turns one line of input into a validated Invocation. The first
// whitespace-delimited token selects the grammar; the rest of the line is
// tokenized and checked against it.
func (r *Registry) Parse(line string) (Invocation, error) {
	line = strings.TrimLeft(normalize(line), " \n")
	keyword, rest := splitKeyword(line)
	g, ok := r.Lookup(keyword)
	if !ok {
		return Invocation{}, &UnknownCommandError{Keyword: keyword}
	}
	if strings.Trim(rest, " \n") == "" && g.Arg == Required {
		return Invocation{}, newGrammarError(g, MissingArgument, "")
	}
	arg, switches, err := Tokenize(rest, g)
	if err != nil {
		return Invocation{}, err
	}
	if err := validate(g, arg, switches); err != nil {
		return Invocation{}, err
	}
	return Invocation{Command: g.Keyword, Arg: arg, Switches: switches}, nil
}

func splitKeyword(line string) (keyword, rest string) {
	i := strings.IndexAny(line, " \n")
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i:]
}
