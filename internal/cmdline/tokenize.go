package cmdline

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// normalize expands tabs to four spaces and folds every line separator
// variant to '\n'.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\t", "    ")
	return lineBreaks.Replace(s)
}

// Tokenize runs the switch/argument state machine over text, the part of
// a line after the command keyword. It returns the positional argument (nil
// if none) and the switches seen (nil value if given without one).
func Tokenize(text string, g *Grammar) (*string, map[string]*string, error) {
	s := NewParseState(g)
	var err error
	for _, c := range normalize(text) {
		if s, err = s.Step(c); err != nil {
			return nil, nil, err
		}
	}
	if s, err = s.Finish(); err != nil {
		return nil, nil, err
	}
	arg, switches := s.Result()
	return arg, switches, nil
}
