package cmdline

type fsmState int

const (
	stateIdle fsmState = iota
	stateBare
	stateQuoted
	stateSwitch
)

var stateNames = [...]string{"idle", "bare", "quoted", "switch"}

func (s fsmState) String() string { return stateNames[s] }

// ParseState is the tokenizer state for a single parse. Step consumes the
// receiver and returns its successor; callers must keep only the returned
// value.
type ParseState struct {
	grammar  *Grammar
	state    fsmState
	buf      []rune
	pending  string
	escaped  bool
	arg      *string
	switches map[string]*string
}

// NewParseState returns an idle state for tokenizing against g.
func NewParseState(g *Grammar) ParseState {
	return ParseState{grammar: g, switches: map[string]*string{}}
}

// Step feeds one character to the machine.
func (s ParseState) Step(c rune) (ParseState, error) {
	switch s.state {
	case stateBare:
		return s.bare(c)
	case stateQuoted:
		return s.quoted(c)
	case stateSwitch:
		return s.switchName(c)
	default:
		return s.idle(c)
	}
}

// Finish flushes whatever token is in progress at end of input.
func (s ParseState) Finish() (ParseState, error) {
	switch s.state {
	case stateBare, stateQuoted:
		if s.escaped {
			s.buf = append(s.buf, '\\')
			s.escaped = false
		}
		s = s.commit()
	case stateSwitch:
		name := string(s.buf)
		s.buf = s.buf[:0]
		s.state = stateIdle
		var err error
		if s, err = s.resolve(name); err != nil {
			return s, err
		}
	}
	s.pending = ""
	return s, nil
}

// Result returns the committed positional argument and switch values.
func (s ParseState) Result() (*string, map[string]*string) {
	return s.arg, s.switches
}

// Pending returns the switch waiting for a value, if any.
func (s ParseState) Pending() string { return s.pending }

func (s ParseState) idle(c rune) (ParseState, error) {
	switch c {
	case ' ', '\n':
		return s, nil
	case '-':
		s.state = stateSwitch
		s.buf = s.buf[:0]
		return s, nil
	case '"':
		if err := s.checkArgAllowed(); err != nil {
			return s, err
		}
		s.state = stateQuoted
		s.buf = s.buf[:0]
		return s, nil
	default:
		if err := s.checkArgAllowed(); err != nil {
			return s, err
		}
		s.state = stateBare
		s.buf = s.buf[:0]
		return s.bare(c)
	}
}

func (s ParseState) bare(c rune) (ParseState, error) {
	if s.escaped {
		s.escaped = false
		s.buf = append(s.buf, c)
		return s, nil
	}
	switch c {
	case '\\':
		s.escaped = true
	case ' ', '\n':
		s = s.commit()
	default:
		s.buf = append(s.buf, c)
	}
	return s, nil
}

func (s ParseState) quoted(c rune) (ParseState, error) {
	if s.escaped {
		s.escaped = false
		s.buf = append(s.buf, c)
		return s, nil
	}
	switch c {
	case '\\':
		s.escaped = true
	case '"':
		s = s.commit()
	default:
		s.buf = append(s.buf, c)
	}
	return s, nil
}

// switchName collects a switch name. Names do not support escaping. The
// delimiter is not part of the name: '-' starts the next name at once, any
// other delimiter is handed back to idle.
func (s ParseState) switchName(c rune) (ParseState, error) {
	switch c {
	case '-', '"', ' ', '\n':
	default:
		s.buf = append(s.buf, c)
		return s, nil
	}
	name := string(s.buf)
	s.buf = s.buf[:0]
	if name == "" && c == '-' {
		return s, nil
	}
	var err error
	if s, err = s.resolve(name); err != nil {
		return s, err
	}
	if c == '-' {
		return s, nil
	}
	s.state = stateIdle
	return s.idle(c)
}

// resolve records a switch. A switch still waiting for a value is left
// present without one.
func (s ParseState) resolve(name string) (ParseState, error) {
	sw, ok := s.grammar.Switch(name)
	if !ok {
		return s, newGrammarError(s.grammar, UnknownSwitch, name)
	}
	s.pending = ""
	if _, dup := s.switches[sw.Name]; dup {
		return s, newGrammarError(s.grammar, DuplicateSwitch, sw.Name)
	}
	s.switches[sw.Name] = nil
	if sw.Level != None {
		s.pending = sw.Name
	}
	return s, nil
}

func (s ParseState) commit() ParseState {
	v := string(s.buf)
	s.buf = s.buf[:0]
	if s.pending != "" {
		s.switches[s.pending] = &v
		s.pending = ""
	} else {
		s.arg = &v
	}
	s.state = stateIdle
	return s
}

func (s ParseState) checkArgAllowed() error {
	if s.pending != "" {
		return nil
	}
	if s.grammar.Arg == None {
		return newGrammarError(s.grammar, ArgumentNotAllowed, "")
	}
	if s.arg != nil {
		return newGrammarError(s.grammar, MultipleArguments, "")
	}
	return nil
}
