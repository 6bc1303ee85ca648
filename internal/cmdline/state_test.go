package cmdline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func feed(t *testing.T, g *Grammar, in string) ParseState {
	t.Helper()
	s := NewParseState(g)
	var err error
	for _, c := range in {
		if s, err = s.Step(c); err != nil {
			t.Fatalf("step %q: unexpected error: %v", c, err)
		}
	}
	return s
}

func TestStep_Transitions(t *testing.T) {
	g, _ := testRegistry().Lookup("find")
	cases := []struct {
		in      string
		state   fsmState
		buf     string
		pending string
	}{
		{in: "", state: stateIdle},
		{in: "  \n ", state: stateIdle},
		{in: "-", state: stateSwitch},
		{in: "-ta", state: stateSwitch, buf: "ta"},
		{in: "-tag ", state: stateIdle, pending: "tag"},
		{in: "-tag x", state: stateBare, buf: "x", pending: "tag"},
		{in: `"a b`, state: stateQuoted, buf: "a b"},
		{in: "ab", state: stateBare, buf: "ab"},
		{in: "ab ", state: stateIdle},
		{in: `-tag"x`, state: stateQuoted, buf: "x", pending: "tag"},
	}
	for _, tc := range cases {
		s := feed(t, g, tc.in)
		if s.state != tc.state {
			t.Fatalf("input %q: unexpected state %s (want %s)", tc.in, s.state, tc.state)
		}
		if string(s.buf) != tc.buf {
			t.Fatalf("input %q: unexpected buffer %q (want %q)", tc.in, string(s.buf), tc.buf)
		}
		if s.Pending() != tc.pending {
			t.Fatalf("input %q: unexpected pending %q (want %q)", tc.in, s.Pending(), tc.pending)
		}
	}
}

func TestTokenize_Escapes(t *testing.T) {
	g, _ := testRegistry().Lookup("find")
	cases := []struct {
		in   string
		want string
	}{
		{in: `a\ b`, want: "a b"},
		{in: `a\\b`, want: `a\b`},
		{in: "a\\\nb", want: "a\nb"},
		{in: `a\"b`, want: `a"b`},
		{in: `\-x`, want: "-x"},
		{in: `"a\"b"`, want: `a"b`},
		{in: `"a\"b\""`, want: `a"b"`},
		{in: `"a\\"`, want: `a\`},
		{in: `"two  spaces"`, want: "two  spaces"},
		{in: "\"line\nbreak\"", want: "line\nbreak"},
		{in: `"a-b -c"`, want: "a-b -c"},
		{in: `""`, want: ""},
		{in: `"unterminated`, want: "unterminated"},
		{in: `trailing\`, want: `trailing\`},
	}
	for _, tc := range cases {
		arg, _, err := Tokenize(tc.in, g)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tc.in, err)
		}
		if arg == nil || *arg != tc.want {
			t.Fatalf("input %q: unexpected argument %v (want %q)", tc.in, arg, tc.want)
		}
	}
}

func TestTokenize_EscapeIsSingleShot(t *testing.T) {
	g, _ := testRegistry().Lookup("find")
	// The escaped backslash does not escape the space that follows it.
	_, _, err := Tokenize(`a\\ b`, g)
	if KindOf(err) != MultipleArguments {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokenize_SwitchNamesDoNotEscape(t *testing.T) {
	g, _ := testRegistry().Lookup("find")
	_, _, err := Tokenize(`-ta\g x`, g)
	if KindOf(err) != UnknownSwitch {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokenize_DashEndsSwitchAndStartsNext(t *testing.T) {
	g, _ := testRegistry().Lookup("edit")
	_, sw, err := Tokenize("-quiet-name Ann", g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]*string{"quiet": nil, "name": strp("Ann")}
	if diff := cmp.Diff(want, sw); diff != "" {
		t.Fatalf("unexpected switches (-want +got):\n%s", diff)
	}

	s := feed(t, g, "-q-")
	if s.state != stateSwitch || len(s.buf) != 0 {
		t.Fatalf("expected to be collecting a new switch name, got %s %q", s.state, string(s.buf))
	}
	if _, ok := s.switches["quiet"]; !ok {
		t.Fatalf("expected quiet to be recorded")
	}
}

func TestTokenize_QuoteEndsSwitchName(t *testing.T) {
	g, _ := testRegistry().Lookup("find")
	arg, sw, err := Tokenize(`-tag"two words" x`, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := sw["tag"]; v == nil || *v != "two words" {
		t.Fatalf("unexpected tag: %v", v)
	}
	if arg == nil || *arg != "x" {
		t.Fatalf("unexpected argument: %v", arg)
	}
}

func TestTokenize_NewSwitchClosesPending(t *testing.T) {
	g, _ := testRegistry().Lookup("open")
	arg, sw, err := Tokenize("-name -v ward", g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]*string{"name": nil, "verbose": nil}
	if diff := cmp.Diff(want, sw); diff != "" {
		t.Fatalf("unexpected switches (-want +got):\n%s", diff)
	}
	if arg == nil || *arg != "ward" {
		t.Fatalf("unexpected argument: %v", arg)
	}
}

func TestTokenize_ArgumentCheckSkippedForPendingSwitch(t *testing.T) {
	g, _ := testRegistry().Lookup("back")
	g2 := *g
	g2.Switches = []SwitchDefinition{{Name: "to", Level: Required}}
	r := MustRegistry(g2)
	inv, err := r.Parse(`back -to "home screen"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := inv.Value("to"); !ok || v != "home screen" {
		t.Fatalf("unexpected value: %q", v)
	}
}
