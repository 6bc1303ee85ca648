package cmdline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_EndToEnd(t *testing.T) {
	r := testRegistry()
	cases := []struct {
		name string
		line string
		want Invocation
	}{
		{
			name: "switch before argument",
			line: "find -tag urgent report",
			want: Invocation{Command: "find", Arg: strp("report"), Switches: map[string]*string{"tag": strp("urgent")}},
		},
		{
			name: "quoted argument before switch",
			line: `find "open case" -tag urgent`,
			want: Invocation{Command: "find", Arg: strp("open case"), Switches: map[string]*string{"tag": strp("urgent")}},
		},
		{
			name: "no argument at all",
			line: "find",
			want: Invocation{Command: "find", Switches: map[string]*string{}},
		},
		{
			name: "alias resolves to canonical name",
			line: "find -t urgent",
			want: Invocation{Command: "find", Switches: map[string]*string{"tag": strp("urgent")}},
		},
		{
			name: "optional switch without value at end",
			line: "find report -tag",
			want: Invocation{Command: "find", Arg: strp("report"), Switches: map[string]*string{"tag": nil}},
		},
		{
			name: "none level switch does not take next token",
			line: "open -verbose ward",
			want: Invocation{Command: "open", Arg: strp("ward"), Switches: map[string]*string{"verbose": nil}},
		},
		{
			name: "required switch with value",
			line: "edit -name John",
			want: Invocation{Command: "edit", Switches: map[string]*string{"name": strp("John")}},
		},
		{
			name: "required switch supplied later",
			line: "edit -age -name John",
			want: Invocation{Command: "edit", Switches: map[string]*string{"age": nil, "name": strp("John")}},
		},
		{
			name: "tabs and line breaks",
			line: "find\t-tag\r\nurgent\rreport",
			want: Invocation{Command: "find", Arg: strp("report"), Switches: map[string]*string{"tag": strp("urgent")}},
		},
		{
			name: "leading whitespace",
			line: "   back  ",
			want: Invocation{Command: "back", Switches: map[string]*string{}},
		},
		{
			name: "double dash accepted",
			line: "find --tag x",
			want: Invocation{Command: "find", Switches: map[string]*string{"tag": strp("x")}},
		},
		{
			name: "dash inside bare token is literal",
			line: "find report-2020",
			want: Invocation{Command: "find", Arg: strp("report-2020"), Switches: map[string]*string{}},
		},
		{
			name: "quoted switch value",
			line: `find -tag "very urgent"`,
			want: Invocation{Command: "find", Switches: map[string]*string{"tag": strp("very urgent")}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.Parse(tc.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("unexpected invocation (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_UnknownCommand(t *testing.T) {
	r := testRegistry()
	for _, line := range []string{"", "   ", "frobnicate", "Find report", "findx -tag a", "-tag find"} {
		_, err := r.Parse(line)
		var uc *UnknownCommandError
		if !errors.As(err, &uc) {
			t.Fatalf("line %q: expected UnknownCommandError, got %v", line, err)
		}
		if _, ok := IsHelp(err); ok {
			t.Fatalf("line %q: unknown command must not carry a grammar", line)
		}
	}
}

func TestParse_GrammarViolations(t *testing.T) {
	r := testRegistry()
	cases := []struct {
		line string
		kind ErrorKind
		sw   string
		msg  string
	}{
		{line: "back ward", kind: ArgumentNotAllowed, msg: "This command should not have an argument!"},
		{line: `back "ward"`, kind: ArgumentNotAllowed},
		{line: "edit -name John extra", kind: ArgumentNotAllowed},
		{line: "find a b", kind: MultipleArguments, msg: "Multiple arguments supplied!"},
		{line: `find a "b"`, kind: MultipleArguments},
		{line: "find -colour red", kind: UnknownSwitch, sw: "colour", msg: "I don't know what this switch is: colour"},
		{line: "find -", kind: UnknownSwitch, sw: "", msg: "I don't know what this switch is: -"},
		{line: "find - x", kind: UnknownSwitch, sw: ""},
		{line: "find -tag a -tag b", kind: DuplicateSwitch, sw: "tag"},
		{line: "find -tag -t", kind: DuplicateSwitch, sw: "tag"},
		{line: "edit -name -name", kind: DuplicateSwitch, sw: "name"},
		{line: "open", kind: MissingArgument, msg: "Which record should I open?"},
		{line: "open   \n  ", kind: MissingArgument, msg: "Which record should I open?"},
		{line: "open -verbose", kind: MissingArgument, msg: "Which record should I open?"},
		{line: "edit", kind: MissingSwitch, sw: "name", msg: "You need to give me this switch: name"},
		{line: "edit -name", kind: MissingSwitch, sw: "name"},
		{line: "edit -name -age 3", kind: MissingSwitch, sw: "name"},
	}
	for _, tc := range cases {
		_, err := r.Parse(tc.line)
		var ge *GrammarError
		if !errors.As(err, &ge) {
			t.Fatalf("line %q: expected GrammarError, got %v", tc.line, err)
		}
		if ge.Kind != tc.kind {
			t.Fatalf("line %q: unexpected kind %s (want %s)", tc.line, ge.Kind, tc.kind)
		}
		if ge.Switch != tc.sw {
			t.Fatalf("line %q: unexpected switch %q (want %q)", tc.line, ge.Switch, tc.sw)
		}
		if tc.msg != "" && ge.Error() != tc.msg {
			t.Fatalf("line %q: unexpected message\nwant: %s\n got: %s", tc.line, tc.msg, ge.Error())
		}
		g, ok := IsHelp(err)
		if !ok || g.Keyword != ge.Grammar.Keyword {
			t.Fatalf("line %q: expected grammar on error", tc.line)
		}
	}
}

func TestParse_DefaultEmptyArgMessage(t *testing.T) {
	r := MustRegistry(Grammar{Keyword: "primary", Arg: Required})
	_, err := r.Parse("primary")
	if err == nil || err.Error() != defaultEmptyArgMessage {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParse_Idempotent(t *testing.T) {
	r := testRegistry()
	lines := []string{
		`find "open case" -tag urgent`,
		`open -v -name "a\"b" ward\ 7`,
		"edit -name John -q -age 40",
	}
	for _, line := range lines {
		a, err := r.Parse(line)
		if err != nil {
			t.Fatalf("line %q: unexpected error: %v", line, err)
		}
		b, err := r.Parse(line)
		if err != nil {
			t.Fatalf("line %q: unexpected error: %v", line, err)
		}
		if diff := cmp.Diff(a, b); diff != "" {
			t.Fatalf("line %q: parses differ:\n%s", line, diff)
		}
	}
}

func TestParse_RecoversAfterFailure(t *testing.T) {
	r := testRegistry()
	if _, err := r.Parse("find a b"); err == nil {
		t.Fatalf("expected error")
	}
	got, err := r.Parse("find a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := got.Argument(); !ok || v != "a" {
		t.Fatalf("unexpected argument: %q", v)
	}
}
