package grammar

import (
	"bytes"
	"errors"
	"testing"

	"github.com/flarebyte/switchline/internal/cmdline"
)

func testRegistry() *cmdline.Registry {
	return cmdline.MustRegistry(
		cmdline.Grammar{
			Keyword:  "open",
			Summary:  "Open a record",
			Arg:      cmdline.Required,
			ArgName:  "NAME",
			Switches: []cmdline.SwitchDefinition{{Name: "patient", Alias: "p"}},
			Script:   `"opened"`,
		},
		cmdline.Grammar{Keyword: "back"},
	)
}

func TestSelectGrammars_AllSorted(t *testing.T) {
	gs, err := selectGrammars(testRegistry(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gs) != 2 || gs[0].Keyword != "back" || gs[1].Keyword != "open" {
		t.Fatalf("unexpected grammars: %+v", gs)
	}
}

func TestSelectGrammars_Unknown(t *testing.T) {
	_, err := selectGrammars(testRegistry(), []string{"teleport"})
	var uc *cmdline.UnknownCommandError
	if !errors.As(err, &uc) || uc.Keyword != "teleport" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWriteUsage(t *testing.T) {
	gs, _ := selectGrammars(testRegistry(), nil)
	var buf bytes.Buffer
	if err := writeUsage(&buf, gs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "back\n\nopen NAME [-patient]\n  Open a record\n  -patient, -p\n"
	if buf.String() != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, buf.String())
	}
}

func TestWriteJSONLines(t *testing.T) {
	gs, _ := selectGrammars(testRegistry(), []string{"open"})
	var buf bytes.Buffer
	if err := writeJSONLines(&buf, gs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"keyword":"open","summary":"Open a record","argument":"required","argName":"NAME",` +
		`"switches":[{"name":"patient","level":"none","alias":"p"}],"hasScript":true,` +
		`"usage":"open NAME [-patient]\n  Open a record\n  -patient, -p"}` + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, buf.String())
	}
}
