package root

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

var wardGrammar = filepath.Join("..", "..", "..", "internal", "grammarfile", "testdata", "tree", "ward.grammar.cue")

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ec, ok := err.(interface{ ExitCode() int }); ok {
		return ec.ExitCode()
	}
	return 1
}

func TestParse_BuiltinCommand(t *testing.T) {
	out, err := execute(t, "", "parse", "open", `"Bed 12"`, "-p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"command":"open","arg":"Bed 12","switches":{"patient":null}}` + "\n"
	if out != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, out)
	}
}

func TestParse_GrammarFileOnly(t *testing.T) {
	out, err := execute(t, "", "--no-builtin", "--grammar", wardGrammar, "parse", "admit", "Jane", "-b", "4", "-u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"command":"admit","arg":"Jane","switches":{"bed":"4","urgent":null}}` + "\n"
	if out != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, out)
	}
}

func TestParse_StdinWithFailure(t *testing.T) {
	out, err := execute(t, "back\nteleport home\n", "parse")
	if exitCode(err) != 1 || err.Error() != "1 of 2 lines failed to parse" {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[1], `"kind":"unknown-command"`) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	_, err := execute(t, "", "parse", "--format", "xml", "back")
	if exitCode(err) != 2 {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGrammar_OneCommand(t *testing.T) {
	out, err := execute(t, "", "grammar", "back")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "back\n  Go back to the previous context\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRepl_ScriptFromGrammarFile(t *testing.T) {
	out, err := execute(t, "admit Jane -bed 4\nbye\n", "--grammar", wardGrammar, "repl", "--prompt", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "admitted Jane to bed 4\nGoodbye!\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestConfigErrorStopsCommand(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.cue"), "grammar")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestVersionDoesNotLoadGrammars(t *testing.T) {
	out, err := execute(t, "", "--grammar", "does-not-exist.grammar.yaml", "version", "--short")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "switchline ") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGrammar_ExportThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exported.grammar.yaml")
	if _, err := execute(t, "", "grammar", "--export", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := execute(t, "", "--no-builtin", "--grammar", path, "parse", "status", "Paracetamol", "-s", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"command":"status","arg":"Paracetamol","switches":{"set":"2"}}` + "\n"
	if out != want {
		t.Fatalf("unexpected output\nwant: %s\n got: %s", want, out)
	}
}
