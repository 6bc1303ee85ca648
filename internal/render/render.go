package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flarebyte/switchline/internal/cmdline"
)

// Options selects the output encoding.
type Options struct {
	Format string // json or yaml
	Pretty bool
}

// Invocation writes a parsed invocation.
func Invocation(w io.Writer, inv cmdline.Invocation, opts Options) error {
	switches := inv.Switches
	if switches == nil {
		switches = map[string]*string{}
	}
	return write(w, opts, []kv{
		{"command", inv.Command},
		{"arg", inv.Arg},
		{"switches", switches},
	})
}

// Failure is the machine-readable form of a parse error.
type Failure struct {
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Command string `json:"command,omitempty"`
	Switch  string `json:"switch,omitempty"`
	Usage   string `json:"usage,omitempty"`
}

// FailureOf classifies err. Errors that are not parse errors get the kind
// "error".
func FailureOf(err error) Failure {
	f := Failure{Error: SanitizeMessage(err.Error()), Kind: "error"}
	var uc *cmdline.UnknownCommandError
	var ge *cmdline.GrammarError
	switch {
	case errors.As(err, &uc):
		f.Kind = "unknown-command"
		f.Command = uc.Keyword
	case errors.As(err, &ge):
		f.Kind = ge.Kind.String()
		f.Switch = ge.Switch
		if ge.Grammar != nil {
			f.Command = ge.Grammar.Keyword
			f.Usage = ge.Grammar.Usage()
		}
	}
	return f
}

// Error writes a parse error in the selected encoding.
func Error(w io.Writer, err error, opts Options) error {
	f := FailureOf(err)
	pairs := []kv{{"error", f.Error}, {"kind", f.Kind}}
	if f.Command != "" {
		pairs = append(pairs, kv{"command", f.Command})
	}
	if f.Switch != "" {
		pairs = append(pairs, kv{"switch", f.Switch})
	}
	if f.Usage != "" {
		pairs = append(pairs, kv{"usage", f.Usage})
	}
	return write(w, opts, pairs)
}

// Help writes a human-readable error: the message and, for grammar
// violations, the usage of the command.
func Help(w io.Writer, err error) error {
	if _, e := fmt.Fprintln(w, SanitizeMessage(err.Error())); e != nil {
		return e
	}
	if g, ok := cmdline.IsHelp(err); ok {
		if _, e := fmt.Fprintf(w, "Usage: %s\n", g.Usage()); e != nil {
			return e
		}
	}
	return nil
}

func write(w io.Writer, opts Options, pairs []kv) error {
	if opts.Format == "yaml" {
		b, err := marshalYAML(pairs)
		if err != nil {
			return err
		}
		if _, err := w.Write(append([]byte("---\n"), b...)); err != nil {
			return err
		}
		return nil
	}
	b, err := marshalJSON(pairs, opts.Pretty)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// marshalJSON keeps the key order of pairs.
func marshalJSON(pairs []kv, pretty bool) ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte(',')
		}
		k, _ := json.Marshal(p.key)
		v, err := json.Marshal(p.value)
		if err != nil {
			return nil, err
		}
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
	if !pretty {
		return []byte(b.String()), nil
	}
	var out strings.Builder
	if err := indentJSON(&out, b.String()); err != nil {
		return nil, err
	}
	return []byte(out.String()), nil
}
