package grammar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/flarebyte/switchline/cmd/switchline/env"
	"github.com/flarebyte/switchline/internal/cmdline"
	"github.com/flarebyte/switchline/internal/ctxlog"
	"github.com/flarebyte/switchline/internal/grammarfile"
)

// NewCmd creates the `switchline grammar` command.
func NewCmd() *cobra.Command {
	var (
		asJSON bool
		export string
	)
	cmd := &cobra.Command{
		Use:           "grammar [KEYWORD]",
		Short:         "Show the registered commands and their usage",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			grammars, err := selectGrammars(e.Registry, args)
			if err != nil {
				return err
			}
			if export != "" {
				return exportGrammars(cmd.Context(), export, grammars)
			}
			if asJSON {
				return writeJSONLines(cmd.OutOrStdout(), grammars)
			}
			return writeUsage(cmd.OutOrStdout(), grammars)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per command")
	cmd.Flags().StringVar(&export, "export", "", "Write the selected commands to a YAML grammar file")
	return cmd
}

func selectGrammars(reg *cmdline.Registry, args []string) ([]*cmdline.Grammar, error) {
	if len(args) == 1 {
		g, ok := reg.Lookup(args[0])
		if !ok {
			return nil, &cmdline.UnknownCommandError{Keyword: args[0]}
		}
		return []*cmdline.Grammar{g}, nil
	}
	keywords := reg.Keywords()
	out := make([]*cmdline.Grammar, 0, len(keywords))
	for _, kw := range keywords {
		g, _ := reg.Lookup(kw)
		out = append(out, g)
	}
	return out, nil
}

func exportGrammars(ctx context.Context, path string, grammars []*cmdline.Grammar) error {
	gs := make([]cmdline.Grammar, 0, len(grammars))
	for _, g := range grammars {
		gs = append(gs, *g)
	}
	if err := grammarfile.Write(path, gs); err != nil {
		return fmt.Errorf("failed to export grammar: %w", err)
	}
	ctxlog.FromContext(ctx).Info("Grammar exported.", "path", path, "commands", len(gs))
	return nil
}

// writeUsage prints each usage block, separated by a blank line.
func writeUsage(w io.Writer, grammars []*cmdline.Grammar) error {
	for i, g := range grammars {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, g.Usage()); err != nil {
			return err
		}
	}
	return nil
}

type switchView struct {
	Name    string `json:"name"`
	Level   string `json:"level"`
	Alias   string `json:"alias,omitempty"`
	Summary string `json:"summary,omitempty"`
}

type grammarView struct {
	Keyword         string       `json:"keyword"`
	Summary         string       `json:"summary,omitempty"`
	Argument        string       `json:"argument"`
	ArgName         string       `json:"argName,omitempty"`
	EmptyArgMessage string       `json:"emptyArgMessage,omitempty"`
	Switches        []switchView `json:"switches"`
	HasScript       bool         `json:"hasScript"`
	Usage           string       `json:"usage"`
}

func viewOf(g *cmdline.Grammar) grammarView {
	v := grammarView{
		Keyword:         g.Keyword,
		Summary:         g.Summary,
		Argument:        g.Arg.String(),
		ArgName:         g.ArgName,
		EmptyArgMessage: g.EmptyArgMessage,
		Switches:        make([]switchView, 0, len(g.Switches)),
		HasScript:       g.Script != "",
		Usage:           g.Usage(),
	}
	for _, sw := range g.Switches {
		v.Switches = append(v.Switches, switchView{
			Name:    sw.Name,
			Level:   sw.Level.String(),
			Alias:   sw.Alias,
			Summary: sw.Summary,
		})
	}
	return v
}

func writeJSONLines(w io.Writer, grammars []*cmdline.Grammar) error {
	for _, g := range grammars {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(viewOf(g)); err != nil {
			return err
		}
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
