package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/flarebyte/switchline/cmd/switchline/env"
	"github.com/flarebyte/switchline/internal/cmdline"
	"github.com/flarebyte/switchline/internal/ctxlog"
	"github.com/flarebyte/switchline/internal/render"
)

const defaultHistorySize = 20

// NewCmd creates the `switchline repl` command.
func NewCmd() *cobra.Command {
	var (
		prompt      string
		historySize int
	)
	cmd := &cobra.Command{
		Use:           "repl",
		Short:         "Read command lines interactively until bye or end of input",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			s := newSession(e, cmd.InOrStdin(), cmd.OutOrStdout(), prompt, historySize)
			return s.run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&prompt, "prompt", "> ", "Prompt printed before each line; empty disables it")
	cmd.Flags().IntVar(&historySize, "history-size", defaultHistorySize, "Number of lines kept for the history command")
	return cmd
}

type session struct {
	env         *env.Env
	in          *bufio.Scanner
	out         io.Writer
	prompt      string
	history     []string
	historySize int
}

func newSession(e *env.Env, in io.Reader, out io.Writer, prompt string, historySize int) *session {
	if historySize <= 0 {
		historySize = defaultHistorySize
	}
	return &session{
		env:         e,
		in:          bufio.NewScanner(in),
		out:         out,
		prompt:      prompt,
		historySize: historySize,
	}
}

// run loops until bye, end of input or a write error. Parse and script
// failures are reported and the loop goes on.
func (s *session) run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("REPL started.", "commands", s.env.Registry.Len())
	for {
		if s.prompt != "" {
			if _, err := fmt.Fprint(s.out, s.prompt); err != nil {
				return err
			}
		}
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return err
			}
			if s.prompt != "" {
				_, _ = fmt.Fprintln(s.out)
			}
			logger.Debug("REPL finished.", "reason", "eof")
			return nil
		}
		line := strings.TrimSpace(strings.TrimSuffix(s.in.Text(), "\r"))
		if line == "" {
			continue
		}
		done, err := s.handle(ctx, line)
		s.remember(line)
		if err != nil {
			return err
		}
		if done {
			logger.Debug("REPL finished.", "reason", "bye")
			return nil
		}
	}
}

func (s *session) handle(ctx context.Context, line string) (done bool, err error) {
	inv, perr := s.env.Registry.Parse(line)
	if perr != nil {
		ctxlog.FromContext(ctx).Debug("Line rejected.", "kind", render.FailureOf(perr).Kind)
		return false, render.Help(s.out, perr)
	}
	g, _ := s.env.Registry.Lookup(inv.Command)
	if g.Script != "" {
		return inv.Command == "bye", s.runScript(ctx, g, inv)
	}
	switch inv.Command {
	case "bye":
		_, err := fmt.Fprintln(s.out, "Goodbye!")
		return true, err
	case "help":
		return false, s.help(inv)
	case "history":
		return false, s.printHistory()
	}
	return false, render.Invocation(s.out, inv, render.Options{
		Format: s.env.Config.Output.Format,
		Pretty: s.env.Config.Output.Pretty,
	})
}

func (s *session) runScript(ctx context.Context, g *cmdline.Grammar, inv cmdline.Invocation) error {
	text, err := s.env.Executor.Run(ctx, g, inv)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Script failed.", "command", inv.Command, "error", err)
		_, werr := fmt.Fprintln(s.out, render.SanitizeMessage(err.Error()))
		return werr
	}
	if text == "" {
		return nil
	}
	_, err = fmt.Fprintln(s.out, text)
	return err
}

// help prints the usage of one command, or the list of commands.
func (s *session) help(inv cmdline.Invocation) error {
	if name, ok := inv.Argument(); ok {
		g, found := s.env.Registry.Lookup(name)
		if !found {
			return render.Help(s.out, &cmdline.UnknownCommandError{Keyword: name})
		}
		_, err := fmt.Fprintf(s.out, "Usage: %s\n", g.Usage())
		return err
	}
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	for _, kw := range s.env.Registry.Keywords() {
		g, _ := s.env.Registry.Lookup(kw)
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", kw, g.Summary); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func (s *session) remember(line string) {
	s.history = append(s.history, line)
	if over := len(s.history) - s.historySize; over > 0 {
		s.history = s.history[over:]
	}
}

func (s *session) printHistory() error {
	if len(s.history) == 0 {
		_, err := fmt.Fprintln(s.out, "No commands yet.")
		return err
	}
	for i, line := range s.history {
		if _, err := fmt.Fprintf(s.out, "%3d  %s\n", i+1, line); err != nil {
			return err
		}
	}
	return nil
}
