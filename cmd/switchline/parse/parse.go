package parse

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flarebyte/switchline/cmd/switchline/env"
	"github.com/flarebyte/switchline/internal/cmdline"
	"github.com/flarebyte/switchline/internal/config"
	"github.com/flarebyte/switchline/internal/ctxlog"
	"github.com/flarebyte/switchline/internal/render"
)

const maxLineBytes = 1024 * 1024

type options struct {
	format             string
	pretty             bool
	failFast           bool
	progress           bool
	progressIntervalMs int
}

// NewCmd creates the `switchline parse` command.
func NewCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "parse [LINE...]",
		Short: "Parse command lines and print one invocation per line",
		Long: "Parse the arguments joined by a space as a single command line, or each\n" +
			"non-blank line of stdin when no arguments are given. Failures are printed\n" +
			"in place of the invocation and processing continues.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := env.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			ro, err := o.renderOptions(cmd, e.Config)
			if err != nil {
				return err
			}
			var next func() (string, bool, error)
			if len(args) > 0 {
				next = singleLine(strings.Join(args, " "))
			} else {
				next = scanLines(cmd.InOrStdin())
			}
			reporter := newProgressReporter(o.progress, o.progressIntervalMs, cmd.ErrOrStderr())
			stop := reporter.start()
			res, err := runBatch(cmd.Context(), e.Registry, next, cmd.OutOrStdout(), ro, o.failFast, reporter)
			stop()
			if err != nil {
				return err
			}
			return evaluateParseExit(res)
		},
	}
	// Everything after the first line word belongs to the line, dashes included.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&o.format, "format", "", "Output format: json or yaml (default from config, else json)")
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "Indent JSON output")
	cmd.Flags().BoolVar(&o.failFast, "fail-fast", false, "Stop at the first line that fails to parse")
	cmd.Flags().BoolVar(&o.progress, "progress", false, "Report progress on stderr")
	cmd.Flags().IntVar(&o.progressIntervalMs, "progress-interval-ms", defaultProgressIntervalMs, "Progress report interval")
	return cmd
}

func (o options) renderOptions(cmd *cobra.Command, cfg config.Config) (render.Options, error) {
	ro := render.Options{Format: cfg.Output.Format, Pretty: cfg.Output.Pretty}
	if cmd.Flags().Changed("format") {
		ro.Format = o.format
	}
	if cmd.Flags().Changed("pretty") {
		ro.Pretty = o.pretty
	}
	if ro.Format == "" {
		ro.Format = "json"
	}
	if !config.IsSupportedOutputFormat(ro.Format) {
		return render.Options{}, usageError("invalid --format: %q (expected json or yaml)", ro.Format)
	}
	return ro, nil
}

// runBatch parses every line from next and writes one result per line.
func runBatch(
	ctx context.Context,
	reg *cmdline.Registry,
	next func() (string, bool, error),
	w io.Writer,
	ro render.Options,
	failFast bool,
	reporter *progressReporter,
) (batchResult, error) {
	logger := ctxlog.FromContext(ctx)
	var res batchResult
	for {
		line, ok, err := next()
		if err != nil {
			return res, err
		}
		if !ok {
			break
		}
		res.total++
		inv, perr := reg.Parse(line)
		if perr != nil {
			res.failed++
			logger.Debug("Line rejected.", "line", res.total, "kind", render.FailureOf(perr).Kind)
			if err := render.Error(w, perr, ro); err != nil {
				return res, err
			}
			reporter.observe(res)
			if failFast {
				res.stopped = true
				break
			}
			continue
		}
		if err := render.Invocation(w, inv, ro); err != nil {
			return res, err
		}
		reporter.observe(res)
	}
	logger.Debug("Parse finished.", "lines", res.total, "succeeded", res.succeeded(), "failed", res.failed)
	return res, nil
}

func singleLine(line string) func() (string, bool, error) {
	done := false
	return func() (string, bool, error) {
		if done {
			return "", false, nil
		}
		done = true
		return line, true, nil
	}
}

// scanLines yields the non-blank lines of r.
func scanLines(r io.Reader) func() (string, bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return func() (string, bool, error) {
		for sc.Scan() {
			line := strings.TrimSuffix(sc.Text(), "\r")
			if strings.TrimSpace(line) == "" {
				continue
			}
			return line, true, nil
		}
		return "", false, sc.Err()
	}
}
