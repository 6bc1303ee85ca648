package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flarebyte/switchline/cmd/switchline/env"
	"github.com/flarebyte/switchline/cmd/switchline/grammar"
	"github.com/flarebyte/switchline/cmd/switchline/parse"
	"github.com/flarebyte/switchline/cmd/switchline/repl"
	"github.com/flarebyte/switchline/cmd/switchline/version"
)

// annotationNeedsEnv marks subcommands that run against the registry.
const annotationNeedsEnv = "switchline/needs-env"

// NewRootCmd creates the root command for switchline.
func NewRootCmd() *cobra.Command {
	var flags env.Flags
	cmd := &cobra.Command{
		Use:   "switchline",
		Short: "CLI: Parse single-line commands with switches against a command grammar",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNeedsEnv] != "true" {
				return nil
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			e, err := env.Load(ctx, flags, cmd.Flags().Changed, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cmd.SetContext(env.WithEnv(ctx, e))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.Bind(cmd.PersistentFlags())

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	for _, sub := range []*cobra.Command{parse.NewCmd(), repl.NewCmd(), grammar.NewCmd()} {
		if sub.Annotations == nil {
			sub.Annotations = map[string]string{}
		}
		sub.Annotations[annotationNeedsEnv] = "true"
		cmd.AddCommand(sub)
	}

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
