// Package env assembles what the subcommands share: configuration, logger,
// command registry and script executor.
package env

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/flarebyte/switchline/internal/catalog"
	"github.com/flarebyte/switchline/internal/cmdline"
	"github.com/flarebyte/switchline/internal/config"
	"github.com/flarebyte/switchline/internal/ctxlog"
	"github.com/flarebyte/switchline/internal/grammarfile"
	"github.com/flarebyte/switchline/internal/logging"
	"github.com/flarebyte/switchline/internal/script"
)

// Flags holds the persistent root flags.
type Flags struct {
	Config      string
	Grammars    []string
	GrammarDir  string
	NoGitignore bool
	NoBuiltin   bool
	LogLevel    string
	LogFormat   string
}

// Bind registers the flags on fs.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Config, "config", "c", "", "Path to config file (.cue)")
	fs.StringArrayVarP(&f.Grammars, "grammar", "g", nil, "Grammar file (.grammar.cue, .yaml, .hcl); repeatable")
	fs.StringVar(&f.GrammarDir, "grammar-dir", "", "Directory scanned for *.grammar.* files")
	fs.BoolVar(&f.NoGitignore, "no-gitignore", false, "Do not honour .gitignore in --grammar-dir")
	fs.BoolVar(&f.NoBuiltin, "no-builtin", false, "Do not register the built-in commands")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&f.LogFormat, "log-format", "", "Log format: text or json")
}

// Env is the state a subcommand runs against.
type Env struct {
	Config   config.Config
	Logger   *slog.Logger
	Registry *cmdline.Registry
	Executor *script.Executor
}

// Load reads the config file (if any), lets explicitly changed flags
// override it, then builds the logger and the registry. Logs go to logW.
func Load(ctx context.Context, f Flags, changed func(string) bool, logW io.Writer) (*Env, error) {
	cfg := config.Default()
	if f.Config != "" {
		c, err := config.Parse(f.Config)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	applyFlags(&cfg, f, changed)

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, logW)
	if err != nil {
		return nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger)

	src := grammarfile.Sources{
		Files:       cfg.Grammars.Files,
		Dir:         cfg.Grammars.Dir,
		NoGitignore: cfg.Grammars.NoGitignore,
	}
	if cfg.Grammars.Builtin {
		src.Builtin = catalog.Grammars()
	}
	reg, err := grammarfile.LoadRegistry(ctx, src)
	if err != nil {
		return nil, err
	}
	return &Env{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
		Executor: script.New(scriptTimeout(cfg.Script.TimeoutMs)),
	}, nil
}

func applyFlags(cfg *config.Config, f Flags, changed func(string) bool) {
	if changed == nil {
		changed = func(string) bool { return false }
	}
	if changed("grammar") {
		cfg.Grammars.Files = append(cfg.Grammars.Files, f.Grammars...)
	}
	if changed("grammar-dir") {
		cfg.Grammars.Dir = f.GrammarDir
	}
	if changed("no-gitignore") {
		cfg.Grammars.NoGitignore = f.NoGitignore
	}
	if changed("no-builtin") {
		cfg.Grammars.Builtin = !f.NoBuiltin
	}
	if changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if changed("log-format") {
		cfg.Log.Format = f.LogFormat
	}
}

func scriptTimeout(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

type envKey struct{}

// WithEnv returns a copy of ctx carrying e and its logger.
func WithEnv(ctx context.Context, e *Env) context.Context {
	if e.Logger != nil {
		ctx = ctxlog.WithLogger(ctx, e.Logger)
	}
	return context.WithValue(ctx, envKey{}, e)
}

// ErrNoEnv is returned by FromContext when the root command did not load
// an environment.
var ErrNoEnv = errors.New("internal error: command environment not loaded")

// FromContext returns the Env stored by WithEnv.
func FromContext(ctx context.Context) (*Env, error) {
	if ctx == nil {
		return nil, ErrNoEnv
	}
	e, ok := ctx.Value(envKey{}).(*Env)
	if !ok || e == nil {
		return nil, ErrNoEnv
	}
	return e, nil
}
