package grammarfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flarebyte/switchline/internal/cmdline"
	"github.com/flarebyte/switchline/internal/ctxlog"
)

// Load reads one grammar file. The format is chosen by extension:
// .cue, .yaml/.yml or .hcl.
func Load(path string) ([]cmdline.Grammar, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".cue", ".yaml", ".yml", ".hcl":
	default:
		return nil, fmt.Errorf("unsupported grammar format: %s (expected .cue, .yaml or .hcl)", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar: %w", err)
	}
	var cmds []fileCommand
	switch ext {
	case ".cue":
		cmds, err = decodeCUE(path, data)
	case ".hcl":
		cmds, err = decodeHCL(path, data)
	default:
		cmds, err = decodeYAML(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	gs, err := toGrammars(cmds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gs, nil
}

// Sources lists where grammars come from. Builtin grammars are registered
// first; a file grammar with the same keyword replaces the built-in one.
type Sources struct {
	Builtin     []cmdline.Grammar
	Files       []string
	Dir         string
	NoGitignore bool
}

// LoadRegistry loads every source and builds the registry.
func LoadRegistry(ctx context.Context, src Sources) (*cmdline.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	files := append([]string(nil), src.Files...)
	if src.Dir != "" {
		found, err := Discover(src.Dir, src.NoGitignore)
		if err != nil {
			return nil, err
		}
		logger.Debug("Grammar files discovered.", "dir", src.Dir, "count", len(found))
		files = append(files, found...)
	}

	var fromFiles []cmdline.Grammar
	declared := map[string]bool{}
	for _, f := range files {
		gs, err := Load(f)
		if err != nil {
			return nil, err
		}
		logger.Debug("Grammar file loaded.", "path", f, "commands", len(gs))
		for _, g := range gs {
			declared[g.Keyword] = true
		}
		fromFiles = append(fromFiles, gs...)
	}

	all := make([]cmdline.Grammar, 0, len(src.Builtin)+len(fromFiles))
	for _, g := range src.Builtin {
		if declared[g.Keyword] {
			logger.Debug("Built-in command replaced by grammar file.", "command", g.Keyword)
			continue
		}
		all = append(all, g)
	}
	all = append(all, fromFiles...)
	if len(all) == 0 {
		return nil, fmt.Errorf("no commands registered: enable the built-in set or pass --grammar")
	}
	r, err := cmdline.NewRegistry(all...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Command registry ready.", "commands", r.Len())
	return r, nil
}
