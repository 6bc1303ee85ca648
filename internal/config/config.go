package config

import (
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
)

// Config is the application configuration read from a switchline.cue file.
// Has* flags record which optional fields were present so flags can
// override only what the file left unset.
type Config struct {
	ConfigVersion string
	Grammars      Grammars
	Log           Log
	Output        Output
	Script        Script
}

// Grammars says where command grammars are loaded from.
type Grammars struct {
	Files          []string
	Dir            string
	NoGitignore    bool
	Builtin        bool
	HasFiles       bool
	HasDir         bool
	HasNoGitignore bool
	HasBuiltin     bool
}

// Log holds logger settings.
type Log struct {
	Level     string
	Format    string
	HasLevel  bool
	HasFormat bool
}

// Output holds invocation rendering settings.
type Output struct {
	Format    string
	Pretty    bool
	HasFormat bool
	HasPretty bool
}

// Script holds Lua executor settings.
type Script struct {
	TimeoutMs    int
	HasTimeoutMs bool
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Grammars:      Grammars{Builtin: true},
		Log:           Log{Level: "info", Format: "text"},
		Output:        Output{Format: "json"},
		Script:        Script{TimeoutMs: defaultScriptTimeoutMs},
	}
}

const defaultScriptTimeoutMs = 200

// Parse loads and validates a CUE config file. Missing optional fields take
// their Default values; relative grammar paths are resolved against the
// directory of the config file.
func Parse(path string) (Config, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Config{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Config{}, err
	}
	c := Default()
	if err := v.LookupPath(cue.ParsePath("configVersion")).Decode(&c.ConfigVersion); err != nil {
		return Config{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if !IsSupportedConfigVersion(c.ConfigVersion) {
		return Config{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", c.ConfigVersion, SupportedConfigVersionsCSV())
	}

	base := filepath.Dir(path)
	c.Grammars = parseGrammarsSection(v, c.Grammars, base)
	c.Log = parseLogSection(v, c.Log)
	if c.Output, err = parseOutputSection(v, c.Output); err != nil {
		return Config{}, err
	}
	if c.Script, err = parseScriptSection(v, c.Script); err != nil {
		return Config{}, err
	}
	return c, nil
}
