// Package buildinfo exposes version metadata for the CLI. Values are set at
// build time via -ldflags; Version and Date fall back to the cli package.
package buildinfo

import (
	"runtime"
	"strings"

	"github.com/flarebyte/switchline/cli"
)

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	// Commit is the VCS commit hash.
	Commit = ""
	// Date is the build time.
	Date = ""
	// BuiltBy identifies the builder.
	BuiltBy = ""
)

// Info is the resolved build metadata.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
	Go      string `json:"go"`
	GoOS    string `json:"go_os"`
	GoArch  string `json:"go_arch"`
}

// Current resolves the build metadata, applying the cli fallbacks.
func Current() Info {
	v := Version
	if v == "" {
		v = cli.Version
	}
	if v == "" {
		v = "dev"
	}
	d := Date
	if d == "" {
		d = cli.Date
	}
	return Info{
		Version: v,
		Commit:  Commit,
		Date:    d,
		BuiltBy: BuiltBy,
		Go:      runtime.Version(),
		GoOS:    runtime.GOOS,
		GoArch:  runtime.GOARCH,
	}
}

// ShortCommit is the commit trimmed to seven characters.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// Summary returns a concise single-line version string.
func Summary() string {
	info := Current()
	parts := make([]string, 0, 2)
	if c := info.ShortCommit(); c != "" {
		parts = append(parts, "commit="+c)
	}
	if info.Date != "" {
		parts = append(parts, "date="+info.Date)
	}
	if len(parts) == 0 {
		return info.Version
	}
	return info.Version + " (" + strings.Join(parts, ", ") + ")"
}
