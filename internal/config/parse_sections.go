package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// parseGrammarsSection extracts optional grammars.* fields.
func parseGrammarsSection(v cue.Value, g Grammars, base string) Grammars {
	gv := v.LookupPath(cue.ParsePath("grammars"))
	if !gv.Exists() {
		return g
	}
	fv := gv.LookupPath(cue.ParsePath("files"))
	if fv.Exists() && fv.Kind() == cue.ListKind {
		var files []string
		if err := fv.Decode(&files); err == nil {
			for _, f := range files {
				g.Files = append(g.Files, resolvePath(base, f))
			}
			g.HasFiles = true
		}
	}
	dv := gv.LookupPath(cue.ParsePath("dir"))
	if dv.Exists() && dv.Kind() == cue.StringKind {
		var dir string
		if err := dv.Decode(&dir); err == nil {
			g.Dir = resolvePath(base, dir)
			g.HasDir = true
		}
	}
	ngv := gv.LookupPath(cue.ParsePath("noGitignore"))
	if ngv.Exists() && ngv.Kind() == cue.BoolKind {
		if err := ngv.Decode(&g.NoGitignore); err == nil {
			g.HasNoGitignore = true
		}
	}
	bv := gv.LookupPath(cue.ParsePath("builtin"))
	if bv.Exists() && bv.Kind() == cue.BoolKind {
		if err := bv.Decode(&g.Builtin); err == nil {
			g.HasBuiltin = true
		}
	}
	return g
}

// parseLogSection extracts optional log.* fields. Values are checked when
// the logger is built.
func parseLogSection(v cue.Value, l Log) Log {
	lv := v.LookupPath(cue.ParsePath("log"))
	if !lv.Exists() {
		return l
	}
	levelv := lv.LookupPath(cue.ParsePath("level"))
	if levelv.Exists() && levelv.Kind() == cue.StringKind {
		_ = levelv.Decode(&l.Level)
		l.HasLevel = true
	}
	fv := lv.LookupPath(cue.ParsePath("format"))
	if fv.Exists() && fv.Kind() == cue.StringKind {
		_ = fv.Decode(&l.Format)
		l.HasFormat = true
	}
	return l
}

// parseOutputSection extracts optional output.* fields.
func parseOutputSection(v cue.Value, o Output) (Output, error) {
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return o, nil
	}
	fv := ov.LookupPath(cue.ParsePath("format"))
	if fv.Exists() && fv.Kind() == cue.StringKind {
		_ = fv.Decode(&o.Format)
		o.HasFormat = true
		if !IsSupportedOutputFormat(o.Format) {
			return Output{}, fmt.Errorf("invalid value for output.format: %q (expected json or yaml)", o.Format)
		}
	}
	pv := ov.LookupPath(cue.ParsePath("pretty"))
	if pv.Exists() && pv.Kind() == cue.BoolKind {
		_ = pv.Decode(&o.Pretty)
		o.HasPretty = true
	}
	return o, nil
}

// parseScriptSection extracts optional script.timeoutMs.
func parseScriptSection(v cue.Value, s Script) (Script, error) {
	sv := v.LookupPath(cue.ParsePath("script"))
	if !sv.Exists() {
		return s, nil
	}
	tv := sv.LookupPath(cue.ParsePath("timeoutMs"))
	if tv.Exists() && tv.Kind() == cue.IntKind {
		if err := tv.Decode(&s.TimeoutMs); err == nil {
			s.HasTimeoutMs = true
		}
		if s.TimeoutMs <= 0 {
			return Script{}, fmt.Errorf("invalid value for script.timeoutMs: %d (must be positive)", s.TimeoutMs)
		}
	}
	return s, nil
}

// IsSupportedOutputFormat reports whether f names a known renderer.
func IsSupportedOutputFormat(f string) bool {
	return f == "json" || f == "yaml"
}
