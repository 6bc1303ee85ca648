// Package script runs the inline Lua snippets attached to command grammars.
package script

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/flarebyte/switchline/internal/cmdline"
	"github.com/flarebyte/switchline/internal/ctxlog"
)

// DefaultTimeout bounds a script run when the executor is built with zero.
const DefaultTimeout = 200 * time.Millisecond

// ErrTimeout is returned when a script runs past its deadline.
var ErrTimeout = errors.New("script timeout")

// Executor runs grammar scripts in a fresh sandboxed Lua state per call.
type Executor struct {
	timeout time.Duration
}

// New returns an executor with the given per-run timeout. A negative
// timeout disables the deadline.
func New(timeout time.Duration) *Executor {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Executor{timeout: timeout}
}

// Run executes g.Script against inv and returns what the script printed
// followed by its return value. A grammar without a script yields "".
//
// Globals: command (string), arg (string or nil) and switches (table
// mapping each present switch to its value, or true when it has none).
func (e *Executor) Run(ctx context.Context, g *cmdline.Grammar, inv cmdline.Invocation) (string, error) {
	if g == nil || strings.TrimSpace(g.Script) == "" {
		return "", nil
	}
	started := time.Now()
	arg, _ := inv.Argument()

	var printed strings.Builder
	L := newSandboxState(inv.Command, arg, &printed)
	defer L.Close()

	runCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	L.SetContext(runCtx)

	L.SetGlobal("command", lua.LString(inv.Command))
	if inv.Arg != nil {
		L.SetGlobal("arg", lua.LString(*inv.Arg))
	} else {
		L.SetGlobal("arg", lua.LNil)
	}
	switches := L.NewTable()
	for name, value := range inv.Switches {
		if value == nil {
			switches.RawSetString(name, lua.LTrue)
			continue
		}
		switches.RawSetString(name, lua.LString(*value))
	}
	L.SetGlobal("switches", switches)

	code := g.Script
	if !containsReturn(code) {
		code = "return (" + code + ")"
	}
	fn, err := L.LoadString(code)
	if err != nil {
		return "", fmt.Errorf("%s: invalid script: %w", inv.Command, err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if runCtx.Err() != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%s: %w", inv.Command, ErrTimeout)
		}
		return "", fmt.Errorf("%s: script failed: %w", inv.Command, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	result, err := formatValue(fromLValue(ret))
	if err != nil {
		return "", fmt.Errorf("%s: %w", inv.Command, err)
	}
	ctxlog.FromContext(ctx).Debug("script finished",
		"command", inv.Command,
		"duration", time.Since(started),
	)
	out := strings.TrimSuffix(printed.String(), "\n")
	switch {
	case out == "":
		return result, nil
	case result == "":
		return out, nil
	default:
		return out + "\n" + result, nil
	}
}

func formatValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return "", fmt.Errorf("unsupported script result: %w", err)
		}
		return string(b), nil
	}
}
