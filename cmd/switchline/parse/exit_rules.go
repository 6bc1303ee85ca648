package parse

import "fmt"

const (
	exitCodeSuccess  = 0
	exitCodeParseErr = 1
	exitCodeUsage    = 2
)

type runExitError struct {
	code int
	msg  string
}

func (e runExitError) Error() string { return e.msg }
func (e runExitError) ExitCode() int { return e.code }

// batchResult counts the lines seen by one parse run.
type batchResult struct {
	total   int
	failed  int
	stopped bool
}

func (r batchResult) succeeded() int { return r.total - r.failed }

func evaluateParseExit(r batchResult) error {
	if r.failed == 0 {
		return nil
	}
	if r.stopped {
		return runExitError{code: exitCodeParseErr, msg: fmt.Sprintf("fail-fast: line %d failed to parse", r.total)}
	}
	if r.total == 1 {
		return runExitError{code: exitCodeParseErr, msg: "line failed to parse"}
	}
	return runExitError{
		code: exitCodeParseErr,
		msg:  fmt.Sprintf("%d of %d lines failed to parse", r.failed, r.total),
	}
}

func usageError(format string, a ...any) error {
	return runExitError{code: exitCodeUsage, msg: fmt.Sprintf(format, a...)}
}
