package git

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrOutputTooLarge reports that captured diff output exceeded the configured
// size cap. It is a distinct failure from a nonzero exit and the output is
// never silently truncated. Match with errors.Is.
var ErrOutputTooLarge = errors.New("diff output exceeds size limit")

// stderrPlaceholder substitutes for stderr that is not valid UTF-8.
const stderrPlaceholder = "<stderr was not valid UTF-8>"

// ExecError reports a failed git invocation. It carries the decoded stderr
// of the subprocess and wraps the underlying cause, so callers can recover
// exit codes via errors.As(*exec.ExitError) without re-parsing the message.
type ExecError struct {
	Args   []string // argv passed to git, without the binary name
	Stderr string   // decoded stderr, or a placeholder when not valid UTF-8
	Err    error    // underlying cause: launch failure, exit status, or ErrOutputTooLarge
}

// Error composes the underlying failure description with the captured
// stderr, when any was produced.
func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed: %v: stderr: %s", subcommand(e.Args), e.Err, e.Stderr)
	}
	return fmt.Sprintf("git %s failed: %v", subcommand(e.Args), e.Err)
}

// Unwrap returns the underlying cause for errors.Is / errors.As.
func (e *ExecError) Unwrap() error { return e.Err }

func newExecError(args []string, err error, stderr []byte) *ExecError {
	return &ExecError{
		Args:   args,
		Stderr: decodeStderr(stderr),
		Err:    err,
	}
}

// decodeStderr decodes subprocess stderr as UTF-8 text. Undecodable bytes
// degrade to a fixed placeholder, never to a secondary error.
func decodeStderr(b []byte) string {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return ""
	}
	if !utf8.ValidString(s) {
		return stderrPlaceholder
	}
	return s
}

// subcommand returns the git subcommand from an argv for error messages,
// skipping leading global flags like --no-pager.
func subcommand(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return "command"
}
