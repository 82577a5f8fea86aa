package git

import (
	"errors"
	"strings"
	"testing"
)

func TestExecError_MessageIncludesStderr(t *testing.T) {
	err := newExecError(
		[]string{"--no-pager", "diff", "bad..range"},
		errors.New("exit status 128"),
		[]byte("fatal: ambiguous argument 'bad..range'\n"),
	)

	msg := err.Error()
	if !strings.Contains(msg, "git diff failed") {
		t.Errorf("message = %q, missing failure description", msg)
	}
	if !strings.Contains(msg, "exit status 128") {
		t.Errorf("message = %q, missing underlying cause", msg)
	}
	if !strings.Contains(msg, "stderr: fatal: ambiguous argument 'bad..range'") {
		t.Errorf("message = %q, missing labeled stderr block", msg)
	}
}

func TestExecError_MessageWithoutStderr(t *testing.T) {
	err := newExecError([]string{"--no-pager", "diff"}, errors.New("exit status 1"), nil)

	msg := err.Error()
	if strings.Contains(msg, "stderr") {
		t.Errorf("message = %q, unexpected stderr block", msg)
	}
}

func TestExecError_Unwrap(t *testing.T) {
	cause := errors.New("spawn failed")
	err := newExecError([]string{"--no-pager", "diff"}, cause, nil)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is does not reach the underlying cause")
	}
}

func TestDecodeStderr(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "Empty", input: nil, want: ""},
		{name: "WhitespaceOnly", input: []byte("  \n"), want: ""},
		{name: "Plain", input: []byte("fatal: not a git repository\n"), want: "fatal: not a git repository"},
		{name: "InvalidUTF8", input: []byte{0xff, 0xfe, 'x'}, want: stderrPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeStderr(tt.input); got != tt.want {
				t.Fatalf("decodeStderr(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExecError_InvalidStderrDegradesToPlaceholder(t *testing.T) {
	err := newExecError(
		[]string{"--no-pager", "diff"},
		errors.New("exit status 128"),
		[]byte{0xc3, 0x28}, // invalid 2-byte sequence
	)
	if !strings.Contains(err.Error(), stderrPlaceholder) {
		t.Fatalf("message = %q, want placeholder for undecodable stderr", err.Error())
	}
}

func TestSubcommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"--no-pager", "diff", "a..b"}, want: "diff"},
		{args: []string{"--no-pager"}, want: "command"},
		{args: nil, want: "command"},
	}

	for _, tt := range tests {
		if got := subcommand(tt.args); got != tt.want {
			t.Fatalf("subcommand(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestCappedBuffer(t *testing.T) {
	b := &cappedBuffer{limit: 8}

	if _, err := b.Write([]byte("12345678")); err != nil {
		t.Fatalf("write within limit failed: %v", err)
	}
	if _, err := b.Write([]byte("9")); !errors.Is(err, ErrOutputTooLarge) {
		t.Fatalf("write over limit = %v, want ErrOutputTooLarge", err)
	}
	if !b.overflowed {
		t.Fatal("overflowed flag not set")
	}
	// Nothing is silently truncated: the buffer keeps only complete writes.
	if got := b.buf.String(); got != "12345678" {
		t.Fatalf("buffer = %q, want %q", got, "12345678")
	}
}
