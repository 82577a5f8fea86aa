package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	gogit "github.com/go-git/go-git/v5"
)

// Fetcher invokes `git diff` as a subprocess and captures its output.
//
// Every invocation is independent and synchronous: the subprocess is launched
// with an explicit argument vector (never a shell string), the calling
// goroutine blocks until it exits, and the process and its pipes are fully
// released before the call returns. A Fetcher holds no mutable state, so
// concurrent calls need no locking.
type Fetcher struct {
	opts FetchOptions
}

// NewFetcher creates a diff fetcher. When RepoPath is set, the repository is
// opened with go-git up front so a bad path fails fast with a clear error
// instead of a confusing git stderr later.
func NewFetcher(opts FetchOptions) (*Fetcher, error) {
	if opts.GitBin == "" {
		opts.GitBin = "git"
	}
	if opts.MaxOutputBytes <= 0 {
		opts.MaxOutputBytes = DefaultMaxOutputBytes
	}
	if opts.RepoPath != "" {
		_, err := gogit.PlainOpenWithOptions(opts.RepoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			return nil, fmt.Errorf("open repository %q: %w", opts.RepoPath, err)
		}
	}
	return &Fetcher{opts: opts}, nil
}

// Fetch runs `git --no-pager diff [revRange] [-- paths...]` and returns the
// captured standard output.
//
// revRange, when non-empty, is appended as exactly one argument, so revision
// expressions containing spaces or shell metacharacters pass through intact.
// When it is empty the working tree is diffed against the index. Path filters
// are appended verbatim after a literal "--" token, in order, which keeps
// paths with spaces or leading dashes from being read as revisions or flags.
func (f *Fetcher) Fetch(ctx context.Context, revRange string, pathFilters []string) (*DiffOutput, error) {
	out, err := f.run(ctx, f.diffArgs(nil, revRange, pathFilters))
	if err != nil {
		return nil, err
	}
	return &DiffOutput{Raw: out}, nil
}

// diffArgs builds the argument vector for a diff invocation. Every element
// is an opaque token; nothing is split or shell-expanded.
func (f *Fetcher) diffArgs(extra []string, revRange string, pathFilters []string) []string {
	args := make([]string, 0, 3+len(extra)+len(pathFilters))
	args = append(args, "--no-pager", "diff")
	args = append(args, extra...)
	if revRange != "" {
		args = append(args, revRange)
	}
	if len(pathFilters) > 0 {
		args = append(args, "--")
		args = append(args, pathFilters...)
	}
	return args
}

func (f *Fetcher) run(ctx context.Context, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, f.opts.GitBin, args...)
	cmd.Dir = f.opts.RepoPath

	stdout := &cappedBuffer{limit: f.opts.MaxOutputBytes}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// The overflow surfaces as a write error from the capped buffer,
		// but Wait may report the exit status instead when the subprocess
		// also died (e.g. from the closed pipe). Check the buffer first.
		if stdout.overflowed {
			return nil, newExecError(args, ErrOutputTooLarge, stderr.Bytes())
		}
		return nil, newExecError(args, err, stderr.Bytes())
	}
	return stdout.buf.Bytes(), nil
}

// cappedBuffer accumulates subprocess output up to a byte limit and fails
// the copy as soon as the limit would be exceeded.
type cappedBuffer struct {
	buf        bytes.Buffer
	limit      int64
	overflowed bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if int64(b.buf.Len())+int64(len(p)) > b.limit {
		b.overflowed = true
		return 0, ErrOutputTooLarge
	}
	return b.buf.Write(p)
}
