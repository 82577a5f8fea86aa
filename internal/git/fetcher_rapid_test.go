package git

import (
	"testing"

	"pgregory.net/rapid"
)

// --- Generators ---

// genToken produces argument tokens including spaces, quotes, newlines,
// leading dashes, and other shell metacharacters.
func genToken() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[a-zA-Z0-9._/-]{1,20}`),
		rapid.StringMatching(`-{1,2}[a-z ]{1,10}`),
		rapid.StringMatching(`[a-z ]{1,5}"[a-z']{1,5}`),
		rapid.StringMatching(`[a-z]{1,4}\n[a-z ;&|$]{1,8}`),
	)
}

func genPathList() *rapid.Generator[[]string] {
	return rapid.SliceOfN(genToken(), 0, 10)
}

// --- Property Tests ---

func TestRapidDiffArgs_FixedPrefix(t *testing.T) {
	f := &Fetcher{}

	rapid.Check(t, func(t *rapid.T) {
		rev := genToken().Draw(t, "rev")
		paths := genPathList().Draw(t, "paths")

		args := f.diffArgs(nil, rev, paths)

		if args[0] != "--no-pager" || args[1] != "diff" {
			t.Fatalf("argv prefix = %v, want [--no-pager diff ...]", args[:2])
		}
	})
}

func TestRapidDiffArgs_RangeVerbatim(t *testing.T) {
	f := &Fetcher{}

	rapid.Check(t, func(t *rapid.T) {
		rev := genToken().Draw(t, "rev")

		args := f.diffArgs(nil, rev, nil)

		if len(args) != 3 {
			t.Fatalf("argv = %v, want exactly one revision argument", args)
		}
		if args[2] != rev {
			t.Fatalf("revision argument = %q, want %q unchanged", args[2], rev)
		}
	})
}

func TestRapidDiffArgs_PathsVerbatimAfterSeparator(t *testing.T) {
	f := &Fetcher{}

	rapid.Check(t, func(t *rapid.T) {
		paths := genPathList().Draw(t, "paths")

		args := f.diffArgs(nil, "", paths)

		if len(paths) == 0 {
			for _, a := range args {
				if a == "--" {
					t.Fatalf("argv = %v, separator present without paths", args)
				}
			}
			return
		}

		sep := -1
		for i, a := range args {
			if a == "--" {
				sep = i
				break
			}
		}
		if sep == -1 {
			t.Fatalf("argv = %v, missing path separator", args)
		}

		got := args[sep+1:]
		if len(got) != len(paths) {
			t.Fatalf("argv carries %d paths, want %d", len(got), len(paths))
		}
		for i := range paths {
			if got[i] != paths[i] {
				t.Fatalf("path[%d] = %q, want %q unchanged", i, got[i], paths[i])
			}
		}
	})
}
