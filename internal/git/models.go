package git

import "strings"

// DefaultMaxOutputBytes caps captured diff output at 200 MiB.
const DefaultMaxOutputBytes int64 = 200 * 1024 * 1024

// FetchOptions configures a diff fetcher.
type FetchOptions struct {
	RepoPath       string   // Subprocess working directory; empty means the process cwd
	GitBin         string   // Git executable; empty means "git" from PATH
	MaxOutputBytes int64    // Cap on captured stdout; <=0 means DefaultMaxOutputBytes
	Include        []string // Glob patterns applied when listing changed files
	Exclude        []string // Glob patterns applied when listing changed files
}

// DiffOutput holds the captured standard output of a single diff invocation.
// Raw is the byte sequence exactly as the subprocess produced it.
type DiffOutput struct {
	Raw []byte
}

// Text returns the output decoded as UTF-8 text. Invalid byte sequences are
// replaced with the Unicode replacement character rather than failing.
func (o *DiffOutput) Text() string {
	return strings.ToValidUTF8(string(o.Raw), "�")
}

// FileEntry represents a file changed between the diffed states.
type FileEntry struct {
	Path    string
	OldPath string // non-empty for renames and copies
	Kind    ChangeKind
}

// FileStat holds per-file added/deleted line counts from --numstat.
type FileStat struct {
	Path    string
	OldPath string // non-empty for renames and copies
	Added   int
	Deleted int
	Binary  bool // binary files report no line counts
}

// ChangeKind represents the type of change.
type ChangeKind int

const (
	ChangeKindAdded ChangeKind = iota
	ChangeKindModified
	ChangeKindDeleted
	ChangeKindRenamed
	ChangeKindCopied
)

// String returns a string representation of the change kind.
func (k ChangeKind) String() string {
	switch k {
	case ChangeKindAdded:
		return "added"
	case ChangeKindModified:
		return "modified"
	case ChangeKindDeleted:
		return "deleted"
	case ChangeKindRenamed:
		return "renamed"
	case ChangeKindCopied:
		return "copied"
	default:
		return "unknown"
	}
}
