package output

import (
	"io"
	"os"
	"time"

	"github.com/masmgr/gitdiff-go/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ FileListWriter = (*ConsoleFileListWriter)(nil)
	_ FileListWriter = (*JSONFileListWriter)(nil)

	_ StatWriter = (*ConsoleStatWriter)(nil)
	_ StatWriter = (*JSONStatWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// FileListReport holds the changed files of a single diff invocation.
type FileListReport struct {
	RepoPath    string
	RevRange    string // empty when diffing the working tree against the index
	GeneratedAt time.Time
	Entries     []git.FileEntry
}

// StatReport holds per-file line counts of a single diff invocation.
type StatReport struct {
	RepoPath    string
	RevRange    string
	GeneratedAt time.Time
	Stats       []git.FileStat
}

// Totals sums added and deleted lines across all files.
func (r *StatReport) Totals() (added, deleted int) {
	for _, s := range r.Stats {
		added += s.Added
		deleted += s.Deleted
	}
	return added, deleted
}

// FileListWriter writes changed-file listings.
type FileListWriter interface {
	Write(report *FileListReport, options OutputOptions) error
}

// StatWriter writes diff stat summaries.
type StatWriter interface {
	Write(report *StatReport, options OutputOptions) error
}

// NewFileListWriter returns the writer for the requested format.
func NewFileListWriter(format OutputFormat) FileListWriter {
	if format == FormatJSON {
		return &JSONFileListWriter{}
	}
	return &ConsoleFileListWriter{}
}

// NewStatWriter returns the writer for the requested format.
func NewStatWriter(format OutputFormat) StatWriter {
	if format == FormatJSON {
		return &JSONStatWriter{}
	}
	return &ConsoleStatWriter{}
}

func rangeLabel(revRange string) string {
	if revRange == "" {
		return "working tree"
	}
	return revRange
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
