package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/masmgr/gitdiff-go/internal/git"
)

// ConsoleFileListWriter writes changed-file listings to the console.
type ConsoleFileListWriter struct{}

// Write outputs the changed-file listing to the console or the configured
// output file.
func (w *ConsoleFileListWriter) Write(report *FileListReport, options OutputOptions) error {
	dest, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintf(dest, "Changed files (%s)\n", rangeLabel(report.RevRange))
	fmt.Fprintf(dest, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(dest, "Total files: %d\n\n", len(report.Entries))

	tw := tabwriter.NewWriter(dest, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Status\tPath")
	for _, e := range report.Entries {
		path := e.Path
		if e.OldPath != "" {
			path = e.OldPath + " -> " + e.Path
		}
		fmt.Fprintf(tw, "%s\t%s\n", changeKindColor(e.Kind).Sprint(e.Kind), path)
	}
	return tw.Flush()
}

// ConsoleStatWriter writes diff stat summaries to the console.
type ConsoleStatWriter struct{}

// Write outputs the stat summary to the console or the configured output file.
func (w *ConsoleStatWriter) Write(report *StatReport, options OutputOptions) error {
	dest, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.New(color.FgGreen).Fprintf(dest, "Diff stat (%s)\n", rangeLabel(report.RevRange))
	fmt.Fprintf(dest, "Repository: %s\n\n", report.RepoPath)

	tw := tabwriter.NewWriter(dest, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Path\tAdded\tDeleted")
	for _, s := range report.Stats {
		if s.Binary {
			fmt.Fprintf(tw, "%s\t-\t-\n", s.Path)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", s.Path, s.Added, s.Deleted)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	added, deleted := report.Totals()
	fmt.Fprintf(dest, "\n%d file(s) changed, %s, %s\n",
		len(report.Stats),
		color.GreenString("%d insertions(+)", added),
		color.RedString("%d deletions(-)", deleted),
	)
	return nil
}

// changeKindColor maps a change kind to its console color.
func changeKindColor(k git.ChangeKind) *color.Color {
	switch k {
	case git.ChangeKindAdded:
		return color.New(color.FgGreen)
	case git.ChangeKindDeleted:
		return color.New(color.FgRed)
	case git.ChangeKindRenamed, git.ChangeKindCopied:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgYellow)
	}
}
