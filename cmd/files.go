package cmd

import (
	"time"

	"github.com/masmgr/gitdiff-go/internal/output"
	"github.com/urfave/cli/v2"
)

// FilesCmd creates the files command, which lists changed files.
func FilesCmd() *cli.Command {
	return &cli.Command{
		Name:      "files",
		Usage:     "List files changed in a revision range (or the working tree)",
		ArgsUsage: "[revision range]",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (console, json)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		),
		Action: filesAction,
	}
}

func filesAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(c, cfg)
	if err != nil {
		return err
	}

	revRange := c.Args().First()
	entries, err := fetcher.ListChanged(c.Context, revRange, c.StringSlice("path"))
	if err != nil {
		return err
	}

	format := c.String("format")
	if format == "" {
		format = cfg.Output.Format
	}

	report := &output.FileListReport{
		RepoPath:    c.String("repo"),
		RevRange:    revRange,
		GeneratedAt: time.Now(),
		Entries:     entries,
	}

	writer := output.NewFileListWriter(getOutputFormat(format))
	return writer.Write(report, output.OutputOptions{
		Format:     getOutputFormat(format),
		OutputPath: c.String("output"),
	})
}
