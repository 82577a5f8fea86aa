package cmd

import (
	"time"

	"github.com/masmgr/gitdiff-go/internal/output"
	"github.com/urfave/cli/v2"
)

// StatCmd creates the stat command, which summarizes per-file line counts.
func StatCmd() *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "Show added/deleted line counts per file",
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
		Action: statAction,
	}
}

func statAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(c, cfg)
	if err != nil {
		return err
	}

	revRange := c.Args().First()
	stats, err := fetcher.DiffStat(c.Context, revRange, c.StringSlice("path"))
	if err != nil {
		return err
	}

	format := c.String("format")
	if format == "" {
		format = cfg.Output.Format
	}

	report := &output.StatReport{
		RepoPath:    c.String("repo"),
		RevRange:    revRange,
		GeneratedAt: time.Now(),
		Stats:       stats,
	}

	writer := output.NewStatWriter(getOutputFormat(format))
	return writer.Write(report, output.OutputOptions{
		Format:     getOutputFormat(format),
		OutputPath: c.String("output"),
	})
}
