package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/gitdiff-go/config"
	gitpkg "github.com/masmgr/gitdiff-go/internal/git"
	"github.com/masmgr/gitdiff-go/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitdiff",
		Usage:   "Fetch git diffs with safe argument handling",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ShowCmd(),
			FilesCmd(),
			StatCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: legacyAction,
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringSliceFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "Limit the diff to this path (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:  "git-bin",
			Usage: "Git executable to invoke",
		},
		&cli.Int64Flag{
			Name:  "max-output-bytes",
			Usage: "Fail when captured output exceeds this many bytes",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to configuration file",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// newFetcher builds a diff fetcher from CLI flags and configuration.
// Flags win over the config file.
func newFetcher(c *cli.Context, cfg *config.Config) (*gitpkg.Fetcher, error) {
	bin := cfg.Git.Bin
	if s := c.String("git-bin"); s != "" {
		bin = s
	}

	maxBytes := cfg.Git.MaxOutputBytes
	if v := c.Int64("max-output-bytes"); v > 0 {
		maxBytes = v
	}

	return gitpkg.NewFetcher(gitpkg.FetchOptions{
		RepoPath:       c.String("repo"),
		GitBin:         bin,
		MaxOutputBytes: maxBytes,
		Include:        cfg.Filters.Include,
		Exclude:        cfg.Filters.Exclude,
	})
}

// legacyAction handles the default (no subcommand) behavior.
// `gitdiff [revision range]` behaves like `gitdiff show`.
func legacyAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return ShowCmd().Action(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
