package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// ShowCmd creates the show command, which prints the diff itself.
func ShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the diff for a revision range (or the working tree)",
		ArgsUsage: "[revision range]",
		Flags: append(commonFlags(),
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Write output bytes unmodified, without UTF-8 decoding",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		),
		Action: showAction,
	}
}

func showAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	fetcher, err := newFetcher(c, cfg)
	if err != nil {
		return err
	}

	revRange := c.Args().First()
	out, err := fetcher.Fetch(c.Context, revRange, c.StringSlice("path"))
	if err != nil {
		return err
	}

	dest := os.Stdout
	if path := c.String("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		dest = file
	}

	if c.Bool("raw") {
		_, err = dest.Write(out.Raw)
		return err
	}
	_, err = fmt.Fprint(dest, out.Text())
	return err
}
