package main

import (
	"log"
	"os"

	"github.com/masmgr/gitdiff-go/cmd"
	"github.com/urfave/cli/v2"
)

func buildApp() *cli.App {
	app := cmd.App()

	// Legacy single-purpose invocation: `gitdiff <revision range>` prints
	// the diff without naming a subcommand.
	app.Flags = append(app.Flags,
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Value:   ".",
			Usage:   "path to Git repository (legacy mode)",
		},
		&cli.StringSliceFlag{
			Name:    "path",
			Aliases: []string{"p"},
			Usage:   "limit the diff to this path (legacy mode)",
		},
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "write output bytes unmodified (legacy mode)",
		},
	)

	return app
}

func main() {
	if err := buildApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
