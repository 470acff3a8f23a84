package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Josh-Zirena/git-commit-ai/cmd"
)

const (
	version = "0.1.0"
)

func main() {
	app := &cli.App{
		Name:    "git-commit-ai",
		Usage:   "Turn arbitrary git diffs into size-bounded commit-message prompts",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
			},
		},
		Commands: []*cli.Command{
			cmd.ProcessCommand(),
			cmd.PromptCommand(),
			cmd.ExtractCommand(),
			cmd.ConfigCommand(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
