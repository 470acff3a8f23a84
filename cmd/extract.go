package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Josh-Zirena/git-commit-ai/internal/llm"
)

// ExtractCommand returns the extract command
func ExtractCommand() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "Extract a commit message from a saved model response",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Read the response from `FILE` instead of stdin",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the extracted message as JSON",
			},
		},
		Action: runExtract,
	}
}

func runExtract(c *cli.Context) error {
	raw, err := readInput(c.String("input"))
	if err != nil {
		return err
	}

	msg, err := llm.ExtractCommitMessage(raw)
	if err != nil {
		return fmt.Errorf("failed to extract commit message: %w", err)
	}

	if c.Bool("json") {
		return printJSON(msg)
	}
	fmt.Println(llm.Format(msg))
	return nil
}
