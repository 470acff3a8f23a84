package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Josh-Zirena/git-commit-ai/internal/prompts"
)

// PromptCommand returns the prompt command
func PromptCommand() *cli.Command {
	return &cli.Command{
		Name:  "prompt",
		Usage: "Build the full commit-message prompt for a git diff",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Read the diff from `FILE` instead of stdin",
			},
			&cli.BoolFlag{
				Name:  "system",
				Usage: "Print the system prompt before the user prompt",
			},
		},
		Action: runPrompt,
	}
}

func runPrompt(c *cli.Context) error {
	processor, logger, err := buildProcessor(c)
	if err != nil {
		return err
	}

	raw, err := readInput(c.String("input"))
	if err != nil {
		return err
	}

	out, err := processor.Process(raw)
	if err != nil {
		return fmt.Errorf("failed to process diff: %w", err)
	}

	logger.Info().
		Str("strategy", string(out.Result.Strategy)).
		Int("files", out.Info.TotalFiles).
		Msg("Prompt built")

	if c.Bool("system") {
		fmt.Println(prompts.SystemPrompt)
		fmt.Println("---")
	}

	builder := prompts.NewPromptBuilder()
	fmt.Println(builder.BuildCommitMessagePrompt(out))
	return nil
}
