package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/Josh-Zirena/git-commit-ai/internal/cache"
	"github.com/Josh-Zirena/git-commit-ai/internal/config"
	"github.com/Josh-Zirena/git-commit-ai/internal/diff"
	"github.com/Josh-Zirena/git-commit-ai/internal/logging"
	"github.com/Josh-Zirena/git-commit-ai/pkg/models"
)

// ProcessCommand returns the process command
func ProcessCommand() *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "Process a git diff into a size-bounded payload",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Read the diff from `FILE` instead of stdin",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the payload and processing info as one JSON object",
			},
			&cli.BoolFlag{
				Name:  "info-only",
				Usage: "Print only the processing info JSON",
			},
		},
		Action: runProcess,
	}
}

func runProcess(c *cli.Context) error {
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
		Int("original_size", out.Info.OriginalSize).
		Int("processed_size", out.Info.ProcessedSize).
		Msg("Diff processed")

	switch {
	case c.Bool("info-only"):
		return printJSON(out.Info)
	case c.Bool("json"):
		return printJSON(struct {
			Payload string                `json:"payload"`
			Info    models.ProcessingInfo `json:"processingInfo"`
		}{Payload: out.Payload, Info: out.Info})
	default:
		fmt.Println(out.Payload)
		return nil
	}
}

// buildProcessor wires config, logging, cache, and engine for a single
// invocation. Every command that runs the engine goes through here.
func buildProcessor(c *cli.Context) (*cache.Processor, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("invalid configuration: %w", err)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Pretty)
	logger := logging.NewRunLogger()

	var store cache.Cache
	if cfg.Cache.Enabled {
		lru, err := cache.NewLRU(cfg.Cache.Size)
		if err != nil {
			return nil, zerolog.Logger{}, err
		}
		store = lru
	}

	engine := diff.NewEngine(cfg.EngineOptions())
	return cache.NewProcessor(engine, store), logger, nil
}

func readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read diff: %w", err)
	}
	return string(data), nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
