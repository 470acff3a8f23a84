package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Josh-Zirena/git-commit-ai/internal/diff"
)

// Config represents the application configuration
type Config struct {
	Engine struct {
		MaxDirectSize       int  `koanf:"max_direct_size"`
		MaxChunkSize        int  `koanf:"max_chunk_size"`
		MaxTotalSize        int  `koanf:"max_total_size"`
		MaxFiles            int  `koanf:"max_files"`
		EnableSummarization bool `koanf:"enable_summarization"`
	} `koanf:"engine"`

	Cache struct {
		Enabled bool `koanf:"enabled"`
		Size    int  `koanf:"size"`
	} `koanf:"cache"`

	Log struct {
		Level  string `koanf:"level"`
		Pretty bool   `koanf:"pretty"`
	} `koanf:"log"`
}

// LoadConfig loads the configuration: documented defaults, then an
// optional TOML file, then GIT_COMMIT_AI_ environment overrides.
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	k.Load(confmap.Provider(map[string]interface{}{
		"engine.max_direct_size":      diff.DefaultMaxDirectSize,
		"engine.max_chunk_size":       diff.DefaultMaxChunkSize,
		"engine.max_total_size":       diff.DefaultMaxTotalSize,
		"engine.max_files":            diff.DefaultMaxFiles,
		"engine.enable_summarization": false,
		"cache.enabled":               false,
		"cache.size":                  64,
		"log.level":                   "info",
		"log.pretty":                  false,
	}, "."), nil)

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
	} else {
		defaultPaths := []string{"./git-commit-ai.toml", "$HOME/.git-commit-ai.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// GIT_COMMIT_AI_ENGINE_MAX_FILES=50 → engine.max_files, etc. Only the
	// section separator becomes a dot; key names keep their underscores.
	k.Load(env.Provider("GIT_COMMIT_AI_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "GIT_COMMIT_AI_"))
		for _, section := range []string{"engine_", "cache_", "log_"} {
			if strings.HasPrefix(s, section) {
				return strings.TrimSuffix(section, "_") + "." + strings.TrimPrefix(s, section)
			}
		}
		return s
	}), nil)

	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// EngineOptions maps the configuration onto engine options
func (c *Config) EngineOptions() diff.Options {
	return diff.Options{
		MaxDirectSize:       c.Engine.MaxDirectSize,
		MaxChunkSize:        c.Engine.MaxChunkSize,
		MaxTotalSize:        c.Engine.MaxTotalSize,
		MaxFiles:            c.Engine.MaxFiles,
		EnableSummarization: c.Engine.EnableSummarization,
	}
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sampleConfig := `# git-commit-ai configuration

[engine]
max_direct_size = 51200
max_chunk_size = 51200
max_total_size = 102400
max_files = 100
enable_summarization = false

[cache]
enabled = false
size = 64

[log]
level = "info"
pretty = false
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.Engine.MaxDirectSize <= 0 {
		return fmt.Errorf("engine.max_direct_size must be positive")
	}
	if config.Engine.MaxChunkSize <= 0 {
		return fmt.Errorf("engine.max_chunk_size must be positive")
	}
	if config.Engine.MaxTotalSize <= 0 {
		return fmt.Errorf("engine.max_total_size must be positive")
	}
	if config.Engine.MaxFiles <= 0 {
		return fmt.Errorf("engine.max_files must be positive")
	}
	if config.Cache.Enabled && config.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive when the cache is enabled")
	}
	return nil
}
