package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/flexrate/core/metrics"
	"github.com/kilianp07/flexrate/infra/journal"
)

// EnvPrefix marks environment overrides, e.g. FLEXRATE_LOGGING__LEVEL=debug.
const EnvPrefix = "FLEXRATE_"

type Config struct {
	Input   InputConfig    `json:"input"`
	Rules   RulesConfig    `json:"rules"`
	Output  OutputConfig   `json:"output"`
	Logging LoggingConfig  `json:"logging"`
	Metrics metrics.Config `json:"metrics"`
	Journal journal.Config `json:"journal"`
	// StrictExit makes the command exit non-zero when the batch fails.
	StrictExit bool `json:"strict_exit"`
}

// Load reads the configuration file at path, applies environment overrides
// and fills defaults. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Environment overrides; the callback turns "__" into the "." koanf
	// splits nested keys on.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Input.SetDefaults()
	cfg.Rules.SetDefaults()
	cfg.Output.SetDefaults()
	cfg.Logging.SetDefaults()
	cfg.Journal.SetDefaults()
	if err := cfg.Input.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}
	if rediscovered(cfg.Input, cfg.Output) {
		return nil, fmt.Errorf("output files %s*%s would match the input pattern", cfg.Output.Prefix, cfg.Output.Extension)
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Journal.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOptional behaves like Load but falls back to defaults when the file
// does not exist.
func LoadOptional(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	return Load(path)
}
