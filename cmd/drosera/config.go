package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/CTAG07/Drosera/pkg/source"
)

// GenerationConfig holds the defaults for the generation loop.
type GenerationConfig struct {
	Count       int     `json:"count"`       // sequences per run; 0 = until interrupted
	MaxLength   int     `json:"max_length"`  // token cap per sequence; 0 = walk until the end marker
	Temperature float64 `json:"temperature"` // 1.0 = plain weighted sampling
	TopK        int     `json:"top_k"`       // 0 = disabled
}

// Config is the top-level configuration struct.
type Config struct {
	LogLevel   string            `json:"log_level"`
	MinTokens  int               `json:"min_tokens"`
	DotPath    string            `json:"dot_path"`
	RowQuery   string            `json:"row_query"`
	Generation *GenerationConfig `json:"generation_config"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		MinTokens: source.DefaultMinTokens,
		DotPath:   "./markov.dot",
		RowQuery:  source.DefaultRowQuery,
		Generation: &GenerationConfig{
			Count:       0,
			MaxLength:   0,
			Temperature: 1.0,
			TopK:        0,
		},
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Log a warning instead of failing, as the run can still proceed with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
