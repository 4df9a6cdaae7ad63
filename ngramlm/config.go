package ngramlm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the parameters of a training run.
type Config struct {
	Vocab     string `yaml:"vocab"`      // vocabulary file, required
	Train     string `yaml:"train"`      // training corpus, required
	Test      string `yaml:"test"`       // optional test corpus for perplexity
	BOS       string `yaml:"bos"`        // begin of sentence symbol
	EOS       string `yaml:"eos"`        // end of sentence symbol
	Unk       string `yaml:"unk"`        // unknown word symbol
	N         int    `yaml:"n"`          // n-gram order
	CountFile string `yaml:"count_file"` // optional count dump
	ModelFile string `yaml:"model_file"` // optional json model dump
	Threads   int    `yaml:"threads"`    // training worker count
}

// DefaultConfig returns a Config with the default symbols and order.
func DefaultConfig() *Config {
	return &Config{
		BOS:     "<s>",
		EOS:     "</s>",
		Unk:     "<UNK>",
		N:       3,
		Threads: 1,
	}
}

// LoadConfig reads a yaml config file on top of the defaults.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file (%v): %w", filePath, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file (%v): %w", filePath, err)
	}
	return cfg, nil
}

// Validate reports the first missing or invalid option. It runs before any
// file is opened or any counting starts.
func (cfg *Config) Validate() error {
	if cfg.Vocab == "" {
		return fmt.Errorf("config: vocab is required")
	}
	if cfg.Train == "" {
		return fmt.Errorf("config: train is required")
	}
	if cfg.N < 1 {
		return fmt.Errorf("config: n must be >= 1, got %v", cfg.N)
	}
	if cfg.Threads < 1 {
		return fmt.Errorf("config: threads must be >= 1, got %v", cfg.Threads)
	}
	return nil
}
