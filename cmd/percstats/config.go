package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds run settings that may come from a YAML file.
// Command-line flags override any value set here.
//
// Example file:
//
//	seed: 42
//	workers: 4
//	strategy: shuffle
//	log_level: debug
//	metrics_file: /tmp/percstats.prom
type Config struct {
	Seed        *int64 `yaml:"seed"`
	Workers     int    `yaml:"workers"`
	Strategy    string `yaml:"strategy"`
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
}

// defaultConfig returns the settings used when neither file nor flag sets a value.
func defaultConfig() Config {
	return Config{
		Strategy: "rejection",
		LogLevel: "warn",
	}
}

// loadConfig decodes path over the defaults. Unknown keys are rejected;
// an empty file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
