// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration for the extraction engine. All
// tunables have defaults that reproduce the documented engine behavior; a
// YAML file can override them.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Configuration validation errors.
var (
	ErrInvalidRecordCap     = errors.New("extraction.record_cap must be at least 1")
	ErrInvalidIdentifierLen = errors.New("extraction.max_identifier_length must be at least 1")
	ErrInvalidTitleLen      = errors.New("extraction.max_title_length must be at least 1")
	ErrInvalidSampleSize    = errors.New("cleaning.sample_size must be at least 1")
	ErrInvalidDateThreshold = errors.New("cleaning.date_digit_threshold must be positive")
	ErrInvalidMinRoles      = errors.New("detection.min_roles must be at least 1")
	ErrEmptyExportKeyword   = errors.New("detection.export_tool_keywords must not contain empty entries")
	ErrInvalidLogLevel      = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete engine configuration.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Cleaning   CleaningConfig   `yaml:"cleaning"`
	Detection  DetectionConfig  `yaml:"detection"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ExtractionConfig bounds the extractor's output.
type ExtractionConfig struct {
	// RecordCap limits the returned record list. Aggregate statistics are
	// still computed over the full valid set.
	RecordCap           int `yaml:"record_cap"`
	MaxIdentifierLength int `yaml:"max_identifier_length"`
	MaxTitleLength      int `yaml:"max_title_length"`
}

// CleaningConfig tunes the structural cleaner.
type CleaningConfig struct {
	SampleSize         int     `yaml:"sample_size"`
	DateDigitThreshold float64 `yaml:"date_digit_threshold"`
}

// DetectionConfig tunes pricing-export detection.
type DetectionConfig struct {
	// MinRoles is the number of distinct resolved roles that marks a dataset
	// as a pricing export regardless of its filename.
	MinRoles int `yaml:"min_roles"`
	// ExportToolKeywords are matched case-insensitively against filenames.
	ExportToolKeywords []string `yaml:"export_tool_keywords"`
}

// LoggingConfig defines reporter behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the engine defaults.
func Default() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			RecordCap:           20,
			MaxIdentifierLength: 32,
			MaxTitleLength:      200,
		},
		Cleaning: CleaningConfig{
			SampleSize:         10,
			DateDigitThreshold: 4.0,
		},
		Detection: DetectionConfig{
			MinRoles: 3,
			ExportToolKeywords: []string{
				"helium", "jungle", "scout", "amzscout", "keepa",
				"viral", "cerebro", "xray", "blackbox", "sellerapp", "zonguru",
			},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Extraction.RecordCap < 1 {
		return ErrInvalidRecordCap
	}
	if c.Extraction.MaxIdentifierLength < 1 {
		return ErrInvalidIdentifierLen
	}
	if c.Extraction.MaxTitleLength < 1 {
		return ErrInvalidTitleLen
	}
	if c.Cleaning.SampleSize < 1 {
		return ErrInvalidSampleSize
	}
	if c.Cleaning.DateDigitThreshold <= 0 {
		return ErrInvalidDateThreshold
	}
	if c.Detection.MinRoles < 1 {
		return ErrInvalidMinRoles
	}
	for _, kw := range c.Detection.ExportToolKeywords {
		if kw == "" {
			return ErrEmptyExportKeyword
		}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
