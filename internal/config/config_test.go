// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.Extraction.RecordCap)
	assert.Equal(t, 10, cfg.Cleaning.SampleSize)
	assert.Equal(t, 3, cfg.Detection.MinRoles)
	assert.Contains(t, cfg.Detection.ExportToolKeywords, "helium")
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricelens.yaml")
	content := []byte("extraction:\n  record_cap: 5\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Extraction.RecordCap)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, 200, cfg.Extraction.MaxTitleLength)
	assert.Equal(t, 3, cfg.Detection.MinRoles)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "zero record cap", mutate: func(c *Config) { c.Extraction.RecordCap = 0 }, wantErr: ErrInvalidRecordCap},
		{name: "zero identifier length", mutate: func(c *Config) { c.Extraction.MaxIdentifierLength = 0 }, wantErr: ErrInvalidIdentifierLen},
		{name: "zero title length", mutate: func(c *Config) { c.Extraction.MaxTitleLength = 0 }, wantErr: ErrInvalidTitleLen},
		{name: "zero sample size", mutate: func(c *Config) { c.Cleaning.SampleSize = 0 }, wantErr: ErrInvalidSampleSize},
		{name: "negative date threshold", mutate: func(c *Config) { c.Cleaning.DateDigitThreshold = -1 }, wantErr: ErrInvalidDateThreshold},
		{name: "zero min roles", mutate: func(c *Config) { c.Detection.MinRoles = 0 }, wantErr: ErrInvalidMinRoles},
		{name: "empty keyword", mutate: func(c *Config) { c.Detection.ExportToolKeywords = []string{""} }, wantErr: ErrEmptyExportKeyword},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "verbose" }, wantErr: ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}
