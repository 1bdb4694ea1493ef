// Package logging builds the zerolog logger used by the server and the CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"` // "console" or "json"
	// File, when set, receives JSON logs rotated by size.
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" toml:"compress"`
}

func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		MaxSizeMB:  10,
		MaxBackups: 10,
	}
}

// New returns a logger writing to out and, if configured, to the rotated log file.
func New(c Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || c.Level == "" {
		level = zerolog.InfoLevel
	}

	var w io.Writer = out
	if c.Format != "json" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	if fw := c.fileWriter(); fw != nil {
		w = zerolog.MultiLevelWriter(w, fw)
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func (c Config) fileWriter() io.Writer {
	if c.File == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// Stderr is New(c, os.Stderr).
func Stderr(c Config) zerolog.Logger {
	return New(c, os.Stderr)
}
