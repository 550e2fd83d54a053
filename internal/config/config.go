// Package config provides configuration for the rules core.
package config

import (
	"fmt"

	"github.com/lgbarn/variant-core/internal/errors"
)

// Default board dimensions.
const (
	DefaultFiles = 8
	DefaultRanks = 8
)

// Config holds all configuration for boards and query evaluation.
type Config struct {
	Board *BoardConfig
	Query *QueryConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Board: NewBoardConfig(),
		Query: NewQueryConfig(),
	}
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return err
	}
	return c.Query.Validate()
}

// BoardConfig describes the board geometry. Coordinates are centred on the
// middle of the board, so an 8x8 board spans files and ranks -4..3.
type BoardConfig struct {
	Files int
	Ranks int
}

// NewBoardConfig creates a BoardConfig for a standard 8x8 board.
func NewBoardConfig() *BoardConfig {
	return &BoardConfig{
		Files: DefaultFiles,
		Ranks: DefaultRanks,
	}
}

// Validate checks that the geometry is usable. Both dimensions must be even
// and positive so the centred coordinate range is well defined.
func (b *BoardConfig) Validate() error {
	if b.Files <= 0 || b.Ranks <= 0 {
		return fmt.Errorf("board size %dx%d must be positive: %w",
			b.Files, b.Ranks, errors.ErrInvalidConfig)
	}
	if b.Files%2 != 0 || b.Ranks%2 != 0 {
		return fmt.Errorf("board size %dx%d must be even: %w",
			b.Files, b.Ranks, errors.ErrInvalidConfig)
	}
	return nil
}

// MinFile returns the lowest file coordinate.
func (b *BoardConfig) MinFile() int { return -b.Files / 2 }

// MaxFile returns the highest file coordinate.
func (b *BoardConfig) MaxFile() int { return b.Files/2 - 1 }

// MinRank returns the lowest rank coordinate.
func (b *BoardConfig) MinRank() int { return -b.Ranks / 2 }

// MaxRank returns the highest rank coordinate.
func (b *BoardConfig) MaxRank() int { return b.Ranks/2 - 1 }

// Contains reports whether (file, rank) lies on the board.
func (b *BoardConfig) Contains(file, rank int) bool {
	return file >= b.MinFile() && file <= b.MaxFile() &&
		rank >= b.MinRank() && rank <= b.MaxRank()
}

// QueryConfig holds settings for batched sight queries.
type QueryConfig struct {
	Workers    int // Number of goroutines evaluating queries
	BufferSize int // Channel buffer between submitter and workers
}

// NewQueryConfig creates a QueryConfig with default values.
func NewQueryConfig() *QueryConfig {
	return &QueryConfig{
		Workers:    1,
		BufferSize: 10,
	}
}

// Validate checks that the query configuration is valid.
func (q *QueryConfig) Validate() error {
	if q.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w",
			q.Workers, errors.ErrInvalidConfig)
	}
	if q.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be at least 1: %w",
			q.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
