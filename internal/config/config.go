// Package config loads the run configuration of the gridtrim command from
// YAML. Every field is optional; missing fields keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridtrim/board"
	"github.com/katalvlaran/gridtrim/trim"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Mode names the reduction strategy.
const (
	ModeCascade = "cascade"
	ModeSweep   = "sweep"
)

// Config is the on-disk configuration. Example:
//
//	threshold: 4
//	occupied: "@"
//	empty: "."
//	strict: true
//	mode: cascade   # or sweep
//	order: lifo     # lifo | fifo | shuffled (cascade only)
//	seed: 7
//	max_rounds: 0   # sweep only, 0 = until stable
type Config struct {
	Threshold int    `yaml:"threshold"`
	Occupied  string `yaml:"occupied"`
	Empty     string `yaml:"empty"`
	Strict    bool   `yaml:"strict"`
	Mode      string `yaml:"mode"`
	Order     string `yaml:"order"`
	Seed      int64  `yaml:"seed"`
	MaxRounds int    `yaml:"max_rounds"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Threshold: trim.DefaultThreshold,
		Occupied:  string(board.DefaultOccupied),
		Empty:     string(board.DefaultEmpty),
		Strict:    false,
		Mode:      ModeCascade,
		Order:     trim.LIFO.String(),
		Seed:      1,
		MaxRounds: 0,
	}
}

// Parse decodes a YAML payload over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", filepath.Clean(path), err)
	}
	return cfg, nil
}

// Validate checks value ranges and token shapes.
func (c Config) Validate() error {
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold %d is negative", ErrInvalidConfig, c.Threshold)
	}
	if c.MaxRounds < 0 {
		return fmt.Errorf("%w: max_rounds %d is negative", ErrInvalidConfig, c.MaxRounds)
	}
	occ, err := token("occupied", c.Occupied)
	if err != nil {
		return err
	}
	emp, err := token("empty", c.Empty)
	if err != nil {
		return err
	}
	if occ == emp {
		return fmt.Errorf("%w: occupied and empty tokens are both %q", ErrInvalidConfig, occ)
	}
	switch c.Mode {
	case ModeCascade, ModeSweep:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if _, err := trim.ParseOrder(c.Order); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// BoardOptions translates the configuration into board.Parse options.
// The configuration must be valid.
func (c Config) BoardOptions() []board.Option {
	occ, _ := utf8.DecodeRuneInString(c.Occupied)
	emp, _ := utf8.DecodeRuneInString(c.Empty)
	opts := []board.Option{board.WithOccupiedToken(occ), board.WithEmptyToken(emp)}
	if c.Strict {
		opts = append(opts, board.WithStrict())
	}
	return opts
}

// TrimOptions translates the configuration into trim options.
// The configuration must be valid.
func (c Config) TrimOptions() []trim.Option {
	ord, _ := trim.ParseOrder(c.Order)
	return []trim.Option{
		trim.WithThreshold(c.Threshold),
		trim.WithOrder(ord),
		trim.WithSeed(c.Seed),
		trim.WithMaxRounds(c.MaxRounds),
	}
}

// token checks that s is exactly one non-whitespace rune.
func token(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s token %q must be a single character", ErrInvalidConfig, field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if unicode.IsSpace(r) {
		return 0, fmt.Errorf("%w: %s token cannot be whitespace", ErrInvalidConfig, field)
	}
	return r, nil
}
