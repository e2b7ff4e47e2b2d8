// Package config loads the salesman configuration: built-in defaults, an
// optional YAML file and environment overrides, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig            = "SALESMAN_CONFIG"
	EnvLogLevel          = "SALESMAN_LOG_LEVEL"
	EnvAlgorithm         = "SALESMAN_ALGORITHM"
	EnvTwoOptEps         = "SALESMAN_TWO_OPT_EPS"
	EnvTwoOptMaxPasses   = "SALESMAN_TWO_OPT_MAX_PASSES"
	EnvGeneratorSeed     = "SALESMAN_GENERATOR_SEED"
	EnvReportPath        = "SALESMAN_REPORT"
	defaultAlgorithmName = "mst"
)

var (
	// ErrReadConfig wraps failures to read or decode a configuration file.
	ErrReadConfig = errors.New("config: cannot load file")

	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Logging controls the zerolog logger.
type Logging struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// Solver selects the construction heuristic and tunes 2-opt.
type Solver struct {
	Algorithm       string  `yaml:"algorithm"`
	TwoOptEps       float64 `yaml:"two_opt_eps"`
	TwoOptMaxPasses int     `yaml:"two_opt_max_passes"`
}

// Generator holds defaults for the generate command.
type Generator struct {
	Count int     `yaml:"count"`
	Seed  uint64  `yaml:"seed"`
	XMax  float64 `yaml:"x_max"`
	YMax  float64 `yaml:"y_max"`
}

// Output holds result destinations.
type Output struct {
	// Report is the JSON report path; empty disables the report.
	Report string `yaml:"report"`
}

// Config is the full configuration tree.
type Config struct {
	Logging   Logging   `yaml:"logging"`
	Solver    Solver    `yaml:"solver"`
	Generator Generator `yaml:"generator"`
	Output    Output    `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Solver.Algorithm = defaultAlgorithmName
	c.Solver.TwoOptEps = 1e-12
	c.Solver.TwoOptMaxPasses = 0
	c.Generator.Count = 100
	c.Generator.Seed = 1
	c.Generator.XMax = 1000
	c.Generator.YMax = 1000
	c.Output.Report = ""
	return c
}

// Load starts from Default, merges the file named by SALESMAN_CONFIG if set
// and applies environment overrides. A missing or malformed file is an error.
func Load() (Config, error) {
	return LoadFile(os.Getenv(EnvConfig))
}

// LoadFile is Load with an explicit file path; an empty path skips the file.
func LoadFile(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("%w: %v", ErrReadConfig, err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
		}
	}
	applyEnv(&c)
	return c, c.Validate()
}

// Validate checks numeric ranges that the solver options would otherwise reject by panicking.
func (c Config) Validate() error {
	switch {
	case !(c.Solver.TwoOptEps >= 0):
		return fmt.Errorf("%w: solver.two_opt_eps=%v", ErrInvalid, c.Solver.TwoOptEps)
	case c.Solver.TwoOptMaxPasses < 0:
		return fmt.Errorf("%w: solver.two_opt_max_passes=%d", ErrInvalid, c.Solver.TwoOptMaxPasses)
	case c.Generator.Count < 0:
		return fmt.Errorf("%w: generator.count=%d", ErrInvalid, c.Generator.Count)
	case !(c.Generator.XMax > 0) || !(c.Generator.YMax > 0):
		return fmt.Errorf("%w: generator bounds %vx%v", ErrInvalid, c.Generator.XMax, c.Generator.YMax)
	}
	return nil
}

// applyEnv overrides fields from the environment. Unparseable numbers are ignored.
func applyEnv(c *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		c.Solver.Algorithm = v
	}
	if v := os.Getenv(EnvTwoOptEps); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			c.Solver.TwoOptEps = f
		}
	}
	if v := os.Getenv(EnvTwoOptMaxPasses); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Solver.TwoOptMaxPasses = n
		}
	}
	if v := os.Getenv(EnvGeneratorSeed); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Generator.Seed = s
		}
	}
	if v := os.Getenv(EnvReportPath); v != "" {
		c.Output.Report = v
	}
}

// Marshal renders c as YAML, e.g. to seed a configuration file.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
