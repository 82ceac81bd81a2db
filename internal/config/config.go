package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/devtools/internal/fixtures"
	"github.com/danmuck/devtools/internal/testrunner"
)

const DefaultPath = "devtools.toml"

type Config struct {
	RandStrings RandStringsConfig
	RunTests    RunTestsConfig
}

type RandStringsConfig struct {
	Iterations  int
	Length      int
	Source      string
	MaxAttempts int
}

type RunTestsConfig struct {
	Dir          string
	Memcheck     bool
	MemcheckTool string
}

type fileConfig struct {
	RandStrings struct {
		Iterations  int    `toml:"iterations"`
		Length      int    `toml:"length"`
		Source      string `toml:"source"`
		MaxAttempts int    `toml:"max_attempts"`
	} `toml:"randstrings"`
	RunTests struct {
		Dir          string `toml:"dir"`
		Memcheck     bool   `toml:"memcheck"`
		MemcheckTool string `toml:"memcheck_tool"`
	} `toml:"runtests"`
}

func Default() Config {
	return Config{
		RandStrings: RandStringsConfig{
			Iterations:  16,
			Length:      16,
			Source:      fixtures.DefaultSource,
			MaxAttempts: fixtures.DefaultMaxAttempts,
		},
		RunTests: RunTestsConfig{
			Dir:          testrunner.DefaultDir,
			MemcheckTool: testrunner.DefaultMemcheckTool,
		},
	}
}

// Load reads path over the defaults. Only keys present in the file
// override a default. When path is empty the default file is tried and its
// absence is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	optional := path == ""
	if optional {
		path = DefaultPath
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config parse failed (%s): unknown key %q", path, undecoded[0].String())
	}

	if meta.IsDefined("randstrings", "iterations") {
		cfg.RandStrings.Iterations = raw.RandStrings.Iterations
	}
	if meta.IsDefined("randstrings", "length") {
		cfg.RandStrings.Length = raw.RandStrings.Length
	}
	if meta.IsDefined("randstrings", "source") {
		cfg.RandStrings.Source = strings.TrimSpace(raw.RandStrings.Source)
	}
	if meta.IsDefined("randstrings", "max_attempts") {
		cfg.RandStrings.MaxAttempts = raw.RandStrings.MaxAttempts
	}
	if meta.IsDefined("runtests", "dir") {
		cfg.RunTests.Dir = strings.TrimSpace(raw.RunTests.Dir)
	}
	if meta.IsDefined("runtests", "memcheck") {
		cfg.RunTests.Memcheck = raw.RunTests.Memcheck
	}
	if meta.IsDefined("runtests", "memcheck_tool") {
		cfg.RunTests.MemcheckTool = strings.TrimSpace(raw.RunTests.MemcheckTool)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if err := ValidateRandStrings(cfg.RandStrings); err != nil {
		return fmt.Errorf("randstrings: %w", err)
	}
	if err := ValidateRunTests(cfg.RunTests); err != nil {
		return fmt.Errorf("runtests: %w", err)
	}
	return nil
}

func ValidateRandStrings(cfg RandStringsConfig) error {
	if cfg.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative")
	}
	if cfg.Length < 0 {
		return fmt.Errorf("length must not be negative")
	}
	if strings.TrimSpace(cfg.Source) == "" {
		return fmt.Errorf("source is required")
	}
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1")
	}
	return nil
}

func ValidateRunTests(cfg RunTestsConfig) error {
	if strings.TrimSpace(cfg.Dir) == "" {
		return fmt.Errorf("dir is required")
	}
	if cfg.Memcheck && strings.TrimSpace(cfg.MemcheckTool) == "" {
		return fmt.Errorf("memcheck_tool required when memcheck is enabled")
	}
	return nil
}
