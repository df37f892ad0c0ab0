// Package config loads and saves the emulator's execution-limit and
// tracing settings. It has no bearing on ISA semantics: every field here
// governs host-side behavior (how long Run is allowed to loop, where trace
// output goes), never what an instruction computes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the emulator's TOML-backed configuration.
type Config struct {
	Execution struct {
		MaxSteps uint64 `toml:"max_steps"`
		Trace    bool   `toml:"trace"`
	} `toml:"execution"`

	Trace struct {
		OutputFile       string `toml:"output_file"`
		IncludeRegisters bool   `toml:"include_registers"`
	} `toml:"trace"`
}

// Default returns a Config with the emulator's built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Execution.MaxSteps = 1_000_000
	cfg.Execution.Trace = false
	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.IncludeRegisters = true
	return cfg
}

// Path returns the platform-specific config file path:
// ~/.config/riscv32-emu/config.toml on Linux/macOS,
// %APPDATA%\riscv32-emu\config.toml on Windows.
func Path() string {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "riscv32-emu")

	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		dir = filepath.Join(home, ".config", "riscv32-emu")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "config.toml")
}

// Load loads configuration from the default config file, falling back to
// Default() if no file is present.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom loads configuration from the specified file.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
