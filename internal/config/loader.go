package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Locate returns the file a config would be loaded from.
// Search order: opts.Path -> ~/.arcade/configs/<name>.yaml -> ./configs/<name>.yaml.
// Returns "" when only the embedded default applies.
func Locate(name string, opts Options) string {
	if opts.Path != "" {
		return opts.Path
	}
	filename := name + ".yaml"
	if p := userConfigPath(filename); p != "" && fileExists(p) {
		return p
	}
	if p := filepath.Join("configs", filename); fileExists(p) {
		return p
	}
	return ""
}

// load fills cfg from the first config source that exists.
// An explicit path must exist and parse. A discovered file that can be read
// must parse too; unreadable candidates are skipped.
func load(name string, opts Options, cfg any) error {
	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", opts.Path, err)
		}
		if err := unmarshalOver(name, data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", opts.Path, err)
		}
		return nil
	}

	filename := name + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := unmarshalOver(name, data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", p, err)
		}
		return nil
	}

	data, err := Default(name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: embedded %s is invalid: %w", name, err)
	}
	return nil
}

// unmarshalOver decodes data on top of the embedded default so user files
// only need the keys they change.
func unmarshalOver(name string, data []byte, cfg any) error {
	if def, err := Default(name); err == nil {
		if err := yaml.Unmarshal(def, cfg); err != nil {
			return err
		}
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

func presetOrNormal(p DifficultyPreset) DifficultyPreset {
	if p == "" {
		return DifficultyNormal
	}
	return p
}
