package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownVariant is returned for variant IDs without an embedded default.
var ErrUnknownVariant = errors.New("config: unknown variant")

// Embedded returns the built-in configuration of a variant.
func Embedded(variant string) (Config, error) {
	data := GetDefaultYAML(variant)
	if data == nil {
		return Config{}, fmt.Errorf("%w %q", ErrUnknownVariant, variant)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		if variant == DefaultVariant {
			return Default(), nil // Fallback to hardcoded if embed fails
		}
		return Config{}, fmt.Errorf("config: cannot parse embedded %s: %w", variant, err)
	}
	return cfg, nil
}

// Load loads a variant's configuration and validates it.
// The embedded variant is the base; the first readable override on the search
// path is applied on top of it, so override files may be partial.
// Search order: customPath -> ~/.snake/configs/<variant>.yaml -> ./configs/<variant>.yaml
func Load(variant, customPath string) (Config, error) {
	if variant == "" {
		variant = DefaultVariant
	}

	cfg, err := Embedded(variant)
	if err != nil {
		return Config{}, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	filename := variant + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		override := cfg
		if err := yaml.Unmarshal(data, &override); err == nil {
			cfg = override
			break
		}
	}

	return cfg, cfg.Validate()
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
