package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const cascadeFile = "cascade.yaml"

// LoadCascade loads the cascade configuration.
// Search order: customPath -> ~/.cascade/configs/cascade.yaml ->
// ./configs/cascade.yaml -> embedded default -> DefaultCascadeConfig.
//
// Fields missing from a file keep their default values. Only an explicit
// customPath that cannot be read or parsed is an error; other sources are
// skipped silently.
func LoadCascade(customPath string) (CascadeConfig, error) {
	if customPath != "" {
		cfg, err := readCascade(customPath)
		if err != nil {
			return DefaultCascadeConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(cascadeFile); userCfgPath != "" {
		if cfg, err := readCascade(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := readCascade(filepath.Join("configs", cascadeFile)); err == nil {
		return cfg, nil
	}

	cfg := DefaultCascadeConfig()
	if err := yaml.Unmarshal(defaultCascadeYAML, &cfg); err != nil {
		return DefaultCascadeConfig(), nil
	}
	return cfg, nil
}

// ParseCascade decodes YAML on top of the defaults.
func ParseCascade(data []byte) (CascadeConfig, error) {
	cfg := DefaultCascadeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readCascade(path string) (CascadeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CascadeConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := ParseCascade(data)
	if err != nil {
		return CascadeConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cascade", "configs", filename)
}
