package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of ~/.config/commity.yaml. Pointer fields
// distinguish "not set" from an explicit zero so file values only override
// defaults when actually present.
type FileConfig struct {
	Provider       string         `yaml:"provider,omitempty"`
	Endpoint       string         `yaml:"endpoint,omitempty"`
	APIKey         string         `yaml:"api_key,omitempty"`
	Model          string         `yaml:"model,omitempty"`
	TimeoutSeconds *int           `yaml:"timeout_seconds,omitempty"`
	Temperature    *float64       `yaml:"temperature,omitempty"`
	MaxTokens      *int           `yaml:"max_tokens,omitempty"`
	Language       string         `yaml:"language,omitempty"`
	Emoji          *bool          `yaml:"emoji,omitempty"`
	CommitType     string         `yaml:"type,omitempty"`
	Extra          map[string]any `yaml:"extra,omitempty"`
}

// DefaultPath returns ~/.config/commity.yaml, or "" if the home directory
// cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "commity.yaml")
}

// Load reads the config file at path (DefaultPath when empty). A missing
// file is not an error; callers get a zero FileConfig.
func Load(path string) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		path = DefaultPath()
		if path == "" {
			return fc, nil
		}
	}

	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fc, nil
	}
	if err != nil {
		return fc, err
	}

	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// Save writes the config file at path (DefaultPath when empty), creating
// the parent directory if needed.
func Save(fc FileConfig, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	b, err := yaml.Marshal(fc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}
