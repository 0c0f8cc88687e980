package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

// EnvConfigPath names the environment variable consulted when --config is not passed.
const EnvConfigPath = "SARIF2MD_CONFIG"

type Config struct {
	Logger Logger `yaml:"logger"`
	Report Report `yaml:"report"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Report holds settings for the summary conversion. Pointers distinguish "unset" from false.
type Report struct {
	ExcludeSuppressed *bool `yaml:"exclude_suppressed"`
	ExitCode          *bool `yaml:"exit_code"`
}

func ValidateConfigPath(fs afero.Fs, path string) error {
	s, err := fs.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(fs afero.Fs, configPath string, data interface{}) error {
	if err := ValidateConfigPath(fs, configPath); err != nil {
		return err
	}

	file, err := fs.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func NewConfig(fs afero.Fs, configPath string) (*Config, error) {
	config := &Config{}

	if err := LoadYAML(fs, configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadConfig loads the config from configPath, falling back to $SARIF2MD_CONFIG.
// With neither set it returns an empty config, so every setting takes its default.
func LoadConfig(fs afero.Fs, configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}
	if configPath == "" {
		return &Config{}, nil
	}
	return NewConfig(fs, configPath)
}
