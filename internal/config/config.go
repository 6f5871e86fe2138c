// Package config loads default generation settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gitlab.com/stephen-fox/cyclic/pattern"
)

// Config holds the defaults used when a command-line flag is
// not specified.
type Config struct {
	// Alphabet is the symbol set that patterns are made of.
	Alphabet string `yaml:"alphabet"`

	// Length is the length of each pattern in symbols.
	Length int `yaml:"length"`

	// Count is the number of patterns to generate.
	Count int `yaml:"count"`

	// Separator is placed between patterns when they are
	// printed on one line.
	Separator string `yaml:"separator"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Alphabet:  pattern.UpperLatin,
		Length:    4,
		Count:     1,
		Separator: " ",
	}
}

// fileConfig distinguishes keys that are absent from the file from
// keys that are explicitly set to a zero value.
type fileConfig struct {
	Alphabet  *string `yaml:"alphabet"`
	Length    *int    `yaml:"length"`
	Count     *int    `yaml:"count"`
	Separator *string `yaml:"separator"`
}

// Load reads the configuration file at path. Keys that the file
// omits keep their Default value. Keys that are present override
// the Default, including zero values (e.g., `separator: ""`).
// An empty path returns the Default configuration.
func Load(path string) (Config, error) {
	config := Default()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file - %w", err)
	}

	var fileConfig fileConfig
	err = yaml.Unmarshal(data, &fileConfig)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %q - %w", path, err)
	}

	config.merge(fileConfig)

	return config, nil
}

func (o *Config) merge(other fileConfig) {
	if other.Alphabet != nil {
		o.Alphabet = *other.Alphabet
	}

	if other.Length != nil {
		o.Length = *other.Length
	}

	if other.Count != nil {
		o.Count = *other.Count
	}

	if other.Separator != nil {
		o.Separator = *other.Separator
	}
}
