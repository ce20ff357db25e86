// Package config loads the optional YAML configuration file consumed
// by the ethscan CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"
)

// File holds the settings the CLI can read from disk. Zero values mean
// "not configured"; flags and environment variables take precedence.
type File struct {
	Network         string // etherscan network name (mainnet/ropsten/kovan/rinkeby)
	APIKey          string // etherscan API key
	CacheBackend    string // response cache backend (memory/file)
	CacheTTLSeconds int    // response cache time-to-live, in seconds
}

// FromYAML reads a File from a YAML representation.
func FromYAML(reader io.Reader) (*File, error) {
	var ymlFile yamlFile
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(&ymlFile); err != nil {
		return nil, fmt.Errorf("failed to decode configuration from YAML: %w", err)
	}

	return &File{
		Network:         ymlFile.Network,
		APIKey:          ymlFile.APIKey,
		CacheBackend:    ymlFile.CacheBackend,
		CacheTTLSeconds: ymlFile.CacheTTLSeconds,
	}, nil
}

// Load reads the configuration file at the given path. A missing file
// is not an error; it yields an empty File.
func Load(path string) (*File, error) {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}

		return nil, fmt.Errorf("failed to open configuration file '%s': %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return FromYAML(file)
}

// yamlFile is an internal struct for YAML serialization.
type yamlFile struct {
	Network         string `yaml:"network"`
	APIKey          string `yaml:"api_key"`
	CacheBackend    string `yaml:"cache_backend"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}
