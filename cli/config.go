// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/crap0101/files-stuff/unit"
)

// Config is the persisted configuration of the files-stuff tools.
type Config struct {
	// Standard names the default byte-quantity standard, "SI", "IEC" or
	// "MEM".
	Standard string `json:"standard"`
	// HashAlgo is the default digest algorithm.
	HashAlgo string `json:"hash_algo"`
	// BlockSize is the hashing read granularity, as a quantity string
	// of the configured standard, e.g. "64KiB".
	BlockSize string `json:"block_size"`
}

// DefaultConfig returns the configuration used when none is stored.
func DefaultConfig() Config {
	return Config{
		Standard:  "IEC",
		HashAlgo:  "sha256",
		BlockSize: "64KiB",
	}
}

// ResolveStandard maps the configured standard name to its registry
// instance; an empty name means IEC.
func (c Config) ResolveStandard() (*unit.Standard, error) {
	if c.Standard == "" {
		return unit.Binary, nil
	}
	return unit.StandardByName(c.Standard)
}

// ResolveBlockSize parses the configured block size down to bytes.
// Zero (no configured size) lets callers pick their own default.
func (c Config) ResolveBlockSize() (int, error) {
	if c.BlockSize == "" {
		return 0, nil
	}

	std, err := c.ResolveStandard()
	if err != nil {
		return 0, err
	}
	q, err := unit.Parse(c.BlockSize, std)
	if err != nil {
		return 0, err
	}
	return int(q.Bytes()), nil
}

// ConfigJSONLoader marshals the typed Config for a ConfigDir.
type ConfigJSONLoader struct{}

func (l *ConfigJSONLoader) Unmarshal(b []byte) (interface{}, error) {
	var config Config
	if err := json.Unmarshal(b, &config); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *ConfigJSONLoader) Marshal(obj interface{}) ([]byte, error) {
	switch config := obj.(type) {
	case Config:
		return json.MarshalIndent(config, "", "  ")
	case *Config:
		return json.MarshalIndent(config, "", "  ")
	default:
		return nil, fmt.Errorf("not a cli.Config: %T", obj)
	}
}
