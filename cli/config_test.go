// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crap0101/files-stuff/unit"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	std, err := config.ResolveStandard()
	require.NoError(t, err)
	assert.Same(t, unit.Binary, std)

	size, err := config.ResolveBlockSize()
	require.NoError(t, err)
	assert.Equal(t, 64*unit.KiB, size)
}

func TestConfigResolveStandard(t *testing.T) {
	std, err := Config{Standard: "SI"}.ResolveStandard()
	require.NoError(t, err)
	assert.Same(t, unit.Decimal, std)

	std, err = Config{}.ResolveStandard()
	require.NoError(t, err)
	assert.Same(t, unit.Binary, std)

	_, err = Config{Standard: "JEDEC"}.ResolveStandard()
	assert.Error(t, err)
}

func TestConfigResolveBlockSize(t *testing.T) {
	size, err := Config{Standard: "SI", BlockSize: "4kB"}.ResolveBlockSize()
	require.NoError(t, err)
	assert.Equal(t, 4000, size)

	size, err = Config{}.ResolveBlockSize()
	require.NoError(t, err)
	assert.Zero(t, size, "no configured size lets the caller pick")

	// Quantity strings follow the configured standard.
	_, err = Config{Standard: "SI", BlockSize: "4KiB"}.ResolveBlockSize()
	assert.Error(t, err)
}

func TestConfigJSONLoaderRoundTrip(t *testing.T) {
	loader := &ConfigJSONLoader{}
	config := Config{Standard: "MEM", HashAlgo: "sha1", BlockSize: "2KB"}

	b, err := loader.Marshal(config)
	require.NoError(t, err)

	back, err := loader.Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, config, back)

	_, err = loader.Marshal(42)
	assert.Error(t, err)
}
