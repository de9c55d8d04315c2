// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crap0101/files-stuff/errors"
)

func TestStandardShapes(t *testing.T) {
	assert.EqualValues(t, 1000, Decimal.Base())
	assert.EqualValues(t, 1024, Binary.Base())
	assert.EqualValues(t, 1024, LegacyBinary.Base())

	assert.Len(t, Decimal.Symbols(), 11)
	assert.Len(t, Binary.Symbols(), 11)
	assert.Len(t, LegacyBinary.Symbols(), 5)

	assert.Equal(t, "B", Decimal.BaseSymbol())
	assert.Equal(t, "B", Binary.BaseSymbol())
	assert.Equal(t, "B", LegacyBinary.BaseSymbol())
}

func TestStandardExponents(t *testing.T) {
	for _, std := range standards {
		for i, sym := range std.Symbols() {
			exp, err := std.Exponent(sym)
			assert.NoError(t, err)
			assert.Equal(t, math.Pow(float64(std.Base()), float64(i)), exp,
				"%v: %s should be base^%d", std, sym, i)
		}
	}
}

func TestStandardExponentUnknown(t *testing.T) {
	_, err := Binary.Exponent("KB")
	assert.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.KindConfiguration))
	assert.Contains(t, err.Error(), "KB")

	assert.False(t, Binary.Contains("KB"))
	assert.True(t, LegacyBinary.Contains("KB"))
}

func TestStandardEqualIsStructural(t *testing.T) {
	clone := newStandard("IEC-clone", 1024,
		"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB", "RiB", "QiB")

	assert.True(t, Binary.Equal(clone), "identical shape should compare equal")
	assert.True(t, clone.Equal(Binary))
	assert.True(t, registered(clone), "an equal copy is interchangeable")

	// Same base, different symbols.
	assert.False(t, Binary.Equal(LegacyBinary))
	// Same symbol prefix family, different base.
	assert.False(t, Decimal.Equal(LegacyBinary))
	assert.False(t, Binary.Equal(nil))
}

func TestStandardByName(t *testing.T) {
	for name, expected := range map[string]*Standard{
		"SI": Decimal, "IEC": Binary, "MEM": LegacyBinary,
	} {
		std, err := StandardByName(name)
		assert.NoError(t, err)
		assert.Same(t, expected, std)
	}

	_, err := StandardByName("JEDEC")
	assert.True(t, errors.IsKind(err, errors.KindConfiguration))
	assert.Contains(t, err.Error(), "JEDEC")
}

func TestStandardSymbolsIsACopy(t *testing.T) {
	symbols := Binary.Symbols()
	symbols[0] = "mutated"
	assert.Equal(t, "B", Binary.Symbols()[0])
}
