// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"github.com/crap0101/files-stuff/errors"
)

// Standard is a fixed unit system: a base multiplier between adjacent
// units and an ordered list of unit symbols, index 0 being the
// unprefixed byte symbol. The three instances Decimal, Binary and
// LegacyBinary are built once at package initialization and never
// mutated afterwards.
type Standard struct {
	name    string
	base    int64
	symbols []string
	// exponents maps each symbol to base^index. Values are float64
	// because the upper decimal tiers (RB, QB) exceed int64.
	exponents map[string]float64
}

var (
	// Decimal is the SI standard: powers of 1000.
	Decimal = newStandard("SI", 1000,
		"B", "kB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB", "RB", "QB")

	// Binary is the IEC standard: powers of 1024.
	Binary = newStandard("IEC", 1024,
		"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB", "RiB", "QiB")

	// LegacyBinary is the old memory-style convention: powers of 1024
	// behind SI-looking symbols, five tiers only.
	LegacyBinary = newStandard("MEM", 1024,
		"B", "KB", "MB", "GB", "TB")

	standards = []*Standard{Decimal, Binary, LegacyBinary}
)

func newStandard(name string, base int64, symbols ...string) *Standard {
	exponents := make(map[string]float64, len(symbols))
	exp := float64(1)
	for _, sym := range symbols {
		exponents[sym] = exp
		exp *= float64(base)
	}

	return &Standard{
		name:      name,
		base:      base,
		symbols:   symbols,
		exponents: exponents,
	}
}

// Name returns the conventional name of the standard, e.g. "IEC".
func (s *Standard) Name() string {
	return s.name
}

// Base returns the multiplier between adjacent units (1000 or 1024).
func (s *Standard) Base() int64 {
	return s.base
}

// Symbols returns the ordered unit symbols. The returned slice is a
// copy, the standard itself stays immutable.
func (s *Standard) Symbols() []string {
	symbols := make([]string, len(s.symbols))
	copy(symbols, s.symbols)
	return symbols
}

// BaseSymbol returns the unprefixed unit symbol.
func (s *Standard) BaseSymbol() string {
	return s.symbols[0]
}

// Exponent returns base^index for the given symbol.
func (s *Standard) Exponent(symbol string) (float64, error) {
	exp, ok := s.exponents[symbol]
	if !ok {
		return 0, errors.New(errors.KindConfiguration, "Unknown unit: %q", symbol)
	}
	return exp, nil
}

// Contains reports whether symbol belongs to the standard.
func (s *Standard) Contains(symbol string) bool {
	_, ok := s.exponents[symbol]
	return ok
}

// Equal compares standards structurally, by base and symbol sequence.
// Two independently built standards with the same shape are
// interchangeable; identity never matters.
func (s *Standard) Equal(other *Standard) bool {
	if s == other {
		return s != nil
	}
	if s == nil || other == nil {
		return false
	}
	if s.base != other.base || len(s.symbols) != len(other.symbols) {
		return false
	}
	for i, sym := range s.symbols {
		if other.symbols[i] != sym {
			return false
		}
	}
	return true
}

func (s *Standard) String() string {
	return s.name
}

// StandardByName returns the fixed standard with the given
// conventional name: "SI", "IEC" or "MEM".
func StandardByName(name string) (*Standard, error) {
	for _, std := range standards {
		if std.name == name {
			return std, nil
		}
	}
	return nil, errors.New(errors.KindConfiguration, "Unknown standard: %q", name)
}

// registered reports whether std matches one of the three fixed
// standards, structurally.
func registered(std *Standard) bool {
	for _, known := range standards {
		if known.Equal(std) {
			return true
		}
	}
	return false
}
