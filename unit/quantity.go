// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.

// Package unit represents byte quantities: a magnitude paired with a
// unit symbol under one of three measurement standards (Decimal,
// Binary, LegacyBinary). Quantities parse from human strings, convert
// across standards and combine with the arithmetic defined in arith.go.
package unit

import (
	goerrors "errors"
	"math"
	"strconv"

	"github.com/crap0101/files-stuff/errors"
)

// Quantity is a unit-aware numeric value: a magnitude expressed in its
// own unit (not necessarily bytes) under a fixed standard. It is a
// value type; every operation returns a new Quantity and never mutates
// its operands, with SetUnit as the single documented exception.
//
// The zero Quantity is not usable, obtain values from New, Parse or
// ParseInUnit.
type Quantity struct {
	value  float64
	symbol string
	std    *Standard
}

// New builds a Quantity of value expressed in the given unit. An empty
// unit means the standard's base symbol. The standard must be one of
// the three registered ones (structurally, so an equal copy works too)
// and the unit, when given, must belong to it.
func New(value float64, symbol string, std *Standard) (Quantity, error) {
	symbol, err := checkUnit(symbol, std)
	if err != nil {
		return Quantity{}, err
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return Quantity{}, errors.New(errors.KindOverflow, "<%v> is too big", value)
	}
	return Quantity{value: value, symbol: symbol, std: std}, nil
}

// Parse builds a Quantity from text, adopting the unit the text
// carries. "1KiB" under Binary has unit KiB and magnitude 1; text with
// no suffix is taken as a count of base units ("1024" is 1024 B). Text
// that fails suffixed parsing is retried as a bare number before
// giving up.
func Parse(text string, std *Standard) (Quantity, error) {
	if !registered(std) {
		return Quantity{}, errors.New(errors.KindConfiguration, "Unknown standard value: %v", std)
	}

	p, err := ParseQuantity(text, std)
	if err != nil {
		value, ferr := bareNumber(text, err)
		if ferr != nil {
			return Quantity{}, ferr
		}
		return Quantity{value: value, symbol: std.BaseSymbol(), std: std}, nil
	}

	exp := std.exponents[p.Unit]
	return Quantity{value: float64(p.Bytes) / exp, symbol: p.Unit, std: std}, nil
}

// ParseInUnit builds a Quantity from text expressed in the caller's
// unit. The text must not carry a unit suffix of its own: two
// conflicting unit indications are an error, not a guess.
func ParseInUnit(text, symbol string, std *Standard) (Quantity, error) {
	symbol, err := checkUnit(symbol, std)
	if err != nil {
		return Quantity{}, err
	}

	p, err := ParseQuantity(text, std)
	if err != nil {
		value, ferr := bareNumber(text, err)
		if ferr != nil {
			return Quantity{}, ferr
		}
		return Quantity{value: value, symbol: symbol, std: std}, nil
	}
	if p.HadSuffix {
		return Quantity{}, errors.New(errors.KindTypeMismatch,
			"Double unit indication: %q and %q", symbol, text)
	}

	// Suffix-less text counts the caller's unit directly, no rescale.
	return Quantity{value: float64(p.Bytes), symbol: symbol, std: std}, nil
}

func checkUnit(symbol string, std *Standard) (string, error) {
	if !registered(std) {
		return "", errors.New(errors.KindConfiguration, "Unknown standard value: %v", std)
	}
	if symbol == "" {
		return std.BaseSymbol(), nil
	}
	if !std.Contains(symbol) {
		return "", errors.New(errors.KindConfiguration, "Unknown unit: %q", symbol)
	}
	return symbol, nil
}

// bareNumber is the constructor fallback of Parse and ParseInUnit:
// retry the whole text as a plain number. Overflows from the parser
// keep their distinct kind.
func bareNumber(text string, perr error) (float64, error) {
	if errors.IsKind(perr, errors.KindOverflow) {
		return 0, perr
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if goerrors.Is(err, strconv.ErrRange) {
			return 0, errors.New(errors.KindOverflow, "<%s> is too big", text)
		}
		return 0, errors.New(errors.KindParse, "wrong value: <%s>", text)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.New(errors.KindOverflow, "<%s> is too big", text)
	}
	return f, nil
}

// Value returns the magnitude, expressed in the quantity's own unit.
func (q Quantity) Value() float64 {
	return q.value
}

// Unit returns the unit symbol.
func (q Quantity) Unit() string {
	return q.symbol
}

// Standard returns the quantity's standard.
func (q Quantity) Standard() *Standard {
	return q.std
}

// Exponent returns the multiplier of the quantity's unit, base^index.
func (q Quantity) Exponent() float64 {
	return q.std.exponents[q.symbol]
}

// Bytes returns the byte-equivalent: the magnitude rescaled to the
// base unit. It may be an approximation for magnitudes beyond float64
// integer precision.
func (q Quantity) Bytes() float64 {
	return q.value * q.Exponent()
}

// SetUnit reassigns the unit symbol, rescaling the magnitude so the
// byte-equivalent is unchanged: 2TiB becomes 2048GiB. Unknown symbols
// are rejected. This is the only mutating operation on a Quantity; a
// value shared across goroutines must be treated as exclusive-writer.
func (q *Quantity) SetUnit(symbol string) error {
	exp, err := q.std.Exponent(symbol)
	if err != nil {
		return err
	}
	if symbol != q.symbol {
		q.value = q.Bytes() / exp
		q.symbol = symbol
	}
	return nil
}

// Convert re-expresses the quantity under another standard and unit.
// An empty unit picks the symbol whose exponent is numerically closest
// to the current one, so 3MiB converted to Decimal lands on MB rather
// than kB or GB. Ties break on the first minimum in standard order.
func (q Quantity) Convert(std *Standard, symbol string) (Quantity, error) {
	if !registered(std) {
		return Quantity{}, errors.New(errors.KindConfiguration, "Unknown standard value: %v", std)
	}
	if symbol == "" {
		symbol = nearestSymbol(q.Exponent(), std)
	} else if !std.Contains(symbol) {
		return Quantity{}, errors.New(errors.KindConfiguration, "Unknown unit: %q", symbol)
	}

	return Quantity{value: q.Bytes() / std.exponents[symbol], symbol: symbol, std: std}, nil
}

// nearestSymbol returns the symbol of std whose exponent is closest to
// exp, first minimum wins.
func nearestSymbol(exp float64, std *Standard) string {
	best := std.symbols[0]
	bestDist := math.Abs(std.exponents[best] - exp)
	for _, sym := range std.symbols[1:] {
		if dist := math.Abs(std.exponents[sym] - exp); dist < bestDist {
			best, bestDist = sym, dist
		}
	}
	return best
}

// String renders the quantity as "<number><unit>". Integral magnitudes
// print with no decimals, others with two; normal magnitudes never use
// scientific notation and extreme ones degrade to a two significant
// digit form instead of failing.
func (q Quantity) String() string {
	return formatNumber(q.value) + q.symbol
}

// Above this threshold every float64 is integral and the digit string
// of %f stops carrying information.
const plainFormatLimit = 1e21

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case v != math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 2, 64)
	case math.Abs(v) < plainFormatLimit:
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'g', 2, 64)
	}
}
