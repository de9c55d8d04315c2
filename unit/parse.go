// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	goerrors "errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/crap0101/files-stuff/errors"
)

// Parsed is the result of ParseQuantity: the raw byte count, the unit
// symbol that was detected (the standard's base symbol when the text
// carried none) and whether the text carried one.
type Parsed struct {
	Bytes     int64
	Unit      string
	HadSuffix bool
}

var integerPattern = regexp.MustCompile(`^[0-9]+$`)

// maxInt64f is 2^63 as a float64, the first value that does not fit in
// an int64.
const maxInt64f = float64(1 << 63)

// ParseQuantity converts a textual quantity, optionally suffixed with
// one of std's unit symbols, into a raw byte count.
//
// Symbols are tried from the highest exponent down. The ordering is
// mandatory: symbols can be suffixes of one another ("B" terminates
// "KB"), so scanning from the smallest unit would detect the wrong
// one. On a match the numeric prefix is parsed as an integer when it
// looks like one, as a float otherwise, multiplied by the symbol's
// exponent and truncated to an integer count. Text with no suffix is
// parsed as a bare number already expressed in the base unit.
//
// Malformed numeric text fails with a parse error naming it; counts
// exceeding the representable range fail with a distinct overflow
// error.
func ParseQuantity(text string, std *Standard) (Parsed, error) {
	if std == nil {
		return Parsed{}, errors.New(errors.KindConfiguration, "Unknown standard: %v", std)
	}

	for i := len(std.symbols) - 1; i >= 0; i-- {
		sym := std.symbols[i]
		if len(text) > len(sym) && strings.HasSuffix(text, sym) {
			count, err := suffixedCount(text, text[:len(text)-len(sym)], std.exponents[sym])
			if err != nil {
				return Parsed{}, err
			}
			return Parsed{Bytes: count, Unit: sym, HadSuffix: true}, nil
		}
	}

	// No suffix anywhere: the whole text must be a bare number,
	// already in the base unit.
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if goerrors.Is(err, strconv.ErrRange) {
			return Parsed{}, errors.New(errors.KindOverflow, "<%s> is too big", text)
		}
		return Parsed{}, errors.New(errors.KindParse, "wrong value: <%s>", text)
	}

	count, err := truncateCount(f, text)
	if err != nil {
		return Parsed{}, err
	}
	return Parsed{Bytes: count, Unit: std.BaseSymbol(), HadSuffix: false}, nil
}

// suffixedCount parses the numeric prefix of text and scales it by the
// exponent of the matched symbol.
func suffixedCount(text, numstr string, exp float64) (int64, error) {
	if integerPattern.MatchString(numstr) {
		n, err := strconv.ParseInt(numstr, 10, 64)
		if err != nil {
			// Only a range error can happen, the pattern already
			// guarantees well-formed digits.
			return 0, errors.New(errors.KindOverflow, "<%s> is too big", numstr)
		}
		return integerCount(n, exp, numstr)
	}

	f, err := strconv.ParseFloat(numstr, 64)
	if err != nil {
		if goerrors.Is(err, strconv.ErrRange) {
			return 0, errors.New(errors.KindOverflow, "<%s> is too big", numstr)
		}
		return 0, errors.New(errors.KindParse, "string <%s>: wrong value: <%s>", text, numstr)
	}
	return truncateCount(f*exp, numstr)
}

// integerCount scales an exact integer prefix, staying in integer
// arithmetic whenever the exponent allows it.
func integerCount(n int64, exp float64, numstr string) (int64, error) {
	if exp >= maxInt64f {
		if n == 0 {
			return 0, nil
		}
		return 0, errors.New(errors.KindOverflow, "<%s> is too big", numstr)
	}

	expInt := int64(exp)
	if n != 0 && n > math.MaxInt64/expInt {
		return 0, errors.New(errors.KindOverflow, "<%s> is too big", numstr)
	}
	return n * expInt, nil
}

// truncateCount truncates a float byte count to int64, failing on
// values outside the representable range.
func truncateCount(f float64, numstr string) (int64, error) {
	if math.IsNaN(f) || f >= maxInt64f || f < -maxInt64f {
		return 0, errors.New(errors.KindOverflow, "<%s> is too big", numstr)
	}
	return int64(math.Trunc(f)), nil
}
