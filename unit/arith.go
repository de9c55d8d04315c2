// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"math"

	"github.com/crap0101/files-stuff/errors"
)

// Binary arithmetic follows one rule: the result keeps the left
// operand's unit and standard. The right operand may be another
// Quantity, which must share the standard and is rescaled into the
// left operand's exponent first, or any Go numeric type, which is
// taken to be already expressed in the left operand's unit:
//
//	q, _ := unit.New(2, "TiB", unit.Binary)
//	r, _ := q.Mul(3) // 6TiB
//
// Anything else is a type mismatch. Every operation returns a new
// value; operands are never mutated.

// rhs resolves the right operand of op into the left operand's unit
// terms.
func (q Quantity) rhs(op string, other interface{}) (float64, error) {
	switch o := other.(type) {
	case Quantity:
		if !q.std.Equal(o.std) {
			return 0, errors.New(errors.KindTypeMismatch,
				"%q not supported between standards %v and %v", op, q.std, o.std)
		}
		return o.Bytes() / q.Exponent(), nil
	case int:
		return float64(o), nil
	case int8:
		return float64(o), nil
	case int16:
		return float64(o), nil
	case int32:
		return float64(o), nil
	case int64:
		return float64(o), nil
	case uint:
		return float64(o), nil
	case uint8:
		return float64(o), nil
	case uint16:
		return float64(o), nil
	case uint32:
		return float64(o), nil
	case uint64:
		return float64(o), nil
	case float32:
		return float64(o), nil
	case float64:
		return o, nil
	default:
		return 0, errors.New(errors.KindTypeMismatch,
			"%q not supported between Quantity and %T", op, other)
	}
}

// with returns a new Quantity of the same unit and standard.
func (q Quantity) with(value float64) Quantity {
	return Quantity{value: value, symbol: q.symbol, std: q.std}
}

// Add returns q + other.
func (q Quantity) Add(other interface{}) (Quantity, error) {
	n, err := q.rhs("+", other)
	if err != nil {
		return Quantity{}, err
	}
	return q.with(q.value + n), nil
}

// Sub returns q - other. Negative byte quantities do not mean much by
// themselves but are useful as intermediate results, so they are
// allowed.
func (q Quantity) Sub(other interface{}) (Quantity, error) {
	n, err := q.rhs("-", other)
	if err != nil {
		return Quantity{}, err
	}
	return q.with(q.value - n), nil
}

// Mul returns q * other.
func (q Quantity) Mul(other interface{}) (Quantity, error) {
	n, err := q.rhs("*", other)
	if err != nil {
		return Quantity{}, err
	}
	return q.with(q.value * n), nil
}

// Div returns q / other, real division. Division by zero follows
// float64 semantics and yields a non-finite magnitude.
func (q Quantity) Div(other interface{}) (Quantity, error) {
	n, err := q.rhs("/", other)
	if err != nil {
		return Quantity{}, err
	}
	return q.with(q.value / n), nil
}

// FloorDiv returns q // other, division truncated towards negative
// infinity.
func (q Quantity) FloorDiv(other interface{}) (Quantity, error) {
	n, err := q.rhs("//", other)
	if err != nil {
		return Quantity{}, err
	}
	return q.with(math.Floor(q.value / n)), nil
}

// Mod returns q % other. The result takes the sign of the dividend.
func (q Quantity) Mod(other interface{}) (Quantity, error) {
	n, err := q.rhs("%", other)
	if err != nil {
		return Quantity{}, err
	}
	return q.with(math.Mod(q.value, n)), nil
}

// Pow returns q ** other.
func (q Quantity) Pow(other interface{}) (Quantity, error) {
	n, err := q.rhs("**", other)
	if err != nil {
		return Quantity{}, err
	}
	return q.with(math.Pow(q.value, n)), nil
}

// Reflected forms, for the non-commutative operators with a plain
// number on the left: the sole Quantity operand provides the unit and
// standard of the result. Reflected add and mul are omitted, both are
// commutative.

// SubFrom returns n - q.
func (q Quantity) SubFrom(n float64) Quantity {
	return q.with(n - q.value)
}

// DivFrom returns n / q.
func (q Quantity) DivFrom(n float64) Quantity {
	return q.with(n / q.value)
}

// FloorDivFrom returns n // q.
func (q Quantity) FloorDivFrom(n float64) Quantity {
	return q.with(math.Floor(n / q.value))
}

// ModFrom returns n % q.
func (q Quantity) ModFrom(n float64) Quantity {
	return q.with(math.Mod(n, q.value))
}

// Neg returns -q.
func (q Quantity) Neg() Quantity {
	return q.with(-q.value)
}

// Abs returns |q|.
func (q Quantity) Abs() Quantity {
	return q.with(math.Abs(q.value))
}

// Round rounds the magnitude to the nearest integer, half away from
// zero.
func (q Quantity) Round() Quantity {
	return q.with(math.Round(q.value))
}

// Trunc truncates the magnitude towards zero.
func (q Quantity) Trunc() Quantity {
	return q.with(math.Trunc(q.value))
}

// Floor rounds the magnitude towards negative infinity.
func (q Quantity) Floor() Quantity {
	return q.with(math.Floor(q.value))
}

// Ceil rounds the magnitude towards positive infinity.
func (q Quantity) Ceil() Quantity {
	return q.with(math.Ceil(q.value))
}

// compare orders two quantities on their byte-equivalents. Quantities
// of different standards do not order at all.
func (q Quantity) compare(op string, o Quantity) (int, error) {
	if !q.std.Equal(o.std) {
		return 0, errors.New(errors.KindTypeMismatch,
			"%q not supported between standards %v and %v", op, q.std, o.std)
	}

	qb, ob := q.Bytes(), o.Bytes()
	switch {
	case qb < ob:
		return -1, nil
	case qb > ob:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports whether two quantities denote the same byte count
// under the same standard. 1KiB equals 1024B under Binary, but never
// equals 1.024kB under Decimal: unlike the ordering methods, Equal
// degrades to false on a standard mismatch instead of failing,
// matching general equality contracts.
func (q Quantity) Equal(o Quantity) bool {
	return q.std.Equal(o.std) && q.Bytes() == o.Bytes()
}

// Less reports whether q < o. Comparing across standards is a type
// mismatch, not a definite answer.
func (q Quantity) Less(o Quantity) (bool, error) {
	c, err := q.compare("<", o)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessEqual reports whether q <= o.
func (q Quantity) LessEqual(o Quantity) (bool, error) {
	c, err := q.compare("<=", o)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Greater reports whether q > o.
func (q Quantity) Greater(o Quantity) (bool, error) {
	c, err := q.compare(">", o)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterEqual reports whether q >= o.
func (q Quantity) GreaterEqual(o Quantity) (bool, error) {
	c, err := q.compare(">=", o)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}
