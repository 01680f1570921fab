// Package xint decodes and encodes XInt32, the compressed 32-bit numeric
// used throughout the EM_DataFile record formats for volume, amount, and
// other large integer fields.
//
// An XInt32 packs a signed mantissa and a power-of-16 exponent into a single
// uint32: the low 29 bits hold a two's-complement mantissa, and the high 3
// bits hold an exponent 0-7. The decoded value is mantissa * 16^exponent.
// This lets fields that are usually small but occasionally enormous (daily
// trade volume, say) fit in 4 bytes without the fixed range of a plain int32.
package xint

import "github.com/emdf-go/emdf/errs"

const (
	mantissaMask = 0x1FFFFFFF
	signBit      = 0x10000000
	exponentMax  = 7
)

// Raw is an undecoded XInt32 wire value, preserved alongside its decoded
// form so a record can round-trip its exact encoding (mantissa/exponent
// pair) instead of re-deriving a possibly different encoding of the same
// value on re-encode.
type Raw uint32

// Value decodes r to its signed integer value.
func (r Raw) Value() int64 {
	return Decode(uint32(r))
}

// Decode interprets raw as an XInt32 and returns its signed value.
//
// The low 29 bits are a two's-complement mantissa; the high 3 bits are an
// exponent 0-7. The result is mantissa * 16^exponent.
func Decode(raw uint32) int64 {
	base := int64(raw & mantissaMask)
	if base&signBit != 0 {
		base = -((^base + 1) & mantissaMask)
	}

	exp := raw >> 29
	for i := uint32(0); i < exp; i++ {
		base *= 16
	}

	return base
}

// Encode returns the XInt32 wire representation of value.
//
// It picks the smallest exponent (0-7) whose mantissa fits the 29-bit
// two's-complement range, so a value that fits without scaling always
// round-trips through exponent 0. ErrEncodeRange is returned if no exponent
// up to 7 represents value exactly: it is too large, or scaling it down
// would drop non-zero low hex digits.
func Encode(value int64) (uint32, error) {
	const mantissaMin = -(1 << 28)
	const mantissaMax = (1 << 28) - 1

	v := value
	var exp uint32
	for exp = 0; exp <= exponentMax; exp++ {
		if v >= mantissaMin && v <= mantissaMax {
			break
		}
		if exp == exponentMax || v%16 != 0 {
			return 0, errs.ErrEncodeRange
		}
		v /= 16
	}

	mantissa := uint32(v) & mantissaMask

	return mantissa | (exp << 29), nil
}
