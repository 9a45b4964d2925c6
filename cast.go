package intcast

import (
	"golang.org/x/exp/constraints"
)

// Convert attempts to represent v exactly as destination type D. It
// returns the converted value and true when v lies within D's range,
// and zero and false otherwise. It never truncates, wraps or panics.
//
// The destination type is given explicitly; the source type is
// inferred:
//
//	n, ok := intcast.Convert[int8](someUint64)
//
// A bound check is performed only when the source kind's range is
// strictly wider than the destination's, decided by comparing the two
// maxima in float64 (see Kind.rangeMax). When the destination range is
// at least as wide, the conversion cannot overflow and the check is
// skipped. The value-level comparisons run in the int64/uint64 domain
// after the sign split, where every bound of every kind is exact.
func Convert[D, S constraints.Integer](v S) (D, bool) {
	src, dst := KindOf[S](), KindOf[D]()

	if v < 0 {
		if !dst.Signed() {
			return 0, false
		}
		if src.rangeMax() > dst.rangeMax() && int64(v) < dst.Min() {
			return 0, false
		}
		return D(v), true
	}
	if src.rangeMax() > dst.rangeMax() && uint64(v) > dst.Max() {
		return 0, false
	}
	return D(v), true
}

// Fits reports whether v is exactly representable as D.
func Fits[D, S constraints.Integer](v S) bool {
	_, ok := Convert[D, S](v)
	return ok
}

// ToInt attempts to represent v exactly as an int.
func ToInt[S constraints.Integer](v S) (int, bool) { return Convert[int](v) }

// ToInt8 attempts to represent v exactly as an int8.
func ToInt8[S constraints.Integer](v S) (int8, bool) { return Convert[int8](v) }

// ToInt16 attempts to represent v exactly as an int16.
func ToInt16[S constraints.Integer](v S) (int16, bool) { return Convert[int16](v) }

// ToInt32 attempts to represent v exactly as an int32.
func ToInt32[S constraints.Integer](v S) (int32, bool) { return Convert[int32](v) }

// ToInt64 attempts to represent v exactly as an int64.
func ToInt64[S constraints.Integer](v S) (int64, bool) { return Convert[int64](v) }

// ToUint attempts to represent v exactly as a uint.
func ToUint[S constraints.Integer](v S) (uint, bool) { return Convert[uint](v) }

// ToUint8 attempts to represent v exactly as a uint8.
func ToUint8[S constraints.Integer](v S) (uint8, bool) { return Convert[uint8](v) }

// ToUint16 attempts to represent v exactly as a uint16.
func ToUint16[S constraints.Integer](v S) (uint16, bool) { return Convert[uint16](v) }

// ToUint32 attempts to represent v exactly as a uint32.
func ToUint32[S constraints.Integer](v S) (uint32, bool) { return Convert[uint32](v) }

// ToUint64 attempts to represent v exactly as a uint64.
func ToUint64[S constraints.Integer](v S) (uint64, bool) { return Convert[uint64](v) }
