package intcast

import (
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Kind identifies one of the ten primitive integer kinds.
type Kind uint8

const (
	KindInt Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
)

type kindInfo struct {
	name   string
	bits   int
	signed bool
	min    int64
	max    uint64

	// max rounded to float64. Only its ordering across kinds is valid;
	// see Kind.rangeMax.
	maxFloat float64
}

var kindInfos = [...]kindInfo{
	KindInt:    {"int", bits.UintSize, true, math.MinInt, math.MaxInt, float64(math.MaxInt)},
	KindInt8:   {"int8", 8, true, math.MinInt8, math.MaxInt8, float64(math.MaxInt8)},
	KindInt16:  {"int16", 16, true, math.MinInt16, math.MaxInt16, float64(math.MaxInt16)},
	KindInt32:  {"int32", 32, true, math.MinInt32, math.MaxInt32, float64(math.MaxInt32)},
	KindInt64:  {"int64", 64, true, math.MinInt64, math.MaxInt64, float64(math.MaxInt64)},
	KindUint:   {"uint", bits.UintSize, false, 0, math.MaxUint, float64(math.MaxUint)},
	KindUint8:  {"uint8", 8, false, 0, math.MaxUint8, float64(math.MaxUint8)},
	KindUint16: {"uint16", 16, false, 0, math.MaxUint16, float64(math.MaxUint16)},
	KindUint32: {"uint32", 32, false, 0, math.MaxUint32, float64(math.MaxUint32)},
	KindUint64: {"uint64", 64, false, 0, math.MaxUint64, float64(math.MaxUint64)},
}

// Signed reports whether the kind represents negative values.
func (k Kind) Signed() bool { return kindInfos[k].signed }

// Bits returns the kind's width in bits. For KindInt and KindUint this
// is the build target's word size.
func (k Kind) Bits() int { return kindInfos[k].bits }

// Min returns the lowest value representable in the kind. It is 0 for
// unsigned kinds.
func (k Kind) Min() int64 { return kindInfos[k].min }

// Max returns the highest value representable in the kind.
func (k Kind) Max() uint64 { return kindInfos[k].max }

// String returns the kind's Go type name.
func (k Kind) String() string {
	if int(k) >= len(kindInfos) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindInfos[k].name
}

// rangeMax returns the kind's maximum rounded to float64, used to order
// kinds by range size without overflow (MaxUint64 rounds to 2^64, which
// no other maximum reaches). The ten maxima remain correctly ordered
// after rounding for widths up to 64 bits; a kind wider than that would
// need this property re-verified. Not valid for exact value comparison.
func (k Kind) rangeMax() float64 { return kindInfos[k].maxFloat }

// KindOf returns the Kind of the integer type T.
//
// The ten primitive types map to their named kinds. Defined types
// admitted by the constraint's ~ forms map to the fixed-width kind with
// the same range, so on a 64-bit target a type defined over int reports
// KindInt64. Conversion behavior is unaffected either way since the
// ranges coincide.
func KindOf[T constraints.Integer]() Kind {
	var z T
	switch any(z).(type) {
	case int:
		return KindInt
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint:
		return KindUint
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	}
	return probeKind(z)
}

// probeKind derives the kind of a defined integer type from its width
// and signedness.
func probeKind[T constraints.Integer](z T) Kind {
	width := 0
	for x := T(1); x != 0; x <<= 1 {
		width++
	}
	if z-1 < 0 { // signed
		switch width {
		case 8:
			return KindInt8
		case 16:
			return KindInt16
		case 32:
			return KindInt32
		default:
			return KindInt64
		}
	}
	switch width {
	case 8:
		return KindUint8
	case 16:
		return KindUint16
	case 32:
		return KindUint32
	default:
		return KindUint64
	}
}
