package anycast

import (
	"github.com/spf13/cast"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/intcast"
)

// ToInt converts v to an int, rejecting out-of-range values.
func ToInt(v any) (int, error) { return narrow[int](v) }

// ToInt8 converts v to an int8, rejecting out-of-range values.
func ToInt8(v any) (int8, error) { return narrow[int8](v) }

// ToInt16 converts v to an int16, rejecting out-of-range values.
func ToInt16(v any) (int16, error) { return narrow[int16](v) }

// ToInt32 converts v to an int32, rejecting out-of-range values.
func ToInt32(v any) (int32, error) { return narrow[int32](v) }

// ToInt64 converts v to an int64, rejecting out-of-range values.
func ToInt64(v any) (int64, error) { return narrow[int64](v) }

// ToUint converts v to a uint, rejecting negative and out-of-range values.
func ToUint(v any) (uint, error) { return narrow[uint](v) }

// ToUint8 converts v to a uint8, rejecting negative and out-of-range values.
func ToUint8(v any) (uint8, error) { return narrow[uint8](v) }

// ToUint16 converts v to a uint16, rejecting negative and out-of-range values.
func ToUint16(v any) (uint16, error) { return narrow[uint16](v) }

// ToUint32 converts v to a uint32, rejecting negative and out-of-range values.
func ToUint32(v any) (uint32, error) { return narrow[uint32](v) }

// ToUint64 converts v to a uint64, rejecting negative and out-of-range values.
func ToUint64(v any) (uint64, error) { return narrow[uint64](v) }

// narrow routes integer dynamic types through the checked matrix so
// that values outside int64 (large uint64) survive intact. Everything
// else is coerced by spf13/cast first, which bounds it to int64.
func narrow[D constraints.Integer](v any) (D, error) {
	switch n := v.(type) {
	case int:
		return intcast.ConvertE[D](n)
	case int8:
		return intcast.ConvertE[D](n)
	case int16:
		return intcast.ConvertE[D](n)
	case int32:
		return intcast.ConvertE[D](n)
	case int64:
		return intcast.ConvertE[D](n)
	case uint:
		return intcast.ConvertE[D](n)
	case uint8:
		return intcast.ConvertE[D](n)
	case uint16:
		return intcast.ConvertE[D](n)
	case uint32:
		return intcast.ConvertE[D](n)
	case uint64:
		return intcast.ConvertE[D](n)
	}
	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, err
	}
	return intcast.ConvertE[D](i)
}
