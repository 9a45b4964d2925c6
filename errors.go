package intcast

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange indicates a value outside the destination kind's
// representable range. It covers overflow, underflow and negative
// values targeting an unsigned kind.
type ErrOutOfRange struct {
	// Value is the decimal rendering of the rejected source value.
	Value string
	// Kind is the destination kind that could not represent it.
	Kind Kind
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("value %s out of range for %s", e.Value, e.Kind)
}

// ConvertE is Convert with an error result instead of comma-ok. On
// failure the returned error is always *ErrOutOfRange.
func ConvertE[D, S constraints.Integer](v S) (D, error) {
	d, ok := Convert[D, S](v)
	if !ok {
		return 0, &ErrOutOfRange{Value: fmt.Sprintf("%d", v), Kind: KindOf[D]()}
	}
	return d, nil
}

// ToIntE is ToInt with an error result instead of comma-ok.
func ToIntE[S constraints.Integer](v S) (int, error) { return ConvertE[int](v) }

// ToInt8E is ToInt8 with an error result instead of comma-ok.
func ToInt8E[S constraints.Integer](v S) (int8, error) { return ConvertE[int8](v) }

// ToInt16E is ToInt16 with an error result instead of comma-ok.
func ToInt16E[S constraints.Integer](v S) (int16, error) { return ConvertE[int16](v) }

// ToInt32E is ToInt32 with an error result instead of comma-ok.
func ToInt32E[S constraints.Integer](v S) (int32, error) { return ConvertE[int32](v) }

// ToInt64E is ToInt64 with an error result instead of comma-ok.
func ToInt64E[S constraints.Integer](v S) (int64, error) { return ConvertE[int64](v) }

// ToUintE is ToUint with an error result instead of comma-ok.
func ToUintE[S constraints.Integer](v S) (uint, error) { return ConvertE[uint](v) }

// ToUint8E is ToUint8 with an error result instead of comma-ok.
func ToUint8E[S constraints.Integer](v S) (uint8, error) { return ConvertE[uint8](v) }

// ToUint16E is ToUint16 with an error result instead of comma-ok.
func ToUint16E[S constraints.Integer](v S) (uint16, error) { return ConvertE[uint16](v) }

// ToUint32E is ToUint32 with an error result instead of comma-ok.
func ToUint32E[S constraints.Integer](v S) (uint32, error) { return ConvertE[uint32](v) }

// ToUint64E is ToUint64 with an error result instead of comma-ok.
func ToUint64E[S constraints.Integer](v S) (uint64, error) { return ConvertE[uint64](v) }
