// Package intcast provides checked conversions between all primitive
// integer types.
//
// Native Go conversions between integer types silently truncate or wrap
// when the value does not fit the destination. Every function in this
// package instead reports whether the value is exactly representable in
// the destination type, and only then converts:
//
//	n, ok := intcast.ToInt8(someInt64)    // ok == false when out of range
//	n, ok := intcast.Convert[uint16](v)   // any destination type
//	n, err := intcast.ToUint32E(v)        // error instead of comma-ok
//
// All ten primitive integer kinds are covered as both source and
// destination: int, int8, int16, int32, int64 and their unsigned
// counterparts. The word-sized kinds (int, uint) take their range from
// the build target, so the same call site behaves correctly on 32-bit
// and 64-bit platforms.
//
// Conversions are pure, never panic, never allocate on the success
// path, and are safe for concurrent use without coordination.
//
// For narrowing dynamically typed (any) values, see the anycast
// subpackage.
package intcast
