// Package anycast narrows dynamically typed values to a concrete
// integer type with overflow checking.
//
// It is meant for config and decoder boundaries where numbers arrive
// as any (interface{}) values. When the dynamic type is one of the ten
// primitive integer types, the value goes straight through the checked
// conversion matrix of the parent package and the full range semantics
// apply. Any other dynamic type (floats, strings, booleans, ...) is
// first coerced to an integer by github.com/spf13/cast under its
// documented rules, then checked-narrowed to the destination type.
package anycast
