// Package xform holds the element-type constraints used by the vector
// packages, plus small string transformers for parsing components and
// configuration values.
package xform

// Signed matches every signed integer type, including named types such as
// enums declared over int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer matches every integer type.
type Integer interface {
	Signed | Unsigned
}

// Float matches the two IEEE-754 floating point types.
type Float interface {
	~float32 | ~float64
}

// Numeric matches every builtin integer and floating point type.
type Numeric interface {
	Integer | Float
}

// Fixed matches numeric types whose size does not depend on the platform.
// These are the types that can be written to a portable binary stream.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
