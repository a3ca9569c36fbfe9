// Package errors holds the sentinel errors shared by the vector packages and
// a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrIndexOutOfRange is returned by bounds-checked component access when
	// the index is not one of 0, 1, 2 or 3.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLossyConversion is returned when a component cannot be represented
	// exactly in the target element type.
	ErrLossyConversion = errors.New("lossy conversion")

	// ErrUnsupportedElement is returned when an operation needs a numeric
	// element type and the vector holds something else.
	ErrUnsupportedElement = errors.New("unsupported element type")

	// ErrComponentCount is returned when decoding a vector from a sequence
	// with the wrong number of items.
	ErrComponentCount = errors.New("wrong number of components")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when every failing component of a vector should be reported,
// not just the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
