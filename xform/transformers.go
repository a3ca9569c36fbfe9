package xform

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidChoice is returned by OneOf when a value is not among the choices.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrInvalidLogLevel is returned when a log level string is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrNotNumeric is returned by ParseNumeric when T has no numeric kind.
	ErrNotNumeric = errors.New("not a numeric type")
)

// OneOf returns a transformer that validates the value is one of the allowed choices.
// Returns ErrInvalidChoice if the value is not in the list of choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v (expected one of %v)", ErrInvalidChoice, value, choices)
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// ParseNumeric parses a string into any numeric type, using the bit size of
// T so that values which do not fit are rejected rather than wrapped.
//
// Example:
//
//	v, err := xform.ParseNumeric[uint8]("300")  // error: value out of range
//	f, err := xform.ParseNumeric[float32]("1.5") // 1.5, nil
func ParseNumeric[T Numeric](value string) (T, error) { //nolint:ireturn
	typ := reflect.TypeFor[T]()
	bits := int(typ.Size()) * 8 //nolint:mnd
	value = strings.TrimSpace(value)

	switch typ.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		parsed, err := strconv.ParseInt(value, 10, bits)
		if err != nil {
			return 0, err
		}

		return T(parsed), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		parsed, err := strconv.ParseUint(value, 10, bits)
		if err != nil {
			return 0, err
		}

		return T(parsed), nil
	case reflect.Float32, reflect.Float64:
		parsed, err := strconv.ParseFloat(value, bits)
		if err != nil {
			return 0, err
		}

		return T(parsed), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrNotNumeric, typ)
	}
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-insensitive).
// Returns ErrInvalidLogLevel for unrecognized values.
func SlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
