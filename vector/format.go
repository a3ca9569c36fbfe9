package vector

import (
	"fmt"
	"reflect"
	"strconv"
)

// formatBufferSize is the initial scratch space for String. The buffer
// grows when needed, so large float64 values are never truncated.
const formatBufferSize = 50

// floatPrecision matches the default precision of C's %f.
const floatPrecision = 6

type elementFormat uint8

const (
	formatSigned elementFormat = iota
	formatUnsigned
	formatFloat32
	formatFloat64
	formatBool
	formatValue
)

// formatFor picks how elements of type T are rendered. Integer and float
// kinds get their natural decimal form; bool goes through the signed
// integer path as 0 or 1; everything without an integer representation
// falls back to %v.
func formatFor[T any]() elementFormat {
	switch reflect.TypeFor[T]().Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return formatSigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return formatUnsigned
	case reflect.Float32:
		return formatFloat32
	case reflect.Float64:
		return formatFloat64
	case reflect.Bool:
		return formatBool
	default:
		return formatValue
	}
}

func appendElement(buf []byte, elemFormat elementFormat, value reflect.Value) []byte {
	switch elemFormat {
	case formatSigned:
		return strconv.AppendInt(buf, value.Int(), 10)
	case formatUnsigned:
		return strconv.AppendUint(buf, value.Uint(), 10)
	case formatFloat32:
		return strconv.AppendFloat(buf, value.Float(), 'f', floatPrecision, 32)
	case formatFloat64:
		return strconv.AppendFloat(buf, value.Float(), 'f', floatPrecision, 64)
	case formatBool:
		if value.Bool() {
			return append(buf, '1')
		}

		return append(buf, '0')
	default:
		return fmt.Appendf(buf, "%v", value.Interface())
	}
}

func format[T any](name string, components ...T) string {
	elemFormat := formatFor[T]()

	buf := make([]byte, 0, formatBufferSize)
	buf = append(buf, name...)
	buf = append(buf, '(')

	for i := range components {
		if i > 0 {
			buf = append(buf, ',')
		}

		buf = appendElement(buf, elemFormat, reflect.ValueOf(&components[i]).Elem())
	}

	buf = append(buf, ')')

	return string(buf)
}
