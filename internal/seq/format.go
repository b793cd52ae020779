package seq

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Format returns the string form of a scalar element as used by join and the default sort
// order. nil has no value and formats as "". Numbers format without exponents between 1e-7 and
// 1e21, NaN as "NaN" and infinities as "Infinity" and "-Infinity". Types implementing fmt.Stringer
// use their String() method. Containers are handled by the caller.
func Format(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return ""
		}
	}

	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return FormatFloat(x, 64)
	case float32:
		return FormatFloat(float64(x), 32)
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return FormatFloat(rv.Float(), 32)
	case reflect.Float64:
		return FormatFloat(rv.Float(), 64)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	}
	return fmt.Sprint(v)
}

// FormatFloat formats f the way numbers are converted to strings when joined.
func FormatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-7 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return trimExponent(strconv.FormatFloat(f, 'g', -1, bitSize))
}

// trimExponent removes leading zeros from the exponent, "1e-08" becomes "1e-8".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i == -1 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}
