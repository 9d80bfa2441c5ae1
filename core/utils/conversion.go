package utils

import (
	"fmt"
	"math"
	"strconv"
)

// ToString renders a decoded JSON value the way a user would read it.
// Whole floats drop their fraction so a numeric tag 7 becomes "7", not "7e+00".
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Truthy reports whether a decoded JSON value counts as set.
// Zero numbers, empty strings, empty collections, false and null are not.
func Truthy(val any) bool {
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

// Round rounds v to the given number of decimal places. The exact binary
// value is rounded and exact ties go to the even digit, so 0.15 (stored as
// 0.1499...) gives 0.1 and 0.25 gives 0.2.
func Round(v float64, places int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}
