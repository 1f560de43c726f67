package reactive

import (
	"math"
	"reflect"
)

// SameValue is the default change detector: NaN equals NaN, +0 and -0 are
// distinct, and non-comparable values always count as changed. Floats are
// compared by bit pattern so signed zeros stay apart.
func SameValue[T any](a, b T) bool {
	switch av := any(a).(type) {
	case float64:
		bv, ok := any(b).(float64)
		if !ok {
			return false
		}
		if math.IsNaN(av) && math.IsNaN(bv) {
			return true
		}
		return math.Float64bits(av) == math.Float64bits(bv)
	case float32:
		bv, ok := any(b).(float32)
		if !ok {
			return false
		}
		if math.IsNaN(float64(av)) && math.IsNaN(float64(bv)) {
			return true
		}
		return math.Float32bits(av) == math.Float32bits(bv)
	}

	va := reflect.ValueOf(any(a))
	if !va.IsValid() {
		return !reflect.ValueOf(any(b)).IsValid()
	}
	if va.Type().Comparable() {
		return any(a) == any(b)
	}
	return false
}
