package reactive

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Equal reports whether writing newValue over oldValue is a no-op.
//
// Two primitives are equal when they hold the same value; numbers compare
// by value regardless of their Go type. Two composites are equal when their
// canonical JSON encodings match. A primitive never equals a composite, and
// composites that cannot be encoded never equal anything.
func Equal(oldValue, newValue any) bool {
	a, b := reflect.ValueOf(oldValue), reflect.ValueOf(newValue)
	switch {
	case isPrimitive(a) && isPrimitive(b):
		return primitiveEqual(a, b)
	case isPrimitive(a) || isPrimitive(b):
		return false
	}

	ja, err := json.Marshal(oldValue)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(newValue)
	if err != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func isPrimitive(v reflect.Value) bool {
	if isNil(v) {
		return true
	}
	switch v.Kind() {
	case reflect.Bool, reflect.String:
		return true
	}
	return isNumber(v)
}

func isNumber(v reflect.Value) bool {
	return isInt(v) || isUint(v) || isFloat(v)
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}

func primitiveEqual(a, b reflect.Value) bool {
	switch {
	case isNil(a) || isNil(b):
		return isNil(a) && isNil(b)
	case isNumber(a) && isNumber(b):
		return numberEqual(a, b)
	case a.Kind() != b.Kind():
		return false
	case a.Kind() == reflect.Bool:
		return a.Bool() == b.Bool()
	default:
		return a.String() == b.String()
	}
}

func numberEqual(a, b reflect.Value) bool {
	switch {
	case isInt(a) && isInt(b):
		return a.Int() == b.Int()
	case isUint(a) && isUint(b):
		return a.Uint() == b.Uint()
	case isInt(a) && isUint(b):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isUint(a) && isInt(b):
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	}
	return toFloat(a) == toFloat(b)
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}
