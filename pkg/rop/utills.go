package rop

import "reflect"

// IsNil reports whether i holds no usable value: a nil interface, or a nil
// pointer, func or channel. Nil slices and maps are valid empty
// collections in Go and are not treated as absent.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}
