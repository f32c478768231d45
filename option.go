package trieset

import (
	"fmt"
	"reflect"
)

type Option[E comparable] func(s *trieSet[E])

// WithKeyFunc sets the function deriving an element's trie key. Elements
// with different keys are always distinct, whatever == says about them.
func WithKeyFunc[E comparable](fn func(e E) string) Option[E] {
	return func(s *trieSet[E]) {
		s.keyOf = fn
	}
}

// defaultKey maps nil to the empty string, uses String for fmt.Stringer and
// fmt.Sprint for everything else.
func defaultKey[E comparable](e E) string {
	v := any(e)
	if v == nil {
		return ""
	}
	if isNil(reflect.ValueOf(v)) {
		return ""
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

func isNil(rv reflect.Value) bool {
	if !nilable(rv.Kind()) {
		return false
	}
	return rv.IsNil()
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}
