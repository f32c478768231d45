package trieset

import (
	"iter"
	"reflect"
	"slices"

	"github.com/pkg/errors"
)

// Elements adapts a plain slice to Collection. Duplicates are kept.
type Elements[E comparable] []E

func Of[E comparable](elems ...E) Elements[E] {
	return Elements[E](elems)
}

func (c Elements[E]) Contains(e E) bool {
	return slices.Contains(c, e)
}

func (c Elements[E]) All() iter.Seq[E] {
	return slices.Values(c)
}

func (s *trieSet[E]) ToSlice() []E {
	res := make([]E, 0, s.Size())
	for e := range s.All() {
		res = append(res, e)
	}
	return res
}

// ToSliceOf stores the elements of s, in iteration order, into dst converted
// to T. dst is reused when its capacity suffices and the result always has
// the length of the set. It fails with ErrStoreType on the first element
// that is not a T; a nil element fits any T whose zero value is nil.
func ToSliceOf[T any, E comparable](s Set[E], dst []T) ([]T, error) {
	size := s.Size()
	if cap(dst) < size {
		dst = make([]T, size)
	} else {
		dst = dst[:size]
	}

	target := reflect.TypeFor[T]()
	idx := 0
	for e := range s.All() {
		v := any(e)
		if v == nil && nilable(target.Kind()) {
			var zero T
			dst[idx] = zero
			idx++
			continue
		}

		t, ok := v.(T)
		if !ok {
			return nil, errors.Wrapf(ErrStoreType, "element %v of type %T cannot be stored as %s", e, v, target)
		}
		dst[idx] = t
		idx++
	}
	return dst, nil
}
