package trieset

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/cespare/xxhash/v2"
)

func (s *trieSet[E]) Add(e E) bool {
	if !s.root.add(s.keyOf(e), e) {
		return false
	}
	s.mods++
	return true
}

func (s *trieSet[E]) Remove(e E) bool {
	if !s.root.remove(s.keyOf(e), e) {
		return false
	}
	s.mods++
	return true
}

func (s *trieSet[E]) Contains(e E) bool {
	return s.root.contains(s.keyOf(e), e)
}

func (s *trieSet[E]) AddAll(c Collection[E]) bool {
	changed := false
	for e := range c.All() {
		if s.Add(e) {
			changed = true
		}
	}
	return changed
}

func (s *trieSet[E]) RemoveAll(c Collection[E]) bool {
	if c == Collection[E](s) {
		changed := !s.IsEmpty()
		s.Clear()
		return changed
	}

	changed := false
	for e := range c.All() {
		if s.Remove(e) {
			changed = true
		}
	}
	return changed
}

// RetainAll removes, through the set's own iterator, every element that c
// does not contain.
func (s *trieSet[E]) RetainAll(c Collection[E]) bool {
	changed := false
	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if c.Contains(e) {
			continue
		}
		if it.Remove() == nil {
			changed = true
		}
	}
	return changed
}

func (s *trieSet[E]) ContainsAll(c Collection[E]) bool {
	for e := range c.All() {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// Size counts the elements with a full iteration; nodes keep no counters.
func (s *trieSet[E]) Size() int {
	size := 0
	for it := s.Iterator(); it.HasNext(); size++ {
		if _, err := it.Next(); err != nil {
			break
		}
	}
	return size
}

func (s *trieSet[E]) IsEmpty() bool {
	return !s.Iterator().HasNext()
}

func (s *trieSet[E]) Clear() {
	s.root.clear()
	s.mods++
}

// All yields the elements in iteration order. Removing elements while ranging
// over All is not supported; use Iterator().Remove instead.
func (s *trieSet[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.root.forEach(func(v interface{}) bool {
			return yield(elemOf[E](v))
		})
	}
}

// ForEachPrefix calls fn for every element whose key starts with prefix,
// in iteration order, until fn returns false.
func (s *trieSet[E]) ForEachPrefix(prefix string, fn func(e E) bool) {
	s.root.forEachPrefix(prefix, func(v interface{}) bool {
		return fn(elemOf[E](v))
	})
}

// Equal reports whether s and other hold the same elements. A collection
// that is not a Set must also be free of duplicates to be equal.
func (s *trieSet[E]) Equal(other Collection[E]) bool {
	if o, ok := other.(Set[E]); ok {
		return s.ContainsAll(o) && o.ContainsAll(s)
	}

	for e := range s.All() {
		if !other.Contains(e) {
			return false
		}
	}

	seen := make(map[E]struct{})
	for e := range other.All() {
		if _, dup := seen[e]; dup {
			return false
		}
		seen[e] = struct{}{}
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

// Hash is independent of iteration order and of the trie shape, so equal sets
// hash equally.
func (s *trieSet[E]) Hash() uint64 {
	h := uint64(hashSeed)
	for e := range s.All() {
		h += hashMultiplier * xxhash.Sum64String(s.keyOf(e))
	}
	return h
}

func (s *trieSet[E]) Stats() Stats {
	var st Stats
	s.root.stats(0, &st)
	return st
}

func (s *trieSet[E]) WriteTree(w io.Writer) error {
	return s.root.writeTree(w, "", 0)
}

func (s *trieSet[E]) Validate() error {
	return s.root.validate("")
}

func (s *trieSet[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for e := range s.All() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, e)
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}
