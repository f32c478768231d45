// Package chainset implements a persistent set as a chain of add and remove
// links over an empty base. Links are never modified, so a Snapshot shares
// the whole chain with the set it was taken from. Membership, size and
// iteration walk the chain from the newest link, which makes them O(n) in
// the number of operations recorded.
package chainset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/e11jah/trieset"
)

type link[E comparable] struct {
	elem  E
	added bool
	rest  *link[E]
}

// Set is not safe for concurrent mutation; snapshots may be read freely.
type Set[E comparable] struct {
	head *link[E]
}

func New[E comparable]() *Set[E] {
	return &Set[E]{}
}

func (s *Set[E]) Add(e E) bool {
	if s.Contains(e) {
		return false
	}
	s.head = &link[E]{elem: e, added: true, rest: s.head}
	return true
}

func (s *Set[E]) Remove(e E) bool {
	if !s.Contains(e) {
		return false
	}
	s.head = &link[E]{elem: e, rest: s.head}
	return true
}

// Contains is decided by the newest link mentioning e.
func (s *Set[E]) Contains(e E) bool {
	for l := s.head; l != nil; l = l.rest {
		if l.elem == e {
			return l.added
		}
	}
	return false
}

func (s *Set[E]) AddAll(c trieset.Collection[E]) bool {
	changed := false
	for e := range c.All() {
		if s.Add(e) {
			changed = true
		}
	}
	return changed
}

func (s *Set[E]) Clear() {
	s.head = nil
}

func (s *Set[E]) Size() int {
	size := 0
	for range s.All() {
		size++
	}
	return size
}

func (s *Set[E]) IsEmpty() bool {
	for range s.All() {
		return false
	}
	return true
}

// Snapshot returns an independent set sharing the current chain.
func (s *Set[E]) Snapshot() *Set[E] {
	return &Set[E]{head: s.head}
}

// All yields the members newest first.
func (s *Set[E]) All() iter.Seq[E] {
	head := s.head
	return func(yield func(E) bool) {
		walk(head, yield)
	}
}

func walk[E comparable](head *link[E], yield func(E) bool) {
	decided := make(map[E]struct{})
	for l := head; l != nil; l = l.rest {
		if _, ok := decided[l.elem]; ok {
			continue
		}
		decided[l.elem] = struct{}{}
		if l.added && !yield(l.elem) {
			return
		}
	}
}

func (s *Set[E]) Equal(other trieset.Collection[E]) bool {
	for e := range s.All() {
		if !other.Contains(e) {
			return false
		}
	}
	for e := range other.All() {
		if !s.Contains(e) {
			return false
		}
	}
	return true
}

func (s *Set[E]) String() string {
	parts := []string{}
	for e := range s.All() {
		parts = append(parts, fmt.Sprint(e))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Iterator walks the chain as it was when the iterator was created. Remove
// records a remove link on the set and leaves that walk untouched.
func (s *Set[E]) Iterator() trieset.Iterator[E] {
	return &iterator[E]{
		set:     s,
		cur:     s.head,
		decided: make(map[E]struct{}),
	}
}

type iterator[E comparable] struct {
	set     *Set[E]
	cur     *link[E]
	decided map[E]struct{}

	ready   bool
	nextVal E

	lastVal   E
	removable bool
}

func (it *iterator[E]) HasNext() bool {
	for !it.ready && it.cur != nil {
		l := it.cur
		it.cur = l.rest
		if _, ok := it.decided[l.elem]; ok {
			continue
		}
		it.decided[l.elem] = struct{}{}
		if l.added {
			it.nextVal, it.ready = l.elem, true
		}
	}
	return it.ready
}

func (it *iterator[E]) Next() (E, error) {
	if !it.HasNext() {
		var zero E
		return zero, trieset.ErrNoMoreElements
	}
	it.ready = false
	it.lastVal, it.removable = it.nextVal, true
	return it.lastVal, nil
}

func (it *iterator[E]) Remove() error {
	if !it.removable {
		return trieset.ErrIllegalState
	}
	it.removable = false
	it.set.Remove(it.lastVal)
	return nil
}
