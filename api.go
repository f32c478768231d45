package trieset

import (
	"io"
	"iter"
)

// Set is a mutable set whose elements are stored in a radix trie keyed by
// their string representation. It is not safe for concurrent use.
type Set[E comparable] interface {
	Collection[E]

	Add(e E) bool
	Remove(e E) bool

	AddAll(c Collection[E]) bool
	RemoveAll(c Collection[E]) bool
	RetainAll(c Collection[E]) bool
	ContainsAll(c Collection[E]) bool

	Size() int
	IsEmpty() bool
	Clear()

	Iterator() Iterator[E]
	ForEachPrefix(prefix string, fn func(e E) bool)

	Equal(other Collection[E]) bool
	Hash() uint64
	ToSlice() []E

	Stats() Stats
	WriteTree(w io.Writer) error
	Validate() error
	String() string
}

// Collection is anything the bulk operations can read from.
type Collection[E comparable] interface {
	Contains(e E) bool
	All() iter.Seq[E]
}

// Iterator walks a set in key order. Remove deletes the element returned by
// the last call to Next.
type Iterator[E comparable] interface {
	HasNext() bool
	Next() (E, error)
	Remove() error
}

// Stats describes the shape of the trie backing a set.
type Stats struct {
	Nodes    int
	Elements int
	MaxDepth int
}

func New[E comparable](opts ...Option[E]) Set[E] {
	s := &trieSet[E]{
		root:  newNode(),
		keyOf: defaultKey[E],
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// From returns a new set holding the elements of c.
func From[E comparable](c Collection[E], opts ...Option[E]) Set[E] {
	s := New(opts...)
	s.AddAll(c)
	return s
}
