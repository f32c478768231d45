package trieset

import (
	"errors"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

const (
	walkStop walkAction = iota
	walkContinue
)

const (
	phaseUnvisited iteratorPhase = iota
	phaseActive
	phaseExhausted
)

const (
	// hash seed and per-element multiplier
	hashSeed       = 101
	hashMultiplier = 17
)

var (
	ErrNoMoreElements         = errors.New("there are no more elements in the set")
	ErrIllegalState           = errors.New("remove called without a preceding next")
	ErrStoreType              = errors.New("element cannot be stored in the target slice")
	ErrConcurrentModification = errors.New("set modified outside of the iterator")
	ErrInvalidTrie            = errors.New("trie structure is invalid")
)

type (
	trieSet[E comparable] struct {
		root  *node
		keyOf func(E) string
		// bumped on every structural change, checked by iterators
		mods uint64
	}

	// node stores the elements whose key is fully consumed at this point and
	// the children keyed by the next key segment. No two child segments share
	// a first byte, so no two of them are prefix-comparable.
	node struct {
		elements *linkedhashset.Set
		children *treemap.Map
	}

	walkAction int

	iteratorPhase int

	// iteratorLevel is one open node on the iterator stack.
	iteratorLevel struct {
		node    *node
		segment string
		// elements snapshot taken when the node was entered
		elems   []interface{}
		elemIdx int
		// last child segment descended into, valid once visited is set
		childKey string
		visited  bool
	}

	pathStep struct {
		node    *node
		segment string
	}

	iterator[E comparable] struct {
		set   *trieSet[E]
		phase iteratorPhase
		mods  uint64
		depth []*iteratorLevel

		ready   bool
		nextVal interface{}

		// path from the root to the node owning the last returned element
		lastPath  []pathStep
		lastVal   interface{}
		removable bool
	}
)

func newNode() *node {
	return &node{
		elements: linkedhashset.New(),
		children: treemap.NewWithStringComparator(),
	}
}
