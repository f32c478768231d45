package trieset

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

type visitFunc func(v interface{}) bool

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen(a, b string) int {
	limit := min(len(a), len(b))
	idx := 0
	for idx < limit && a[idx] == b[idx] {
		idx++
	}
	return idx
}

func (n *node) isEmpty() bool {
	return n.elements.Empty() && n.children.Empty()
}

// candidate returns the only child that may share a prefix with key. Siblings
// never share a first byte, so that child is either the floor or the ceiling
// of key among the segments.
func (n *node) candidate(key string) (string, *node) {
	if k, v := n.children.Floor(key); k != nil {
		if seg := k.(string); commonPrefixLen(seg, key) > 0 {
			return seg, v.(*node)
		}
	}
	if k, v := n.children.Ceiling(key); k != nil {
		if seg := k.(string); commonPrefixLen(seg, key) > 0 {
			return seg, v.(*node)
		}
	}
	return "", nil
}

// descend returns the child whose segment is a prefix of key. A segment that
// prefixes key sorts at or below it and nothing can sit in between.
func (n *node) descend(key string) (string, *node) {
	k, v := n.children.Floor(key)
	if k == nil {
		return "", nil
	}
	seg := k.(string)
	if !strings.HasPrefix(key, seg) {
		return "", nil
	}
	return seg, v.(*node)
}

// add stores v under the remaining key, splitting a child segment when key
// only partially overlaps it. It reports whether the trie changed.
func (n *node) add(key string, v interface{}) bool {
	if key == "" {
		if n.elements.Contains(v) {
			return false
		}
		n.elements.Add(v)
		return true
	}

	seg, child := n.candidate(key)
	if child == nil {
		leaf := newNode()
		leaf.elements.Add(v)
		n.children.Put(key, leaf)
		return true
	}

	lcp := commonPrefixLen(seg, key)
	if lcp == len(seg) {
		return child.add(key[lcp:], v)
	}

	// split: seg[:lcp] becomes the new edge, the old child hangs below it
	mid := newNode()
	mid.children.Put(seg[lcp:], child)
	mid.add(key[lcp:], v)
	n.children.Remove(seg)
	n.children.Put(key[:lcp], mid)
	return true
}

func (n *node) contains(key string, v interface{}) bool {
	if key == "" {
		return n.elements.Contains(v)
	}
	seg, child := n.descend(key)
	if child == nil {
		return false
	}
	return child.contains(key[len(seg):], v)
}

// remove deletes v and prunes children left without elements and children.
func (n *node) remove(key string, v interface{}) bool {
	if key == "" {
		if !n.elements.Contains(v) {
			return false
		}
		n.elements.Remove(v)
		return true
	}

	seg, child := n.descend(key)
	if child == nil {
		return false
	}
	if !child.remove(key[len(seg):], v) {
		return false
	}
	if child.isEmpty() {
		n.children.Remove(seg)
	}
	return true
}

func (n *node) clear() {
	n.elements.Clear()
	n.children.Clear()
}

// forEach visits the subtree in pre-order: own elements first, then the
// children by ascending segment.
func (n *node) forEach(fn visitFunc) walkAction {
	for _, v := range n.elements.Values() {
		if !fn(v) {
			return walkStop
		}
	}

	it := n.children.Iterator()
	for it.Next() {
		if it.Value().(*node).forEach(fn) == walkStop {
			return walkStop
		}
	}
	return walkContinue
}

func (n *node) forEachPrefix(prefix string, fn visitFunc) walkAction {
	curr := n
	for prefix != "" {
		seg, child := curr.candidate(prefix)
		if child == nil {
			return walkContinue
		}

		switch {
		case strings.HasPrefix(seg, prefix):
			return child.forEach(fn)
		case strings.HasPrefix(prefix, seg):
			prefix = prefix[len(seg):]
			curr = child
		default:
			return walkContinue
		}
	}
	return curr.forEach(fn)
}

func (n *node) stats(depth int, st *Stats) {
	st.Nodes++
	st.Elements += n.elements.Size()
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}

	it := n.children.Iterator()
	for it.Next() {
		it.Value().(*node).stats(depth+1, st)
	}
}

// validate checks that no node below n is empty and that sibling segments
// are non-empty and pairwise free of common prefixes. Sorted siblings sharing
// a first byte are always adjacent, so neighbours are all that need comparing.
func (n *node) validate(path string) error {
	var prev string

	it := n.children.Iterator()
	for it.Next() {
		seg := it.Key().(string)
		child := it.Value().(*node)

		switch {
		case seg == "":
			return errors.Wrapf(ErrInvalidTrie, "empty segment below %q", path)
		case prev != "" && commonPrefixLen(prev, seg) > 0:
			return errors.Wrapf(ErrInvalidTrie, "segments %q and %q below %q share a prefix", prev, seg, path)
		case child.isEmpty():
			return errors.Wrapf(ErrInvalidTrie, "dead node at %q", path+seg)
		}

		if err := child.validate(path + seg); err != nil {
			return err
		}
		prev = seg
	}
	return nil
}

func (n *node) writeTree(w io.Writer, segment string, depth int) error {
	elems := make([]string, 0, n.elements.Size())
	for _, v := range n.elements.Values() {
		elems = append(elems, fmt.Sprint(v))
	}

	_, err := fmt.Fprintf(w, "%s%q [%s]\n", strings.Repeat("  ", depth), segment, strings.Join(elems, ", "))
	if err != nil {
		return err
	}

	it := n.children.Iterator()
	for it.Next() {
		if err := it.Value().(*node).writeTree(w, it.Key().(string), depth+1); err != nil {
			return err
		}
	}
	return nil
}
