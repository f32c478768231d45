package trieset

func (s *trieSet[E]) Iterator() Iterator[E] {
	return &iterator[E]{
		set:  s,
		mods: s.mods,
	}
}

func (it *iterator[E]) HasNext() bool {
	it.prepare()
	return it.ready
}

func (it *iterator[E]) Next() (E, error) {
	var zero E
	if it.mods != it.set.mods {
		return zero, ErrConcurrentModification
	}
	if !it.HasNext() {
		return zero, ErrNoMoreElements
	}

	v := it.nextVal
	it.ready = false
	it.nextVal = nil

	it.lastPath = it.lastPath[:0]
	for _, l := range it.depth {
		it.lastPath = append(it.lastPath, pathStep{l.node, l.segment})
	}
	it.lastVal = v
	it.removable = true

	return elemOf[E](v), nil
}

// Remove deletes the last returned element from the node that yielded it and
// prunes the nodes on its path that are left empty. The iterator position is
// untouched: it is kept by the stack, which never points into a pruned node.
func (it *iterator[E]) Remove() error {
	if !it.removable {
		return ErrIllegalState
	}
	if it.mods != it.set.mods {
		return ErrConcurrentModification
	}
	it.removable = false

	owner := it.lastPath[len(it.lastPath)-1].node
	owner.elements.Remove(it.lastVal)
	for i := len(it.lastPath) - 1; i > 0 && it.lastPath[i].node.isEmpty(); i-- {
		it.lastPath[i-1].node.children.Remove(it.lastPath[i].segment)
	}
	it.lastVal = nil

	it.set.mods++
	it.mods = it.set.mods
	return nil
}

// prepare moves the stack onto the next element in pre-order, if any.
func (it *iterator[E]) prepare() {
	if it.ready || it.phase == phaseExhausted {
		return
	}
	if it.phase == phaseUnvisited {
		it.depth = []*iteratorLevel{enterLevel(it.set.root, "")}
		it.phase = phaseActive
	}

	for len(it.depth) > 0 {
		top := it.depth[len(it.depth)-1]

		if top.elemIdx < len(top.elems) {
			it.nextVal = top.elems[top.elemIdx]
			top.elemIdx++
			it.ready = true
			return
		}

		if seg, child := top.nextChild(); child != nil {
			it.depth = append(it.depth, enterLevel(child, seg))
			continue
		}

		it.depth = it.depth[:len(it.depth)-1]
	}

	it.depth = nil
	it.phase = phaseExhausted
}

func enterLevel(n *node, segment string) *iteratorLevel {
	return &iteratorLevel{
		node:    n,
		segment: segment,
		elems:   n.elements.Values(),
	}
}

// nextChild advances the child cursor. The cursor is a segment rather than a
// map iterator so that pruning siblings behind it is harmless; seg+"\x00" is
// the smallest string sorting after seg.
func (l *iteratorLevel) nextChild() (string, *node) {
	var k, v interface{}
	if !l.visited {
		k, v = l.node.children.Min()
	} else {
		k, v = l.node.children.Ceiling(l.childKey + "\x00")
	}
	if k == nil {
		return "", nil
	}

	l.childKey, l.visited = k.(string), true
	return l.childKey, v.(*node)
}

func elemOf[E comparable](v interface{}) E {
	e, _ := v.(E)
	return e
}
