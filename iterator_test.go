package trieset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[E comparable](t *testing.T, it Iterator[E]) []E {
	t.Helper()
	res := []E{}
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		res = append(res, e)
	}
	return res
}

// integerTestCase holds null plus 10, 12, 20, 200 and 205.
func integerTestCase() Set[any] {
	s := New[any]()
	s.AddAll(Of[any](nil, 10, 12, 20, 200, 205))
	return s
}

func TestIteratorKeyOrder(t *testing.T) {
	s := New[any]()
	s.Add(3)
	s.Add(2)
	s.Add(5)
	s.Add(nil)

	assert.Equal(t, []any{nil, 2, 3, 5}, drain(t, s.Iterator()))
}

func TestIteratorSharedPrefixOrder(t *testing.T) {
	s := New[int]()
	for _, v := range []int{205, 12, 200, 20, 10} {
		s.Add(v)
	}
	assert.Equal(t, []int{10, 12, 20, 200, 205}, drain(t, s.Iterator()))
	assert.Equal(t, []any{nil, 10, 12, 20, 200, 205}, drain(t, integerTestCase().Iterator()))
}

func TestIteratorDeterministic(t *testing.T) {
	s := integerTestCase()
	assert.Equal(t, drain(t, s.Iterator()), drain(t, s.Iterator()))
}

func TestIteratorSameKeyInsertionOrder(t *testing.T) {
	s := New(WithKeyFunc(func(int) string { return "k" }))
	for _, v := range []int{3, 1, 2} {
		s.Add(v)
	}
	assert.Equal(t, []int{3, 1, 2}, drain(t, s.Iterator()))
}

func TestIteratorRemoveNullAndEven(t *testing.T) {
	s := New[any]()
	s.AddAll(Of[any](3, 2, 5, nil))

	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		if e == nil || e.(int)%2 == 0 {
			require.NoError(t, it.Remove())
		}
	}

	assert.Equal(t, []any{3, 5}, drain(t, s.Iterator()))
	assert.Equal(t, 2, s.Size())
	assert.NoError(t, s.Validate())
}

func TestIteratorRemoveOdd(t *testing.T) {
	s := integerTestCase()

	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		require.NoError(t, err)
		if e == nil || e.(int)%2 != 0 {
			require.NoError(t, it.Remove())
		}
	}

	assert.Equal(t, "{10, 12, 20, 200}", s.String())
	assert.NoError(t, s.Validate())
}

func TestIteratorRemoveAfterLookahead(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("b")

	it := s.Iterator()
	a, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", a)
	assert.True(t, it.HasNext())

	require.NoError(t, it.Remove())
	b, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "b", b)
	assert.False(t, it.HasNext())

	assert.Equal(t, []string{"b"}, s.ToSlice())
	assert.NoError(t, s.Validate())
}

func TestIteratorRemovePrunesPath(t *testing.T) {
	s := New[string]()
	s.Add("10")
	s.Add("12")
	s.Add("3")
	root := s.(*trieSet[string]).root

	it := s.Iterator()
	for i := 0; i < 2; i++ {
		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
		assert.NoError(t, s.Validate())
	}
	assert.Equal(t, []string{"3"}, segments(root))

	v, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, "3", v)
	require.NoError(t, it.Remove())

	assert.True(t, root.isEmpty())
	assert.True(t, s.IsEmpty())
}

func TestIteratorRemoveEverything(t *testing.T) {
	s := integerTestCase()

	it := s.Iterator()
	removed := 0
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		require.NoError(t, it.Remove())
		removed++
	}

	assert.Equal(t, 6, removed)
	assert.True(t, s.(*trieSet[any]).root.isEmpty())
}

func TestIteratorErrors(t *testing.T) {
	s := New[string]()
	s.Add("x")

	it := s.Iterator()
	assert.ErrorIs(t, it.Remove(), ErrIllegalState)

	_, err := it.Next()
	require.NoError(t, err)
	assert.NoError(t, it.Remove())
	assert.ErrorIs(t, it.Remove(), ErrIllegalState)

	assert.False(t, it.HasNext())
	v, err := it.Next()
	assert.Equal(t, "", v)
	assert.ErrorIs(t, err, ErrNoMoreElements)
}

func TestIteratorEmptySet(t *testing.T) {
	it := New[int]().Iterator()
	assert.False(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, ErrNoMoreElements)
	assert.ErrorIs(t, it.Remove(), ErrIllegalState)
}

func TestIteratorFailFast(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("b")

	it := s.Iterator()
	_, err := it.Next()
	require.NoError(t, err)

	s.Add("c")
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
	assert.ErrorIs(t, it.Remove(), ErrConcurrentModification)

	first, second := s.Iterator(), s.Iterator()
	_, err = first.Next()
	require.NoError(t, err)
	_, err = second.Next()
	require.NoError(t, err)
	require.NoError(t, first.Remove())

	_, err = first.Next()
	assert.NoError(t, err)
	_, err = second.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestIteratorUnchangedAddKeepsIterating(t *testing.T) {
	s := New[string]()
	s.Add("a")
	s.Add("b")

	it := s.Iterator()
	_, err := it.Next()
	require.NoError(t, err)

	assert.False(t, s.Add("a"))
	assert.False(t, s.Remove("zzz"))
	v, err := it.Next()
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
}
