package openaddr

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Entry is a key value pair handed out by an Iterator
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key, e.Value)
}

// Iterator walks the occupied slots of a Table in index order. It only moves
// forward; call Table.Iterator again to start over.
type Iterator[K comparable, V any] struct {
	t        *Table[K, V]
	index    int
	expected uint64
}

// Iterator returns an Iterator positioned before the first entry
func (t *Table[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		t:        t,
		expected: t.mods,
	}
}

// HasNext reports whether Next will return another entry. It returns
// ErrConcurrentModification if the key set of the table changed since the
// Iterator was created.
func (it *Iterator[K, V]) HasNext() (bool, error) {
	if it.expected != it.t.mods {
		return false, errors.Wrapf(ErrConcurrentModification,
			"expected modification count %d, found %d", it.expected, it.t.mods)
	}
	for it.index < len(it.t.slots) && !it.t.slots[it.index].used {
		it.index++
	}
	return it.index < len(it.t.slots), nil
}

// Next returns the next entry and advances. It returns ErrNoSuchElement
// once every entry has been returned.
func (it *Iterator[K, V]) Next() (Entry[K, V], error) {
	ok, err := it.HasNext()
	if err != nil {
		return Entry[K, V]{}, err
	}
	if !ok {
		return Entry[K, V]{}, errors.WithStack(ErrNoSuchElement)
	}
	s := &it.t.slots[it.index]
	it.index++
	return Entry[K, V]{Key: s.key, Value: s.val}, nil
}

// Range calls fn for every entry in slot order for as long as fn returns
// true. Adding or removing keys from fn makes Range return
// ErrConcurrentModification.
func (t *Table[K, V]) Range(fn func(key K, value V) bool) error {
	it := t.Iterator()
	for {
		e, err := it.Next()
		if errors.Is(err, ErrNoSuchElement) {
			return nil
		}
		if err != nil {
			return err
		}
		if !fn(e.Key, e.Value) {
			return nil
		}
	}
}

// All returns a sequence over every entry in slot order. The sequence
// panics with ErrConcurrentModification if the loop body adds or
// removes keys.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if err := t.Range(yield); err != nil {
			panic(err)
		}
	}
}
