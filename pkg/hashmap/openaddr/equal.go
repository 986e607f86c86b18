package openaddr

import "strings"

// String lists the entries in slot order, e.g. {one=1, two=2}
func (t *Table[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(Entry[K, V]{Key: t.slots[i].key, Value: t.slots[i].val}.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// EqualFunc reports whether both tables hold the same keys and, using eq,
// equal values for each of them. Slot order does not matter.
func (t *Table[K, V]) EqualFunc(other *Table[K, V], eq func(a, b V) bool) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil || t.size != other.size {
		return false
	}
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		v, ok := other.Get(t.slots[i].key)
		if !ok || !eq(t.slots[i].val, v) {
			return false
		}
	}
	return true
}

// HashCodeFunc combines the DefaultHasher hash of every key with the hash of
// its value, computed with vh. Neither the slot order nor the hash function
// the table was built with changes the result, so equal tables always have
// equal hash codes.
func (t *Table[K, V]) HashCodeFunc(vh func(value V) uint64) uint64 {
	var h uint64
	for i := range t.slots {
		if t.slots[i].used {
			h += hashComparable(t.slots[i].key) ^ vh(t.slots[i].val)
		}
	}
	return h
}

// Equal is EqualFunc using == on the values
func Equal[K, V comparable](a, b *Table[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool {
		return x == y
	})
}

// HashCode is HashCodeFunc using the DefaultHasher for the values too
func HashCode[K, V comparable](t *Table[K, V]) uint64 {
	return t.HashCodeFunc(hashComparable[V])
}
