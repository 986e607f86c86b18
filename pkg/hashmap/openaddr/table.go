package openaddr

import "github.com/rs/zerolog"

// slot is a single position in the Table. A slot that is not used is empty
type slot[K comparable, V any] struct {
	used bool
	key  K
	val  V
}

// Table represents a closed hashing hashtable implementation using
// linear probing. The zero value is not usable, see New.
type Table[K comparable, V any] struct {
	hash   HashFunc[K]
	log    zerolog.Logger
	mask   uint64
	expand int    // grow before inserting a new key at this size
	size   int    // occupied slots
	mods   uint64 // bumped on every change to the key set
	slots  []slot[K, V]
}

// New returns a new Table using the DefaultHasher for its keys
func New[K comparable, V any](opts ...Option) *Table[K, V] {
	return NewWithHasher[K, V](DefaultHasher[K](), opts...)
}

// NewWithHasher returns a new Table using the provided hash function. The
// hash must be consistent with == on K for as long as a key is stored.
func NewWithHasher[K comparable, V any](hash HashFunc[K], opts ...Option) *Table[K, V] {
	if hash == nil {
		hash = DefaultHasher[K]()
	}
	o := makeOptions(opts)
	count := alignBucketCount(o.capacity)
	return &Table[K, V]{
		hash:   hash,
		log:    o.logger,
		mask:   count - 1, // this minus one is extremely important for using a mask over modulo
		expand: growThreshold(count),
		slots:  make([]slot[K, V], count),
	}
}

// index returns the home slot of the provided key
func (t *Table[K, V]) index(key K) uint64 {
	return spread(t.hash(key)) & t.mask
}

// find probes for key and returns its slot, or the empty slot that ended
// the search along with false
func (t *Table[K, V]) find(key K) (uint64, bool) {
	// mask the spread hash to get the initial index
	i := t.index(key)
	// search the position linearly
	for t.slots[i].used {
		// found existing entry, check keys
		if t.slots[i].key == key {
			return i, true
		}
		// keep on probing, wrapping around at the end of the array
		i = (i + 1) & t.mask
	}
	// havent located anything, i is the first empty slot of the chain
	return i, false
}

// Put associates value with key. An existing key has its value replaced in
// place, which does not count as a modification for running iterators.
func (t *Table[K, V]) Put(key K, value V) {
	i, ok := t.find(key)
	if ok {
		// keys are a match--update the value only
		t.slots[i].val = value
		return
	}
	// check and see if we need to grow before adding a new key
	if t.size >= t.expand {
		// if we do, then double the table size; every home slot
		// moves, so the empty slot found above is stale
		t.grow()
		i, _ = t.find(key)
	}
	t.place(i, key, value)
}

// Update is the same as Put
func (t *Table[K, V]) Update(key K, value V) {
	t.Put(key, value)
}

// insert places the entry in the first empty slot of its probe chain, or
// updates the value if the key is found on the way. It never grows the table,
// the caller is responsible for leaving at least one empty slot.
func (t *Table[K, V]) insert(key K, value V) {
	i, ok := t.find(key)
	if ok {
		t.slots[i].val = value
		return
	}
	t.place(i, key, value)
}

// place stores a new entry in the empty slot at i
func (t *Table[K, V]) place(i uint64, key K, value V) {
	t.slots[i] = slot[K, V]{used: true, key: key, val: value}
	// one more key, and the key set changed
	t.size++
	t.mods++
}

// grow doubles the slot array and replays every entry through insert, because
// the home slot of a key depends on the capacity
func (t *Table[K, V]) grow() {
	old := t.slots
	count := uint64(len(old)) * 2
	t.slots = make([]slot[K, V], count)
	t.mask = count - 1
	t.expand = growThreshold(count)
	t.size = 0
	for i := range old {
		if old[i].used {
			t.insert(old[i].key, old[i].val)
		}
	}
	t.log.Debug().
		Int("old_capacity", len(old)).
		Int("new_capacity", len(t.slots)).
		Int("size", t.size).
		Msg("openaddr: table grown")
}

// Get returns the value for a given key, or false if none could be found
func (t *Table[K, V]) Get(key K) (V, bool) {
	if i, ok := t.find(key); ok {
		return t.slots[i].val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present, whatever value it maps to
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.find(key)
	return ok
}

// Remove deletes key and returns the value it held, or false if the key
// was not present
func (t *Table[K, V]) Remove(key K) (V, bool) {
	i, ok := t.find(key)
	if !ok {
		var zero V
		return zero, false
	}
	// keys are a match--empty the slot and keep the old value
	val := t.slots[i].val
	t.slots[i] = slot[K, V]{}
	t.size--
	t.mods++
	// entries further down the run may have probed past i
	t.repair(i)
	return val, true
}

// repair re-inserts every entry in the run of occupied slots following the
// vacated slot at i. An entry whose probe chain crossed i either moves back
// into it or to an earlier empty slot, never past its current position.
func (t *Table[K, V]) repair(i uint64) {
	// walk forward until the first empty slot ends the run
	for i = (i + 1) & t.mask; t.slots[i].used; i = (i + 1) & t.mask {
		// take the entry out and put it back through the normal insert,
		// which drops it into the first empty slot of its own chain
		s := t.slots[i]
		t.slots[i] = slot[K, V]{}
		t.size--
		t.insert(s.key, s.val)
	}
}

// Clear removes every entry but keeps the current capacity
func (t *Table[K, V]) Clear() {
	clear(t.slots)
	t.size = 0
	t.mods++
}

// Len returns the number of entries currently in the Table
func (t *Table[K, V]) Len() int {
	return t.size
}

// Capacity returns the number of slots currently allocated
func (t *Table[K, V]) Capacity() int {
	return len(t.slots)
}

// PercentFull returns the current load factor of the Table
func (t *Table[K, V]) PercentFull() float64 {
	return float64(t.size) / float64(len(t.slots))
}

// MaxProbeDistance returns the largest distance between an entry and its
// home slot
func (t *Table[K, V]) MaxProbeDistance() int {
	var dist uint64
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		if d := (uint64(i) - t.index(t.slots[i].key)) & t.mask; d > dist {
			dist = d
		}
	}
	return int(dist)
}

// Keys returns the keys in slot order
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for i := range t.slots {
		if t.slots[i].used {
			keys = append(keys, t.slots[i].key)
		}
	}
	return keys
}

// Values returns the values in slot order
func (t *Table[K, V]) Values() []V {
	vals := make([]V, 0, t.size)
	for i := range t.slots {
		if t.slots[i].used {
			vals = append(vals, t.slots[i].val)
		}
	}
	return vals
}
