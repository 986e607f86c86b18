package openaddr

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// seed is shared by every table in the process, so two tables holding
// the same keys produce the same hashes
var seed = maphash.MakeSeed()

// HashFunc is a type definition for what a hash function should look like.
// It must return equal hashes for keys that compare equal with ==.
type HashFunc[K comparable] func(key K) uint64

// DefaultHasher returns the HashFunc used by New. Strings are hashed with
// xxhash, integers are their own hash and any other comparable key goes
// through hash/maphash. A nil interface key hashes to zero.
func DefaultHasher[K comparable]() HashFunc[K] {
	return hashComparable[K]
}

func hashComparable[T comparable](v T) uint64 {
	switch k := any(v).(type) {
	case nil:
		return 0
	case string:
		return xxhash.Sum64String(k)
	case int:
		return uint64(k)
	case int8:
		return uint64(k)
	case int16:
		return uint64(k)
	case int32:
		return uint64(k)
	case int64:
		return uint64(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	}
	return maphash.Comparable(seed, v)
}
