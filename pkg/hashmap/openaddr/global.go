package openaddr

import "math/bits"

const (
	DefaultLoadFactor = 0.75 // load factor must stay below 1
	DefaultMapSize    = 16
	MaxMapSize        = 1 << (bits.UintSize - 2) // largest power of two an int can index
)

// alignBucketCount aligns buckets to ensure all sizes are powers of two.
// Sizes above MaxMapSize are clamped to it, doubling past it would overflow.
func alignBucketCount(size uint) uint64 {
	count := uint(DefaultMapSize)
	for count < size && count < MaxMapSize {
		count *= 2
	}
	return uint64(count)
}

// growThreshold returns the number of entries a table with the
// provided slot count may hold before it has to grow
func growThreshold(count uint64) int {
	return int(float64(count) * DefaultLoadFactor)
}

// spread mixes the upper bits of the hash into the lower ones, which
// are the only ones that survive the mask on small tables
func spread(h uint64) uint64 {
	return h ^ (h >> 16)
}
