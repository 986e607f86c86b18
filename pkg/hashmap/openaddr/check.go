package openaddr

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Check walks the whole slot array and verifies the table invariants:
// the capacity is a power of two, the size matches the occupied slots and
// stays within the load factor, no key is stored twice and every key can be
// reached from its home slot without crossing an empty slot. Every violation
// found is reported, wrapped around ErrInvariant.
func (t *Table[K, V]) Check() error {
	var result *multierror.Error
	count := uint64(len(t.slots))
	if count == 0 || count&(count-1) != 0 || t.mask != count-1 {
		result = multierror.Append(result, errors.Wrapf(ErrInvariant,
			"capacity %d with mask %d is not a power of two", count, t.mask))
		return result.ErrorOrNil()
	}
	seen := make(map[K]int, t.size)
	var used int
	for i := range t.slots {
		if !t.slots[i].used {
			continue
		}
		used++
		key := t.slots[i].key
		if j, ok := seen[key]; ok {
			result = multierror.Append(result, errors.Wrapf(ErrInvariant,
				"key %v stored in slots %d and %d", key, j, i))
		}
		seen[key] = i
		for j := t.index(key); j != uint64(i); j = (j + 1) & t.mask {
			if !t.slots[j].used {
				result = multierror.Append(result, errors.Wrapf(ErrInvariant,
					"key %v in slot %d is cut off by empty slot %d", key, i, j))
				break
			}
		}
	}
	if used != t.size {
		result = multierror.Append(result, errors.Wrapf(ErrInvariant,
			"size is %d but %d slots are occupied", t.size, used))
	}
	if t.size > t.expand {
		result = multierror.Append(result, errors.Wrapf(ErrInvariant,
			"size %d exceeds the load factor threshold %d", t.size, t.expand))
	}
	return result.ErrorOrNil()
}
