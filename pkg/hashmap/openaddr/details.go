/*
	Package openaddr implements a generic hash table using a closed hashing (open addressing)
	technique with plain linear probing for resolving hash collisions. Every entry lives
	directly in a single power of two sized slot array; there is no chaining and there are
	no tombstones.
	The basic principal is:
	-----------------------
	1) Calculate the hash value of the key, spread the high bits into the low ones and mask
	   it with (capacity - 1) to get the initial index (the home slot)
	2) Search the position in the array linearly, wrapping around at the end
	3) A lookup stops at the first matching key, or reports a miss at the first empty slot
	4) An insert of a new key takes the first empty slot. Before that happens the table is
	   doubled if it is 75% full, and every entry is replayed through the same insert
	5) A delete empties the slot and then pulls every entry out of the run of occupied slots
	   directly after it and inserts it again, so nothing is left behind an empty slot that
	   sits inside its own probe chain
	Iteration walks the slot array in index order and is fail-fast: any change to the key set
	made after an Iterator was created causes its next step to return ErrConcurrentModification.
	A Table is not safe for concurrent use.
*/
package openaddr
