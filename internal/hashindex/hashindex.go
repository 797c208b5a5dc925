// Package hashindex implements the per-folder file index: an open-addressing
// hash table with linear probing and no tombstones. Deleting a key eagerly
// re-inserts the remainder of its probe cluster so lookups never have to scan
// across holes.
package hashindex

import "errors"

// DefaultCapacity is the initial slot count of a new index.
const DefaultCapacity = 10

// loadFactorThreshold triggers a rehash before an insert would push the
// live-entry ratio above it.
const loadFactorThreshold = 0.7

// ErrIndexFull is returned when probing wraps a full circle without finding a
// slot. The pre-emptive rehash in Insert makes this unreachable in normal
// operation; seeing it means the table invariants were broken externally.
var ErrIndexFull = errors.New("hash index full")

type slot[V any] struct {
	key   string
	value V
}

// Index is a string-keyed open-addressing hash table.
// It is not safe for concurrent use; callers serialize access.
type Index[V any] struct {
	slots []*slot[V]
	size  int
}

// New creates an Index with DefaultCapacity slots.
func New[V any]() *Index[V] {
	return NewWithCapacity[V](DefaultCapacity)
}

// NewWithCapacity creates an Index with the given initial slot count.
// Capacities below 1 fall back to DefaultCapacity.
func NewWithCapacity[V any](capacity int) *Index[V] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Index[V]{slots: make([]*slot[V], capacity)}
}

// Len returns the number of live entries.
func (ix *Index[V]) Len() int { return ix.size }

// Cap returns the current slot count.
func (ix *Index[V]) Cap() int { return len(ix.slots) }

// hash sums the key's character codes modulo the current capacity.
// Deliberately weak and deterministic per (key, capacity).
func (ix *Index[V]) hash(key string) int {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return sum % len(ix.slots)
}

// probe scans forward (wrapping) from start until it finds either the slot
// already holding key or an empty slot. found reports whether the key exists
// at idx. A full wrap back to start without success returns ErrIndexFull.
func (ix *Index[V]) probe(start int, key string) (idx int, found bool, err error) {
	i := start
	for ix.slots[i] != nil {
		if ix.slots[i].key == key {
			return i, true, nil
		}
		i = (i + 1) % len(ix.slots)
		if i == start {
			return -1, false, ErrIndexFull
		}
	}
	return i, false, nil
}

// Insert places key/value in the index, overwriting the value if the key is
// already present. A rehash runs first whenever the insert would push the
// load factor above the threshold, so ErrIndexFull is an invariant violation
// rather than an expected condition.
func (ix *Index[V]) Insert(key string, value V) error {
	if float64(ix.size+1)/float64(len(ix.slots)) > loadFactorThreshold {
		ix.rehash()
	}

	idx, found, err := ix.probe(ix.hash(key), key)
	if err != nil {
		return err
	}
	if found {
		ix.slots[idx].value = value
		return nil
	}
	ix.slots[idx] = &slot[V]{key: key, value: value}
	ix.size++
	return nil
}

// Search returns the value stored under key, if any.
func (ix *Index[V]) Search(key string) (V, bool) {
	var zero V
	idx, found, err := ix.probe(ix.hash(key), key)
	if err != nil || !found {
		return zero, false
	}
	return ix.slots[idx].value, true
}

// Delete removes key and returns its value. Because there are no tombstones,
// the probe cluster following the freed slot is walked and re-inserted so
// entries whose lookup path ran through the removed slot stay reachable.
func (ix *Index[V]) Delete(key string) (V, bool) {
	var zero V
	idx, found, err := ix.probe(ix.hash(key), key)
	if err != nil || !found {
		return zero, false
	}

	value := ix.slots[idx].value
	ix.slots[idx] = nil

	// Repair the cluster: lift out every entry up to the next hole and run it
	// back through Insert, which may relocate it earlier in the cluster.
	i := (idx + 1) % len(ix.slots)
	for ix.slots[i] != nil {
		moved := ix.slots[i]
		ix.slots[i] = nil
		ix.size--
		ix.Insert(moved.key, moved.value) //nolint:errcheck // re-insert into a table with free slots cannot fail
		i = (i + 1) % len(ix.slots)
	}

	ix.size--
	return value, true
}

// rehash doubles the capacity and re-inserts every live pair in
// backing-array order.
func (ix *Index[V]) rehash() {
	old := ix.slots
	ix.slots = make([]*slot[V], len(old)*2)
	ix.size = 0

	for _, s := range old {
		if s != nil {
			ix.Insert(s.key, s.value) //nolint:errcheck // fresh table at half load cannot fill
		}
	}
}

// Values snapshots all live values in backing-array order. The order bears no
// relation to insertion order; callers needing a stable order sort the result.
func (ix *Index[V]) Values() []V {
	values := make([]V, 0, ix.size)
	for _, s := range ix.slots {
		if s != nil {
			values = append(values, s.value)
		}
	}
	return values
}
