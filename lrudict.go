package lrudict

import "fmt"

// Entry is a key-value pair. It seeds construction, feeds Update, and is
// yielded by the All view.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Dict is a fixed-capacity key–value container with least-recently-used
// eviction.
//
// The design is intentionally explicit and "mechanical": a map gives
// O(1) key lookup, and a doubly-linked list maintains recency ordering
// from oldest (head) to newest (tail). Every mutating operation keeps
// the two structures in lockstep, so len(table) == list.Len() always
// holds and both index the same key set.
//
// Dict is not safe for concurrent use. External synchronization is the
// caller's responsibility.
type Dict[K comparable, V any] struct {
	capacity int
	table    map[K]*node[K, V]
	order    recencyList[K, V]
}

// New constructs a Dict with the given capacity. Seed entries, if any,
// are inserted in order through the normal Set path, so duplicate keys
// and capacity overflow during construction behave exactly like
// sequential writes.
//
// Returns ErrInvalidCapacity when capacity < 1.
func New[K comparable, V any](capacity int, seed ...Entry[K, V]) (*Dict[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	d := &Dict[K, V]{
		capacity: capacity,
		table:    make(map[K]*node[K, V], capacity),
	}
	d.Update(seed...)
	return d, nil
}

// NewFromMap constructs a Dict seeded from a plain map. Entries are
// inserted in Go's map iteration order, which is randomized; callers
// that care about the resulting recency order should use New with an
// ordered slice of entries instead.
//
// Returns ErrInvalidCapacity when capacity < 1.
func NewFromMap[K comparable, V any](capacity int, seed map[K]V) (*Dict[K, V], error) {
	d, err := New[K, V](capacity)
	if err != nil {
		return nil, err
	}
	for k, v := range seed {
		d.Set(k, v)
	}
	return d, nil
}

// Set inserts or updates a key and makes it the most recently used
// entry. When an insert pushes the count past capacity, the least
// recently used entry is evicted; at most one eviction can occur per
// call. Reports whether an eviction happened.
func (d *Dict[K, V]) Set(key K, value V) (evicted bool) {
	if n, ok := d.table[key]; ok {
		// Updating counts as use; move to MRU.
		n.value = value
		d.order.moveToNewest(n)
		return false
	}

	d.table[key] = d.order.pushNewest(key, value)

	if len(d.table) > d.capacity {
		d.removeNode(d.order.oldest())
		return true
	}
	return false
}

// Get returns the value for key and makes it the most recently used
// entry. Returns ErrKeyNotFound when absent; a failed Get leaves the
// recency order untouched.
func (d *Dict[K, V]) Get(key K) (V, error) {
	n, ok := d.table[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	d.order.moveToNewest(n)
	return n.value, nil
}

// Peek returns the value for key without affecting recency order.
// Returns ErrKeyNotFound when absent.
func (d *Dict[K, V]) Peek(key K) (V, error) {
	n, ok := d.table[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	return n.value, nil
}

// Delete removes a key from the container. The relative order of the
// remaining entries is unaffected. Returns ErrKeyNotFound when absent.
func (d *Dict[K, V]) Delete(key K) error {
	n, ok := d.table[key]
	if !ok {
		return ErrKeyNotFound
	}
	d.removeNode(n)
	return nil
}

// Pop removes a key and returns its value. Returns ErrKeyNotFound when
// absent.
func (d *Dict[K, V]) Pop(key K) (V, error) {
	n, ok := d.table[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}
	d.removeNode(n)
	return n.value, nil
}

// Contains reports whether key is present. Never affects recency order.
func (d *Dict[K, V]) Contains(key K) bool {
	_, ok := d.table[key]
	return ok
}

// Resize sets a new capacity. When the new capacity is smaller than the
// current entry count, the oldest entries are evicted in one batch until
// the count fits; the relative order of the survivors is preserved.
//
// Returns ErrInvalidCapacity when capacity < 1.
func (d *Dict[K, V]) Resize(capacity int) error {
	if capacity < 1 {
		return ErrInvalidCapacity
	}

	d.capacity = capacity
	for len(d.table) > d.capacity {
		d.removeNode(d.order.oldest())
	}
	return nil
}

// LRU returns the least recently used key. Returns ErrEmpty when the
// container holds no entries.
func (d *Dict[K, V]) LRU() (K, error) {
	if n := d.order.oldest(); n != nil {
		return n.key, nil
	}
	var zero K
	return zero, ErrEmpty
}

// MRU returns the most recently used key. Returns ErrEmpty when the
// container holds no entries.
func (d *Dict[K, V]) MRU() (K, error) {
	if n := d.order.newest(); n != nil {
		return n.key, nil
	}
	var zero K
	return zero, ErrEmpty
}

// Len returns the number of entries currently stored.
func (d *Dict[K, V]) Len() int {
	return len(d.table)
}

// Cap returns the configured capacity. Capacity is only changed through
// Resize.
func (d *Dict[K, V]) Cap() int {
	return d.capacity
}

// Clear removes all entries. Capacity is unchanged.
func (d *Dict[K, V]) Clear() {
	clear(d.table)
	d.order.clear()
}

// Update applies Set for each entry in order.
func (d *Dict[K, V]) Update(entries ...Entry[K, V]) {
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
}

// String returns a short summary of capacity and fill, not the contents.
func (d *Dict[K, V]) String() string {
	return fmt.Sprintf("lrudict.Dict(cap=%d, filled=%d)", d.capacity, len(d.table))
}

// removeNode drops a node from both the map and the recency list.
func (d *Dict[K, V]) removeNode(n *node[K, V]) {
	if n == nil {
		return
	}
	delete(d.table, n.key)
	d.order.remove(n)
}
