package lrudict

// node is a link in the recency list. Nodes carry both key and value so
// the map index, the eviction path and the peek read path all share one
// allocation per entry.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  *node[K, V]
	next  *node[K, V]
}

// recencyList is a doubly-linked list ordering entries from least
// recently used (head) to most recently used (tail). It is not safe for
// concurrent use; the Dict that owns it is single-threaded by contract.
type recencyList[K comparable, V any] struct {
	head *node[K, V]
	tail *node[K, V]
	len  int
}

// Len returns the number of nodes in the list.
func (l *recencyList[K, V]) Len() int {
	return l.len
}

// pushNewest appends a new node at the tail (most recently used).
// Returns the created node for indexing by the owning map.
func (l *recencyList[K, V]) pushNewest(key K, value V) *node[K, V] {
	n := &node[K, V]{key: key, value: value}
	if l.tail == nil {
		// Empty list
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.len++
	return n
}

// moveToNewest moves an existing node to the tail (most recently used).
func (l *recencyList[K, V]) moveToNewest(n *node[K, V]) {
	if n == nil || n == l.tail {
		return
	}

	l.unlink(n)

	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n
	if l.head == nil {
		l.head = n
	}
	l.len++
}

// remove removes a node from the list.
func (l *recencyList[K, V]) remove(n *node[K, V]) {
	if n == nil {
		return
	}
	l.unlink(n)
}

// oldest returns the least recently used node, or nil when empty.
func (l *recencyList[K, V]) oldest() *node[K, V] {
	return l.head
}

// newest returns the most recently used node, or nil when empty.
func (l *recencyList[K, V]) newest() *node[K, V] {
	return l.tail
}

// clear removes all nodes from the list.
func (l *recencyList[K, V]) clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes a node from the list and clears its pointers.
// Used internally by remove and moveToNewest.
func (l *recencyList[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}

	n.prev = nil
	n.next = nil
	l.len--
}
