package lrudict

import "iter"

// The views below read values straight off the recency list nodes, the
// same non-promoting path Peek uses. Ranging over a view never changes
// the recency order, even though Get does.
//
// Each call returns a fresh sequence, so views are restartable and may
// be ranged more than once. Mutating the container while ranging is
// undefined behavior, the same contract as ranging over a Go map.

// Keys returns a view over the keys in recency order, oldest first.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for n := d.order.oldest(); n != nil; n = n.next {
			if !yield(n.key) {
				return
			}
		}
	}
}

// Values returns a view over the values in recency order, oldest first.
func (d *Dict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for n := d.order.oldest(); n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All returns a view over key-value pairs in recency order, oldest
// first.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := d.order.oldest(); n != nil; n = n.next {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
