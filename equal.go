package lrudict

// Equal reports whether two containers have the same capacity, the same
// entry count, and pairwise-equal entries when both are walked in
// recency order. Two containers holding the same entries in a different
// recency order are not equal.
//
// Both arguments nil is equal; one nil is not. Comparing containers of
// different type parameters does not compile, which settles cross-type
// comparison at the type level.
func Equal[K, V comparable](a, b *Dict[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value comparator, for value
// types that are not comparable or differ between the two containers.
// Keys are still compared with ==. The shapes mirror slices.Equal and
// slices.EqualFunc.
func EqualFunc[K comparable, V1, V2 any](a *Dict[K, V1], b *Dict[K, V2], eq func(V1, V2) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.capacity != b.capacity || len(a.table) != len(b.table) {
		return false
	}

	na, nb := a.order.oldest(), b.order.oldest()
	for na != nil && nb != nil {
		if na.key != nb.key || !eq(na.value, nb.value) {
			return false
		}
		na, nb = na.next, nb.next
	}
	return na == nil && nb == nil
}
