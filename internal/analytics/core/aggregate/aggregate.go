// Package aggregate groups rows by a caller-supplied key and reduces each
// group. Nothing here orders results; callers sort what they return.
package aggregate

import (
	"cmp"
	"slices"
)

// GroupBy partitions rows by key. A key function returning false leaves the
// row out. Rows keep their input order inside each group.
func GroupBy[T any, K comparable](rows []T, key func(T) (K, bool)) map[K][]T {
	groups := make(map[K][]T)
	for _, row := range rows {
		k, ok := key(row)
		if !ok {
			continue
		}
		groups[k] = append(groups[k], row)
	}
	return groups
}

// Rollup groups rows by key and reduces each group to one result.
func Rollup[T any, K comparable, R any](rows []T, key func(T) (K, bool), reduce func([]T) R) map[K]R {
	groups := GroupBy(rows, key)
	out := make(map[K]R, len(groups))
	for k, g := range groups {
		out[k] = reduce(g)
	}
	return out
}

// Distinct collects, per key, the set of values seen. A value counts once
// per key no matter how many rows repeat it.
func Distinct[T any, K comparable, V comparable](rows []T, key func(T) (K, bool), value func(T) (V, bool)) map[K]Set[V] {
	out := make(map[K]Set[V])
	for _, row := range rows {
		k, ok := key(row)
		if !ok {
			continue
		}
		v, ok := value(row)
		if !ok {
			continue
		}
		s, found := out[k]
		if !found {
			s = make(Set[V])
			out[k] = s
		}
		s.Add(v)
	}
	return out
}

// Sum adds up f over rows.
func Sum[T any, N cmp.Ordered](rows []T, f func(T) N) N {
	var total N
	for _, row := range rows {
		total += f(row)
	}
	return total
}

type Entry[K comparable, R any] struct {
	Key   K
	Value R
}

// Sorted flattens m into entries ordered by compare.
func Sorted[K comparable, R any](m map[K]R, compare func(a, b Entry[K, R]) int) []Entry[K, R] {
	out := make([]Entry[K, R], 0, len(m))
	for k, v := range m {
		out = append(out, Entry[K, R]{Key: k, Value: v})
	}
	slices.SortFunc(out, compare)
	return out
}

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, R any](m map[K]R) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
