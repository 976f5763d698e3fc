// Package grouping partitions backlog items into ordered, labeled buckets
// for display. It is generic over the item type; callers describe a group
// key through an Accessor and get back contiguous runs in sorted order.
package grouping

import "sort"

// Bucket is one named partition of the input.
type Bucket[T any] struct {
	Label string `json:"label"`
	Items []T    `json:"items"`
}

// Accessor describes one grouping key.
//
// SortKey returns the value items are ordered by and whether the relation
// is present; absent relations sort after all present ones. Label renders
// the human-readable bucket name, including the fallback ("Unassigned",
// "No sprint", "Unset") when the relation is absent.
type Accessor[T any] struct {
	SortKey func(T) (string, bool)
	Label   func(T) string
}

// GroupBy sorts items by (group key, secondary) with absent keys last, then
// partitions them into contiguous runs sharing a label. The input slice is
// not modified.
func GroupBy[T any](items []T, acc Accessor[T], secondary func(T) int) []Bucket[T] {
	sorted := make([]T, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, oki := acc.SortKey(sorted[i])
		kj, okj := acc.SortKey(sorted[j])

		if oki != okj {
			return oki // present sorts before absent
		}
		if ki != kj {
			return ki < kj
		}
		return secondary(sorted[i]) < secondary(sorted[j])
	})

	var buckets []Bucket[T]
	for _, item := range sorted {
		label := acc.Label(item)
		if n := len(buckets); n > 0 && buckets[n-1].Label == label {
			buckets[n-1].Items = append(buckets[n-1].Items, item)
			continue
		}
		buckets = append(buckets, Bucket[T]{Label: label, Items: []T{item}})
	}

	return buckets
}

// Single wraps the whole input in one unlabeled bucket, preserving order.
// Used when the requested group key is not supported.
func Single[T any](items []T) []Bucket[T] {
	return []Bucket[T]{{Items: items}}
}
