package subset

import "math/bits"

// All returns the powerset of items: 2^n subsets including the empty one.
// Subset i contains items[j] exactly when bit j of i is set, so the order
// is stable and deterministic: {}, {items[0]}, {items[1]},
// {items[0], items[1]}, … Each subset is freshly allocated; elements are
// shared with the input slice.
//
// Contracts:
//   - len(items) must stay small; the result holds 2^n subsets and the
//     call will exhaust memory long before mask arithmetic overflows.
//
// Complexity: O(n·2^n) time, O(n·2^n) memory.
func All[T any](items []T) [][]T {
	n := len(items)
	total := 1 << n
	powerset := make([][]T, 0, total)
	for mask := 0; mask < total; mask++ {
		sub := make([]T, 0, bits.OnesCount(uint(mask)))
		for j := 0; j < n; j++ {
			if mask&(1<<j) != 0 {
				sub = append(sub, items[j])
			}
		}
		powerset = append(powerset, sub)
	}
	return powerset
}
