package subset_test

import (
	"testing"

	"github.com/katalvlaran/ecflip/subset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAll_Empty yields exactly the empty subset.
func TestAll_Empty(t *testing.T) {
	got := subset.All([]int(nil))
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

// TestAll_OrderAndContents pins the binary-index enumeration order.
func TestAll_OrderAndContents(t *testing.T) {
	got := subset.All([]string{"a", "b", "c"})
	want := [][]string{
		{},
		{"a"},
		{"b"},
		{"a", "b"},
		{"c"},
		{"a", "c"},
		{"b", "c"},
		{"a", "b", "c"},
	}
	require.Len(t, got, 8)
	for i := range want {
		assert.ElementsMatch(t, want[i], got[i], "subset %d", i)
	}
	// Order within a subset follows input order, not just membership.
	assert.Equal(t, []string{"a", "b", "c"}, got[7])
}

// TestAll_Count verifies 2^n subsets for a few sizes.
func TestAll_Count(t *testing.T) {
	for n := 0; n <= 10; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		assert.Len(t, subset.All(items), 1<<n, "n=%d", n)
	}
}

// TestAll_SharesElements confirms subsets alias the input's elements, not copies.
func TestAll_SharesElements(t *testing.T) {
	type box struct{ v int }
	a, b := &box{1}, &box{2}
	got := subset.All([]*box{a, b})
	require.Len(t, got, 4)
	assert.Same(t, a, got[3][0])
	assert.Same(t, b, got[3][1])
}
