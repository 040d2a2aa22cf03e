package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i + 1
	}
	return xs
}

func TestPaginateSplitsFixedSizePages(t *testing.T) {
	items := seq(14)

	p1 := Paginate(items, 10, 1)
	require.Len(t, p1.Items, 10)
	assert.Equal(t, 1, p1.Number)
	assert.Equal(t, 14, p1.TotalItems)
	assert.Equal(t, 2, p1.TotalPages)
	assert.True(t, p1.HasNext())
	assert.False(t, p1.HasPrevious())

	p2 := Paginate(items, 10, 2)
	require.Len(t, p2.Items, 4)
	assert.Equal(t, []int{11, 12, 13, 14}, p2.Items)
	assert.False(t, p2.HasNext())
	assert.True(t, p2.HasPrevious())
}

func TestPaginateClampsOutOfRange(t *testing.T) {
	items := seq(14)

	// beyond the last page returns the last page, not an empty one
	p := Paginate(items, 10, 3)
	assert.Equal(t, 2, p.Number)
	assert.Equal(t, []int{11, 12, 13, 14}, p.Items)

	p = Paginate(items, 10, 999)
	assert.Equal(t, 2, p.Number)

	// below 1 behaves as page 1
	p = Paginate(items, 10, 0)
	assert.Equal(t, 1, p.Number)
	p = Paginate(items, 10, -5)
	assert.Equal(t, 1, p.Number)
}

func TestPaginateEmptySequence(t *testing.T) {
	p := Paginate([]int{}, 10, 1)
	assert.Empty(t, p.Items)
	assert.Equal(t, 1, p.Number)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 0, p.TotalItems)
	assert.False(t, p.HasNext())
	assert.False(t, p.HasPrevious())
}

func TestPaginateDoesNotMutateInput(t *testing.T) {
	items := []int{3, 1, 2}
	_ = Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 1, 2}, items)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 7, ParsePage("7"))
	assert.Equal(t, -2, ParsePage("-2")) // clamp happens in Paginate
}
