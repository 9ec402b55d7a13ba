package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   uint
	Name string
}

func noteID(n note) uint      { return n.ID }
func setNoteID(n *note, id uint) { n.ID = id }

func TestMergeEmptyOverlayKeepsRemoteOrder(t *testing.T) {
	remote := []note{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	merged := Merge(remote, nil, noteID)

	require.Len(t, merged, 3)
	for i, rec := range merged {
		assert.Equal(t, remote[i].ID, rec.ID)
		assert.Equal(t, Persisted, rec.State)
		assert.Equal(t, remote[i], rec.Value)
	}
}

func TestMergeOverlayWinsOnSharedID(t *testing.T) {
	remote := []note{{ID: 1, Name: "stale"}, {ID: 2, Name: "b"}}
	overlay := []Record[note]{
		{ID: 5, State: LocalOnly, Value: note{ID: 5, Name: "new"}},
		{ID: 1, State: LocalOnly, Value: note{ID: 1, Name: "edited"}},
	}

	merged := Merge(remote, overlay, noteID)

	require.Len(t, merged, 3)
	assert.Equal(t, uint(5), merged[0].ID)
	assert.Equal(t, "edited", merged[1].Value.Name)
	assert.Equal(t, uint(2), merged[2].ID)

	seen := map[uint]int{}
	for _, rec := range merged {
		seen[rec.ID]++
	}
	for id, count := range seen {
		assert.Equalf(t, 1, count, "id %d appears %d times", id, count)
	}
}

func TestNextID(t *testing.T) {
	assert.Equal(t, uint(7), NextID([]uint{1, 2, 3, 6}))
	assert.Equal(t, uint(1), NextID(nil))
	assert.Equal(t, uint(10), NextID([]uint{9, 4}))
}

func TestPaginatePartitionsWithoutLossOrDuplication(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	const size = 10
	first := Paginate(items, 1, size)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 23, first.TotalItems)

	var collected []int
	for page := 1; page <= first.TotalPages; page++ {
		collected = append(collected, Paginate(items, page, size).Items...)
	}
	assert.Equal(t, items, collected)
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	page := Paginate(items, 9, 2)
	assert.Empty(t, page.Items)
	assert.Equal(t, 2, page.TotalPages)
}
