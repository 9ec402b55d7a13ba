package client

// List reconciliation helpers: one merged, ordered view over a remote
// snapshot and a local overlay, plus the pagination math the list screens
// share.

// State says whether an entity has been confirmed by the server.
type State int

const (
	Persisted State = iota
	LocalOnly
)

func (s State) String() string {
	if s == LocalOnly {
		return "local-only"
	}
	return "persisted"
}

// Record pairs an entity with its identifier and persistence state.
type Record[T any] struct {
	ID    uint
	State State
	Value T
}

// Merge layers the overlay over the remote snapshot: overlay entries first
// (newest-first, as they were prepended), then remote items in server order.
// An overlay entry sharing an id with a remote item wins, since it reflects
// the latest optimistic edit.
func Merge[T any](remote []T, overlay []Record[T], idOf func(T) uint) []Record[T] {
	merged := make([]Record[T], 0, len(remote)+len(overlay))
	seen := make(map[uint]bool, len(overlay))

	for _, rec := range overlay {
		merged = append(merged, rec)
		seen[rec.ID] = true
	}
	for _, item := range remote {
		id := idOf(item)
		if seen[id] {
			continue
		}
		merged = append(merged, Record[T]{ID: id, State: Persisted, Value: item})
	}
	return merged
}

// NextID returns max(existing)+1, floor 1.
func NextID(existing []uint) uint {
	var max uint
	for _, id := range existing {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Page holds one slice of a paginated projection.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalItems int
	TotalPages int
}

// Paginate slices items into the 1-based page of the given size. Pages past
// the end come back empty; TotalPages is ceil(len/size).
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
