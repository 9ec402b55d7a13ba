package client

import (
	"context"
	"errors"
	"sync"
)

// ErrSaveInFlight means a submit is already pending for this collection;
// callers disable the submit control until the previous save settles.
var ErrSaveInFlight = errors.New("a save is already in flight")

// Collection reconciles one list screen: the authoritative remote snapshot,
// the local overlay of optimistic/seed entities, and the merged projection.
// Mock collections have no real backing store, so remote failures degrade to
// local-only state instead of surfacing as errors.
type Collection[T any] struct {
	idOf  func(T) uint
	setID func(*T, uint)
	mock  bool

	mu      sync.Mutex
	remote  []T
	overlay []Record[T]
	highID  uint
	saving  bool
}

func NewCollection[T any](idOf func(T) uint, setID func(*T, uint)) *Collection[T] {
	return &Collection[T]{idOf: idOf, setID: setID}
}

// NewMockCollection builds a collection for a demo resource, pre-populated
// with seed entities that exist only in this session.
func NewMockCollection[T any](idOf func(T) uint, setID func(*T, uint), seed []T) *Collection[T] {
	c := &Collection[T]{idOf: idOf, setID: setID, mock: true}
	for _, item := range seed {
		id := idOf(item)
		c.overlay = append(c.overlay, Record[T]{ID: id, State: LocalOnly, Value: item})
		if id > c.highID {
			c.highID = id
		}
	}
	return c
}

// SetRemote replaces the remote snapshot after a fresh fetch. Optimistic
// entries that the server now knows about collapse into the snapshot.
func (c *Collection[T]) SetRemote(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.remote = items
	for _, item := range items {
		if id := c.idOf(item); id > c.highID {
			c.highID = id
		}
	}

	// Drop persisted overlay entries; the snapshot supersedes them.
	kept := c.overlay[:0]
	for _, rec := range c.overlay {
		if rec.State == LocalOnly {
			kept = append(kept, rec)
		}
	}
	c.overlay = kept
}

// Items returns the merged projection: overlay first, then remote, de-duped
// by id with the overlay winning.
func (c *Collection[T]) Items() []Record[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Merge(c.remote, c.overlay, c.idOf)
}

// nextID assigns max(existing)+1 and never reuses an id within the session,
// even after deletes.
func (c *Collection[T]) nextID() uint {
	ids := make([]uint, 0, len(c.remote)+len(c.overlay)+1)
	for _, item := range c.remote {
		ids = append(ids, c.idOf(item))
	}
	for _, rec := range c.overlay {
		ids = append(ids, rec.ID)
	}
	ids = append(ids, c.highID)

	id := NextID(ids)
	c.highID = id
	return id
}

func (c *Collection[T]) beginSave() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.saving {
		return ErrSaveInFlight
	}
	c.saving = true
	return nil
}

func (c *Collection[T]) endSave() {
	c.mu.Lock()
	c.saving = false
	c.mu.Unlock()
}

// Create prepends the entity optimistically, then issues the remote create.
// On success the entity is re-tagged Persisted with the server's copy. On
// failure it stays in the list tagged LocalOnly so the operator can see the
// divergence; it is not rolled back.
func (c *Collection[T]) Create(ctx context.Context, entity T, create func(context.Context, T) (T, error)) (Record[T], error) {
	if err := c.beginSave(); err != nil {
		return Record[T]{}, err
	}
	defer c.endSave()

	c.mu.Lock()
	id := c.nextID()
	c.setID(&entity, id)
	rec := Record[T]{ID: id, State: LocalOnly, Value: entity}
	c.overlay = append([]Record[T]{rec}, c.overlay...)
	c.mu.Unlock()

	created, err := create(ctx, entity)
	if err != nil {
		return rec, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.overlay {
		if c.overlay[i].ID == id {
			serverID := c.idOf(created)
			c.overlay[i] = Record[T]{ID: serverID, State: Persisted, Value: created}
			if serverID > c.highID {
				c.highID = serverID
			}
			return c.overlay[i], nil
		}
	}
	return Record[T]{ID: id, State: Persisted, Value: created}, nil
}

// Update replaces the matching entity locally, then issues the remote
// update. For mock collections a remote failure keeps the local replacement;
// for persisted entities the error is reported and the local copy stays
// tagged LocalOnly until a reload reconciles it.
func (c *Collection[T]) Update(ctx context.Context, id uint, entity T, update func(context.Context, uint, T) (T, error)) error {
	if err := c.beginSave(); err != nil {
		return err
	}
	defer c.endSave()

	c.mu.Lock()
	c.setID(&entity, id)
	replaced := false
	for i := range c.overlay {
		if c.overlay[i].ID == id {
			c.overlay[i].Value = entity
			c.overlay[i].State = LocalOnly
			replaced = true
			break
		}
	}
	if !replaced {
		c.overlay = append([]Record[T]{{ID: id, State: LocalOnly, Value: entity}}, c.overlay...)
	}
	c.mu.Unlock()

	updated, err := update(ctx, id, entity)
	if err != nil {
		if c.mock {
			// Demo resources have no backing store; the local edit stands.
			return nil
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.overlay {
		if c.overlay[i].ID == id {
			c.overlay[i] = Record[T]{ID: id, State: Persisted, Value: updated}
			break
		}
	}
	return nil
}

// Delete removes the entity locally, then issues the remote delete. A not
// found response for an entity that was never persisted counts as success:
// the local removal already satisfied the intent.
func (c *Collection[T]) Delete(ctx context.Context, id uint, del func(context.Context, uint) error) error {
	if err := c.beginSave(); err != nil {
		return err
	}
	defer c.endSave()

	c.mu.Lock()
	wasLocalOnly := false
	for i := range c.overlay {
		if c.overlay[i].ID == id {
			wasLocalOnly = c.overlay[i].State == LocalOnly
			c.overlay = append(c.overlay[:i], c.overlay[i+1:]...)
			break
		}
	}
	kept := c.remote[:0]
	for _, item := range c.remote {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	c.remote = kept
	c.mu.Unlock()

	err := del(ctx, id)
	if err != nil {
		var apiErr *APIError
		if wasLocalOnly && errors.As(err, &apiErr) && apiErr.StatusCode == 404 {
			return nil
		}
		return err
	}
	return nil
}
