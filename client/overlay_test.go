package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSuccessRetagsPersisted(t *testing.T) {
	c := NewCollection(noteID, setNoteID)
	c.SetRemote([]note{{ID: 1, Name: "a"}})

	rec, err := c.Create(context.Background(), note{Name: "b"}, func(_ context.Context, n note) (note, error) {
		n.ID = 2
		return n, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Persisted, rec.State)
	assert.Equal(t, uint(2), rec.ID)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].Value.Name)
}

func TestCreateFailureKeepsEntityLocalOnly(t *testing.T) {
	c := NewCollection(noteID, setNoteID)
	c.SetRemote([]note{{ID: 1, Name: "a"}})

	boom := errors.New("network down")
	rec, err := c.Create(context.Background(), note{Name: "b"}, func(context.Context, note) (note, error) {
		return note{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, LocalOnly, rec.State)

	// The entity is not rolled back; it stays in the list, tagged local-only.
	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].Value.Name)
	assert.Equal(t, LocalOnly, items[0].State)
	assert.Equal(t, Persisted, items[1].State)
}

func TestCreateNeverReusesIDsAfterDelete(t *testing.T) {
	c := NewMockCollection(noteID, setNoteID, []note{{ID: 1}, {ID: 2}, {ID: 3}})

	noop := func(context.Context, uint) error { return nil }
	require.NoError(t, c.Delete(context.Background(), 3, noop))

	rec, err := c.Create(context.Background(), note{Name: "x"}, func(_ context.Context, n note) (note, error) {
		return n, nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(4), rec.ID)
}

func TestMockUpdateFailureKeepsLocalEdit(t *testing.T) {
	c := NewMockCollection(noteID, setNoteID, []note{{ID: 1, Name: "seed"}})

	err := c.Update(context.Background(), 1, note{Name: "edited"}, func(context.Context, uint, note) (note, error) {
		return note{}, &APIError{StatusCode: 404, Message: "not found"}
	})
	require.NoError(t, err)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "edited", items[0].Value.Name)
	assert.Equal(t, LocalOnly, items[0].State)
}

func TestUpdateFailureOnPersistedEntityReportsError(t *testing.T) {
	c := NewCollection(noteID, setNoteID)
	c.SetRemote([]note{{ID: 1, Name: "a"}})

	boom := errors.New("server error")
	err := c.Update(context.Background(), 1, note{Name: "edited"}, func(context.Context, uint, note) (note, error) {
		return note{}, boom
	})
	assert.ErrorIs(t, err, boom)

	// The local edit stands until a reload reconciles it.
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "edited", items[0].Value.Name)
	assert.Equal(t, LocalOnly, items[0].State)
}

func TestDeleteLocalOnlyTolerates404(t *testing.T) {
	c := NewMockCollection(noteID, setNoteID, []note{{ID: 1, Name: "seed"}})

	err := c.Delete(context.Background(), 1, func(context.Context, uint) error {
		return &APIError{StatusCode: 404, Message: "not found"}
	})
	require.NoError(t, err)
	assert.Empty(t, c.Items())
}

func TestDeletePersistedSurfaces404(t *testing.T) {
	c := NewCollection(noteID, setNoteID)
	c.SetRemote([]note{{ID: 1, Name: "a"}})

	err := c.Delete(context.Background(), 1, func(context.Context, uint) error {
		return &APIError{StatusCode: 404, Message: "not found"}
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestSecondSaveWhileInFlightIsRejected(t *testing.T) {
	c := NewCollection(noteID, setNoteID)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := c.Create(context.Background(), note{Name: "slow"}, func(_ context.Context, n note) (note, error) {
			close(entered)
			<-release
			return n, nil
		})
		done <- err
	}()

	<-entered
	_, err := c.Create(context.Background(), note{Name: "second"}, func(_ context.Context, n note) (note, error) {
		return n, nil
	})
	assert.ErrorIs(t, err, ErrSaveInFlight)

	close(release)
	require.NoError(t, <-done)

	// The gate reopens once the first save settles.
	_, err = c.Create(context.Background(), note{Name: "third"}, func(_ context.Context, n note) (note, error) {
		return n, nil
	})
	assert.NoError(t, err)
}

func TestSetRemoteDropsPersistedOverlayEntries(t *testing.T) {
	c := NewCollection(noteID, setNoteID)

	_, err := c.Create(context.Background(), note{Name: "b"}, func(_ context.Context, n note) (note, error) {
		return n, nil
	})
	require.NoError(t, err)

	c.SetRemote([]note{{ID: 1, Name: "b"}, {ID: 2, Name: "c"}})

	items := c.Items()
	require.Len(t, items, 2)
	for _, rec := range items {
		assert.Equal(t, Persisted, rec.State)
	}
}
