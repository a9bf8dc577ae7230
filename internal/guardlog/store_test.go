package guardlog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guards.db")
	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	first := Event{
		ID:    uuid.New(),
		Expr:  "(x + 1)",
		Kind:  "int",
		Value: "7",
		File:  "shapes.go",
		Line:  42,
		At:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	second := Event{
		ID:    uuid.New(),
		Expr:  "(x < 10)",
		Kind:  "bool",
		Value: "true",
		At:    time.Date(2026, 3, 1, 10, 0, 1, 0, time.UTC),
	}
	require.NoError(t, store.Record(first))
	require.NoError(t, store.Record(second))

	events, err := store.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, first.ID, events[0].ID)
	assert.Equal(t, "(x + 1)", events[0].Expr)
	assert.Equal(t, "int", events[0].Kind)
	assert.Equal(t, "7", events[0].Value)
	assert.Equal(t, "shapes.go", events[0].File)
	assert.Equal(t, 42, events[0].Line)
	assert.True(t, first.At.Equal(events[0].At))

	assert.Equal(t, "bool", events[1].Kind)
	assert.Equal(t, "", events[1].File)
}

func TestStoreDuplicateID(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "guards.db"))
	require.NoError(t, err)
	defer store.Close()

	ev := Event{ID: uuid.New(), Expr: "x", Kind: "int", Value: "1", At: time.Now()}
	require.NoError(t, store.Record(ev))
	assert.Error(t, store.Record(ev))
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guards.db")

	store, err := Open(path)
	require.NoError(t, err)
	ev := Event{ID: uuid.New(), Expr: "x", Kind: "int", Value: "1", At: time.Now().UTC()}
	require.NoError(t, store.Record(ev))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	events, err := store.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, ev.ID, events[0].ID)
}

func TestMemoryRecorder(t *testing.T) {
	m := NewMemory()
	require.Equal(t, 0, m.Len())

	require.NoError(t, m.Record(Event{ID: uuid.New(), Expr: "x", Kind: "int", Value: "1"}))
	require.NoError(t, m.Record(Event{ID: uuid.New(), Expr: "y", Kind: "int", Value: "2"}))

	events := m.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "x", events[0].Expr)

	// Snapshot is independent of later appends.
	require.NoError(t, m.Record(Event{ID: uuid.New(), Expr: "z", Kind: "int", Value: "3"}))
	assert.Len(t, events, 2)
	assert.Equal(t, 3, m.Len())
}
