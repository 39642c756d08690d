package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string
	Name  string
	Score int
}

func rowID(r *record) *string { return &r.ID }

func seedRows() []record {
	return []record{{ID: "a", Name: "alpha", Score: 3}, {ID: "b", Name: "bravo", Score: 1}, {ID: "c", Name: "charlie", Score: 2}}
}

func TestMemoryStore_ListKeepsInsertionOrder(t *testing.T) {
	s := NewMemoryStore(rowID, seedRows())

	got := s.List(Query[record]{})

	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestMemoryStore_ListFiltersAndSorts(t *testing.T) {
	s := NewMemoryStore(rowID, seedRows())
	byScore := func(a, b record) bool { return a.Score < b.Score }

	asc := s.List(Query[record]{Less: byScore})
	assert.Equal(t, "b", asc[0].ID)

	desc := s.List(Query[record]{Less: byScore, Descending: true})
	assert.Equal(t, "a", desc[0].ID)

	filtered := s.List(Query[record]{Match: func(r record) bool { return r.Score >= 2 }})
	assert.Len(t, filtered, 2)
}

func TestMemoryStore_SeedIsCopied(t *testing.T) {
	seed := seedRows()
	s := NewMemoryStore(rowID, seed)

	_, err := s.Update("a", func(r *record) error { r.Name = "changed"; return nil })
	require.NoError(t, err)
	require.True(t, s.Delete("b"))

	assert.Equal(t, "alpha", seed[0].Name)
	assert.Len(t, seed, 3)
}

func TestMemoryStore_InsertDuplicate(t *testing.T) {
	s := NewMemoryStore(rowID, seedRows())

	err := s.Insert(record{ID: "a"})

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, 3, s.Len())
}

func TestMemoryStore_UpdateFailureLeavesRow(t *testing.T) {
	s := NewMemoryStore(rowID, seedRows())
	boom := errors.New("boom")

	_, err := s.Update("a", func(r *record) error {
		r.Name = "half-applied"
		return boom
	})

	assert.ErrorIs(t, err, boom)
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", got.Name)
}

func TestMemoryStore_UpdateKeepsID(t *testing.T) {
	s := NewMemoryStore(rowID, seedRows())

	updated, err := s.Update("a", func(r *record) error { r.ID = "z"; return nil })

	require.NoError(t, err)
	assert.Equal(t, "a", updated.ID)
	_, ok := s.Get("z")
	assert.False(t, ok)
}

func TestMemoryStore_DeleteAndMissing(t *testing.T) {
	s := NewMemoryStore(rowID, seedRows())

	assert.True(t, s.Delete("b"))
	assert.False(t, s.Delete("b"))
	_, err := s.Update("b", func(*record) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.List(Query[record]{}), 2)
}
