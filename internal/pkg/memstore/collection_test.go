package memstore

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64
	Name string
}

func insertRecord(c *Collection[record], name string) record {
	return c.Insert(func(id int64) record {
		return record{ID: id, Name: name}
	})
}

func TestInsertAssignsSequentialIDs(t *testing.T) {
	c := New[record]()

	first := insertRecord(c, "a")
	second := insertRecord(c, "b")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, c.Len())
}

func TestInsertIfRejectsConflictingRecord(t *testing.T) {
	c := New[record]()
	insertRecord(c, "a")

	_, err := c.InsertIf(
		func(r record) bool { return r.Name == "a" },
		func(id int64) record { return record{ID: id, Name: "a"} },
	)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, c.Len())

	// Rejected inserts do not consume ids
	next := insertRecord(c, "b")
	assert.Equal(t, int64(2), next.ID)
}

func TestInsertIfUnderContention(t *testing.T) {
	c := New[record]()

	const workers = 16
	var wins int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := c.InsertIf(
				func(r record) bool { return r.Name == "a" },
				func(id int64) record { return record{ID: id, Name: "a"} },
			)
			if err == nil {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	assert.Equal(t, 1, c.Len())
}

func TestUpdateIfExcludesOwnRecordFromConflict(t *testing.T) {
	c := New[record]()
	insertRecord(c, "a")
	insertRecord(c, "b")

	// Keeping your own name is not a conflict with yourself
	updated, err := c.UpdateIf(
		func(r record) bool { return r.ID == 2 },
		func(r record) bool { return r.Name == "b" },
		func(r record) record { return r },
	)
	require.NoError(t, err)
	assert.Equal(t, "b", updated.Name)

	// Taking another record's name is
	_, err = c.UpdateIf(
		func(r record) bool { return r.ID == 2 },
		func(r record) bool { return r.Name == "a" },
		func(r record) record {
			r.Name = "a"
			return r
		},
	)
	assert.ErrorIs(t, err, ErrConflict)

	stored, found := c.Find(func(r record) bool { return r.ID == 2 })
	require.True(t, found)
	assert.Equal(t, "b", stored.Name)
}

func TestUpdateIfMissingRecord(t *testing.T) {
	c := New[record]()

	_, err := c.UpdateIf(
		func(r record) bool { return r.ID == 1 },
		nil,
		func(r record) record { return r },
	)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDoesNotReuseIDs(t *testing.T) {
	c := New[record]()

	insertRecord(c, "a")
	insertRecord(c, "b")
	insertRecord(c, "c")

	deleted := c.Delete(func(r record) bool { return r.ID == 2 })
	require.True(t, deleted)
	assert.Equal(t, 2, c.Len())

	next := insertRecord(c, "d")
	assert.Equal(t, int64(4), next.ID)

	_, found := c.Find(func(r record) bool { return r.ID == 2 })
	assert.False(t, found)
}

func TestDeleteMissingRecord(t *testing.T) {
	c := New[record]()
	insertRecord(c, "a")

	assert.False(t, c.Delete(func(r record) bool { return r.ID == 99 }))
	assert.Equal(t, 1, c.Len())
}

func TestUpdateAppliesInPlace(t *testing.T) {
	c := New[record]()
	insertRecord(c, "a")

	updated, ok := c.Update(
		func(r record) bool { return r.ID == 1 },
		func(r record) record {
			r.Name = "renamed"
			return r
		},
	)

	require.True(t, ok)
	assert.Equal(t, "renamed", updated.Name)

	stored, found := c.Find(func(r record) bool { return r.ID == 1 })
	require.True(t, found)
	assert.Equal(t, "renamed", stored.Name)
}

func TestUpdateMissingRecord(t *testing.T) {
	c := New[record]()

	_, ok := c.Update(
		func(r record) bool { return r.ID == 1 },
		func(r record) record { return r },
	)
	assert.False(t, ok)
}

func TestListWithNilPredicateReturnsAll(t *testing.T) {
	c := New[record]()
	insertRecord(c, "a")
	insertRecord(c, "b")

	all := c.List(nil)
	assert.Len(t, all, 2)

	filtered := c.List(func(r record) bool { return r.Name == "b" })
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(2), filtered[0].ID)
}
