package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateAndView(t *testing.T) {
	st := NewStore(0)

	id := st.Create()
	require.NotEmpty(t, id)

	err := st.View(id, func(s *Session) error {
		assert.Equal(t, id, s.ID)
		assert.Equal(t, StagePeople, s.Stage)
		return nil
	})
	require.NoError(t, err)
}

func TestStore_ViewUnknownID(t *testing.T) {
	st := NewStore(0)

	err := st.View("missing", func(*Session) error { return nil })

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateBumpsTimestamp(t *testing.T) {
	st := NewStore(0)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return current }

	id := st.Create()

	current = current.Add(time.Minute)
	err := st.Update(id, func(s *Session) error {
		_, err := s.AddPerson("Alice")
		return err
	})
	require.NoError(t, err)

	require.NoError(t, st.View(id, func(s *Session) error {
		assert.Equal(t, current, s.UpdatedAt)
		assert.Len(t, s.People, 1)
		return nil
	}))
}

func TestStore_UpdateErrorLeavesTimestamp(t *testing.T) {
	st := NewStore(0)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return current }

	id := st.Create()
	created := current

	current = current.Add(time.Minute)
	err := st.Update(id, func(s *Session) error {
		_, err := s.AddPerson("   ")
		return err
	})
	require.ErrorIs(t, err, ErrEmptyName)

	require.NoError(t, st.View(id, func(s *Session) error {
		assert.Equal(t, created, s.UpdatedAt)
		return nil
	}))
}

func TestStore_Delete(t *testing.T) {
	st := NewStore(0)
	id := st.Create()

	require.NoError(t, st.Delete(id))
	assert.ErrorIs(t, st.Delete(id), ErrNotFound)
	assert.ErrorIs(t, st.View(id, func(*Session) error { return nil }), ErrNotFound)
}

func TestStore_EvictsIdleSessions(t *testing.T) {
	st := NewStore(30 * time.Minute)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return current }

	stale := st.Create()

	current = current.Add(time.Hour)
	fresh := st.Create()

	assert.ErrorIs(t, st.View(stale, func(*Session) error { return nil }), ErrNotFound)
	assert.NoError(t, st.View(fresh, func(*Session) error { return nil }))
	assert.Equal(t, 1, st.Len())
}

func TestStore_ZeroTTLNeverEvicts(t *testing.T) {
	st := NewStore(0)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return current }

	id := st.Create()

	current = current.Add(240 * time.Hour)
	st.Create()

	assert.NoError(t, st.View(id, func(*Session) error { return nil }))
}
