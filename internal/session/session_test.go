package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitcheck/splitcheck-backend/internal/domain/ledger"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	st := NewStore(0)
	id := st.Create()
	var s *Session
	require.NoError(t, st.View(id, func(got *Session) error {
		s = got
		return nil
	}))
	return s
}

func TestAdvance_WalksAllStages(t *testing.T) {
	s := newTestSession(t)
	_, err := s.AddPerson("Alice")
	require.NoError(t, err)
	item := s.Items.AddItem("Pizza", 2, 10)

	want := []Stage{StageUpload, StageItems, StageTips, StageSplit}
	for _, stage := range want {
		require.NoError(t, s.Advance())
		assert.Equal(t, stage, s.Stage)
	}

	// SPLIT refuses to advance until every item has an assignment.
	require.ErrorIs(t, s.Advance(), ErrNotFullySplit)

	person := s.People[0]
	_, ok := s.AdjustSplit(item.ID, person.ID, 1)
	require.True(t, ok)

	require.NoError(t, s.Advance())
	assert.Equal(t, StageSummary, s.Stage)

	// At the last stage another advance is a no-op.
	require.NoError(t, s.Advance())
	assert.Equal(t, StageSummary, s.Stage)
}

func TestAdvance_RequiresPeople(t *testing.T) {
	s := newTestSession(t)

	require.ErrorIs(t, s.Advance(), ErrNoPeople)
	assert.Equal(t, StagePeople, s.Stage)
}

func TestBack(t *testing.T) {
	s := newTestSession(t)
	_, err := s.AddPerson("Alice")
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	s.Back()
	assert.Equal(t, StagePeople, s.Stage)

	// At the first stage back is a no-op.
	s.Back()
	assert.Equal(t, StagePeople, s.Stage)
}

func TestReset(t *testing.T) {
	s := newTestSession(t)
	_, err := s.AddPerson("Alice")
	require.NoError(t, err)
	item := s.Items.AddItem("Pizza", 2, 10)
	person := s.People[0]
	s.AdjustSplit(item.ID, person.ID, 1)
	s.Tip = 4

	s.Reset()

	assert.Equal(t, StagePeople, s.Stage)
	assert.Empty(t, s.People)
	assert.Equal(t, 0, s.Items.Len())
	assert.Equal(t, 0.0, s.Splits.AssignedTotal(item.ID))
	assert.Equal(t, 0.0, s.Tip)
}

func TestAddPerson_TrimsAndValidates(t *testing.T) {
	s := newTestSession(t)

	person, err := s.AddPerson("  Alice  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", person.Name)
	assert.NotEmpty(t, person.ID)

	_, err = s.AddPerson("   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestRemovePerson_CascadesIntoSplits(t *testing.T) {
	s := newTestSession(t)
	alice, err := s.AddPerson("Alice")
	require.NoError(t, err)
	bob, err := s.AddPerson("Bob")
	require.NoError(t, err)
	item := s.Items.AddItem("Pizza", 2, 10)
	s.AdjustSplit(item.ID, alice.ID, 1)
	s.AdjustSplit(item.ID, bob.ID, 1)

	require.True(t, s.RemovePerson(alice.ID))

	assert.Len(t, s.People, 1)
	assert.Equal(t, 0.0, s.Splits.Get(item.ID, alice.ID))
	assert.Equal(t, 1.0, s.Splits.Get(item.ID, bob.ID))
	assert.False(t, s.RemovePerson(alice.ID))
}

func TestRemoveItem_CascadesIntoSplits(t *testing.T) {
	s := newTestSession(t)
	alice, err := s.AddPerson("Alice")
	require.NoError(t, err)
	item := s.Items.AddItem("Pizza", 2, 10)
	s.AdjustSplit(item.ID, alice.ID, 2)

	require.True(t, s.RemoveItem(item.ID))

	assert.Equal(t, 0, s.Items.Len())
	assert.Equal(t, 0.0, s.Splits.AssignedTotal(item.ID))
}

func TestReplaceItems_DiscardsAssignments(t *testing.T) {
	s := newTestSession(t)
	alice, err := s.AddPerson("Alice")
	require.NoError(t, err)
	old := s.Items.AddItem("Pizza", 2, 10)
	s.AdjustSplit(old.ID, alice.ID, 1)

	s.ReplaceItems([]ledger.Item{
		{ID: "new-1", Name: "Борщ", Quantity: 1, UnitPrice: 85},
	})

	assert.Equal(t, 1, s.Items.Len())
	assert.Equal(t, 0.0, s.Splits.AssignedTotal(old.ID))
	assert.Equal(t, 0.0, s.Splits.AssignedTotal("new-1"))
}

func TestAdjustSplit_UnknownItemIsNoOp(t *testing.T) {
	s := newTestSession(t)
	alice, err := s.AddPerson("Alice")
	require.NoError(t, err)

	_, ok := s.AdjustSplit("missing", alice.ID, 1)

	assert.False(t, ok)
	assert.Equal(t, 0.0, s.Splits.AssignedTotal("missing"))
}

func TestAdjustSplit_ReportsRemaining(t *testing.T) {
	s := newTestSession(t)
	alice, err := s.AddPerson("Alice")
	require.NoError(t, err)
	item := s.Items.AddItem("Pizza", 3, 10)

	res, ok := s.AdjustSplit(item.ID, alice.ID, 2)

	require.True(t, ok)
	assert.Equal(t, 2.0, res.Quantity)
	assert.Equal(t, 2.0, res.AssignedTotal)
	assert.Equal(t, 1.0, res.Remaining)
}

func TestSettle_UsesSessionState(t *testing.T) {
	s := newTestSession(t)
	alice, err := s.AddPerson("Alice")
	require.NoError(t, err)
	bob, err := s.AddPerson("Bob")
	require.NoError(t, err)
	item := s.Items.AddItem("Pizza", 2, 10)
	s.AdjustSplit(item.ID, alice.ID, 1)
	s.AdjustSplit(item.ID, bob.ID, 1)
	s.Tip = 4

	result := s.Settle()

	assert.InDelta(t, 24.00, result.TotalWithTip, 0.001)
	require.Len(t, result.Shares, 2)
	assert.InDelta(t, 12.00, result.Shares[0].Total, 0.001)
}
