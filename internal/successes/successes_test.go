package successes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selfID  = "char-self"
	otherID = "char-other"
)

func strPtr(s string) *string {
	return &s
}

func TestAssignAndClear(t *testing.T) {
	ledger := New()

	ledger.Assign(SidePlayer, 0, "bonus-1")
	id, ok := ledger.Get(SidePlayer, 0)
	require.True(t, ok)
	assert.Equal(t, "bonus-1", id)

	assert.True(t, ledger.Clear(SidePlayer, 0))
	assert.False(t, ledger.Clear(SidePlayer, 0))
	assert.Equal(t, 0, ledger.Len())
}

func TestAssignMovesToken(t *testing.T) {
	ledger := New()

	ledger.Assign(SidePlayer, 0, "bonus-1")
	ledger.Assign(SidePlayer, 2, "bonus-1")

	_, ok := ledger.Get(SidePlayer, 0)
	assert.False(t, ok)
	id, ok := ledger.Get(SidePlayer, 2)
	require.True(t, ok)
	assert.Equal(t, "bonus-1", id)
	assert.Equal(t, map[string]string{"player-2": "bonus-1"}, ledger.Snapshot())
}

func TestApplyRemoteFlipsSide(t *testing.T) {
	ledger := New()

	applied := ledger.ApplyRemote(Remote{
		CharacterID: otherID,
		Side:        SidePlayer,
		PairIndex:   1,
		SuccessID:   strPtr("their-bonus"),
	}, selfID)

	require.True(t, applied)
	id, ok := ledger.Get(SideOpponent, 1)
	require.True(t, ok)
	assert.Equal(t, "their-bonus", id)

	applied = ledger.ApplyRemote(Remote{
		CharacterID: otherID,
		Side:        SideOpponent,
		PairIndex:   3,
		SuccessID:   strPtr("their-bonus-2"),
	}, selfID)
	require.True(t, applied)
	id, ok = ledger.Get(SidePlayer, 3)
	require.True(t, ok)
	assert.Equal(t, "their-bonus-2", id)
}

func TestApplyRemoteDropsOwnEcho(t *testing.T) {
	ledger := New()
	ledger.Assign(SidePlayer, 0, "mine")

	applied := ledger.ApplyRemote(Remote{
		CharacterID: selfID,
		Side:        SidePlayer,
		PairIndex:   0,
		SuccessID:   nil,
	}, selfID)

	assert.False(t, applied)
	_, ok := ledger.Get(SidePlayer, 0)
	assert.True(t, ok)
}

func TestApplyRemoteIsIdempotent(t *testing.T) {
	once := New()
	twice := New()
	update := Remote{
		CharacterID: otherID,
		Side:        SidePlayer,
		PairIndex:   2,
		SuccessID:   strPtr("their-bonus"),
	}

	once.ApplyRemote(update, selfID)
	twice.ApplyRemote(update, selfID)
	twice.ApplyRemote(update, selfID)

	assert.Equal(t, once.Snapshot(), twice.Snapshot())

	cleared := Remote{CharacterID: otherID, Side: SidePlayer, PairIndex: 2}
	once.ApplyRemote(cleared, selfID)
	twice.ApplyRemote(cleared, selfID)
	twice.ApplyRemote(cleared, selfID)
	assert.Equal(t, once.Snapshot(), twice.Snapshot())
	assert.Equal(t, 0, twice.Len())
}

func TestApplyRemoteRejectsBadSide(t *testing.T) {
	ledger := New()

	assert.False(t, ledger.ApplyRemote(Remote{CharacterID: otherID, Side: "left", PairIndex: 0, SuccessID: strPtr("x")}, selfID))
	assert.False(t, ledger.ApplyRemote(Remote{CharacterID: otherID, Side: SidePlayer, PairIndex: -1, SuccessID: strPtr("x")}, selfID))
	assert.Equal(t, 0, ledger.Len())
}

func TestKeyRoundTrip(t *testing.T) {
	key, err := ParseKey("opponent-4")
	require.NoError(t, err)
	assert.Equal(t, Key{Side: SideOpponent, PairIndex: 4}, key)
	assert.Equal(t, "opponent-4", key.String())

	_, err = ParseKey("left-1")
	assert.Error(t, err)
	_, err = ParseKey("player-x")
	assert.Error(t, err)
	_, err = ParseKey("player")
	assert.Error(t, err)
}

func TestSideOwner(t *testing.T) {
	assert.Equal(t, 0, SidePlayer.Owner(0))
	assert.Equal(t, 1, SideOpponent.Owner(0))
	assert.Equal(t, 1, SidePlayer.Owner(1))
	assert.Equal(t, 0, SideOpponent.Owner(1))
	assert.Equal(t, SideOpponent, SidePlayer.Flip())
}

func TestKeysAreOrdered(t *testing.T) {
	ledger := New()
	ledger.Assign(SidePlayer, 2, "a")
	ledger.Assign(SideOpponent, 0, "b")
	ledger.Assign(SidePlayer, 0, "c")

	assert.Equal(t, []Key{
		{Side: SideOpponent, PairIndex: 0},
		{Side: SidePlayer, PairIndex: 0},
		{Side: SidePlayer, PairIndex: 2},
	}, ledger.Keys())
}
