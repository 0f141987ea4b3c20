package protocol

import (
	"testing"

	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/successes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJoinFrame(t *testing.T) {
	raw := []byte(`{"event":"auto-join-or-create","data":{"characterInfo":{"id":"c1","name":"Vex","portrait":"ignored.png"},"selectedDice":[8,6,6],"bonusSuccessIds":["b1"]}}`)

	env, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, EventAutoJoinOrCreate, env.Event)

	var payload JoinPayload
	require.NoError(t, env.Decode(&payload))
	assert.Equal(t, models.CharacterInfo{ID: "c1", Name: "Vex"}, payload.CharacterInfo)
	assert.Equal(t, []int{8, 6, 6}, payload.SelectedDice)
	assert.Equal(t, []string{"b1"}, payload.BonusSuccessIDs)
}

func TestParseRejectsBadFrames(t *testing.T) {
	_, err := Parse([]byte(`not json`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"data":{}}`))
	assert.ErrorIs(t, err, ErrEmptyEvent)
}

func TestDecodeWithoutData(t *testing.T) {
	env := &Envelope{Event: EventCancelSession}

	var payload CancelPayload
	assert.Error(t, env.Decode(&payload))
}

func TestNewEnvelopeSnapshotsPayload(t *testing.T) {
	session := &models.Session{ID: "s1", Status: models.SessionStatusWaiting}

	env, err := NewEnvelope(EventSessionUpdated, &SessionPayload{SessionID: session.ID, Session: session})
	require.NoError(t, err)

	session.Status = models.SessionStatusActive

	var payload SessionPayload
	require.NoError(t, env.Decode(&payload))
	assert.Equal(t, models.SessionStatusWaiting, payload.Session.Status)
}

func TestSuccessAssignmentNullClears(t *testing.T) {
	raw := []byte(`{"event":"success-assignment-updated","data":{"sessionId":"s1","characterId":"c1","player":"opponent","diceIndex":2,"successId":null}}`)

	env, err := Parse(raw)
	require.NoError(t, err)

	var payload SuccessAssignmentPayload
	require.NoError(t, env.Decode(&payload))
	remote := payload.Remote()
	assert.Nil(t, remote.SuccessID)
	assert.Equal(t, successes.SideOpponent, remote.Side)
	assert.Equal(t, 2, remote.PairIndex)
}

func TestDieRerolledFlattensReroll(t *testing.T) {
	env := MustEnvelope(EventDieRerolled, &DieRerolledPayload{
		RerollPayload: RerollPayload{SessionID: "s1", Player: successes.SidePlayer, DiceIndex: 1, NewValue: 5, CharacterID: "c1"},
	})

	raw, err := env.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"newValue":5`)
	assert.Contains(t, string(raw), `"diceIndex":1`)
}
