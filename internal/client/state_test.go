package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/protocol"
	"github.com/KirkDiggler/duels/internal/successes"
)

var (
	vex  = models.CharacterInfo{ID: "c1", Name: "Vex"}
	mara = models.CharacterInfo{ID: "c2", Name: "Mara"}
)

type StateTestSuite struct {
	suite.Suite
	state *State
}

func (s *StateTestSuite) SetupTest() {
	s.state = NewState(vex)
}

func TestStateTestSuite(t *testing.T) {
	suite.Run(t, new(StateTestSuite))
}

func rolledSession(id string, vexResults, maraResults []int) *models.Session {
	winner := 0
	return &models.Session{
		ID:     id,
		Status: models.SessionStatusCompleted,
		Winner: &winner,
		Participants: []*models.Participant{
			{ConnectionID: "conn-x", CharacterInfo: vex, SelectedDice: []int{6, 6}, RollResults: vexResults, RollTotal: sum(vexResults)},
			{ConnectionID: "conn-y", CharacterInfo: mara, SelectedDice: []int{6}, RollResults: maraResults, RollTotal: sum(maraResults)},
		},
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func (s *StateTestSuite) apply(event protocol.Event, payload any) bool {
	changed, err := s.state.Apply(protocol.MustEnvelope(event, payload))
	s.Require().NoError(err)
	return changed
}

// roll puts the state at a completed duel: Vex [6,6] rolled [4,5], Mara [6] rolled [6]
func (s *StateTestSuite) roll() {
	s.apply(protocol.EventRollResults, &protocol.RollResultsPayload{
		Session:   rolledSession("s1", []int{4, 5}, []int{6}),
		Timestamp: 1,
	})
}

func (s *StateTestSuite) TestWaitingSession() {
	changed := s.apply(protocol.EventSessionCreated, &protocol.SessionPayload{
		SessionID: "s1",
		Session: &models.Session{
			ID:           "s1",
			Status:       models.SessionStatusWaiting,
			Participants: []*models.Participant{{CharacterInfo: vex, SelectedDice: []int{6, 6}}},
		},
	})

	s.True(changed)
	s.Equal("s1", s.state.SessionID())
	s.False(s.state.Rolled())
	s.False(s.state.CanEdit())
	s.Nil(s.state.Comparisons())

	_, err := s.state.ToggleResult(0, "")
	s.ErrorIs(err, ErrNotRolled)
}

func (s *StateTestSuite) TestRollArrangesDiceAndCompares() {
	s.roll()

	player := s.state.Dice(successes.SidePlayer)
	s.Require().Len(player, 2)
	s.Equal(5, player[0].Value)
	s.Equal(1, player[0].OriginalIndex)
	s.Equal(4, player[1].Value)
	s.Equal(0, player[1].OriginalIndex)

	comparisons := s.state.Comparisons()
	s.Require().Len(comparisons, 2)
	s.Equal("c2", comparisons[0].WinnerCharacterID)
	s.Equal("c1", comparisons[1].WinnerCharacterID)

	verdict := s.state.Verdict()
	s.True(verdict.IsTie())
	s.Equal(1, verdict.LeftWins)
	s.Equal(1, verdict.RightWins)
	s.True(s.state.CanEdit())
}

func (s *StateTestSuite) TestToggleCyclesBackAfterFourSteps() {
	s.roll()

	first, err := s.state.ToggleResult(0, "")
	s.Require().NoError(err)
	s.Equal(models.ResultOverride{WasOpponentWin: true}, first)

	second, _ := s.state.ToggleResult(0, "")
	s.Equal(models.ResultOverride{WinnerCharacterID: "c1"}, second)

	third, _ := s.state.ToggleResult(0, "")
	s.Equal(models.ResultOverride{}, third)

	fourth, _ := s.state.ToggleResult(0, "")
	s.Equal(models.ResultOverride{WinnerCharacterID: "c2", WasOpponentWin: true}, fourth)
	s.Equal("c2", s.state.Comparisons()[0].WinnerCharacterID)

	_, err = s.state.ToggleResult(5, "")
	s.ErrorIs(err, ErrInvalidIndex)
}

func (s *StateTestSuite) TestOwnIndicatorEchoIsIgnored() {
	s.roll()

	toggled, err := s.state.ToggleResult(0, "client-x:1")
	s.Require().NoError(err)

	// An echo carrying our token must not be applied again
	changed := s.apply(protocol.EventUpdateResultIndicator, &protocol.ResultIndicatorPayload{
		SessionID: "s1", Index: 0, State: models.ResultOverride{WinnerCharacterID: "c2"}, CharacterID: "c1", ActionToken: "client-x:1",
	})
	s.False(changed)
	s.Equal(toggled, s.state.Snapshot().Overrides[0])

	changed = s.apply(protocol.EventUpdateResultIndicator, &protocol.ResultIndicatorPayload{
		SessionID: "s1", Index: 1, State: models.ResultOverride{WasOpponentWin: true}, CharacterID: "c2", ActionToken: "client-y:1",
	})
	s.True(changed)
	s.True(s.state.Comparisons()[1].Tie)
}

func (s *StateTestSuite) TestRememberedTokensAreCapped() {
	s.roll()

	for i := 1; i <= maxPendingTokens+10; i++ {
		_, err := s.state.ToggleResult(0, fmt.Sprintf("client-x:%d", i))
		s.Require().NoError(err)
	}

	s.Len(s.state.pending, maxPendingTokens)
	s.Len(s.state.pendingOrder, maxPendingTokens)

	// The oldest tokens are forgotten, the newest still suppress an echo
	s.NotContains(s.state.pending, "client-x:1")
	latest := fmt.Sprintf("client-x:%d", maxPendingTokens+10)
	s.Contains(s.state.pending, latest)
	s.False(s.apply(protocol.EventUpdateResultIndicator, &protocol.ResultIndicatorPayload{
		SessionID: "s1", Index: 0, State: models.ResultOverride{WasOpponentWin: true}, CharacterID: "c2", ActionToken: latest,
	}))
}

func (s *StateTestSuite) TestIndicatorForOtherSessionIsIgnored() {
	s.roll()

	changed := s.apply(protocol.EventUpdateResultIndicator, &protocol.ResultIndicatorPayload{
		SessionID: "stale", Index: 0, State: models.ResultOverride{WinnerCharacterID: "c1"}, CharacterID: "c2",
	})
	s.False(changed)
	s.Empty(s.state.Snapshot().Overrides)
}

func (s *StateTestSuite) TestRemoteSuccessIsFlippedAndIdempotent() {
	s.roll()
	token := "b2"
	payload := &protocol.SuccessAssignmentPayload{
		SessionID: "s1", CharacterID: "c2", Player: successes.SidePlayer, DiceIndex: 0, SuccessID: &token,
	}

	s.True(s.apply(protocol.EventSuccessAssignmentUpdated, payload))
	once := s.state.Snapshot().Successes
	s.True(s.apply(protocol.EventSuccessAssignmentUpdated, payload))
	s.Equal(once, s.state.Snapshot().Successes)
	s.Equal(map[string]string{"opponent-0": "b2"}, once)

	own := "b1"
	s.False(s.apply(protocol.EventSuccessAssignmentUpdated, &protocol.SuccessAssignmentPayload{
		SessionID: "s1", CharacterID: "c1", Player: successes.SidePlayer, DiceIndex: 1, SuccessID: &own,
	}))

	s.True(s.apply(protocol.EventSuccessAssignmentUpdated, &protocol.SuccessAssignmentPayload{
		SessionID: "s1", CharacterID: "c2", Player: successes.SidePlayer, DiceIndex: 0,
	}))
	s.Empty(s.state.Snapshot().Successes)
}

func (s *StateTestSuite) TestRerollKeepsOrderAndClearsSuccess() {
	s.roll()
	s.Require().NoError(s.state.AssignSuccess(successes.SidePlayer, 1, "b1"))
	s.Require().NoError(s.state.AssignSuccess(successes.SidePlayer, 0, "b3"))

	// Our die at pool index 0 shows at pairing 1
	original, size, err := s.state.RerollTarget(successes.SidePlayer, 1)
	s.Require().NoError(err)
	s.Equal(0, original)
	s.Equal(6, size)

	s.True(s.apply(protocol.EventDieRerolled, &protocol.DieRerolledPayload{
		RerollPayload: protocol.RerollPayload{SessionID: "s1", Player: successes.SidePlayer, DiceIndex: 0, NewValue: 6, CharacterID: "c1"},
		Session:       rolledSession("s1", []int{6, 5}, []int{6}),
	}))

	player := s.state.Dice(successes.SidePlayer)
	s.Equal(5, player[0].Value)
	s.Equal(6, player[1].Value)
	s.Equal(0, player[1].OriginalIndex)
	s.Equal(map[string]string{"player-0": "b3"}, s.state.Snapshot().Successes)
}

func (s *StateTestSuite) TestPeerRerollOfOurDieClearsOurSide() {
	s.roll()
	s.Require().NoError(s.state.AssignSuccess(successes.SidePlayer, 1, "b1"))

	// Mara rerolls "opponent" die 0, which is ours
	s.apply(protocol.EventDieRerolled, &protocol.DieRerolledPayload{
		RerollPayload: protocol.RerollPayload{SessionID: "s1", Player: successes.SideOpponent, DiceIndex: 0, NewValue: 2, CharacterID: "c2"},
		Session:       rolledSession("s1", []int{2, 5}, []int{6}),
	})

	s.Empty(s.state.Snapshot().Successes)
	s.Equal(2, s.state.Dice(successes.SidePlayer)[1].Value)
}

func (s *StateTestSuite) TestAcceptanceLocksEdits() {
	s.roll()

	s.True(s.apply(protocol.EventAcceptanceStateUpdated, &protocol.AcceptancePayload{SessionID: "s1", CharacterID: "c2", Accepted: true}))
	s.True(s.state.PeerAccepted())
	s.False(s.state.CanEdit())

	_, err := s.state.ToggleResult(0, "")
	s.ErrorIs(err, ErrLocked)
	s.ErrorIs(s.state.AssignSuccess(successes.SidePlayer, 0, "b1"), ErrLocked)
	_, _, err = s.state.RerollTarget(successes.SidePlayer, 0)
	s.ErrorIs(err, ErrLocked)

	s.Require().NoError(s.state.SetAccepted(true))
	s.True(s.state.SelfAccepted())
	s.ErrorIs(s.state.SetAccepted(false), ErrLocked)

	// Our own acceptance echo is not applied over the local flag
	s.False(s.apply(protocol.EventAcceptanceStateUpdated, &protocol.AcceptancePayload{SessionID: "s1", CharacterID: "c1", Accepted: false}))
	s.True(s.state.SelfAccepted())
}

func (s *StateTestSuite) TestCancelled() {
	s.roll()

	s.True(s.apply(protocol.EventSessionCancelled, &protocol.CancelledPayload{
		SessionID: "s1", Message: "Mara disconnected. The duel has been cancelled.", CharacterName: "Mara",
	}))

	view := s.state.Snapshot()
	s.True(view.Cancelled)
	s.Equal("Mara", view.CancelledBy)
	s.Equal(models.SessionStatusCancelled, view.Session.Status)
	s.False(view.CanEdit)
}

func (s *StateTestSuite) TestNewSessionResetsDerivedState() {
	s.roll()
	s.Require().NoError(s.state.AssignSuccess(successes.SidePlayer, 0, "b1"))
	_, err := s.state.ToggleResult(0, "")
	s.Require().NoError(err)

	s.apply(protocol.EventSessionCreated, &protocol.SessionPayload{
		SessionID: "s2",
		Session: &models.Session{
			ID:           "s2",
			Status:       models.SessionStatusWaiting,
			Participants: []*models.Participant{{CharacterInfo: vex, SelectedDice: []int{6, 6}}},
		},
	})

	view := s.state.Snapshot()
	s.Equal("s2", view.Session.ID)
	s.Empty(view.Successes)
	s.Empty(view.Overrides)
}

func (s *StateTestSuite) TestSnapshotIsACopy() {
	s.roll()

	view := s.state.Snapshot()
	view.Session.Participants[0].RollResults[0] = 1
	view.Overrides[0] = models.ResultOverride{WinnerCharacterID: "c1"}

	s.Equal(4, s.state.Snapshot().Session.Participants[0].RollResults[0])
	s.Empty(s.state.Snapshot().Overrides)
}

func (s *StateTestSuite) TestErrorFrameAndUnknownEvent() {
	s.True(s.apply(protocol.EventError, &protocol.ErrorPayload{Message: "invalid join request"}))
	s.Equal("invalid join request", s.state.Snapshot().LastError)

	_, err := s.state.Apply(&protocol.Envelope{Event: protocol.EventRerollDie})
	s.Error(err)
}
