package client

import (
	"fmt"

	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/pairing"
	"github.com/KirkDiggler/duels/internal/protocol"
	"github.com/KirkDiggler/duels/internal/successes"
)

// State mirrors one duel as seen by one character. Apply folds server frames
// into it; the local edit methods change it optimistically. It is not safe
// for concurrent use.
type State struct {
	self models.CharacterInfo

	session   *models.Session
	overrides map[int]models.ResultOverride
	ledger    *successes.Ledger
	order     *pairing.OrderCache

	// pending holds the most recent action tokens we sent, oldest first in
	// pendingOrder, capped at maxPendingTokens
	pending      map[string]struct{}
	pendingOrder []string

	cancelled     bool
	cancelMessage string
	cancelledBy   string
	lastError     string
}

// NewState creates an empty mirror for the character
func NewState(self models.CharacterInfo) *State {
	return &State{
		self:      self,
		overrides: make(map[int]models.ResultOverride),
		ledger:    successes.New(),
		order:     pairing.NewOrderCache(),
		pending:   make(map[string]struct{}),
	}
}

// Apply folds one inbound frame into the state. It reports whether anything
// visible changed.
func (s *State) Apply(env *protocol.Envelope) (bool, error) {
	switch env.Event {
	case protocol.EventSessionCreated, protocol.EventSessionUpdated:
		var payload protocol.SessionPayload
		if err := env.Decode(&payload); err != nil {
			return false, err
		}
		s.setSession(payload.Session)
		return true, nil

	case protocol.EventRollResults:
		var payload protocol.RollResultsPayload
		if err := env.Decode(&payload); err != nil {
			return false, err
		}
		if payload.Session == nil {
			return false, fmt.Errorf("%s frame has no session", env.Event)
		}
		s.setSession(payload.Session)
		s.overrides = make(map[int]models.ResultOverride, len(payload.Session.Overrides))
		for i, o := range payload.Session.Overrides {
			s.overrides[i] = o
		}
		s.ledger.Reset()
		s.arrange()
		return true, nil

	case protocol.EventDieRerolled:
		var payload protocol.DieRerolledPayload
		if err := env.Decode(&payload); err != nil {
			return false, err
		}
		return s.applyReroll(&payload), nil

	case protocol.EventUpdateResultIndicator:
		var payload protocol.ResultIndicatorPayload
		if err := env.Decode(&payload); err != nil {
			return false, err
		}
		return s.applyIndicator(&payload), nil

	case protocol.EventSuccessAssignmentUpdated:
		var payload protocol.SuccessAssignmentPayload
		if err := env.Decode(&payload); err != nil {
			return false, err
		}
		if !s.inSession(payload.SessionID) {
			return false, nil
		}
		return s.ledger.ApplyRemote(payload.Remote(), s.self.ID), nil

	case protocol.EventAcceptanceStateUpdated:
		var payload protocol.AcceptancePayload
		if err := env.Decode(&payload); err != nil {
			return false, err
		}
		if !s.inSession(payload.SessionID) || payload.CharacterID == s.self.ID {
			return false, nil
		}
		idx := s.session.ParticipantByCharacter(payload.CharacterID)
		if idx < 0 {
			return false, nil
		}
		s.session.Participants[idx].Accepted = payload.Accepted
		return true, nil

	case protocol.EventSessionCancelled:
		var payload protocol.CancelledPayload
		if err := env.Decode(&payload); err != nil {
			return false, err
		}
		if s.session != nil {
			s.session.Status = models.SessionStatusCancelled
		}
		s.cancelled = true
		s.cancelMessage = payload.Message
		s.cancelledBy = payload.CharacterName
		return true, nil

	case protocol.EventError:
		var payload protocol.ErrorPayload
		if err := env.Decode(&payload); err != nil {
			return false, err
		}
		s.lastError = payload.Message
		return true, nil

	default:
		return false, fmt.Errorf("unexpected event %q", env.Event)
	}
}

// setSession replaces the mirrored session. Moving to a different session
// drops everything derived from the old one.
func (s *State) setSession(session *models.Session) {
	if session == nil {
		return
	}
	if s.session == nil || s.session.ID != session.ID {
		if s.session != nil {
			s.order.Forget(s.session.ID)
		}
		s.overrides = make(map[int]models.ResultOverride)
		s.ledger.Reset()
		s.pending = make(map[string]struct{})
		s.pendingOrder = nil
		s.cancelled = false
		s.cancelMessage = ""
		s.cancelledBy = ""
	}
	s.session = session
}

func (s *State) applyReroll(payload *protocol.DieRerolledPayload) bool {
	if !s.inSession(payload.SessionID) || payload.Session == nil {
		return false
	}

	// Resolve whose die it was from the sender's frame, then clear the
	// pairing it sat on before the new values shift anything.
	sender := s.session.ParticipantByCharacter(payload.CharacterID)
	if sender >= 0 && payload.Player.Valid() {
		owner := s.session.Participants[payload.Player.Owner(sender)]
		side := successes.SideOpponent
		if owner.CharacterInfo.ID == s.self.ID {
			side = successes.SidePlayer
		}
		if pairIndex := s.order.DisplayIndex(s.session.ID, owner.CharacterInfo.ID, payload.DiceIndex); pairIndex >= 0 {
			s.ledger.Clear(side, pairIndex)
		}
	}

	s.session = payload.Session
	s.arrange()
	return true
}

func (s *State) applyIndicator(payload *protocol.ResultIndicatorPayload) bool {
	if payload.ActionToken != "" {
		if _, ok := s.pending[payload.ActionToken]; ok {
			delete(s.pending, payload.ActionToken)
			return false
		}
	}
	if !s.inSession(payload.SessionID) || payload.CharacterID == s.self.ID {
		return false
	}

	s.overrides[payload.Index] = payload.State
	return true
}

func (s *State) inSession(sessionID string) bool {
	return s.session != nil && s.session.ID == sessionID
}

// arrange records the display order of both pools on first sight
func (s *State) arrange() {
	for _, p := range s.session.Participants {
		s.order.Arrange(s.session.ID, p.CharacterInfo.ID, p.SelectedDice, p.RollResults)
	}
}

func (s *State) selfIndex() int {
	if s.session == nil {
		return -1
	}
	return s.session.ParticipantByCharacter(s.self.ID)
}

func (s *State) selfParticipant() *models.Participant {
	idx := s.selfIndex()
	if idx < 0 {
		return nil
	}
	return s.session.Participants[idx]
}

func (s *State) peerParticipant() *models.Participant {
	idx := s.selfIndex()
	if idx < 0 {
		return nil
	}
	return s.session.Opponent(idx)
}

// SessionID is the mirrored session, or empty
func (s *State) SessionID() string {
	if s.session == nil {
		return ""
	}
	return s.session.ID
}

// SelfAccepted reports our own acceptance flag
func (s *State) SelfAccepted() bool {
	p := s.selfParticipant()
	return p != nil && p.Accepted
}

// PeerAccepted reports the other side's acceptance flag
func (s *State) PeerAccepted() bool {
	p := s.peerParticipant()
	return p != nil && p.Accepted
}

// Rolled reports whether the mirrored session holds a completed roll
func (s *State) Rolled() bool {
	return s.session != nil && !s.cancelled && s.session.IsFull() && s.session.IsCompleted()
}

// CanEdit reports whether rerolls and overrides are still allowed
func (s *State) CanEdit() bool {
	return s.Rolled() && !s.SelfAccepted() && !s.PeerAccepted()
}

// Dice returns one side's dice in display order
func (s *State) Dice(side successes.Side) []pairing.Die {
	var p *models.Participant
	switch side {
	case successes.SidePlayer:
		p = s.selfParticipant()
	case successes.SideOpponent:
		p = s.peerParticipant()
	}
	if p == nil {
		return nil
	}
	return s.order.Arrange(s.session.ID, p.CharacterInfo.ID, p.SelectedDice, p.RollResults)
}

// Comparisons pairs our dice (left) against the peer's (right)
func (s *State) Comparisons() []pairing.Comparison {
	peer := s.peerParticipant()
	if peer == nil || !s.Rolled() {
		return nil
	}
	return pairing.Compare(s.Dice(successes.SidePlayer), s.Dice(successes.SideOpponent),
		s.self.ID, peer.CharacterInfo.ID, s.overrides)
}

// Verdict counts pairing wins from our side
func (s *State) Verdict() pairing.Verdict {
	peer := s.peerParticipant()
	if peer == nil {
		return pairing.Verdict{}
	}
	return pairing.DetermineWinner(s.Comparisons(), s.self.ID, peer.CharacterInfo.ID)
}

// ToggleResult advances the pairing's override one step and remembers token
// so the echo of this change is ignored.
func (s *State) ToggleResult(index int, token string) (models.ResultOverride, error) {
	if err := s.checkEditable(); err != nil {
		return models.ResultOverride{}, err
	}

	comparisons := s.Comparisons()
	if index < 0 || index >= len(comparisons) {
		return models.ResultOverride{}, ErrInvalidIndex
	}

	first := s.session.Participants[0].CharacterInfo.ID
	second := s.session.Participants[1].CharacterInfo.ID

	var existing *models.ResultOverride
	if o, ok := s.overrides[index]; ok {
		existing = &o
	}

	next := pairing.ToggleResult(pairing.CurrentState(comparisons[index], existing, first, second), first, second)
	s.overrides[index] = next
	if token != "" {
		s.remember(token)
	}
	return next, nil
}

// remember records an outgoing action token, evicting the oldest once the
// set is full
func (s *State) remember(token string) {
	if _, ok := s.pending[token]; ok {
		return
	}
	s.pending[token] = struct{}{}
	s.pendingOrder = append(s.pendingOrder, token)
	for len(s.pendingOrder) > maxPendingTokens {
		delete(s.pending, s.pendingOrder[0])
		s.pendingOrder = s.pendingOrder[1:]
	}
}

// AssignSuccess puts a token on a pairing
func (s *State) AssignSuccess(side successes.Side, pairIndex int, successID string) error {
	if err := s.checkPairing(side, pairIndex); err != nil {
		return err
	}
	s.ledger.Assign(side, pairIndex, successID)
	return nil
}

// ClearSuccess removes the token on a pairing
func (s *State) ClearSuccess(side successes.Side, pairIndex int) error {
	if err := s.checkPairing(side, pairIndex); err != nil {
		return err
	}
	s.ledger.Clear(side, pairIndex)
	return nil
}

// SetAccepted sets our own acceptance flag. The flags freeze once both are set.
func (s *State) SetAccepted(accepted bool) error {
	p := s.selfParticipant()
	if p == nil {
		return ErrNotInSession
	}
	if !s.Rolled() {
		return ErrNotRolled
	}
	if s.session.BothAccepted() {
		return ErrLocked
	}
	p.Accepted = accepted
	return nil
}

// RerollTarget resolves a displayed die to its pool index and size
func (s *State) RerollTarget(side successes.Side, displayIndex int) (originalIndex, size int, err error) {
	if err := s.checkEditable(); err != nil {
		return -1, 0, err
	}
	if !side.Valid() {
		return -1, 0, ErrInvalidSide
	}

	owner := s.selfParticipant()
	if side == successes.SideOpponent {
		owner = s.peerParticipant()
	}

	originalIndex = s.order.OriginalIndex(s.session.ID, owner.CharacterInfo.ID, displayIndex)
	if originalIndex < 0 || originalIndex >= len(owner.SelectedDice) {
		return -1, 0, ErrInvalidIndex
	}
	return originalIndex, owner.SelectedDice[originalIndex], nil
}

func (s *State) checkEditable() error {
	if s.selfParticipant() == nil {
		return ErrNotInSession
	}
	if !s.Rolled() {
		return ErrNotRolled
	}
	if !s.CanEdit() {
		return ErrLocked
	}
	return nil
}

func (s *State) checkPairing(side successes.Side, pairIndex int) error {
	if err := s.checkEditable(); err != nil {
		return err
	}
	if !side.Valid() {
		return ErrInvalidSide
	}
	if pairIndex < 0 || pairIndex >= len(s.Comparisons()) {
		return ErrInvalidIndex
	}
	return nil
}

// View is a copy of the mirrored state safe to hand to other goroutines
type View struct {
	Session      *models.Session
	Player       []pairing.Die
	Opponent     []pairing.Die
	Comparisons  []pairing.Comparison
	Verdict      pairing.Verdict
	Overrides    map[int]models.ResultOverride
	Successes    map[string]string
	SelfAccepted bool
	PeerAccepted bool
	CanEdit      bool

	Cancelled     bool
	CancelMessage string
	CancelledBy   string
	LastError     string
}

// Snapshot copies the state into a View
func (s *State) Snapshot() View {
	v := View{
		Player:        s.Dice(successes.SidePlayer),
		Opponent:      s.Dice(successes.SideOpponent),
		Comparisons:   s.Comparisons(),
		Verdict:       s.Verdict(),
		Overrides:     make(map[int]models.ResultOverride, len(s.overrides)),
		Successes:     s.ledger.Snapshot(),
		SelfAccepted:  s.SelfAccepted(),
		PeerAccepted:  s.PeerAccepted(),
		CanEdit:       s.CanEdit(),
		Cancelled:     s.cancelled,
		CancelMessage: s.cancelMessage,
		CancelledBy:   s.cancelledBy,
		LastError:     s.lastError,
	}
	for i, o := range s.overrides {
		v.Overrides[i] = o
	}
	if s.session != nil {
		v.Session = copySession(s.session)
	}
	return v
}

func copySession(in *models.Session) *models.Session {
	out := *in
	out.Participants = make([]*models.Participant, len(in.Participants))
	for i, p := range in.Participants {
		cp := *p
		cp.SelectedDice = append([]int(nil), p.SelectedDice...)
		cp.RollResults = append([]int(nil), p.RollResults...)
		cp.BonusSuccessIDs = append([]string(nil), p.BonusSuccessIDs...)
		if p.Successes != nil {
			cp.Successes = make(map[int]string, len(p.Successes))
			for k, v := range p.Successes {
				cp.Successes[k] = v
			}
		}
		out.Participants[i] = &cp
	}
	if in.Winner != nil {
		w := *in.Winner
		out.Winner = &w
	}
	if in.Overrides != nil {
		out.Overrides = make(map[int]models.ResultOverride, len(in.Overrides))
		for k, v := range in.Overrides {
			out.Overrides[k] = v
		}
	}
	return &out
}
