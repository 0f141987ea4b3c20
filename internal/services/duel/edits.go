package duel

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/duels/internal/dice"
	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/protocol"
	sessionRepo "github.com/KirkDiggler/duels/internal/repositories/session"
)

// editable returns the session and the caller's index when the caller may
// still change the rolled result: the roll is done and nobody has accepted.
func (s *service) editable(ctx context.Context, sessionID, connectionID string) (*models.Session, int, bool) {
	session, ok := s.lookup(ctx, sessionID)
	if !ok {
		return nil, -1, false
	}

	idx := session.ParticipantByConnection(connectionID)
	if idx < 0 || !session.IsFull() || !session.IsCompleted() {
		return nil, -1, false
	}

	if session.AnyAccepted() {
		log.Printf("duel: edit rejected after acceptance session=%s", session.ID)
		return nil, -1, false
	}

	return session, idx, true
}

// RerollDie commits a new value for one die and relays die-rerolled to the
// whole room. Out of range values are replaced by a fresh roll.
func (s *service) RerollDie(ctx context.Context, input *RerollDieInput) (*RerollDieOutput, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, ErrInvalidConnection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, sender, ok := s.editable(ctx, input.SessionID, input.ConnectionID)
	if !ok || !input.Player.Valid() {
		return &RerollDieOutput{Success: false}, nil
	}

	senderCharacter := session.Participants[sender].CharacterInfo
	if input.CharacterID != "" && input.CharacterID != senderCharacter.ID {
		return &RerollDieOutput{Success: false}, nil
	}

	owner := session.Participants[input.Player.Owner(sender)]
	if input.DiceIndex < 0 || input.DiceIndex >= len(owner.SelectedDice) || !owner.HasRolled() {
		return &RerollDieOutput{Success: false}, nil
	}

	size := owner.SelectedDice[input.DiceIndex]
	value := input.NewValue
	if !dice.InRange(value, size) {
		value = s.diceRoller.Roll(size)
	}

	// A rerolled die loses whatever success sat on its pairing
	if pairIndex := s.orderCache.DisplayIndex(session.ID, owner.CharacterInfo.ID, input.DiceIndex); pairIndex >= 0 {
		delete(owner.Successes, pairIndex)
	}

	owner.RollResults[input.DiceIndex] = value
	owner.RollTotal = dice.Sum(owner.RollResults)
	s.orderCache.Arrange(session.ID, owner.CharacterInfo.ID, owner.SelectedDice, owner.RollResults)
	session.Winner = winnerByTotals(session)
	session.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.broadcast(session.ID, protocol.EventDieRerolled, &protocol.DieRerolledPayload{
		RerollPayload: protocol.RerollPayload{
			SessionID:   session.ID,
			Player:      input.Player,
			DiceIndex:   input.DiceIndex,
			NewValue:    value,
			CharacterID: senderCharacter.ID,
		},
		Session: session,
	}, "")

	return &RerollDieOutput{
		Success: true,
		Value:   value,
		Session: session,
	}, nil
}

// UpdateResultIndicator stores the override for a pairing and relays it to
// the other participant
func (s *service) UpdateResultIndicator(ctx context.Context, input *UpdateResultIndicatorInput) (*UpdateResultIndicatorOutput, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, ErrInvalidConnection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, sender, ok := s.editable(ctx, input.SessionID, input.ConnectionID)
	if !ok {
		return &UpdateResultIndicatorOutput{Success: false}, nil
	}

	if input.Index < 0 || input.Index >= pairingCount(session) {
		return &UpdateResultIndicatorOutput{Success: false}, nil
	}

	winner := input.State.WinnerCharacterID
	if winner != "" && session.ParticipantByCharacter(winner) < 0 {
		return &UpdateResultIndicatorOutput{Success: false}, nil
	}

	if session.Overrides == nil {
		session.Overrides = make(map[int]models.ResultOverride)
	}
	session.Overrides[input.Index] = input.State
	session.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.broadcast(session.ID, protocol.EventUpdateResultIndicator, &protocol.ResultIndicatorPayload{
		SessionID:   session.ID,
		Index:       input.Index,
		State:       input.State,
		CharacterID: session.Participants[sender].CharacterInfo.ID,
		ActionToken: input.ActionToken,
	}, input.ConnectionID)

	return &UpdateResultIndicatorOutput{Success: true}, nil
}

// UpdateSuccessAssignment moves a success token onto a pairing, or clears
// the pairing, and relays the change verbatim to the other participant
func (s *service) UpdateSuccessAssignment(ctx context.Context, input *UpdateSuccessAssignmentInput) (*UpdateSuccessAssignmentOutput, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, ErrInvalidConnection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, sender, ok := s.editable(ctx, input.SessionID, input.ConnectionID)
	if !ok || !input.Player.Valid() {
		return &UpdateSuccessAssignmentOutput{Success: false}, nil
	}

	if input.DiceIndex < 0 || input.DiceIndex >= pairingCount(session) {
		return &UpdateSuccessAssignmentOutput{Success: false}, nil
	}

	owner := session.Participants[input.Player.Owner(sender)]
	if owner.Successes == nil {
		owner.Successes = make(map[int]string)
	}

	if input.SuccessID == nil || *input.SuccessID == "" {
		delete(owner.Successes, input.DiceIndex)
	} else {
		for pairIndex, id := range owner.Successes {
			if id == *input.SuccessID {
				delete(owner.Successes, pairIndex)
			}
		}
		owner.Successes[input.DiceIndex] = *input.SuccessID
	}
	session.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.broadcast(session.ID, protocol.EventSuccessAssignmentUpdated, &protocol.SuccessAssignmentPayload{
		SessionID:   session.ID,
		CharacterID: session.Participants[sender].CharacterInfo.ID,
		Player:      input.Player,
		DiceIndex:   input.DiceIndex,
		SuccessID:   input.SuccessID,
	}, input.ConnectionID)

	return &UpdateSuccessAssignmentOutput{Success: true}, nil
}

// UpdateAcceptance sets the caller's acceptance flag. The second acceptance
// makes the duel final: it is archived and announced, and the flags freeze.
func (s *service) UpdateAcceptance(ctx context.Context, input *UpdateAcceptanceInput) (*UpdateAcceptanceOutput, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, ErrInvalidConnection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.lookup(ctx, input.SessionID)
	if !ok {
		return &UpdateAcceptanceOutput{Success: false}, nil
	}

	idx := session.ParticipantByConnection(input.ConnectionID)
	if idx < 0 || !session.IsFull() || !session.IsCompleted() || session.BothAccepted() {
		return &UpdateAcceptanceOutput{Success: false}, nil
	}

	participant := session.Participants[idx]
	participant.Accepted = input.Accepted

	now := s.clock.Now()
	session.UpdatedAt = now

	final := session.BothAccepted()
	if final {
		session.AcceptedAt = &now
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.broadcast(session.ID, protocol.EventAcceptanceStateUpdated, &protocol.AcceptancePayload{
		SessionID:   session.ID,
		CharacterID: participant.CharacterInfo.ID,
		Accepted:    input.Accepted,
	}, input.ConnectionID)

	if final {
		s.archive(s.buildRecord(session, now))
	}

	return &UpdateAcceptanceOutput{
		Success: true,
		Final:   final,
	}, nil
}

// pairingCount is the number of pairings, the longer of the two pools
func pairingCount(session *models.Session) int {
	n := 0
	for _, p := range session.Participants {
		if len(p.SelectedDice) > n {
			n = len(p.SelectedDice)
		}
	}
	return n
}
