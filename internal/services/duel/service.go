package duel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/duels/internal/common/clock"
	"github.com/KirkDiggler/duels/internal/common/uuid"
	"github.com/KirkDiggler/duels/internal/dice"
	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/pairing"
	"github.com/KirkDiggler/duels/internal/protocol"
	"github.com/KirkDiggler/duels/internal/repositories/duel_ledger"
	sessionRepo "github.com/KirkDiggler/duels/internal/repositories/session"
	"github.com/KirkDiggler/duels/internal/services/messaging"
	"github.com/KirkDiggler/duels/internal/services/notifier"
)

// service implements the Service interface. mu serializes every mutation of
// the registry so events apply one at a time in arrival order.
type service struct {
	mu sync.Mutex

	sessionRepo    sessionRepo.Repository
	duelLedgerRepo duel_ledger.Repository
	notifier       notifier.Service
	messaging      messaging.Service
	diceRoller     dice.Roller
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	broadcaster    Broadcaster
	orderCache     *pairing.OrderCache

	rollDelay     time.Duration
	sweepInterval time.Duration
	sessionMaxAge time.Duration

	// rollTimers holds the pending roll for each active session
	rollTimers map[string]clock.Timer

	// archives tracks in-flight record and summary posts
	archives sync.WaitGroup

	// closing is set under mu once WaitForArchives starts; later archives
	// run inline instead of joining the wait group
	closing bool
}

// New creates a new duel service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.DuelLedgerRepo == nil {
		return nil, ErrNilDuelLedgerRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Broadcaster == nil {
		return nil, ErrNilBroadcaster
	}

	if cfg.OrderCache == nil {
		return nil, ErrNilOrderCache
	}

	s := &service{
		sessionRepo:    cfg.SessionRepo,
		duelLedgerRepo: cfg.DuelLedgerRepo,
		notifier:       cfg.Notifier,
		messaging:      cfg.Messaging,
		diceRoller:     cfg.DiceRoller,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		broadcaster:    cfg.Broadcaster,
		orderCache:     cfg.OrderCache,
		rollDelay:      cfg.RollDelay,
		sweepInterval:  cfg.SweepInterval,
		sessionMaxAge:  cfg.SessionMaxAge,
		rollTimers:     make(map[string]clock.Timer),
	}

	if s.rollDelay <= 0 {
		s.rollDelay = DefaultRollDelay
	}
	if s.sweepInterval <= 0 {
		s.sweepInterval = DefaultSweepInterval
	}
	if s.sessionMaxAge <= 0 {
		s.sessionMaxAge = DefaultSessionMaxAge
	}

	return s, nil
}

// JoinOrCreate pairs the caller with the open session or opens a new one
func (s *service) JoinOrCreate(ctx context.Context, input *JoinOrCreateInput) (*JoinOrCreateOutput, error) {
	if input == nil || input.ConnectionID == "" || input.CharacterInfo.ID == "" {
		return nil, ErrInvalidJoin
	}
	for _, size := range input.SelectedDice {
		if size < 1 {
			return nil, ErrInvalidJoin
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	participant := &models.Participant{
		ConnectionID:    input.ConnectionID,
		CharacterInfo:   input.CharacterInfo,
		SelectedDice:    append([]int(nil), input.SelectedDice...),
		BonusSuccessIDs: append([]string(nil), input.BonusSuccessIDs...),
	}

	open, err := s.sessionRepo.GetOpenSession(ctx, &sessionRepo.GetOpenSessionInput{})
	if err != nil && !errors.Is(err, sessionRepo.ErrNoOpenSession) {
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	if open != nil && open.IsWaiting() && len(open.Participants) == 1 {
		// Joining twice from one connection re-announces the waiting session
		if open.Participants[0].ConnectionID == input.ConnectionID {
			s.sendTo(input.ConnectionID, protocol.EventSessionCreated, &protocol.SessionPayload{
				SessionID: open.ID,
				Session:   open,
			})
			return &JoinOrCreateOutput{
				SessionID: open.ID,
				Session:   open,
				Created:   false,
			}, nil
		}

		// Two sides of a duel must be different characters
		if open.Participants[0].CharacterInfo.ID == input.CharacterInfo.ID {
			log.Printf("duel: self pairing refused session=%s character=%s", open.ID, input.CharacterInfo.ID)
			return nil, ErrSelfPairing
		}

		return s.joinOpenSession(ctx, open, participant)
	}

	return s.createSession(ctx, participant)
}

func (s *service) joinOpenSession(ctx context.Context, open *models.Session, participant *models.Participant) (*JoinOrCreateOutput, error) {
	open.Participants = append(open.Participants, participant)
	open.Status = models.SessionStatusActive
	open.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: open}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.sessionRepo.SetOpenSession(ctx, &sessionRepo.SetOpenSessionInput{IfSessionID: open.ID}); err != nil {
		return nil, fmt.Errorf("failed to clear open session: %w", err)
	}

	s.broadcaster.JoinRoom(open.ID, participant.ConnectionID)
	s.broadcast(open.ID, protocol.EventSessionUpdated, &protocol.SessionPayload{
		SessionID: open.ID,
		Session:   open,
	}, "")

	sessionID := open.ID
	s.rollTimers[sessionID] = s.clock.AfterFunc(s.rollDelay, func() {
		if _, err := s.PerformRoll(context.Background(), &PerformRollInput{SessionID: sessionID}); err != nil {
			log.Printf("duel: deferred roll failed session=%s err=%v", sessionID, err)
		}
	})

	log.Printf("duel: session matched session=%s first=%s second=%s",
		open.ID, open.Participants[0].CharacterInfo.Name, participant.CharacterInfo.Name)

	return &JoinOrCreateOutput{
		SessionID: open.ID,
		Session:   open,
		Created:   false,
	}, nil
}

func (s *service) createSession(ctx context.Context, participant *models.Participant) (*JoinOrCreateOutput, error) {
	now := s.clock.Now()
	session := &models.Session{
		ID:           s.uuidGenerator.NewUUID(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Status:       models.SessionStatusWaiting,
		Participants: []*models.Participant{participant},
		Overrides:    make(map[int]models.ResultOverride),
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if err := s.sessionRepo.SetOpenSession(ctx, &sessionRepo.SetOpenSessionInput{SessionID: session.ID}); err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	s.broadcaster.JoinRoom(session.ID, participant.ConnectionID)
	s.sendTo(participant.ConnectionID, protocol.EventSessionCreated, &protocol.SessionPayload{
		SessionID: session.ID,
		Session:   session,
	})

	log.Printf("duel: session created session=%s character=%s", session.ID, participant.CharacterInfo.Name)

	return &JoinOrCreateOutput{
		SessionID: session.ID,
		Session:   session,
		Created:   true,
	}, nil
}

// PerformRoll runs the authoritative roll. It is skipped unless the session
// still holds exactly two participants and is waiting for its roll.
func (s *service) PerformRoll(ctx context.Context, input *PerformRollInput) (*PerformRollOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.rollTimers, input.SessionID)

	session, ok := s.lookup(ctx, input.SessionID)
	if !ok {
		return &PerformRollOutput{Success: false}, nil
	}

	if !session.IsFull() || session.Status != models.SessionStatusActive {
		log.Printf("duel: roll skipped session=%s status=%s participants=%d",
			session.ID, session.Status, len(session.Participants))
		return &PerformRollOutput{Success: false, Session: session}, nil
	}

	session.Status = models.SessionStatusRolling
	for _, p := range session.Participants {
		p.RollResults, p.RollTotal = dice.RollPool(s.diceRoller, p.SelectedDice)
		s.orderCache.Arrange(session.ID, p.CharacterInfo.ID, p.SelectedDice, p.RollResults)
	}
	session.Winner = winnerByTotals(session)
	session.Status = models.SessionStatusCompleted

	now := s.clock.Now()
	session.UpdatedAt = now

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.broadcast(session.ID, protocol.EventRollResults, &protocol.RollResultsPayload{
		Session:   session,
		Timestamp: now.UnixMilli(),
	}, "")

	return &PerformRollOutput{
		Success: true,
		Session: session,
	}, nil
}

// CancelSession aborts a session. The room is told unless both sides had
// already accepted; the session is deleted either way.
func (s *service) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, ErrInvalidConnection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.lookup(ctx, input.SessionID)
	if !ok {
		return &CancelSessionOutput{Success: false}, nil
	}

	idx := session.ParticipantByConnection(input.ConnectionID)
	if idx < 0 {
		return &CancelSessionOutput{Success: false}, nil
	}

	notified := false
	if !session.BothAccepted() {
		s.notifyCancelled(ctx, session, session.Participants[idx].CharacterInfo.Name, messaging.CancelReasonCancelled)
		notified = true
	}

	session.Status = models.SessionStatusCancelled
	if err := s.removeSession(ctx, session.ID); err != nil {
		return nil, err
	}

	log.Printf("duel: session cancelled session=%s by=%s", session.ID, session.Participants[idx].CharacterInfo.Name)

	return &CancelSessionOutput{
		Success:  true,
		Notified: notified,
	}, nil
}

// Disconnect removes the connection from every session referencing it.
// A remaining participant is told the duel is off unless both sides had
// accepted. Sessions left with fewer than two participants are deleted.
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, ErrInvalidConnection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	held, err := s.sessionRepo.GetSessionsByConnection(ctx, &sessionRepo.GetSessionsByConnectionInput{
		ConnectionID: input.ConnectionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions for connection: %w", err)
	}

	output := &DisconnectOutput{
		SessionIDs:          []string{},
		CancelledSessionIDs: []string{},
	}

	for _, session := range held.Sessions {
		idx := session.ParticipantByConnection(input.ConnectionID)
		if idx < 0 {
			continue
		}

		bothAccepted := session.BothAccepted()
		departing := session.Participants[idx]

		session.Participants = append(session.Participants[:idx:idx], session.Participants[idx+1:]...)
		s.broadcaster.LeaveRoom(session.ID, input.ConnectionID)
		output.SessionIDs = append(output.SessionIDs, session.ID)

		if len(session.Participants) > 0 && !bothAccepted {
			s.notifyCancelled(ctx, session, departing.CharacterInfo.Name, messaging.CancelReasonDisconnected)
			output.CancelledSessionIDs = append(output.CancelledSessionIDs, session.ID)
		}

		if err := s.removeSession(ctx, session.ID); err != nil {
			return nil, err
		}

		log.Printf("duel: participant disconnected session=%s character=%s remaining=%d",
			session.ID, departing.CharacterInfo.Name, len(session.Participants))
	}

	return output, nil
}

// GetCharacterStats returns a character's archived totals and recent duels
func (s *service) GetCharacterStats(ctx context.Context, input *GetCharacterStatsInput) (*GetCharacterStatsOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, ErrInvalidCharacterID
	}

	limit := input.RecentLimit
	if limit <= 0 {
		limit = 10
	}

	stats, err := s.duelLedgerRepo.GetCharacterStats(ctx, &duel_ledger.GetCharacterStatsInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get character stats: %w", err)
	}

	recent, err := s.duelLedgerRepo.GetDuelsForCharacter(ctx, &duel_ledger.GetDuelsForCharacterInput{
		CharacterID: input.CharacterID,
		Limit:       limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get recent duels: %w", err)
	}

	return &GetCharacterStatsOutput{
		Stats:  stats,
		Recent: recent.Records,
	}, nil
}

// lookup returns the session or false when it is gone
func (s *service) lookup(ctx context.Context, sessionID string) (*models.Session, bool) {
	if sessionID == "" {
		return nil, false
	}
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
	if err != nil {
		if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			log.Printf("duel: session lookup failed session=%s err=%v", sessionID, err)
		}
		return nil, false
	}
	return session, true
}

// removeSession deletes the session and everything hanging off it
func (s *service) removeSession(ctx context.Context, sessionID string) error {
	if timer, ok := s.rollTimers[sessionID]; ok {
		timer.Stop()
		delete(s.rollTimers, sessionID)
	}

	if err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{SessionID: sessionID}); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.orderCache.Forget(sessionID)
	s.broadcaster.CloseRoom(sessionID)
	return nil
}

func (s *service) notifyCancelled(ctx context.Context, session *models.Session, characterName string, reason messaging.CancelReason) {
	message := characterName + " left the duel."
	out, err := s.messaging.GetCancellationMessage(ctx, &messaging.GetCancellationMessageInput{
		CharacterName: characterName,
		Reason:        reason,
	})
	if err != nil {
		log.Printf("duel: cancellation message failed session=%s err=%v", session.ID, err)
	} else {
		message = out.Message
	}

	s.broadcast(session.ID, protocol.EventSessionCancelled, &protocol.CancelledPayload{
		SessionID:     session.ID,
		Message:       message,
		CharacterName: characterName,
	}, "")
}

func (s *service) broadcast(roomID string, event protocol.Event, payload any, exceptConnectionID string) {
	env, err := protocol.NewEnvelope(event, payload)
	if err != nil {
		log.Printf("duel: failed to encode %s for room=%s err=%v", event, roomID, err)
		return
	}
	s.broadcaster.BroadcastToRoom(roomID, env, exceptConnectionID)
}

func (s *service) sendTo(connectionID string, event protocol.Event, payload any) {
	env, err := protocol.NewEnvelope(event, payload)
	if err != nil {
		log.Printf("duel: failed to encode %s for connection=%s err=%v", event, connectionID, err)
		return
	}
	s.broadcaster.SendTo(connectionID, env)
}

// winnerByTotals compares roll totals. Higher wins, equal is WinnerTie.
func winnerByTotals(session *models.Session) *int {
	if !session.IsFull() {
		return nil
	}

	winner := models.WinnerTie
	switch first, second := session.Participants[0].RollTotal, session.Participants[1].RollTotal; {
	case first > second:
		winner = 0
	case second > first:
		winner = 1
	}
	return &winner
}
