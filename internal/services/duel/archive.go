package duel

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/pairing"
	"github.com/KirkDiggler/duels/internal/repositories/duel_ledger"
	"github.com/KirkDiggler/duels/internal/services/notifier"
)

// archiveTimeout bounds the record write and summary post together
const archiveTimeout = 10 * time.Second

// buildRecord tallies the pairings both sides accepted, in the order they
// were shown, with any manual overrides applied
func (s *service) buildRecord(session *models.Session, acceptedAt time.Time) *models.DuelRecord {
	first, second := session.Participants[0], session.Participants[1]

	left := s.orderCache.Arrange(session.ID, first.CharacterInfo.ID, first.SelectedDice, first.RollResults)
	right := s.orderCache.Arrange(session.ID, second.CharacterInfo.ID, second.SelectedDice, second.RollResults)
	comparisons := pairing.Compare(left, right, first.CharacterInfo.ID, second.CharacterInfo.ID, session.Overrides)
	verdict := pairing.DetermineWinner(comparisons, first.CharacterInfo.ID, second.CharacterInfo.ID)

	outcome := models.DuelOutcomeDraw
	switch verdict.WinnerCharacterID {
	case first.CharacterInfo.ID:
		outcome = models.DuelOutcomeWin
	case second.CharacterInfo.ID:
		outcome = models.DuelOutcomeLoss
	}

	return &models.DuelRecord{
		ID:             s.uuidGenerator.NewUUID(),
		SessionID:      session.ID,
		CharacterID:    first.CharacterInfo.ID,
		CharacterName:  first.CharacterInfo.Name,
		OpponentID:     second.CharacterInfo.ID,
		OpponentName:   second.CharacterInfo.Name,
		Outcome:        outcome,
		UserWins:       verdict.LeftWins,
		OpponentWins:   verdict.RightWins,
		DrawCount:      verdict.Ties,
		CharacterTotal: first.RollTotal,
		OpponentTotal:  second.RollTotal,
		Timestamp:      acceptedAt,
	}
}

// archive stores the record and posts the summary off the event path.
// Failures are logged and never touch session state. Callers hold s.mu.
func (s *service) archive(record *models.DuelRecord) {
	if s.closing {
		s.store(record)
		return
	}

	s.archives.Add(1)
	go func() {
		defer s.archives.Done()
		s.store(record)
	}()
}

func (s *service) store(record *models.DuelRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), archiveTimeout)
	defer cancel()

	if err := s.duelLedgerRepo.RecordDuel(ctx, &duel_ledger.RecordDuelInput{Record: record}); err != nil {
		log.Printf("duel: failed to record duel session=%s err=%v", record.SessionID, err)
	}

	err := s.notifier.PostDuelSummary(ctx, &notifier.PostDuelSummaryInput{
		CharacterName: record.CharacterName,
		OpponentName:  record.OpponentName,
		Result:        record.Outcome,
		UserWins:      record.UserWins,
		OpponentWins:  record.OpponentWins,
		DrawCount:     record.DrawCount,
	})
	if err != nil {
		log.Printf("duel: failed to post duel summary session=%s err=%v", record.SessionID, err)
	}
}

// WaitForArchives blocks until every pending archive has finished or ctx is
// done. Duels accepted after it is called are archived before the
// acceptance returns.
func (s *service) WaitForArchives(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.archives.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
