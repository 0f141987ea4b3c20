package duel

import (
	"context"
	"log"
	"time"

	sessionRepo "github.com/KirkDiggler/duels/internal/repositories/session"
)

// Sweep deletes every session older than the maximum age, whatever its
// status. It catches sessions orphaned by lost disconnects.
func (s *service) Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.sessionRepo.ListSessions(ctx, &sessionRepo.ListSessionsInput{})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	removed := []string{}
	for _, session := range all.Sessions {
		if now.Sub(session.CreatedAt) <= s.sessionMaxAge {
			continue
		}

		if err := s.removeSession(ctx, session.ID); err != nil {
			log.Printf("duel: sweep failed to remove session=%s err=%v", session.ID, err)
			continue
		}
		removed = append(removed, session.ID)
	}

	if len(removed) > 0 {
		log.Printf("duel: swept %d stale sessions", len(removed))
	}

	return &SweepOutput{
		RemovedSessionIDs: removed,
	}, nil
}

// RunSweeper sweeps on every interval until ctx is done
func (s *service) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx, &SweepInput{}); err != nil {
				log.Printf("duel: sweep failed err=%v", err)
			}
		}
	}
}
