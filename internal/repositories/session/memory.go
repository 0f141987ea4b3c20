package session

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/duels/internal/models"
)

var (
	// ErrSessionNotFound is returned when a session is not in the registry
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoOpenSession is returned when no session is open for matchmaking
	ErrNoOpenSession = errors.New("no open session")
)

// memoryRepository keeps sessions in process memory. Sessions do not survive
// a restart. Stored pointers are handed back as-is; callers serialize their
// own mutations of a session.
type memoryRepository struct {
	mu            sync.RWMutex
	sessions      map[string]*models.Session
	openSessionID string
}

// NewMemory creates an empty in-memory registry
func NewMemory() Repository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

// SaveSession stores a session
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID] = input.Session
	return nil
}

// GetSession retrieves a session by ID
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// DeleteSession removes a session. Deleting an unknown session is not an error.
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, input.SessionID)
	if r.openSessionID == input.SessionID {
		r.openSessionID = ""
	}
	return nil
}

// ListSessions returns every live session, oldest first
func (r *memoryRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	r.mu.RLock()
	sessions := make([]*models.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// GetSessionsByConnection returns the sessions a connection participates in
func (r *memoryRepository) GetSessionsByConnection(ctx context.Context, input *GetSessionsByConnectionInput) (*GetSessionsByConnectionOutput, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, errors.New("input and connection ID cannot be empty")
	}

	all, err := r.ListSessions(ctx, &ListSessionsInput{})
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Session, 0, 1)
	for _, s := range all.Sessions {
		if s.ParticipantByConnection(input.ConnectionID) >= 0 {
			matched = append(matched, s)
		}
	}

	return &GetSessionsByConnectionOutput{
		Sessions: matched,
	}, nil
}

// GetOpenSession returns the session open for matchmaking
func (r *memoryRepository) GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.openSessionID == "" {
		return nil, ErrNoOpenSession
	}
	session, ok := r.sessions[r.openSessionID]
	if !ok {
		return nil, ErrNoOpenSession
	}
	return session, nil
}

// SetOpenSession points the open slot at a stored session, or clears it
func (r *memoryRepository) SetOpenSession(ctx context.Context, input *SetOpenSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if input.IfSessionID != "" && r.openSessionID != input.IfSessionID {
		return nil
	}

	if input.SessionID != "" {
		if _, ok := r.sessions[input.SessionID]; !ok {
			return ErrSessionNotFound
		}
	}

	r.openSessionID = input.SessionID
	return nil
}
