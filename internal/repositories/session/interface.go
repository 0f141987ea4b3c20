package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/duels/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/duels/internal/models"
)

// Repository is the session registry: every live session plus the single
// session open for matchmaking
type Repository interface {
	// SaveSession stores a session, replacing any session with the same ID
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session and clears the open slot if it pointed at it
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// ListSessions returns every live session
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// GetSessionsByConnection returns the sessions a connection participates in
	GetSessionsByConnection(ctx context.Context, input *GetSessionsByConnectionInput) (*GetSessionsByConnectionOutput, error)

	// GetOpenSession returns the session open for matchmaking
	GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error)

	// SetOpenSession points the open slot at a session, or clears it
	SetOpenSession(ctx context.Context, input *SetOpenSessionInput) error
}
