package session

import "github.com/KirkDiggler/duels/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
}

type ListSessionsOutput struct {
	Sessions []*models.Session
}

type GetSessionsByConnectionInput struct {
	ConnectionID string
}

type GetSessionsByConnectionOutput struct {
	Sessions []*models.Session
}

type GetOpenSessionInput struct {
}

// SetOpenSessionInput sets the open slot. An empty SessionID clears it.
// When IfSessionID is set the slot only changes if it currently holds that ID.
type SetOpenSessionInput struct {
	SessionID   string
	IfSessionID string
}
