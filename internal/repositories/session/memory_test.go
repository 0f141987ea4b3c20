package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/duels/internal/models"
)

func TestMemoryHandsBackStoredPointer(t *testing.T) {
	repo := NewMemory()
	session := &models.Session{ID: "session-1", Status: models.SessionStatusWaiting}

	require.NoError(t, repo.SaveSession(context.Background(), &SaveSessionInput{Session: session}))

	got, err := repo.GetSession(context.Background(), &GetSessionInput{SessionID: "session-1"})
	require.NoError(t, err)
	assert.Same(t, session, got)
}
