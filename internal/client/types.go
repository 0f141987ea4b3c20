package client

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/duels/internal/common/clock"
	"github.com/KirkDiggler/duels/internal/common/uuid"
	"github.com/KirkDiggler/duels/internal/dice"
	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/protocol"
)

const (
	// DefaultRerollDelay is how long the reroll animation plays before the value is sent
	DefaultRerollDelay = 600 * time.Millisecond

	// writeTimeout bounds a single frame write
	writeTimeout = 5 * time.Second

	// updateBuffer is how many unread updates are kept before new ones are dropped
	updateBuffer = 32

	// maxPendingTokens caps the remembered outgoing indicator tokens
	maxPendingTokens = 64
)

// Config holds what an adapter needs to duel as one character
type Config struct {
	// URL of the duel channel, e.g. ws://localhost:8080/duel/ws
	URL string

	CharacterInfo   models.CharacterInfo
	SelectedDice    []int
	BonusSuccessIDs []string

	// Optional dependencies, defaults are used when nil
	Dialer        *websocket.Dialer
	Clock         clock.Clock
	DiceRoller    dice.Roller
	UUIDGenerator uuid.UUID

	// RerollDelay is the animation delay before a reroll is committed, zero uses the default
	RerollDelay time.Duration
}

// Update tells a consumer that a frame changed the mirrored state
type Update struct {
	Event protocol.Event
}
