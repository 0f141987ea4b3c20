package duel

import (
	"time"

	"github.com/KirkDiggler/duels/internal/common/clock"
	"github.com/KirkDiggler/duels/internal/common/uuid"
	"github.com/KirkDiggler/duels/internal/dice"
	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/pairing"
	"github.com/KirkDiggler/duels/internal/repositories/duel_ledger"
	"github.com/KirkDiggler/duels/internal/repositories/session"
	"github.com/KirkDiggler/duels/internal/services/messaging"
	"github.com/KirkDiggler/duels/internal/services/notifier"
	"github.com/KirkDiggler/duels/internal/successes"
)

const (
	// DefaultRollDelay lets both clients show the matched state before dice appear
	DefaultRollDelay = 1500 * time.Millisecond

	// DefaultSweepInterval is how often stale sessions are collected
	DefaultSweepInterval = 5 * time.Minute

	// DefaultSessionMaxAge is the age past which any session is swept
	DefaultSessionMaxAge = 30 * time.Minute
)

// Config holds the duel service dependencies and timings
type Config struct {
	// Repository dependencies
	SessionRepo    session.Repository
	DuelLedgerRepo duel_ledger.Repository

	// Service dependencies
	Notifier      notifier.Service
	Messaging     messaging.Service
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Broadcaster   Broadcaster
	OrderCache    *pairing.OrderCache

	// Timings, zero means the default
	RollDelay     time.Duration
	SweepInterval time.Duration
	SessionMaxAge time.Duration
}

// JoinOrCreateInput contains the auto-join-or-create request
type JoinOrCreateInput struct {
	ConnectionID    string
	CharacterInfo   models.CharacterInfo
	SelectedDice    []int
	BonusSuccessIDs []string
}

// JoinOrCreateOutput contains the session the caller ended up in
type JoinOrCreateOutput struct {
	SessionID string
	Session   *models.Session

	// Created is true when the caller opened a new session
	Created bool
}

type PerformRollInput struct {
	SessionID string
}

type PerformRollOutput struct {
	Success bool
	Session *models.Session
}

type CancelSessionInput struct {
	ConnectionID string
	SessionID    string
}

type CancelSessionOutput struct {
	Success bool

	// Notified is true when the room was sent session-cancelled
	Notified bool
}

type DisconnectInput struct {
	ConnectionID string
}

type DisconnectOutput struct {
	// SessionIDs are the sessions the connection was removed from
	SessionIDs []string

	// CancelledSessionIDs are the sessions whose remaining participant was notified
	CancelledSessionIDs []string
}

// RerollDieInput replaces one die. DiceIndex is the die's index in the
// owner's selected dice; Player is relative to the caller.
type RerollDieInput struct {
	ConnectionID string
	SessionID    string
	Player       successes.Side
	DiceIndex    int
	NewValue     int
	CharacterID  string
}

type RerollDieOutput struct {
	Success bool

	// Value is the committed value, rolled here if NewValue was out of range
	Value   int
	Session *models.Session
}

type UpdateResultIndicatorInput struct {
	ConnectionID string
	SessionID    string
	Index        int
	State        models.ResultOverride
	ActionToken  string
}

type UpdateResultIndicatorOutput struct {
	Success bool
}

// UpdateSuccessAssignmentInput moves a success token. DiceIndex is the
// pairing index; a nil or empty SuccessID clears the pairing.
type UpdateSuccessAssignmentInput struct {
	ConnectionID string
	SessionID    string
	Player       successes.Side
	DiceIndex    int
	SuccessID    *string
}

type UpdateSuccessAssignmentOutput struct {
	Success bool
}

type UpdateAcceptanceInput struct {
	ConnectionID string
	SessionID    string
	Accepted     bool
}

type UpdateAcceptanceOutput struct {
	Success bool

	// Final is true when this update completed the handshake
	Final bool
}

type GetCharacterStatsInput struct {
	CharacterID string

	// RecentLimit caps the recent duels returned, zero uses 10
	RecentLimit int
}

type GetCharacterStatsOutput struct {
	Stats  *models.CharacterStats
	Recent []*models.DuelRecord
}

type SweepInput struct {
}

type SweepOutput struct {
	RemovedSessionIDs []string
}
