package protocol

import (
	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/successes"
)

// JoinPayload is sent with auto-join-or-create
type JoinPayload struct {
	CharacterInfo   models.CharacterInfo `json:"characterInfo"`
	SelectedDice    []int                `json:"selectedDice"`
	BonusSuccessIDs []string             `json:"bonusSuccessIds"`
}

// SessionPayload is sent with session-created and session-updated
type SessionPayload struct {
	SessionID string          `json:"sessionId"`
	Session   *models.Session `json:"session"`
}

// CancelPayload is sent with cancel-session
type CancelPayload struct {
	SessionID string `json:"sessionId"`
}

// CancelledPayload is sent with session-cancelled
type CancelledPayload struct {
	SessionID     string `json:"sessionId,omitempty"`
	Message       string `json:"message"`
	CharacterName string `json:"characterName,omitempty"`
}

// RollResultsPayload is sent with roll-results. Timestamp is unix milliseconds.
type RollResultsPayload struct {
	Session   *models.Session `json:"session"`
	Timestamp int64           `json:"timestamp"`
}

// ResultIndicatorPayload is sent with update-result-indicator. ActionToken
// lets the sender recognise its own change if it is ever echoed back.
type ResultIndicatorPayload struct {
	SessionID   string                `json:"sessionId"`
	Index       int                   `json:"index"`
	State       models.ResultOverride `json:"state"`
	CharacterID string                `json:"characterId,omitempty"`
	ActionToken string                `json:"actionToken,omitempty"`
}

// RerollPayload is sent with reroll-die. DiceIndex is the die's index in the
// owner's selectedDice, Player is relative to CharacterID.
type RerollPayload struct {
	SessionID   string         `json:"sessionId"`
	Player      successes.Side `json:"player"`
	DiceIndex   int            `json:"diceIndex"`
	NewValue    int            `json:"newValue"`
	CharacterID string         `json:"characterId"`
}

// DieRerolledPayload is sent with die-rerolled once the value is committed
type DieRerolledPayload struct {
	RerollPayload
	Session *models.Session `json:"session"`
}

// SuccessAssignmentPayload is sent with success-assignment-updated. DiceIndex
// is the pairing index; a nil SuccessID clears the pairing.
type SuccessAssignmentPayload struct {
	SessionID   string         `json:"sessionId"`
	CharacterID string         `json:"characterId"`
	Player      successes.Side `json:"player"`
	DiceIndex   int            `json:"diceIndex"`
	SuccessID   *string        `json:"successId"`
}

// Remote converts the payload for successes.Ledger.ApplyRemote
func (p *SuccessAssignmentPayload) Remote() successes.Remote {
	return successes.Remote{
		CharacterID: p.CharacterID,
		Side:        p.Player,
		PairIndex:   p.DiceIndex,
		SuccessID:   p.SuccessID,
	}
}

// AcceptancePayload is sent with acceptance-state-updated
type AcceptancePayload struct {
	SessionID   string `json:"sessionId"`
	CharacterID string `json:"characterId"`
	Accepted    bool   `json:"accepted"`
}

// ErrorPayload is sent with error
type ErrorPayload struct {
	Message string `json:"message"`
}
