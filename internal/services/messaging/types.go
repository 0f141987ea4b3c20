package messaging

import (
	"github.com/KirkDiggler/duels/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a plain, factual tone
	ToneNeutral MessageTone = "neutral"

	// ToneDramatic narrates like a bard at the tavern
	ToneDramatic MessageTone = "dramatic"

	// ToneSnarky pokes fun at the participants
	ToneSnarky MessageTone = "snarky"
)

// CancelReason describes why a duel ended early
type CancelReason string

const (
	// CancelReasonDisconnected means a participant's connection dropped
	CancelReasonDisconnected CancelReason = "disconnected"

	// CancelReasonCancelled means a participant cancelled explicitly
	CancelReasonCancelled CancelReason = "cancelled"
)

// GetCancellationMessageInput contains parameters for a cancellation notice
type GetCancellationMessageInput struct {
	// CharacterName is the character that left. May be empty.
	CharacterName string

	// Reason is why the duel ended
	Reason CancelReason

	// Tone is the preferred tone (optional)
	Tone MessageTone
}

// GetCancellationMessageOutput contains the cancellation notice
type GetCancellationMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetDuelSummaryMessageInput describes a finished duel
type GetDuelSummaryMessageInput struct {
	CharacterName string
	OpponentName  string

	// Outcome is the result from CharacterName's point of view
	Outcome models.DuelOutcome

	UserWins     int
	OpponentWins int
	DrawCount    int

	// Tone is the preferred tone (optional)
	Tone MessageTone
}

// GetDuelSummaryMessageOutput contains the summary text
type GetDuelSummaryMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the message selection. Zero seeds from the clock.
	Seed int64
}
