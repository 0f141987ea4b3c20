package notifier

import (
	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/services/messaging"
)

// PostDuelSummaryInput describes the duel to announce
type PostDuelSummaryInput struct {
	CharacterName string
	OpponentName  string

	// Result is the outcome for CharacterName
	Result models.DuelOutcome

	UserWins     int
	OpponentWins int
	DrawCount    int
}

// Config holds configuration for the Discord notifier
type Config struct {
	// WebhookURL is https://discord.com/api/webhooks/<id>/<token>
	WebhookURL string

	// Executor sends the webhook request, usually a *discordgo.Session
	Executor WebhookExecutor

	// Messaging supplies the summary text
	Messaging messaging.Service

	// Username overrides the webhook's display name (optional)
	Username string
}
